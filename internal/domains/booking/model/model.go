package model

import "time"

const (
	EntityName = "booking"

	FieldID             = "id"
	FieldGuestID        = "guest_id"
	FieldRoomID         = "room_id"
	FieldCheckInDate    = "check_in_date"
	FieldCheckOutDate   = "check_out_date"
	FieldActualCheckIn  = "actual_check_in"
	FieldActualCheckOut = "actual_check_out"
	FieldStatus         = "status"
	FieldTotalAmount    = "total_amount"
	FieldPaidAmount     = "paid_amount"
	FieldNotes          = "notes"
	FieldCreatedAt      = "created_at"
)

const (
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

// Booking references its guest and room by identifier. CheckInDate and
// CheckOutDate are planned calendar dates (YYYY-MM-DD); the Actual* fields
// are stamped by the check-in and check-out transitions. Amounts follow the
// decimal-as-string convention.
type Booking struct {
	ID             int        `db:"id"`
	GuestID        int        `db:"guest_id"`
	RoomID         int        `db:"room_id"`
	CheckInDate    string     `db:"check_in_date"`
	CheckOutDate   string     `db:"check_out_date"`
	ActualCheckIn  *time.Time `db:"actual_check_in"`
	ActualCheckOut *time.Time `db:"actual_check_out"`
	Status         string     `db:"status"`
	TotalAmount    string     `db:"total_amount"`
	PaidAmount     string     `db:"paid_amount"`
	Notes          *string    `db:"notes"`
	CreatedAt      time.Time  `db:"created_at"`
}

// Active reports whether the booking still occupies its room, i.e. it has
// been neither cancelled nor checked out.
func (b Booking) Active() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCheckedIn
}

// Covers reports whether the planned stay includes the given calendar date.
// ISO date strings compare correctly as plain strings.
func (b Booking) Covers(date string) bool {
	return b.CheckInDate <= date && date <= b.CheckOutDate
}
