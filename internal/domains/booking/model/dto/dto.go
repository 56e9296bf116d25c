package dto

import (
	"time"

	"lodge/internal/domains/booking/model"
	guestDto "lodge/internal/domains/guest/model/dto"
	"lodge/shared/constant"
	"lodge/shared/timezone"
)

type CreateBookingRequest struct {
	GuestID      int    `json:"guest_id"       validate:"required,gt=0"`
	RoomID       int    `json:"room_id"        validate:"required,gt=0"`
	CheckInDate  string `json:"check_in_date"  validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	TotalAmount  string `json:"total_amount"   validate:"required,amount"`
	PaidAmount   string `json:"paid_amount"    validate:"omitempty,amount"`
	Notes        string `json:"notes"          validate:"omitempty,max=500"`
}

func (c *CreateBookingRequest) ToModel() model.Booking {
	paid := c.PaidAmount
	if paid == "" {
		paid = "0.00"
	}

	var notes *string
	if c.Notes != "" {
		notes = &c.Notes
	}

	return model.Booking{
		GuestID:      c.GuestID,
		RoomID:       c.RoomID,
		CheckInDate:  c.CheckInDate,
		CheckOutDate: c.CheckOutDate,
		Status:       model.StatusConfirmed,
		TotalAmount:  c.TotalAmount,
		PaidAmount:   paid,
		Notes:        notes,
		CreatedAt:    timezone.Now(),
	}
}

type UpdateBookingRequest struct {
	CheckInDate  string `db:"check_in_date"  json:"check_in_date"  validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate string `db:"check_out_date" json:"check_out_date" validate:"omitempty,datetime=2006-01-02"`
	TotalAmount  string `db:"total_amount"   json:"total_amount"   validate:"omitempty,amount"`
	PaidAmount   string `db:"paid_amount"    json:"paid_amount"    validate:"omitempty,amount"`
	Notes        string `db:"notes"          json:"notes"          validate:"omitempty,max=500"`
}

type BookingResponse struct {
	ID             int     `json:"id"`
	GuestID        int     `json:"guest_id"`
	RoomID         int     `json:"room_id"`
	CheckInDate    string  `json:"check_in_date"`
	CheckOutDate   string  `json:"check_out_date"`
	ActualCheckIn  *string `json:"actual_check_in"`
	ActualCheckOut *string `json:"actual_check_out"`
	Status         string  `json:"status"`
	TotalAmount    string  `json:"total_amount"`
	PaidAmount     string  `json:"paid_amount"`
	Notes          *string `json:"notes"`
	CreatedAt      string  `json:"created_at"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.RoomID = model.RoomID
	r.CheckInDate = model.CheckInDate
	r.CheckOutDate = model.CheckOutDate
	r.ActualCheckIn = formatTimestamp(model.ActualCheckIn)
	r.ActualCheckOut = formatTimestamp(model.ActualCheckOut)
	r.Status = model.Status
	r.TotalAmount = model.TotalAmount
	r.PaidAmount = model.PaidAmount
	r.Notes = model.Notes
	r.CreatedAt = model.CreatedAt.Format(constant.TimestampFormat)
}

// BookingWithGuestResponse is the read-time projection attaching the guest
// inline. Guest is nil when the referenced guest no longer resolves.
type BookingWithGuestResponse struct {
	BookingResponse
	Guest *guestDto.GuestResponse `json:"guest,omitempty"`
}

type GetBookingsResponse struct {
	Bookings  []BookingWithGuestResponse `json:"bookings"`
	TotalData int                        `json:"total_data"`
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := t.Format(constant.TimestampFormat)

	return &formatted
}
