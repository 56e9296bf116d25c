package model

const (
	EntityName = "room"

	FieldID            = "id"
	FieldNumber        = "number"
	FieldType          = "type"
	FieldStatus        = "status"
	FieldFloor         = "floor"
	FieldMaxOccupancy  = "max_occupancy"
	FieldPricePerNight = "price_per_night"
	FieldAmenities     = "amenities"
	FieldBlockedUntil  = "blocked_until"
	FieldBlockReason   = "block_reason"
)

const (
	TypeStandard = "standard"
	TypeDeluxe   = "deluxe"
	TypeSuite    = "suite"
)

const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
	StatusBlocked     = "blocked"
)

// Room invariant: StatusBlocked implies both BlockedUntil and BlockReason are
// set; any other status implies both are nil. The block is purely manual, a
// lapsed BlockedUntil date does not release the room by itself.
type Room struct {
	ID            int      `db:"id"`
	Number        string   `db:"number"`
	Type          string   `db:"type"`
	Status        string   `db:"status"`
	Floor         int      `db:"floor"`
	MaxOccupancy  int      `db:"max_occupancy"`
	PricePerNight string   `db:"price_per_night"`
	Amenities     []string `db:"amenities"`
	BlockedUntil  *string  `db:"blocked_until"`
	BlockReason   *string  `db:"block_reason"`
}
