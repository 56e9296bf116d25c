package dto

import (
	bookingDto "lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/room/model"
)

type CreateRoomRequest struct {
	Number        string   `json:"number"          validate:"required,max=10"`
	Type          string   `json:"type"            validate:"required,oneof=standard deluxe suite"`
	Status        string   `json:"status"          validate:"omitempty,oneof=available occupied maintenance"`
	Floor         int      `json:"floor"           validate:"required,gte=0"`
	MaxOccupancy  int      `json:"max_occupancy"   validate:"required,gte=1"`
	PricePerNight string   `json:"price_per_night" validate:"required,amount"`
	Amenities     []string `json:"amenities"       validate:"omitempty,dive,max=30"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Room{
		Number:        c.Number,
		Type:          c.Type,
		Status:        status,
		Floor:         c.Floor,
		MaxOccupancy:  c.MaxOccupancy,
		PricePerNight: c.PricePerNight,
		Amenities:     c.Amenities,
	}
}

// UpdateRoomRequest is a sparse patch. The room number is deliberately not
// patchable, it is the room's unique lookup key. Blocking goes through the
// dedicated Block and Unblock operations so the paired block fields cannot be
// set independently.
type UpdateRoomRequest struct {
	Type          string   `db:"type"            json:"type"            validate:"omitempty,oneof=standard deluxe suite"`
	Status        string   `db:"status"          json:"status"          validate:"omitempty,oneof=available occupied maintenance"`
	Floor         int      `db:"floor"           json:"floor"           validate:"omitempty,gte=0"`
	MaxOccupancy  int      `db:"max_occupancy"   json:"max_occupancy"   validate:"omitempty,gte=1"`
	PricePerNight string   `db:"price_per_night" json:"price_per_night" validate:"omitempty,amount"`
	Amenities     []string `db:"amenities"       json:"amenities"       validate:"omitempty,dive,max=30"`
}

type RoomResponse struct {
	ID            int      `json:"id"`
	Number        string   `json:"number"`
	Type          string   `json:"type"`
	Status        string   `json:"status"`
	Floor         int      `json:"floor"`
	MaxOccupancy  int      `json:"max_occupancy"`
	PricePerNight string   `json:"price_per_night"`
	Amenities     []string `json:"amenities"`
	BlockedUntil  *string  `json:"blocked_until"`
	BlockReason   *string  `json:"block_reason"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = model.Type
	r.Status = model.Status
	r.Floor = model.Floor
	r.MaxOccupancy = model.MaxOccupancy
	r.PricePerNight = model.PricePerNight
	r.Amenities = model.Amenities
	r.BlockedUntil = model.BlockedUntil
	r.BlockReason = model.BlockReason
}

// RoomWithCurrentBookingResponse attaches the booking currently occupying or
// about to occupy the room, when one exists.
type RoomWithCurrentBookingResponse struct {
	RoomResponse
	CurrentBooking *bookingDto.BookingResponse `json:"current_booking,omitempty"`
}

type GetRoomsResponse struct {
	Rooms     []RoomWithCurrentBookingResponse `json:"rooms"`
	TotalData int                              `json:"total_data"`
}
