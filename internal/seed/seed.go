// Package seed loads the demo dataset: one admin account, twelve rooms
// across two floors, three guests and two bookings (one in-house today, one
// arriving tomorrow). Seeding is explicit; nothing loads behind the caller's
// back.
package seed

import (
	"context"

	"github.com/rs/zerolog/log"

	bookingModel "lodge/internal/domains/booking/model"
	bookingRepo "lodge/internal/domains/booking/repository"
	guestModel "lodge/internal/domains/guest/model"
	guestRepo "lodge/internal/domains/guest/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	userModel "lodge/internal/domains/user/model"
	userRepo "lodge/internal/domains/user/repository"
	"lodge/shared/constant"
	"lodge/shared/timezone"
)

type Seeder struct {
	users    userRepo.User
	rooms    roomRepo.Room
	guests   guestRepo.Guest
	bookings bookingRepo.Booking
}

func New(users userRepo.User, rooms roomRepo.Room, guests guestRepo.Guest, bookings bookingRepo.Booking) *Seeder {
	return &Seeder{
		users:    users,
		rooms:    rooms,
		guests:   guests,
		bookings: bookings,
	}
}

// Load populates the repositories with the sample dataset. Loading twice is
// a no-op so a shared instance cannot be double-seeded.
func (s *Seeder) Load(ctx context.Context) {
	if s.rooms.Count(ctx, nil) > 0 {
		log.Warn().Msg("sample data already loaded, skipping seed")

		return
	}

	s.users.Insert(ctx, userModel.User{
		Username: "admin",
		Password: "admin123", // demo credentials, stored as-is
		Role:     constant.RoleAdmin,
		Name:     "John Doe",
		Email:    "admin@hotel.com",
	})

	blockedUntil := "2025-07-17"
	blockReason := "Renovation"

	rooms := []roomModel.Room{
		{Number: "101", Type: roomModel.TypeStandard, Status: roomModel.StatusOccupied, Floor: 1, MaxOccupancy: 2, PricePerNight: "120.00", Amenities: []string{"wifi", "tv"}},
		{Number: "102", Type: roomModel.TypeStandard, Status: roomModel.StatusAvailable, Floor: 1, MaxOccupancy: 2, PricePerNight: "120.00", Amenities: []string{"wifi", "tv"}},
		{Number: "103", Type: roomModel.TypeDeluxe, Status: roomModel.StatusMaintenance, Floor: 1, MaxOccupancy: 3, PricePerNight: "180.00", Amenities: []string{"wifi", "tv", "minibar"}},
		{Number: "104", Type: roomModel.TypeDeluxe, Status: roomModel.StatusOccupied, Floor: 1, MaxOccupancy: 3, PricePerNight: "180.00", Amenities: []string{"wifi", "tv", "minibar"}},
		{Number: "105", Type: roomModel.TypeSuite, Status: roomModel.StatusBlocked, Floor: 1, MaxOccupancy: 4, PricePerNight: "300.00", Amenities: []string{"wifi", "tv", "minibar", "jacuzzi"}, BlockedUntil: &blockedUntil, BlockReason: &blockReason},
		{Number: "106", Type: roomModel.TypeStandard, Status: roomModel.StatusAvailable, Floor: 1, MaxOccupancy: 2, PricePerNight: "120.00", Amenities: []string{"wifi", "tv"}},
		{Number: "201", Type: roomModel.TypeDeluxe, Status: roomModel.StatusOccupied, Floor: 2, MaxOccupancy: 3, PricePerNight: "180.00", Amenities: []string{"wifi", "tv", "minibar"}},
		{Number: "202", Type: roomModel.TypeDeluxe, Status: roomModel.StatusOccupied, Floor: 2, MaxOccupancy: 3, PricePerNight: "180.00", Amenities: []string{"wifi", "tv", "minibar"}},
		{Number: "203", Type: roomModel.TypeStandard, Status: roomModel.StatusAvailable, Floor: 2, MaxOccupancy: 2, PricePerNight: "120.00", Amenities: []string{"wifi", "tv"}},
		{Number: "204", Type: roomModel.TypeSuite, Status: roomModel.StatusOccupied, Floor: 2, MaxOccupancy: 4, PricePerNight: "300.00", Amenities: []string{"wifi", "tv", "minibar", "jacuzzi"}},
		{Number: "205", Type: roomModel.TypeStandard, Status: roomModel.StatusAvailable, Floor: 2, MaxOccupancy: 2, PricePerNight: "120.00", Amenities: []string{"wifi", "tv"}},
		{Number: "206", Type: roomModel.TypeDeluxe, Status: roomModel.StatusOccupied, Floor: 2, MaxOccupancy: 3, PricePerNight: "180.00", Amenities: []string{"wifi", "tv", "minibar"}},
	}

	for _, room := range rooms {
		s.rooms.Insert(ctx, room)
	}

	guests := []guestModel.Guest{
		{Name: "Arjun Sharma", Email: "arjun.sharma@email.com", Phone: "+919876543210", IDNumber: "AADH001", Address: "123 MG Road, Mumbai", CreatedAt: timezone.Now()},
		{Name: "Priya Patel", Email: "priya.patel@email.com", Phone: "+919876543211", IDNumber: "AADH002", Address: "456 Brigade Road, Bangalore", CreatedAt: timezone.Now()},
		{Name: "Rajesh Kumar", Email: "rajesh.kumar@email.com", Phone: "+919876543212", IDNumber: "AADH003", Address: "789 CP, New Delhi", CreatedAt: timezone.Now()},
	}

	stored := make([]guestModel.Guest, len(guests))
	for i, guest := range guests {
		stored[i] = s.guests.Insert(ctx, guest)
	}

	now := timezone.Now()
	today := timezone.Today()
	tomorrow := timezone.DateOf(now.AddDate(0, 0, 1))
	dayAfter := timezone.DateOf(now.AddDate(0, 0, 2))

	room204, _ := s.rooms.GetByNumber(ctx, "204")
	room102, _ := s.rooms.GetByNumber(ctx, "102")

	s.bookings.Insert(ctx, bookingModel.Booking{
		GuestID:       stored[0].ID,
		RoomID:        room204.ID,
		CheckInDate:   today,
		CheckOutDate:  dayAfter,
		ActualCheckIn: &now,
		Status:        bookingModel.StatusCheckedIn,
		TotalAmount:   "600.00",
		PaidAmount:    "600.00",
		CreatedAt:     now,
	})

	s.bookings.Insert(ctx, bookingModel.Booking{
		GuestID:      stored[1].ID,
		RoomID:       room102.ID,
		CheckInDate:  tomorrow,
		CheckOutDate: dayAfter,
		Status:       bookingModel.StatusConfirmed,
		TotalAmount:  "120.00",
		PaidAmount:   "0.00",
		CreatedAt:    now,
	})

	log.Info().
		Int("rooms", len(rooms)).
		Int("guests", len(guests)).
		Int("bookings", 2).
		Msg("sample data loaded")
}
