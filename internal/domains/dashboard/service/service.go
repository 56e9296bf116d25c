package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	bookingModel "lodge/internal/domains/booking/model"
	bookingRepo "lodge/internal/domains/booking/repository"
	"lodge/internal/domains/dashboard/model/dto"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	"lodge/shared/constant"
	"lodge/shared/money"
	"lodge/shared/timezone"
)

type Dashboard interface {
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	rooms    roomRepo.Room
	bookings bookingRepo.Booking
	otel     otel.Otel
}

func New(rooms roomRepo.Room, bookings bookingRepo.Booking, otl otel.Otel) Dashboard {
	return &serviceImpl{
		rooms:    rooms,
		bookings: bookings,
		otel:     otl,
	}
}

// Stats scans the live tables on every call; nothing is cached or maintained
// incrementally. Check-ins count bookings planned for today that are still
// active; revenue sums the paid amounts of bookings whose actual check-in
// happened today.
func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	today := timezone.Today()

	res.TotalRooms = s.rooms.Count(ctx, nil)
	res.OccupiedRooms = s.rooms.Count(ctx, func(room roomModel.Room) bool {
		return room.Status == roomModel.StatusOccupied
	})

	res.CheckinsToday = len(s.bookings.Select(ctx, func(booking bookingModel.Booking) bool {
		return booking.CheckInDate == today && booking.Active()
	}))

	arrived := s.bookings.Select(ctx, func(booking bookingModel.Booking) bool {
		return booking.ActualCheckIn != nil && timezone.DateOf(*booking.ActualCheckIn) == today
	})

	amounts := make([]string, len(arrived))
	for i, booking := range arrived {
		amounts[i] = booking.PaidAmount
	}

	revenue, err := money.Sum(amounts...)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum today's revenue")

		return res, fmt.Errorf("summing today's revenue: %w", err)
	}

	res.RevenueToday = money.Format(revenue)

	return res, nil
}
