package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	bookingModel "lodge/internal/domains/booking/model"
	bookingDto "lodge/internal/domains/booking/model/dto"
	bookingRepo "lodge/internal/domains/booking/repository"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/repository"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/store"
	"lodge/shared/timezone"
	"lodge/shared/validator"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	Get(ctx context.Context, id int) (dto.RoomResponse, error)
	GetByNumber(ctx context.Context, number string) (dto.RoomResponse, error)
	GetAll(ctx context.Context) dto.GetRoomsResponse
	Update(ctx context.Context, req dto.UpdateRoomRequest, id int) (dto.RoomResponse, error)
	SetPrice(ctx context.Context, number, price string) (dto.RoomResponse, error)
	Block(ctx context.Context, number, until, reason string) (dto.RoomResponse, error)
	Unblock(ctx context.Context, number string) (dto.RoomResponse, error)
}

type serviceImpl struct {
	repo     repository.Room
	bookings bookingRepo.Booking
	otel     otel.Otel
}

func New(repo repository.Room, bookings bookingRepo.Booking, otl otel.Otel) Room {
	return &serviceImpl{
		repo:     repo,
		bookings: bookings,
		otel:     otl,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if _, taken := s.repo.GetByNumber(ctx, req.Number); taken {
		return res, failure.Conflict("room number already in use") // nolint:wrapcheck
	}

	room := s.repo.Insert(ctx, req.ToModel())

	log.Info().Int("room_id", room.ID).Str("number", room.Number).Msg("room created")

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()

	room, ok := s.repo.Get(ctx, id)
	if !ok {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetByNumber(ctx context.Context, number string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetByNumber")
	defer scope.End()

	room, ok := s.repo.GetByNumber(ctx, number)
	if !ok {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(room)

	return res, nil
}

// GetAll lists every room with its current booking attached: the active
// booking whose planned stay covers today. When several qualify, checked_in
// wins over confirmed and the most recent check-in date breaks remaining
// ties.
func (s *serviceImpl) GetAll(ctx context.Context) dto.GetRoomsResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()

	rooms := s.repo.GetAll(ctx)
	today := timezone.Today()

	res := dto.GetRoomsResponse{
		Rooms:     make([]dto.RoomWithCurrentBookingResponse, len(rooms)),
		TotalData: len(rooms),
	}

	for i, room := range rooms {
		res.Rooms[i].FromModel(room)

		if current, ok := s.currentBooking(ctx, room.ID, today); ok {
			attached := bookingDto.BookingResponse{}
			attached.FromModel(current)
			res.Rooms[i].CurrentBooking = &attached
		}
	}

	return res
}

func (s *serviceImpl) currentBooking(ctx context.Context, roomID int, today string) (bookingModel.Booking, bool) {
	candidates := s.bookings.Select(ctx, func(booking bookingModel.Booking) bool {
		return booking.RoomID == roomID && booking.Active() && booking.Covers(today)
	})

	if len(candidates) == 0 {
		return bookingModel.Booking{}, false
	}

	best := candidates[0]
	for _, candidate := range candidates[1:] {
		if better(candidate, best) {
			best = candidate
		}
	}

	return best, true
}

func better(a, b bookingModel.Booking) bool {
	if a.Status != b.Status {
		return a.Status == bookingModel.StatusCheckedIn
	}

	return a.CheckInDate > b.CheckInDate
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id int) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	room, ok := s.repo.Update(ctx, id, store.Fields(req))
	if !ok {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(room)

	return res, nil
}

// SetPrice updates the nightly price of the room with the given number.
func (s *serviceImpl) SetPrice(ctx context.Context, number, price string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.SetPrice")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateVar(price, "required,amount"); err != nil {
		return res, err
	}

	room, ok := s.repo.GetByNumber(ctx, number)
	if !ok {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	room, _ = s.repo.Update(ctx, room.ID, map[string]any{
		model.FieldPricePerNight: price,
	})

	log.Info().Str("number", room.Number).Str("price_per_night", price).Msg("room price updated")

	res.FromModel(room)

	return res, nil
}

// Block takes the room out of service until the given date. The prior status
// is not inspected; blocking an occupied room is the operator's call.
func (s *serviceImpl) Block(ctx context.Context, number, until, reason string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Block")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateVar(until, "required,datetime=2006-01-02"); err != nil {
		return res, err
	}

	if reason == "" {
		return res, failure.BadRequestFromString("block reason is required") // nolint:wrapcheck
	}

	room, ok := s.repo.GetByNumber(ctx, number)
	if !ok {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	room, _ = s.repo.Update(ctx, room.ID, map[string]any{
		model.FieldStatus:       model.StatusBlocked,
		model.FieldBlockedUntil: until,
		model.FieldBlockReason:  reason,
	})

	log.Info().Str("number", room.Number).Str("blocked_until", until).Str("reason", reason).Msg("room blocked")

	res.FromModel(room)

	return res, nil
}

// Unblock clears the block fields and resets the room to available. It is
// idempotent: unblocking a room that was never blocked is not an error.
func (s *serviceImpl) Unblock(ctx context.Context, number string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Unblock")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, ok := s.repo.GetByNumber(ctx, number)
	if !ok {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	room, _ = s.repo.Update(ctx, room.ID, map[string]any{
		model.FieldStatus:       model.StatusAvailable,
		model.FieldBlockedUntil: nil,
		model.FieldBlockReason:  nil,
	})

	log.Info().Str("number", room.Number).Msg("room unblocked")

	res.FromModel(room)

	return res, nil
}
