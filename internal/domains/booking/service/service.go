package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/repository"
	guestDto "lodge/internal/domains/guest/model/dto"
	guestRepo "lodge/internal/domains/guest/repository"
	roomRepo "lodge/internal/domains/room/repository"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/store"
	"lodge/shared/timezone"
	"lodge/shared/validator"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id int) (dto.BookingWithGuestResponse, error)
	GetAll(ctx context.Context) dto.GetBookingsResponse
	GetByRoom(ctx context.Context, roomID int) dto.GetBookingsResponse
	Update(ctx context.Context, req dto.UpdateBookingRequest, id int) (dto.BookingResponse, error)
	CheckIn(ctx context.Context, id int) (dto.BookingResponse, error)
	CheckOut(ctx context.Context, id int) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id int) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	guestRepo guestRepo.Guest
	otel      otel.Otel
}

func New(repo repository.Booking, rooms roomRepo.Room, guests guestRepo.Guest, otl otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  rooms,
		guestRepo: guests,
		otel:      otl,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if req.CheckOutDate <= req.CheckInDate {
		return res, failure.BadRequestFromString("check_out_date must be after check_in_date") // nolint:wrapcheck
	}

	// Referential integrity is enforced at write time: a booking may not
	// reference a room or guest that is not stored.
	if !s.roomRepo.Exist(ctx, req.RoomID) {
		return res, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	if !s.guestRepo.Exist(ctx, req.GuestID) {
		return res, failure.BadRequestFromString("guest does not exist") // nolint:wrapcheck
	}

	booking := s.repo.Insert(ctx, req.ToModel())

	log.Info().
		Int("booking_id", booking.ID).
		Int("room_id", booking.RoomID).
		Int("guest_id", booking.GuestID).
		Msg("booking created")

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.BookingWithGuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()

	booking, ok := s.repo.Get(ctx, id)
	if !ok {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	return s.withGuest(ctx, booking), nil
}

func (s *serviceImpl) GetAll(ctx context.Context) dto.GetBookingsResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()

	return s.collect(ctx, s.repo.GetAll(ctx))
}

func (s *serviceImpl) GetByRoom(ctx context.Context, roomID int) dto.GetBookingsResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByRoom")
	defer scope.End()

	return s.collect(ctx, s.repo.GetByRoom(ctx, roomID))
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id int) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	booking, ok := s.repo.Update(ctx, id, store.Fields(req))
	if !ok {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

// CheckIn moves a confirmed booking to checked_in and stamps the actual
// check-in time. Room status is managed through the room service and is not
// updated here.
func (s *serviceImpl) CheckIn(ctx context.Context, id int) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, model.StatusConfirmed, model.StatusCheckedIn, model.FieldActualCheckIn)
}

// CheckOut moves a checked_in booking to checked_out and stamps the actual
// check-out time.
func (s *serviceImpl) CheckOut(ctx context.Context, id int) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, model.StatusCheckedIn, model.StatusCheckedOut, model.FieldActualCheckOut)
}

// Cancel moves a confirmed booking to the terminal cancelled status.
func (s *serviceImpl) Cancel(ctx context.Context, id int) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, model.StatusConfirmed, model.StatusCancelled, "")
}

func (s *serviceImpl) transition(ctx context.Context, id int, from, to, stampField string) (res dto.BookingResponse, err error) {
	booking, ok := s.repo.Get(ctx, id)
	if !ok {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	if booking.Status != from {
		return res, failure.Conflict(fmt.Sprintf("cannot move a %s booking to %s", booking.Status, to)) // nolint:wrapcheck
	}

	patch := map[string]any{model.FieldStatus: to}
	if stampField != "" {
		patch[stampField] = timezone.Now()
	}

	booking, _ = s.repo.Update(ctx, id, patch)

	log.Info().Int("booking_id", booking.ID).Str("status", booking.Status).Msg("booking transitioned")

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) collect(ctx context.Context, bookings []model.Booking) dto.GetBookingsResponse {
	res := dto.GetBookingsResponse{
		Bookings:  make([]dto.BookingWithGuestResponse, len(bookings)),
		TotalData: len(bookings),
	}

	for i, booking := range bookings {
		res.Bookings[i] = s.withGuest(ctx, booking)
	}

	return res
}

// withGuest attaches the referenced guest inline. A dangling reference is
// tolerated at read time: the guest field stays nil and a warning is logged.
func (s *serviceImpl) withGuest(ctx context.Context, booking model.Booking) dto.BookingWithGuestResponse {
	var res dto.BookingWithGuestResponse

	res.FromModel(booking)

	guest, ok := s.guestRepo.Get(ctx, booking.GuestID)
	if !ok {
		log.Warn().
			Int("booking_id", booking.ID).
			Int("guest_id", booking.GuestID).
			Msg("booking references a missing guest")

		return res
	}

	attached := guestDto.GuestResponse{}
	attached.FromModel(guest)
	res.Guest = &attached

	return res
}
