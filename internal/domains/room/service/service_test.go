package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/infras/otel/mocks"
	bookingModel "lodge/internal/domains/booking/model"
	bookingRepo "lodge/internal/domains/booking/repository"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/repository"
	"lodge/internal/domains/room/service"
	"lodge/shared/failure"
	"lodge/shared/timezone"
)

func newService() (service.Room, bookingRepo.Booking) {
	bookings := bookingRepo.New(mocks.NewOtel())
	svc := service.New(repository.New(mocks.NewOtel()), bookings, mocks.NewOtel())

	return svc, bookings
}

func createRoom(t *testing.T, svc service.Room, number string) dto.RoomResponse {
	t.Helper()

	res, err := svc.Create(context.Background(), dto.CreateRoomRequest{
		Number:        number,
		Type:          model.TypeStandard,
		Floor:         1,
		MaxOccupancy:  2,
		PricePerNight: "100.00",
	})
	require.NoError(t, err)

	return res
}

func TestRoomService_Create(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	created := createRoom(t, svc, "101")
	assert.Equal(t, model.StatusAvailable, created.Status)

	t.Run("duplicate number is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, dto.CreateRoomRequest{
			Number:        "101",
			Type:          model.TypeDeluxe,
			Floor:         1,
			MaxOccupancy:  2,
			PricePerNight: "150.00",
		})
		assert.True(t, failure.IsConflict(err))
	})

	t.Run("malformed price is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, dto.CreateRoomRequest{
			Number:        "102",
			Type:          model.TypeStandard,
			Floor:         1,
			MaxOccupancy:  2,
			PricePerNight: "cheap",
		})
		assert.True(t, failure.IsBadRequest(err))
	})
}

func TestRoomService_GetByNumber(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	first := createRoom(t, svc, "101")
	second := createRoom(t, svc, "201")

	got, err := svc.GetByNumber(ctx, "201")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
	assert.NotEqual(t, first.ID, got.ID)

	_, err = svc.GetByNumber(ctx, "999")
	assert.True(t, failure.IsNotFound(err))
}

func TestRoomService_SetPrice(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	createRoom(t, svc, "101")

	updated, err := svc.SetPrice(ctx, "101", "1500.00")
	require.NoError(t, err)
	assert.Equal(t, "1500.00", updated.PricePerNight)

	t.Run("malformed amount is rejected", func(t *testing.T) {
		_, err := svc.SetPrice(ctx, "101", "1,500")
		assert.True(t, failure.IsBadRequest(err))
	})

	t.Run("missing room yields not found", func(t *testing.T) {
		_, err := svc.SetPrice(ctx, "999", "1500.00")
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestRoomService_BlockUnblock(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	createRoom(t, svc, "105")

	blocked, err := svc.Block(ctx, "105", "2025-07-17", "Renovation")
	require.NoError(t, err)
	assert.Equal(t, model.StatusBlocked, blocked.Status)
	require.NotNil(t, blocked.BlockedUntil)
	assert.Equal(t, "2025-07-17", *blocked.BlockedUntil)
	require.NotNil(t, blocked.BlockReason)
	assert.Equal(t, "Renovation", *blocked.BlockReason)

	unblocked, err := svc.Unblock(ctx, "105")
	require.NoError(t, err)
	assert.Equal(t, model.StatusAvailable, unblocked.Status)
	assert.Nil(t, unblocked.BlockedUntil)
	assert.Nil(t, unblocked.BlockReason)

	t.Run("unblocking an unblocked room is a no-op", func(t *testing.T) {
		again, err := svc.Unblock(ctx, "105")
		require.NoError(t, err)
		assert.Equal(t, model.StatusAvailable, again.Status)
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		_, err := svc.Block(ctx, "105", "July 17th", "Renovation")
		assert.True(t, failure.IsBadRequest(err))
	})

	t.Run("empty reason is rejected", func(t *testing.T) {
		_, err := svc.Block(ctx, "105", "2025-07-17", "")
		assert.True(t, failure.IsBadRequest(err))
	})
}

func TestRoomService_Update(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	created := createRoom(t, svc, "101")

	updated, err := svc.Update(ctx, dto.UpdateRoomRequest{Status: model.StatusMaintenance}, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusMaintenance, updated.Status)
	assert.Equal(t, created.PricePerNight, updated.PricePerNight)

	t.Run("blocked is not accepted as a plain status", func(t *testing.T) {
		_, err := svc.Update(ctx, dto.UpdateRoomRequest{Status: model.StatusBlocked}, created.ID)
		assert.True(t, failure.IsBadRequest(err))
	})
}

func TestRoomService_GetAllAttachesCurrentBooking(t *testing.T) {
	svc, bookings := newService()
	ctx := context.Background()

	occupied := createRoom(t, svc, "204")
	vacant := createRoom(t, svc, "102")

	today := timezone.Today()
	tomorrow := timezone.DateOf(timezone.Now().AddDate(0, 0, 1))
	yesterday := timezone.DateOf(timezone.Now().AddDate(0, 0, -1))

	// A stale confirmed booking plus the live checked_in stay on the same
	// room. The checked_in one must win the tie-break.
	bookings.Insert(ctx, bookingModel.Booking{
		GuestID:      1,
		RoomID:       occupied.ID,
		CheckInDate:  yesterday,
		CheckOutDate: tomorrow,
		Status:       bookingModel.StatusConfirmed,
		TotalAmount:  "200.00",
		PaidAmount:   "0.00",
		CreatedAt:    timezone.Now(),
	})
	current := bookings.Insert(ctx, bookingModel.Booking{
		GuestID:      2,
		RoomID:       occupied.ID,
		CheckInDate:  today,
		CheckOutDate: tomorrow,
		Status:       bookingModel.StatusCheckedIn,
		TotalAmount:  "600.00",
		PaidAmount:   "600.00",
		CreatedAt:    timezone.Now(),
	})

	// Cancelled and past bookings never count as current.
	bookings.Insert(ctx, bookingModel.Booking{
		GuestID:      3,
		RoomID:       vacant.ID,
		CheckInDate:  today,
		CheckOutDate: tomorrow,
		Status:       bookingModel.StatusCancelled,
		TotalAmount:  "100.00",
		PaidAmount:   "0.00",
		CreatedAt:    timezone.Now(),
	})

	all := svc.GetAll(ctx)
	require.Equal(t, 2, all.TotalData)

	byNumber := map[string]int{}
	for i, room := range all.Rooms {
		byNumber[room.Number] = i
	}

	withBooking := all.Rooms[byNumber["204"]]
	require.NotNil(t, withBooking.CurrentBooking)
	assert.Equal(t, current.ID, withBooking.CurrentBooking.ID)
	assert.Equal(t, bookingModel.StatusCheckedIn, withBooking.CurrentBooking.Status)

	assert.Nil(t, all.Rooms[byNumber["102"]].CurrentBooking)
}
