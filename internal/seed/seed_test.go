package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/infras/otel/mocks"
	bookingRepo "lodge/internal/domains/booking/repository"
	guestRepo "lodge/internal/domains/guest/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	userRepo "lodge/internal/domains/user/repository"
	"lodge/internal/seed"
)

func TestSeeder_Load(t *testing.T) {
	ctx := context.Background()

	users := userRepo.New(mocks.NewOtel())
	rooms := roomRepo.New(mocks.NewOtel())
	guests := guestRepo.New(mocks.NewOtel())
	bookings := bookingRepo.New(mocks.NewOtel())

	seeder := seed.New(users, rooms, guests, bookings)
	seeder.Load(ctx)

	assert.Len(t, users.GetAll(ctx), 1)
	assert.Equal(t, 12, rooms.Count(ctx, nil))
	assert.Len(t, guests.GetAll(ctx), 3)
	assert.Len(t, bookings.GetAll(ctx), 2)

	t.Run("admin account", func(t *testing.T) {
		admin, ok := users.GetByUsername(ctx, "admin")
		require.True(t, ok)
		assert.Equal(t, "admin123", admin.Password)
	})

	t.Run("room 105 is blocked for renovation", func(t *testing.T) {
		room, ok := rooms.GetByNumber(ctx, "105")
		require.True(t, ok)
		assert.Equal(t, roomModel.StatusBlocked, room.Status)
		require.NotNil(t, room.BlockedUntil)
		assert.Equal(t, "2025-07-17", *room.BlockedUntil)
		require.NotNil(t, room.BlockReason)
		assert.Equal(t, "Renovation", *room.BlockReason)
	})

	t.Run("one guest is in-house today", func(t *testing.T) {
		all := bookings.GetAll(ctx)
		require.Len(t, all, 2)
		assert.NotNil(t, all[0].ActualCheckIn)
		assert.Equal(t, "600.00", all[0].PaidAmount)
		assert.Nil(t, all[1].ActualCheckIn)
	})

	t.Run("loading twice is a no-op", func(t *testing.T) {
		seeder.Load(ctx)

		assert.Equal(t, 12, rooms.Count(ctx, nil))
		assert.Len(t, bookings.GetAll(ctx), 2)
	})
}
