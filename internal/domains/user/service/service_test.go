package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/infras/otel/mocks"
	"lodge/internal/domains/user/model/dto"
	"lodge/internal/domains/user/repository"
	"lodge/internal/domains/user/service"
	"lodge/shared/failure"
)

func newService() service.User {
	return service.New(repository.New(mocks.NewOtel()), mocks.NewOtel())
}

func validRequest() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Username: "frontdesk",
		Password: "secret123",
		Role:     "staff",
		Name:     "Meera Iyer",
		Email:    "meera@hotel.com",
	}
}

func TestUserService_Create(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "frontdesk", created.Username)

	t.Run("duplicate username is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, validRequest())
		assert.True(t, failure.IsConflict(err))
	})

	t.Run("invalid role is rejected", func(t *testing.T) {
		req := validRequest()
		req.Username = "other"
		req.Role = "owner"

		_, err := svc.Create(ctx, req)
		assert.True(t, failure.IsBadRequest(err))
	})
}

func TestUserService_Get(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	byName, err := svc.GetByUsername(ctx, "frontdesk")
	require.NoError(t, err)
	assert.Equal(t, created, byName)

	t.Run("missing id yields not found", func(t *testing.T) {
		_, err := svc.Get(ctx, 999)
		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("missing username yields not found", func(t *testing.T) {
		_, err := svc.GetByUsername(ctx, "nobody")
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestUserService_Update(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		updated, err := svc.Update(ctx, dto.UpdateUserRequest{Name: "Meera I."}, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Meera I.", updated.Name)
		assert.Equal(t, created.Username, updated.Username)
		assert.Equal(t, created.Email, updated.Email)
	})

	t.Run("empty update returns the record unchanged", func(t *testing.T) {
		before, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)

		updated, err := svc.Update(ctx, dto.UpdateUserRequest{}, created.ID)
		require.NoError(t, err)
		assert.Equal(t, before, updated)
	})

	t.Run("missing id yields not found", func(t *testing.T) {
		_, err := svc.Update(ctx, dto.UpdateUserRequest{Name: "ghost"}, 999)
		assert.True(t, failure.IsNotFound(err))
	})
}
