package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/user/model"
	"lodge/internal/domains/user/model/dto"
	"lodge/internal/domains/user/repository"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/store"
	"lodge/shared/validator"
)

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	Get(ctx context.Context, id int) (dto.UserResponse, error)
	GetByUsername(ctx context.Context, username string) (dto.UserResponse, error)
	GetAll(ctx context.Context) dto.GetUsersResponse
	Update(ctx context.Context, req dto.UpdateUserRequest, id int) (dto.UserResponse, error)
}

type serviceImpl struct {
	repo repository.User
	otel otel.Otel
}

func New(repo repository.User, otl otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		otel: otl,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if _, taken := s.repo.GetByUsername(ctx, req.Username); taken {
		return res, failure.Conflict("username already taken") // nolint:wrapcheck
	}

	user := s.repo.Insert(ctx, req.ToModel())

	log.Info().Int("user_id", user.ID).Str("username", user.Username).Msg("user created")

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Get")
	defer scope.End()

	user, ok := s.repo.Get(ctx, id)
	if !ok {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) GetByUsername(ctx context.Context, username string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetByUsername")
	defer scope.End()

	user, ok := s.repo.GetByUsername(ctx, username)
	if !ok {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) dto.GetUsersResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetAll")
	defer scope.End()

	var res dto.GetUsersResponse

	res.FromModels(s.repo.GetAll(ctx))

	return res
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateUserRequest, id int) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	user, ok := s.repo.Update(ctx, id, store.Fields(req))
	if !ok {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}
