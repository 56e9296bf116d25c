package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/guest/model"
	"lodge/internal/domains/guest/model/dto"
	"lodge/internal/domains/guest/repository"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/store"
	"lodge/shared/validator"
)

type Guest interface {
	Create(ctx context.Context, req dto.CreateGuestRequest) (dto.GuestResponse, error)
	Get(ctx context.Context, id int) (dto.GuestResponse, error)
	GetAll(ctx context.Context) dto.GetGuestsResponse
	Update(ctx context.Context, req dto.UpdateGuestRequest, id int) (dto.GuestResponse, error)
}

type serviceImpl struct {
	repo repository.Guest
	otel otel.Otel
}

func New(repo repository.Guest, otl otel.Otel) Guest {
	return &serviceImpl{
		repo: repo,
		otel: otl,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	guest := s.repo.Insert(ctx, req.ToModel())

	log.Info().Int("guest_id", guest.ID).Str("name", guest.Name).Msg("guest registered")

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Get")
	defer scope.End()

	guest, ok := s.repo.Get(ctx, id)
	if !ok {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) dto.GetGuestsResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.GetAll")
	defer scope.End()

	var res dto.GetGuestsResponse

	res.FromModels(s.repo.GetAll(ctx))

	return res
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, id int) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	guest, ok := s.repo.Update(ctx, id, store.Fields(req))
	if !ok {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(guest)

	return res, nil
}
