package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/command/model"
	"lodge/internal/domains/command/model/dto"
	"lodge/internal/domains/command/parser"
	"lodge/internal/domains/command/repository"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/store"
	"lodge/shared/timezone"
	"lodge/shared/validator"
)

type Command interface {
	Record(ctx context.Context, req dto.RecordCommandRequest) (dto.CommandResponse, error)
	Get(ctx context.Context, id int) (dto.CommandResponse, error)
	GetAll(ctx context.Context) dto.GetCommandsResponse
	Update(ctx context.Context, req dto.UpdateCommandRequest, id int) (dto.CommandResponse, error)
}

type serviceImpl struct {
	repo repository.Command
	otel otel.Otel
}

func New(repo repository.Command, otl otel.Otel) Command {
	return &serviceImpl{
		repo: repo,
		otel: otl,
	}
}

// Record parses the message and stores it with the detected intent. An
// unrecognized message is still recorded, marked failed with the parse error,
// so the command log stays a complete audit trail.
func (s *serviceImpl) Record(ctx context.Context, req dto.RecordCommandRequest) (res dto.CommandResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".command.Record")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	command := model.Command{
		From:      req.From,
		Body:      req.Body,
		Status:    model.StatusPending,
		CreatedAt: timezone.Now(),
	}

	parsed, parseErr := parser.Parse(req.Body)
	command.Intent = parsed.Intent

	if parseErr != nil {
		message := parseErr.Error()
		command.Status = model.StatusFailed
		command.Error = &message
	}

	command = s.repo.Insert(ctx, command)

	log.Info().
		Int("command_id", command.ID).
		Str("intent", command.Intent).
		Str("status", command.Status).
		Msg("whatsapp command recorded")

	res.FromModel(command)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.CommandResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".command.Get")
	defer scope.End()

	command, ok := s.repo.Get(ctx, id)
	if !ok {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(command)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) dto.GetCommandsResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".command.GetAll")
	defer scope.End()

	var res dto.GetCommandsResponse

	res.FromModels(s.repo.GetAll(ctx))

	return res
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCommandRequest, id int) (res dto.CommandResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".command.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	command, ok := s.repo.Update(ctx, id, store.Fields(req))
	if !ok {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(command)

	return res, nil
}
