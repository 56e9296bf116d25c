package repository

import (
	"context"
	"fmt"

	"lodge/infras/otel"
	"lodge/internal/domains/command/model"
	"lodge/shared/constant"
	"lodge/shared/store"
)

type Command interface {
	Insert(ctx context.Context, command model.Command) model.Command
	Get(ctx context.Context, id int) (model.Command, bool)
	GetAll(ctx context.Context) []model.Command
	Update(ctx context.Context, id int, patch map[string]any) (model.Command, bool)
}

type repositoryImpl struct {
	table *store.Table[model.Command]
	otel  otel.Otel
}

func New(otl otel.Otel) Command {
	return &repositoryImpl{
		table: store.NewTable[model.Command](model.EntityName),
		otel:  otl,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, command model.Command) model.Command {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Insert(command)
}

func (repo *repositoryImpl) Get(ctx context.Context, id int) (model.Command, bool) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Get(id)
}

func (repo *repositoryImpl) GetAll(ctx context.Context) []model.Command {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.List()
}

func (repo *repositoryImpl) Update(ctx context.Context, id int, patch map[string]any) (model.Command, bool) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Update(id, patch)
}
