package repository

import (
	"context"
	"fmt"

	"lodge/infras/otel"
	"lodge/internal/domains/guest/model"
	"lodge/shared/constant"
	"lodge/shared/store"
)

type Guest interface {
	Insert(ctx context.Context, guest model.Guest) model.Guest
	Get(ctx context.Context, id int) (model.Guest, bool)
	GetAll(ctx context.Context) []model.Guest
	Update(ctx context.Context, id int, patch map[string]any) (model.Guest, bool)
	Exist(ctx context.Context, id int) bool
}

type repositoryImpl struct {
	table *store.Table[model.Guest]
	otel  otel.Otel
}

func New(otl otel.Otel) Guest {
	return &repositoryImpl{
		table: store.NewTable[model.Guest](model.EntityName),
		otel:  otl,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, guest model.Guest) model.Guest {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Insert(guest)
}

func (repo *repositoryImpl) Get(ctx context.Context, id int) (model.Guest, bool) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Get(id)
}

func (repo *repositoryImpl) GetAll(ctx context.Context) []model.Guest {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.List()
}

func (repo *repositoryImpl) Update(ctx context.Context, id int, patch map[string]any) (model.Guest, bool) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Update(id, patch)
}

func (repo *repositoryImpl) Exist(ctx context.Context, id int) bool {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Exist(id)
}
