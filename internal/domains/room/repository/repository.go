package repository

import (
	"context"
	"fmt"

	"lodge/infras/otel"
	"lodge/internal/domains/room/model"
	"lodge/shared/constant"
	"lodge/shared/store"
)

type Room interface {
	Insert(ctx context.Context, room model.Room) model.Room
	Get(ctx context.Context, id int) (model.Room, bool)
	GetByNumber(ctx context.Context, number string) (model.Room, bool)
	GetAll(ctx context.Context) []model.Room
	Update(ctx context.Context, id int, patch map[string]any) (model.Room, bool)
	Exist(ctx context.Context, id int) bool
	Count(ctx context.Context, pred func(model.Room) bool) int
}

type repositoryImpl struct {
	table *store.Table[model.Room]
	otel  otel.Otel
}

func New(otl otel.Otel) Room {
	return &repositoryImpl{
		table: store.NewTable[model.Room](model.EntityName),
		otel:  otl,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, room model.Room) model.Room {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Insert(room)
}

func (repo *repositoryImpl) Get(ctx context.Context, id int) (model.Room, bool) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Get(id)
}

// GetByNumber scans the table for the first room with the given number.
// Room numbers are unique, uniqueness is enforced on create.
func (repo *repositoryImpl) GetByNumber(ctx context.Context, number string) (model.Room, bool) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetByNumber", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Find(func(room model.Room) bool {
		return room.Number == number
	})
}

func (repo *repositoryImpl) GetAll(ctx context.Context) []model.Room {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.List()
}

func (repo *repositoryImpl) Update(ctx context.Context, id int, patch map[string]any) (model.Room, bool) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Update(id, patch)
}

func (repo *repositoryImpl) Exist(ctx context.Context, id int) bool {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Exist(id)
}

func (repo *repositoryImpl) Count(ctx context.Context, pred func(model.Room) bool) int {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Count", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Count(pred)
}
