package repository

import (
	"context"
	"fmt"

	"lodge/infras/otel"
	"lodge/internal/domains/booking/model"
	"lodge/shared/constant"
	"lodge/shared/store"
)

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) model.Booking
	Get(ctx context.Context, id int) (model.Booking, bool)
	GetAll(ctx context.Context) []model.Booking
	GetByRoom(ctx context.Context, roomID int) []model.Booking
	Select(ctx context.Context, pred func(model.Booking) bool) []model.Booking
	Update(ctx context.Context, id int, patch map[string]any) (model.Booking, bool)
	Exist(ctx context.Context, id int) bool
}

type repositoryImpl struct {
	table *store.Table[model.Booking]
	otel  otel.Otel
}

func New(otl otel.Otel) Booking {
	return &repositoryImpl{
		table: store.NewTable[model.Booking](model.EntityName),
		otel:  otl,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, booking model.Booking) model.Booking {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Insert(booking)
}

func (repo *repositoryImpl) Get(ctx context.Context, id int) (model.Booking, bool) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Get(id)
}

func (repo *repositoryImpl) GetAll(ctx context.Context) []model.Booking {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.List()
}

func (repo *repositoryImpl) GetByRoom(ctx context.Context, roomID int) []model.Booking {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetByRoom", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Select(func(booking model.Booking) bool {
		return booking.RoomID == roomID
	})
}

func (repo *repositoryImpl) Select(ctx context.Context, pred func(model.Booking) bool) []model.Booking {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Select", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Select(pred)
}

func (repo *repositoryImpl) Update(ctx context.Context, id int, patch map[string]any) (model.Booking, bool) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Update(id, patch)
}

func (repo *repositoryImpl) Exist(ctx context.Context, id int) bool {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Exist(id)
}
