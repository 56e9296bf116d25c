package repository

import (
	"context"
	"fmt"

	"lodge/infras/otel"
	"lodge/internal/domains/user/model"
	"lodge/shared/constant"
	"lodge/shared/store"
)

type User interface {
	Insert(ctx context.Context, user model.User) model.User
	Get(ctx context.Context, id int) (model.User, bool)
	GetByUsername(ctx context.Context, username string) (model.User, bool)
	GetAll(ctx context.Context) []model.User
	Update(ctx context.Context, id int, patch map[string]any) (model.User, bool)
	Exist(ctx context.Context, id int) bool
}

type repositoryImpl struct {
	table *store.Table[model.User]
	otel  otel.Otel
}

func New(otl otel.Otel) User {
	return &repositoryImpl{
		table: store.NewTable[model.User](model.EntityName),
		otel:  otl,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, user model.User) model.User {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Insert(user)
}

func (repo *repositoryImpl) Get(ctx context.Context, id int) (model.User, bool) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Get(id)
}

// GetByUsername scans the table for the first user with the given username.
func (repo *repositoryImpl) GetByUsername(ctx context.Context, username string) (model.User, bool) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetByUsername", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Find(func(user model.User) bool {
		return user.Username == username
	})
}

func (repo *repositoryImpl) GetAll(ctx context.Context) []model.User {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.List()
}

func (repo *repositoryImpl) Update(ctx context.Context, id int, patch map[string]any) (model.User, bool) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Update(id, patch)
}

func (repo *repositoryImpl) Exist(ctx context.Context, id int) bool {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.table.Exist(id)
}
