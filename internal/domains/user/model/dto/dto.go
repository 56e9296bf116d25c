package dto

import (
	"lodge/internal/domains/user/model"
)

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=admin manager staff"`
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"omitempty,email,max=100"`
}

func (c *CreateUserRequest) ToModel() model.User {
	return model.User{
		Username: c.Username,
		Password: c.Password,
		Role:     c.Role,
		Name:     c.Name,
		Email:    c.Email,
	}
}

type UpdateUserRequest struct {
	Password string `db:"password" json:"password" validate:"omitempty,min=6"`
	Role     string `db:"role"     json:"role"     validate:"omitempty,oneof=admin manager staff"`
	Name     string `db:"name"     json:"name"     validate:"omitempty,max=100"`
	Email    string `db:"email"    json:"email"    validate:"omitempty,email,max=100"`
}

type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Username = model.Username
	r.Role = model.Role
	r.Name = model.Name
	r.Email = model.Email
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User) {
	r.TotalData = len(models)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
