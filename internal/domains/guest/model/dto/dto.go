package dto

import (
	"lodge/internal/domains/guest/model"
	"lodge/shared/constant"
	"lodge/shared/timezone"
)

type CreateGuestRequest struct {
	Name     string `json:"name"      validate:"required,max=100"`
	Email    string `json:"email"     validate:"omitempty,email,max=100"`
	Phone    string `json:"phone"     validate:"required,max=20"`
	IDNumber string `json:"id_number" validate:"required,max=50"`
	Address  string `json:"address"   validate:"omitempty,max=200"`
}

func (c *CreateGuestRequest) ToModel() model.Guest {
	return model.Guest{
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		IDNumber:  c.IDNumber,
		Address:   c.Address,
		CreatedAt: timezone.Now(),
	}
}

type UpdateGuestRequest struct {
	Name     string `db:"name"      json:"name"      validate:"omitempty,max=100"`
	Email    string `db:"email"     json:"email"     validate:"omitempty,email,max=100"`
	Phone    string `db:"phone"     json:"phone"     validate:"omitempty,max=20"`
	IDNumber string `db:"id_number" json:"id_number" validate:"omitempty,max=50"`
	Address  string `db:"address"   json:"address"   validate:"omitempty,max=200"`
}

type GuestResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IDNumber  string `json:"id_number"`
	Address   string `json:"address"`
	CreatedAt string `json:"created_at"`
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.IDNumber = model.IDNumber
	r.Address = model.Address
	r.CreatedAt = model.CreatedAt.Format(constant.TimestampFormat)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest) {
	r.TotalData = len(models)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
