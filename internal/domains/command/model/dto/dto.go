package dto

import (
	"lodge/internal/domains/command/model"
	"lodge/shared/constant"
)

type RecordCommandRequest struct {
	From string `json:"from" validate:"required,max=20"`
	Body string `json:"body" validate:"required,max=500"`
}

type UpdateCommandRequest struct {
	Status string `db:"status" json:"status" validate:"omitempty,oneof=pending processed failed"`
	Error  string `db:"error"  json:"error"  validate:"omitempty,max=500"`
}

type CommandResponse struct {
	ID        int     `json:"id"`
	From      string  `json:"from"`
	Body      string  `json:"body"`
	Intent    string  `json:"intent"`
	Status    string  `json:"status"`
	Error     *string `json:"error"`
	CreatedAt string  `json:"created_at"`
}

func (r *CommandResponse) FromModel(model model.Command) {
	r.ID = model.ID
	r.From = model.From
	r.Body = model.Body
	r.Intent = model.Intent
	r.Status = model.Status
	r.Error = model.Error
	r.CreatedAt = model.CreatedAt.Format(constant.TimestampFormat)
}

type GetCommandsResponse struct {
	Commands  []CommandResponse `json:"commands"`
	TotalData int               `json:"total_data"`
}

func (r *GetCommandsResponse) FromModels(models []model.Command) {
	r.TotalData = len(models)

	r.Commands = make([]CommandResponse, len(models))
	for i, mod := range models {
		r.Commands[i].FromModel(mod)
	}
}
