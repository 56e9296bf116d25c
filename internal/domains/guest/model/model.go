package model

import "time"

const (
	EntityName = "guest"

	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldIDNumber  = "id_number"
	FieldAddress   = "address"
	FieldCreatedAt = "created_at"
)

type Guest struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	IDNumber  string    `db:"id_number"`
	Address   string    `db:"address"`
	CreatedAt time.Time `db:"created_at"`
}
