package model

const (
	EntityName = "user"

	FieldID       = "id"
	FieldUsername = "username"
	FieldPassword = "password"
	FieldRole     = "role"
	FieldName     = "name"
	FieldEmail    = "email"
)

// User is a staff account. The password is stored exactly as provided; this
// layer treats it as an opaque string and leaves hashing to the (out of
// scope) authentication layer.
type User struct {
	ID       int    `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
	Role     string `db:"role"`
	Name     string `db:"name"`
	Email    string `db:"email"`
}
