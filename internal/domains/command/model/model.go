package model

import "time"

const (
	EntityName = "whatsapp_command"

	FieldID        = "id"
	FieldFrom      = "from"
	FieldBody      = "body"
	FieldIntent    = "intent"
	FieldStatus    = "status"
	FieldError     = "error"
	FieldCreatedAt = "created_at"
)

const (
	StatusPending   = "pending"
	StatusProcessed = "processed"
	StatusFailed    = "failed"
)

// Command is one received WhatsApp message. The storage layer records what
// was said and how parsing went; executing the command is the dispatcher's
// job and reflected back here only through status updates.
type Command struct {
	ID        int       `db:"id"`
	From      string    `db:"from"`
	Body      string    `db:"body"`
	Intent    string    `db:"intent"`
	Status    string    `db:"status"`
	Error     *string   `db:"error"`
	CreatedAt time.Time `db:"created_at"`
}
