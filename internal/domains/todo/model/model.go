package model

import "time"

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldTitle     = "title"
	FieldCompleted = "completed"
	FieldCreatedAt = "created_at"
)

type Todo struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Title     string    `db:"title"`
	Completed bool      `db:"completed"`
	CreatedAt time.Time `db:"created_at"`
}
