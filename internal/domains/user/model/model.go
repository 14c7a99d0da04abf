package model

import (
	"tasklist/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID    = "id"
	FieldEmail = "email"
)

type User struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	model.Metadata
}
