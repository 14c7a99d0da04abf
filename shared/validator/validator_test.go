package validator_test

import (
	"testing"

	"tasklist/shared/failure"
	"tasklist/shared/validator"

	"github.com/stretchr/testify/assert"
)

type signupForm struct {
	Name     string `form:"name"     validate:"required,max=50"`
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required,min=8,max=128"`
}

func TestValidateStruct_Valid(t *testing.T) {
	form := signupForm{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "longenoughpassword",
	}

	assert.NoError(t, validator.ValidateStruct(&form))
}

func TestValidateStruct_FieldMessages(t *testing.T) {
	form := signupForm{
		Name:     "",
		Email:    "not-an-email",
		Password: "short",
	}

	err := validator.ValidateStruct(&form)
	assert.Error(t, err)

	fields := failure.FieldErrors(err)
	assert.Equal(t, "name is required", fields["name"])
	assert.Equal(t, "email must be a valid email address", fields["email"])
	assert.Equal(t, "password must be at least 8 characters", fields["password"])
}

func TestValidateStruct_UsesFormTagNames(t *testing.T) {
	form := signupForm{Name: "Alice", Email: "alice@example.com"}

	err := validator.ValidateStruct(&form)
	fields := failure.FieldErrors(err)

	assert.Contains(t, fields, "password")
	assert.NotContains(t, fields, "Password")
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("milk", "required,max=100"))

	err := validator.ValidateVar("", "required")
	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}
