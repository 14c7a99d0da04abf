package dto_test

import (
	"net/url"
	"testing"

	"tasklist/internal/domains/auth/model/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupRequestFromForm(t *testing.T) {
	t.Parallel()

	form := url.Values{}
	form.Set("name", "  Ada Lovelace ")
	form.Set("email", " Ada@Example.COM ")
	form.Set("password", " secret password ")

	var req dto.SignupRequest
	req.FromForm(form)

	assert.Equal(t, "Ada Lovelace", req.Name)
	assert.Equal(t, "ada@example.com", req.Email)
	// Passwords keep their whitespace; it may be intentional.
	assert.Equal(t, " secret password ", req.Password)
}

func TestSignupRequestToModel(t *testing.T) {
	t.Parallel()

	req := dto.SignupRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "correct horse battery",
	}

	user := req.ToModel("$2a$10$fakehash")

	assert.Equal(t, req.Name, user.Name)
	assert.Equal(t, req.Email, user.Email)
	assert.Equal(t, "$2a$10$fakehash", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)

	_, err := uuid.Parse(user.ID)
	require.NoError(t, err)
}

func TestLoginRequestFromForm(t *testing.T) {
	t.Parallel()

	form := url.Values{}
	form.Set("email", " Ada@Example.COM")
	form.Set("password", "secret")

	var req dto.LoginRequest
	req.FromForm(form)

	assert.Equal(t, "ada@example.com", req.Email)
	assert.Equal(t, "secret", req.Password)
}
