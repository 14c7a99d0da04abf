package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"tasklist/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "not found failure",
			err:      failure.NotFound("todo not found"),
			expected: http.StatusNotFound,
		},
		{
			name:     "bad request failure",
			err:      failure.BadRequestFromString("title is required"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "unauthorized failure",
			err:      failure.Unauthorized("no session"),
			expected: http.StatusUnauthorized,
		},
		{
			name:     "conflict failure",
			err:      failure.Conflict("email already registered"),
			expected: http.StatusConflict,
		},
		{
			name:     "validation failure",
			err:      failure.InvalidField("title", "title is required"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "plain error defaults to internal",
			err:      errors.New("connection refused"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "wrapped failure keeps its code",
			err:      fmt.Errorf("toggling todo: %w", failure.NotFound("todo not found")),
			expected: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.err))
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, failure.IsNotFound(failure.NotFound("todo not found")))
	assert.True(t, failure.IsNotFound(fmt.Errorf("wrapped: %w", failure.NotFound("todo not found"))))
	assert.False(t, failure.IsNotFound(failure.BadRequestFromString("nope")))
	assert.False(t, failure.IsNotFound(errors.New("boom")))
}

func TestFieldErrors(t *testing.T) {
	err := failure.Invalid(map[string]string{
		"email":    "email must be a valid email address",
		"password": "password is required",
	})

	fields := failure.FieldErrors(err)
	assert.Len(t, fields, 2)
	assert.Equal(t, "password is required", fields["password"])

	assert.Nil(t, failure.FieldErrors(errors.New("not a validation error")))
	assert.Nil(t, failure.FieldErrors(failure.NotFound("todo not found")))
}
