package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// Validation carries field-level messages for re-rendering a submitted form.
type Validation struct {
	Fields map[string]string
}

func (e *Validation) Error() string {
	for _, msg := range e.Fields {
		return msg
	}

	return "validation failed"
}

// Invalid returns a Validation failure for the given field messages.
func Invalid(fields map[string]string) error {
	return &Validation{Fields: fields}
}

// InvalidField returns a Validation failure for a single field.
func InvalidField(field, msg string) error {
	return &Validation{Fields: map[string]string{field: msg}}
}

// FieldErrors extracts field messages from an error, or nil if it carries none.
func FieldErrors(err error) map[string]string {
	var val *Validation
	if errors.As(err, &val) {
		return val.Fields
	}

	return nil
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthenticated requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// IsNotFound reports whether the error is a not-found Failure.
func IsNotFound(err error) bool {
	return GetCode(err) == http.StatusNotFound
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	var val *Validation
	if errors.As(err, &val) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
