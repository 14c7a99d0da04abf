package validator

import (
	"reflect"
	"strings"

	"tasklist/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// Report errors under the submitted form field name, not the Go field name.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})
}

// ValidateStruct validates a form-decoded struct. On failure it returns a
// failure.Validation carrying one message per offending field, keyed by the
// field's form tag, ready for re-rendering next to the inputs.
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)
	if err != nil {
		return failure.Invalid(messages(err)) //nolint:wrapcheck
	}

	return nil
}

// ValidateVar validates a single value against a tag expression.
func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)
	if err != nil {
		for _, msg := range messages(err) {
			return failure.BadRequestFromString(msg) //nolint:wrapcheck
		}

		return failure.BadRequest(err) //nolint:wrapcheck
	}

	return nil
}
