package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	templates = map[string]string{
		"required": "{field} is required",
		"max":      "{field} must be at most {param} characters",
		"min":      "{field} must be at least {param} characters",
		"email":    "{field} must be a valid email address",
		"oneof":    "{field} must be one of {param}",
		"uuid4":    "{field} must be a valid identifier",
	}
)

func messages(err error) map[string]string {
	out := map[string]string{}

	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		out[""] = err.Error()

		return out
	}

	for _, valErr := range valErrors {
		field := valErr.Field()
		if _, seen := out[field]; seen {
			continue
		}

		tmpl := templates[valErr.Tag()]
		if tmpl == "" {
			out[field] = valErr.Error()

			continue
		}

		msg := strings.ReplaceAll(tmpl, "{field}", field)
		msg = strings.ReplaceAll(msg, "{param}", valErr.Param())
		out[field] = msg
	}

	return out
}
