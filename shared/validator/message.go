package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"gt":       "{field} must be greater than {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"oneof":    "{field} must be one of {param}",
	"max":      "{field} must be at most {param}",
	"min":      "{field} must be at least {param}",
	"email":    "{field} must be a valid email address",
	"url":      "{field} must be a valid url",
	"uuid":     "{field} must be a valid uuid",
	"datetime": "{field} must match the layout {param}",
	"timeslot": "{field} must look like 10:00-12:00 and end after it starts",
	"currency": "{field} must be a three letter lower case currency code",
	"nefield":  "{field} must be different from the current value",
}

// message renders the first failed rule with a known template, falling back to the
// validator's own text.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, fieldErr := range valErrors {
		tmpl, ok := messages[fieldErr.Tag()]
		if !ok {
			continue
		}

		return strings.NewReplacer("{field}", fieldErr.Field(), "{param}", fieldErr.Param()).Replace(tmpl)
	}

	return valErrors.Error()
}
