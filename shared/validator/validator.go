package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"poolhire/shared/failure"
	"reflect"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

const slotClock = "15:04"

var validate *val.Validate

// timeSlot accepts "HH:MM-HH:MM" where the slot ends after it starts.
func timeSlot(fl val.FieldLevel) bool {
	start, end, ok := strings.Cut(fl.Field().String(), "-")
	if !ok {
		return false
	}

	from, err := time.Parse(slotClock, strings.TrimSpace(start))
	if err != nil {
		return false
	}

	to, err := time.Parse(slotClock, strings.TrimSpace(end))
	if err != nil {
		return false
	}

	return to.After(from)
}

// currency accepts a three letter lower case ISO 4217 code as Stripe expects it.
func currency(fl val.FieldLevel) bool {
	code := fl.Field().String()
	if len(code) != 3 {
		return false
	}

	for _, r := range code {
		if r < 'a' || r > 'z' {
			return false
		}
	}

	return true
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)

	for tag, fn := range map[string]val.Func{
		"timeslot": timeSlot,
		"currency": currency,
	} {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate decodes a JSON body into data and validates the result.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
