package validator

import (
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"lodge/shared/failure"
	"lodge/shared/money"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	err := validate.RegisterValidation("amount", func(fl val.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		return money.IsAmount(value)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to register amount validation")
	}
}

// ValidateStruct validates data against its struct tags and converts any
// violation into a bad-request failure.
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)
	if err != nil {
		return failure.BadRequestFromString(message(err))
	}

	return nil
}

// ValidateVar validates a single value against a tag expression.
func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)
	if err != nil {
		return failure.BadRequestFromString(message(err))
	}

	return nil
}
