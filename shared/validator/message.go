package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":   "{field} is required",
	"gt":         "{field} must be greater than {param}",
	"gte":        "{field} must be greater than or equal to {param}",
	"lte":        "{field} must be less than or equal to {param}",
	"oneof":      "{field} must be one of {param}",
	"max":        "{field} must be at most {param}",
	"min":        "{field} must be at least {param}",
	"email":      "{field} must be a valid email address",
	"traveldate": "{field} must be a date formatted as YYYY-MM-DD",
}

// message renders every failed rule, one clause per field, in struct order.
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	clauses := make([]string, 0, len(fieldErrors))

	for _, fieldErr := range fieldErrors {
		template, ok := messages[fieldErr.Tag()]
		if !ok {
			clauses = append(clauses, fieldErr.Field()+" failed "+fieldErr.Tag())

			continue
		}

		clauses = append(clauses, strings.NewReplacer("{field}", fieldErr.Field(), "{param}", fieldErr.Param()).Replace(template))
	}

	return strings.Join(clauses, "; ")
}
