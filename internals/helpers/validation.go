package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorMap converts validator errors into the field→messages shape
// used by JsonValidationError.
func ValidationErrorMap(err error) map[string][]string {
	out := map[string][]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "email":
			msg = "must be a valid email address"
		case "min":
			msg = "must be at least " + fe.Param()
		case "max":
			msg = "must be at most " + fe.Param()
		case "gt":
			msg = "must be greater than " + fe.Param()
		case "gte":
			msg = "must be greater than or equal to " + fe.Param()
		case "oneof":
			msg = "must be one of: " + fe.Param()
		case "gtfield":
			msg = "must be after " + strings.ToLower(fe.Param())
		default:
			msg = "is invalid"
		}
		out[field] = append(out[field], msg)
	}
	return out
}
