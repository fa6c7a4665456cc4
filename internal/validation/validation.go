package validation

import (
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New()

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// BindForm decodes a form (or JSON) submission into dst. Field rules are not
// expressed as binding tags; they are applied afterwards by the Validate*
// functions so that the first failing rule can be reported on its own.
func BindForm(c *gin.Context, dst any) *ValidationError {
	err := c.ShouldBind(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := toFieldName(fe.Field())
		return &ValidationError{Field: field, Message: buildMessage(field, fe)}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &ValidationError{Field: typeErr.Field, Message: typeErr.Field + " has an invalid type"}
	}

	return &ValidationError{Message: "invalid form submission"}
}

// FieldErrors lists the failure in the shape the JSON views expose.
func FieldErrors(err *ValidationError) []FieldError {
	return []FieldError{
		{
			Field:   err.Field,
			Rule:    "invalid",
			Message: err.Message,
		},
	}
}

func toFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func buildMessage(field string, fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return field + " is required"
	}

	return field + " is invalid (" + fe.Tag() + ")"
}
