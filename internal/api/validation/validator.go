package validation

import (
	"github.com/blaisecz/fitbit-sleep/pkg/problem"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// AwakeWindowQuery holds the raw from/to parameters of an awake window request.
// Both are zone-less timestamps in the sleep log frame.
type AwakeWindowQuery struct {
	From string `validate:"required,datetime=2006-01-02T15:04:05"`
	To   string `validate:"required,datetime=2006-01-02T15:04:05"`
}

// DayRangeQuery holds the raw parameters of a day listing request.
type DayRangeQuery struct {
	From   string `validate:"required,datetime=2006-01-02"`
	To     string `validate:"required,datetime=2006-01-02"`
	Limit  int    `validate:"omitempty,min=1,max=31"`
	Cursor string `validate:"omitempty,base64url"`
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors []problem.FieldError
	for _, err := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   toSnakeCase(err.Field()),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	case "datetime":
		return "must match layout " + err.Param()
	case "base64url":
		return "must be a cursor from a previous response"
	default:
		return "is invalid"
	}
}

func toSnakeCase(s string) string {
	var result []byte
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				result = append(result, '_')
			}
			result = append(result, byte(c+'a'-'A'))
		} else {
			result = append(result, byte(c))
		}
	}
	return string(result)
}
