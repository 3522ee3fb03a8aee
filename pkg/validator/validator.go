package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"anoa.com/portfoliocms/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterJSONTagNames makes gin's validator report fields by their json (or
// form) names so details match what the client sent.
func RegisterJSONTagNames() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		UseTagNames(v)
	}
}

func UseTagNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
}

// FormatValidationErrors turns field errors into caller-facing detail strings.
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, getFieldErrorMessage(fieldError))
		}
		return messages
	}
	return []string{err.Error()}
}

// FormatValidationError is the single-line form of FormatValidationErrors.
func FormatValidationError(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

// Normalizer is implemented by requests that clean their own fields, such as
// trimming whitespace, before the binding rules run.
type Normalizer interface {
	Normalize()
}

// Validate normalizes req when it implements Normalizer and then applies its
// binding tags, so length rules see the cleaned values. req must be a pointer.
func Validate(req any) error {
	if n, ok := req.(Normalizer); ok {
		n.Normalize()
	}
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return BindingError(err)
	}
	return nil
}

// BindJSON decodes the request body into req and runs Validate on it.
func BindJSON(c *gin.Context, req any) error {
	if c.Request.Body == nil {
		return apperror.Validation("request body is required")
	}
	if err := json.NewDecoder(c.Request.Body).Decode(req); err != nil {
		return BindingError(err)
	}
	return Validate(req)
}

// BindingError converts a gin bind failure into a Validation error.
func BindingError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return apperror.Validation("validation failed", FormatValidationErrors(err)...)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return apperror.Validation("request body is required")
	case errors.As(err, &syntaxErr):
		return apperror.Validation("malformed JSON body")
	case errors.As(err, &typeErr):
		return apperror.Validation("invalid request body", fmt.Sprintf("%s has the wrong type", typeErr.Field))
	}

	return apperror.Validation("invalid request", err.Error())
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := getFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "uuid", "uuid4", "uuid7":
		return fmt.Sprintf("%s must be a valid id", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		if fe.Kind().String() == "slice" {
			return fmt.Sprintf("%s must contain at least %s items", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		if fe.Kind().String() == "slice" {
			return fmt.Sprintf("%s must contain at most %s items", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func getFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// CheckDateRange rejects an end date that falls before the start date.
func CheckDateRange(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return apperror.Validation("validation failed", "endDate must not be before startDate")
	}
	return nil
}
