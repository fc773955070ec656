package content

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one invalid field of a document.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError lists every invalid field of a document.
type ValidationError struct {
	Kind   Kind
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	messages := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		messages[i] = f.Message
	}

	return fmt.Sprintf("invalid %s: %s", e.Kind, strings.Join(messages, "; "))
}

var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		if name == "-" {
			return ""
		}

		return name
	})

	return v
})

// Validate checks the struct tags of item and returns a *ValidationError on failure.
func Validate(item Item) error {
	err := validate().Struct(item)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return err
	}

	fields := make([]FieldError, 0, len(invalid))
	for _, fe := range invalid {
		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", fe.Field())
		case "max":
			message = fmt.Sprintf("%s must not exceed %s characters", fe.Field(), fe.Param())
		case "eq":
			message = fmt.Sprintf("%s must be %s", fe.Field(), fe.Param())
		default:
			message = fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
		}

		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Code:    strings.ToUpper(fe.Tag()),
			Message: message,
		})
	}

	return &ValidationError{Kind: item.Kind(), Fields: fields}
}
