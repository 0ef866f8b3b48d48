package wp

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}

			return name
		})
	})

	return validate
}

// validateStruct runs the struct's validate tags and converts the first
// failure to a Validation error.
func validateStruct(v any) error {
	err := structValidator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &Error{Kind: KindValidation, Message: err.Error(), Err: err}
	}

	fe := fieldErrs[0]

	switch fe.Tag() {
	case "required":
		return &Error{Kind: KindValidation, Message: fmt.Sprintf("%s is required", fe.Field()), Err: err}
	case "oneof":
		return &Error{Kind: KindValidation, Message: fmt.Sprintf("Invalid %s: %v", fe.Field(), indirect(fe.Value())), Err: err}
	default:
		return &Error{Kind: KindValidation, Message: fmt.Sprintf("Invalid %s", fe.Field()), Err: err}
	}
}

func indirect(v any) any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}

		rv = rv.Elem()
	}

	if !rv.IsValid() {
		return nil
	}

	return rv.Interface()
}

// IsValidStatus reports whether status is one of ValidStatuses.
func IsValidStatus(status string) bool {
	for _, valid := range ValidStatuses {
		if status == valid {
			return true
		}
	}

	return false
}
