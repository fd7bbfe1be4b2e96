package apperr

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// spasi saja dianggap kosong
		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
	return validate
}

// Struct validates a form payload and converts the first failing field into a validation Error.
func Struct(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return Validation(err.Error())
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required", "notblank":
		return Validationf("%s is required", fe.Field())
	case "oneof":
		return Validationf("%s must be one of: %s", fe.Field(), fe.Param())
	case "email":
		return Validationf("%s must be a valid email", fe.Field())
	case "eqfield":
		return Validationf("%s must match %s", fe.Field(), fe.Param())
	default:
		return Validation(fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
}
