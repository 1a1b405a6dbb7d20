// Package validation runs struct-tag validation on service inputs and
// renders the first failure as a human message.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"

	"github.com/go-playground/validator/v10"
)

var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

var (
	once     sync.Once
	instance *validator.Validate
)

// Engine returns the shared validator with the custom rules registered.
func Engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		mustRegister(v, "hexcolor36", func(fl validator.FieldLevel) bool {
			return hexColorRegex.MatchString(fl.Field().String())
		})
		mustRegister(v, "entrytype", func(fl validator.FieldLevel) bool {
			return models.EntryType(fl.Field().String()).Valid()
		})
		mustRegister(v, "sharerole", func(fl validator.FieldLevel) bool {
			return models.Role(fl.Field().String()).Grantable()
		})
		mustRegister(v, "positivemoney", func(fl validator.FieldLevel) bool {
			return fl.Field().Int() > 0
		})
		mustRegister(v, "maxmoney", func(fl validator.FieldLevel) bool {
			return fl.Field().Int() <= int64(models.MaxMoney)
		})
		instance = v
	})
	return instance
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %s: %v", tag, err))
	}
}

// Struct validates s and returns a ValidationError describing the first failure.
func Struct(s interface{}) error {
	err := Engine().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if apperrors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.Validation(Message(verrs[0]))
	}
	return apperrors.Validation(err.Error())
}

// Message renders one field error.
func Message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Invalid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("%s must contain at most %s items", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "hexcolor36":
		return "Invalid hex color format"
	case "entrytype":
		return "type must be add or subtract"
	case "sharerole":
		return "role must be viewer or partner"
	case "positivemoney":
		return "Amount must be greater than 0"
	case "maxmoney":
		return fmt.Sprintf("Amount must be at most %s", models.MaxMoney)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "unique":
		return fmt.Sprintf("%s must not contain duplicates", field)
	case "uuid", "uuid4":
		return fmt.Sprintf("%s must be a valid id", field)
	}
	return fmt.Sprintf("%s is invalid", field)
}

// HexColor reports whether s is a #RGB or #RRGGBB color.
func HexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}
