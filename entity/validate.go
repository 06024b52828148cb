package entity

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields under their wire names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// HH:MM wall-clock times in schedule slots
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("15:04", fl.Field().String())
		return err == nil
	})

	return v
}

// Validate runs the struct constraints of an entity or request payload
// and flattens the first violation into a human-readable message.
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}
	return errors.New(fieldMessage(errs[0]))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Missing required field: %s", field)
	case "contains":
		if fe.Param() == "@" {
			return "Invalid email format"
		}
	case "oneof":
		return fmt.Sprintf("Invalid value for %s: must be one of %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("Value of %s is below the minimum of %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("Value of %s exceeds the maximum of %s", field, fe.Param())
	case "hhmm":
		return "Time must be in HH:MM format"
	}
	return fmt.Sprintf("Invalid value for %s", field)
}
