// internal/app/system/inputval/inputval.go
//
// Package inputval validates form structs with go-playground/validator and
// turns failures into per-field messages keyed by the form field name.
//
// Fields carry three tags:
//
//	form:"name"                 the key used in FieldErrors and in the HTML form
//	label:"Full Name"           the human name used in messages
//	validate:"required,min=2"   validator rules
package inputval

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/dalemusser/hrmslite/internal/domain/models"
	"github.com/go-playground/validator/v10"
)

// emailRE is deliberately loose: something@something.something, no spaces.
var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s has the shape local@domain.tld.
func IsValidEmail(s string) bool {
	return emailRE.MatchString(s)
}

// IsValidDate reports whether s is a YYYY-MM-DD calendar date.
func IsValidDate(s string) bool {
	if len(s) != len(models.DateLayout) {
		return false
	}
	_, err := models.ParseDate(s)
	return err == nil
}

var (
	once     sync.Once
	validate *validator.Validate
)

func v() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validate.RegisterValidation("simpleemail", func(fl validator.FieldLevel) bool {
			return IsValidEmail(fl.Field().String())
		})
		_ = validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			return IsValidDate(fl.Field().String())
		})
		_ = validate.RegisterValidation("attstatus", func(fl validator.FieldLevel) bool {
			return models.AttendanceStatus(fl.Field().String()).Valid()
		})
	})
	return validate
}

// FieldErrors maps form field name to the first message for that field.
type FieldErrors map[string]string

// Has reports whether field failed validation.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Get returns the message for field, or "".
func (fe FieldErrors) Get(field string) string { return fe[field] }

// Add records msg for field unless the field already has one.
func (fe FieldErrors) Add(field, msg string) {
	if _, ok := fe[field]; !ok {
		fe[field] = msg
	}
}

// Any reports whether there are errors.
func (fe FieldErrors) Any() bool { return len(fe) > 0 }

// Struct validates s (a struct or pointer to struct) and returns the
// per-field messages. A nil map means s is valid.
func Struct(s any) FieldErrors {
	err := v().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"": err.Error()}
	}

	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	out := FieldErrors{}
	for _, fe := range verrs {
		label := fe.Field()
		if sf, ok := t.FieldByName(fe.StructField()); ok {
			if l := sf.Tag.Get("label"); l != "" {
				label = l
			}
		}
		out.Add(fe.Field(), message(label, fe))
	}
	return out
}

func message(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "simpleemail", "email":
		return "Please enter a valid email address"
	case "isodate":
		return label + " must be a date in YYYY-MM-DD format"
	case "attstatus", "oneof":
		return label + " must be Present or Absent"
	}
	return label + " is invalid"
}
