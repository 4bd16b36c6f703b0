// Package validation checks incoming athlete payloads with validator/v10 and
// reports every violated field constraint at once.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/prosport1/ProSport/internal/domain"
	perrors "github.com/prosport1/ProSport/pkg/errors"
)

type Validator struct {
	v *validator.Validate
}

func New() (*Validator, error) {
	v := validator.New()

	// Report field names as they appear on the wire
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		if i := strings.IndexByte(name, ','); i >= 0 {
			name = name[:i]
		}
		return name
	})

	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		return nil, err
	}

	return &Validator{v: v}, nil
}

// ValidateProfile returns a *perrors.ValidationError naming every violated field,
// or nil when the profile is well-formed.
func (v *Validator) ValidateProfile(p *domain.AthleteProfile) error {
	if err := v.v.Struct(p); err != nil {
		return v.formatError(err)
	}
	return nil
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func (v *Validator) formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := make(map[string]string, len(validationErrs))
	for _, e := range validationErrs {
		fields[e.Field()] = friendlyMessage(e)
	}

	return perrors.NewValidationError("invalid athlete profile", fields)
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "is invalid"
	}
}
