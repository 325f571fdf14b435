// Package validator wraps go-playground/validator with the rules the bridge
// configuration needs and a uniform error format.
//
// Besides the stock tags it registers:
//
//	gosh_addr  a GOSH account address, "<workchain>:<64 hex digits>"
//
// Field names in errors come from the envconfig tag when one is present.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of the chain returned by Validate.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

var goshAddress = regexp.MustCompile(`^-?[0-9]+:[0-9a-fA-F]{64}$`)

const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	validator.RegisterTagNameFunc(fieldName)

	if err := validator.RegisterValidation("gosh_addr", isGoshAddress); err != nil {
		panic(err)
	}
}

func fieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("envconfig"), ",")
	if name == "" || name == "-" {
		return f.Name
	}

	return name
}

func isGoshAddress(fl gvalidator.FieldLevel) bool {
	return goshAddress.MatchString(fl.Field().String())
}

// IsGoshAddress reports whether s is a GOSH account address.
func IsGoshAddress(s string) bool {
	return goshAddress.MatchString(s)
}

func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Namespace(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its validate tags. Failures are reported as
// ErrValidationFailed joined with one error per field.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
