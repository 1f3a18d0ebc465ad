// Package validate checks form structs against their `validate` tags.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Error reports a form that failed its field constraints.
type Error struct {
	Fields []string
	err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s", strings.Join(e.Fields, ", "))
}

func (e *Error) Unwrap() error { return e.err }

// Struct validates form, returning *Error with the failing field paths.
func Struct(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Namespace())
	}
	return &Error{Fields: fields, err: err}
}
