package calorie

import (
	"errors"
	"sort"
	"strings"
)

// ErrInvalidInput is the only failure kind of a calculation: a required field
// is missing or a numeric field is out of range.
var ErrInvalidInput = errors.New("invalid input")

// FieldError reports a single offending field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap makes errors.Is(err, ErrInvalidInput) hold for every field error.
func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}

// ValidationErrors aggregates the field errors found in one input.
type ValidationErrors []*FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Error())
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap exposes the individual field errors to errors.Is / errors.As.
func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, len(v))
	for i, fe := range v {
		errs[i] = fe
	}
	return errs
}

// Fields returns field name -> message. The first message per field wins.
func (v ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(v))
	for _, fe := range v {
		if _, ok := out[fe.Field]; !ok {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

// FieldNames returns the offending field names in sorted order.
func (v ValidationErrors) FieldNames() []string {
	names := make([]string, 0, len(v))
	for name := range v.Fields() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AsValidation extracts ValidationErrors from err. A lone FieldError is
// returned as a one-element slice.
func AsValidation(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		return ValidationErrors{fe}, true
	}
	return nil, false
}
