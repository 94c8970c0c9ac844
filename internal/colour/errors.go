package colour

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is to test a returned error against them.
var (
	// ErrInvalidInput reports a missing argument or one of the wrong shape.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidColorModel reports a colour record whose fields are outside the model's domain.
	ErrInvalidColorModel = errors.New("invalid color model")
	// ErrInvalidCSSString reports text that matches no known colour grammar.
	ErrInvalidCSSString = errors.New("invalid CSS string")
	// ErrRange reports a numeric option outside its documented bound.
	ErrRange = errors.New("value out of range")
)

// ColorError carries the details of a failed operation.
type ColorError struct {
	Kind    error
	Model   Model
	Field   string
	Input   string
	Message string
}

// Error implements the error interface.
func (e *ColorError) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the error kind.
func (e *ColorError) Unwrap() error {
	return e.Kind
}

func newError(kind error, msg string) *ColorError {
	return &ColorError{Kind: kind, Message: msg}
}

func modelError(m Model, field string, value, lo, hi float64) *ColorError {
	return &ColorError{
		Kind:    ErrInvalidColorModel,
		Model:   m,
		Field:   field,
		Message: fmt.Sprintf("%s.%s = %g is outside [%g, %g]", m, field, value, lo, hi),
	}
}

func cssError(text string) *ColorError {
	return &ColorError{
		Kind:    ErrInvalidCSSString,
		Input:   text,
		Message: fmt.Sprintf("%q is not a hex, named or functional colour", text),
	}
}

func rangeError(field string, value float64, bound string) *ColorError {
	return &ColorError{
		Kind:    ErrRange,
		Field:   field,
		Message: fmt.Sprintf("%s = %g, must be %s", field, value, bound),
	}
}

func precisionError(precision int) *ColorError {
	return rangeError("precision", float64(precision), fmt.Sprintf("at most %d", MaxPrecision))
}
