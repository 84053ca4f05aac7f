package cinema

import (
	"errors"
	"fmt"

	"github.com/hupe1980/cinema/metadata"
)

var (
	// ErrNotFound is returned when no movie has the requested title.
	ErrNotFound = errors.New("movie not found")
	// ErrInvalidField is returned when a filter names a field movies do not have.
	ErrInvalidField = errors.New("invalid field")
	// ErrInvalidOperator is returned when a filter key carries an unknown operator.
	ErrInvalidOperator = metadata.ErrInvalidOperator
	// ErrTypeMismatch is returned when a filter operand cannot be compared with its field.
	ErrTypeMismatch = metadata.ErrTypeMismatch
)

// NotFoundError reports the title that could not be resolved.
//
// It unwraps to ErrNotFound.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrNotFound, e.Title)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// FieldError reports an unknown field name.
//
// It unwraps to ErrInvalidField.
type FieldError struct {
	Name string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: movie has no field %q", ErrInvalidField, e.Name)
}

func (e *FieldError) Unwrap() error { return ErrInvalidField }
