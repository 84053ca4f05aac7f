package metadata

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOperator is returned when a filter key carries an unknown operator suffix.
	ErrInvalidOperator = errors.New("invalid operator")
	// ErrTypeMismatch is returned when an operator cannot be applied to the given kinds.
	ErrTypeMismatch = errors.New("type mismatch")
)

// OperatorError reports the operator token that could not be parsed.
//
// It unwraps to ErrInvalidOperator.
type OperatorError struct {
	Token string
}

func (e *OperatorError) Error() string {
	return fmt.Sprintf("unknown operator %q", e.Token)
}

func (e *OperatorError) Unwrap() error { return ErrInvalidOperator }

// TypeMismatchError reports an operator applied to incompatible kinds.
//
// It unwraps to ErrTypeMismatch.
type TypeMismatchError struct {
	Key      string
	Operator Operator
	Field    Kind
	Operand  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: cannot apply %s to %s field %q with %s operand",
		ErrTypeMismatch, e.Operator, e.Field, e.Key, e.Operand)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }
