// Package domain defines error types for the cuisine program.
package domain

import (
	"errors"
	"fmt"
)

// UnknownFamilyError is returned when a family name or tag matches no family
type UnknownFamilyError struct {
	Name string
}

// Error implements the error interface for UnknownFamilyError
func (e *UnknownFamilyError) Error() string {
	return fmt.Sprintf("unknown family: name=%q", e.Name)
}

// Is allows proper error type checking with errors.Is()
func (e *UnknownFamilyError) Is(target error) bool {
	_, ok := target.(*UnknownFamilyError)
	return ok
}

// NewUnknownFamilyError creates a new UnknownFamilyError
func NewUnknownFamilyError(name string) error {
	return &UnknownFamilyError{Name: name}
}

// IsUnknownFamilyError checks if an error is an UnknownFamilyError
func IsUnknownFamilyError(err error) bool {
	var ufe *UnknownFamilyError
	return errors.As(err, &ufe)
}
