// Package util provides utility functions for the cuisine program.
package util

import "github.com/google/uuid"

// NewSessionID returns a RFC4122 v4 UUID string identifying one program run.
func NewSessionID() string {
	return uuid.NewString()
}
