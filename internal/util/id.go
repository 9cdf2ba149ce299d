package util

import "github.com/google/uuid"

// NewID returns an opaque globally unique identifier for plans and tasks.
func NewID() string {
	return uuid.NewString()
}
