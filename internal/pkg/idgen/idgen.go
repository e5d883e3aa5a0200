package idgen

import "github.com/google/uuid"

// Generator supplies globally unique identifiers.
type Generator interface {
	NewID() string
}

// UUID issues random version 4 UUIDs.
type UUID struct{}

// NewID returns canonical textual UUID.
func (UUID) NewID() string {
	return uuid.NewString()
}
