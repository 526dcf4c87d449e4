// Package uuid wraps github.com/google/uuid so that resource IDs can
// be bound directly from request URIs.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID is the ID type for all Budgetbook resources.
type UUID struct {
	google_uuid.UUID
}

// Nil is the zero UUID.
var Nil UUID

// New returns a random UUID.
func New() UUID {
	return UUID{google_uuid.New()}
}

// NewString returns the string form of a new random UUID.
func NewString() string {
	return google_uuid.NewString()
}

// UnmarshalParam implements gin's binding.BindUnmarshaler. An empty
// parameter binds to Nil, anything else has to parse as a UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}
