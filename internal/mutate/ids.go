package mutate

import "github.com/google/uuid"

// NewID returns a fresh id for a list or task.
//
// UUIDv7 carries a millisecond timestamp plus a per-process sequence, so ids
// generated in quick succession stay unique and still sort by creation time.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
