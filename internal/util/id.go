// Package util provides small helpers shared across ordash packages.
package util

import "github.com/google/uuid"

// NewID returns a time-ordered UUIDv7 string. Evaluation ids sort by
// creation time in the log file.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// ShortID returns the first eight hex digits of an id for compact display.
func ShortID(id string) string {
	if len(id) < 8 {
		return id
	}
	return id[:8]
}
