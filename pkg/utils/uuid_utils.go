package utils

import "github.com/google/uuid"

// GenerateUUIDv7 returns a time-ordered UUID. Append-only tables (audit
// log, notifications) use these so insertion order roughly matches ID
// order. Falls back to v4 if the v7 generator fails.
func GenerateUUIDv7() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
