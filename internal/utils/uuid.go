package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for request log records.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a time-ordered UUIDv7, so records sort by creation time.
// When the v7 source fails it falls back to a random UUIDv4.
func (g *UUIDGenerator) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
