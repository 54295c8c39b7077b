package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered identifiers for new records and
// request traces.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a UUIDv7 string. A failed clock read yields a random v4
// instead of an error.
func (g *UUIDGenerator) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
