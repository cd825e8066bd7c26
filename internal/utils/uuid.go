package utils

import "github.com/google/uuid"

// UUIDGenerator produces request trace identifiers.
type UUIDGenerator struct {
	newID func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newID: uuid.NewV7}
}

// Generate returns a time-ordered UUIDv7. When the clock sequence cannot be
// read it returns a random UUIDv4 instead.
func (g *UUIDGenerator) Generate() string {
	id, err := g.newID()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
