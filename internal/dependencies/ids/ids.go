package ids

import (
	"github.com/google/uuid"

	"github.com/mcoot/battleship-go2/internal/model"
)

// MatchIDLength is the number of UUID characters kept for a match ID
const MatchIDLength = 8

// Generator produces identifiers that can be mocked for testing
type Generator interface {
	NewMatchID() model.MatchID
}

// UUIDGenerator implements Generator with random UUIDs
type UUIDGenerator struct{}

// New creates a new UUIDGenerator
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewMatchID returns a short prefix of a random UUID
func (g *UUIDGenerator) NewMatchID() model.MatchID {
	return model.MatchID(uuid.NewString()[:MatchIDLength])
}
