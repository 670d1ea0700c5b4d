package mocks

import (
	"fmt"

	"github.com/mcoot/battleship-go2/internal/dependencies/ids"
	"github.com/mcoot/battleship-go2/internal/model"
)

// MockIDs is a mock implementation of ids.Generator for testing
type MockIDs struct {
	// MatchIDs is a queue of IDs to return from NewMatchID
	MatchIDs []model.MatchID
	index    int
	issued   int
}

// Ensure MockIDs implements Generator
var _ ids.Generator = (*MockIDs)(nil)

// NewMockIDs creates a new MockIDs
func NewMockIDs() *MockIDs {
	return &MockIDs{}
}

// NewMatchID returns the next queued ID, or a sequential "match-N" once the queue is empty
func (g *MockIDs) NewMatchID() model.MatchID {
	g.issued++
	if g.index >= len(g.MatchIDs) {
		return model.MatchID(fmt.Sprintf("match-%d", g.issued))
	}
	id := g.MatchIDs[g.index]
	g.index++
	return id
}

// QueueMatchID adds values to the match ID queue
func (g *MockIDs) QueueMatchID(values ...model.MatchID) {
	g.MatchIDs = append(g.MatchIDs, values...)
}
