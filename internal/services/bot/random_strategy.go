package bot

import (
	"github.com/mcoot/battleship-go2/internal/dependencies/random"
	"github.com/mcoot/battleship-go2/internal/model"
)

// RandomStrategy fires at uniformly random unresolved cells and keeps no memory
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseTarget picks a random cell that has not been attacked yet
func (s *RandomStrategy) ChooseTarget(_ *model.TargetingState, board *model.Board) model.Coordinate {
	return s.randomTarget(board)
}

// Observe does nothing; random search has no memory
func (s *RandomStrategy) Observe(*model.TargetingState, model.Coordinate, model.AttackResult) {}

func (s *RandomStrategy) randomTarget(board *model.Board) model.Coordinate {
	open := board.Unresolved()
	if len(open) == 0 {
		return model.Coordinate{Row: 0, Col: 0}
	}
	return open[s.random.Intn(len(open))]
}
