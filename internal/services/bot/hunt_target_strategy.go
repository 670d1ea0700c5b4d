package bot

import (
	"github.com/mcoot/battleship-go2/internal/dependencies/random"
	"github.com/mcoot/battleship-go2/internal/model"
)

// HuntTargetStrategy searches randomly until it scores a hit, then probes the
// four neighbours of that hit (up, down, left, right) before searching again.
// Only the most recent hit is remembered: each new hit restarts the probe
// around itself instead of following the line of the ship.
type HuntTargetStrategy struct {
	hunt *RandomStrategy
}

// NewHuntTargetStrategy creates a new HuntTargetStrategy
func NewHuntTargetStrategy(rnd random.Random) *HuntTargetStrategy {
	return &HuntTargetStrategy{hunt: NewRandomStrategy(rnd)}
}

// ChooseTarget probes around the last hit, falling back to random search
// once no queued direction leads to an unresolved cell
func (s *HuntTargetStrategy) ChooseTarget(state *model.TargetingState, board *model.Board) model.Coordinate {
	if state.LastHit != nil {
		for len(state.Directions) > 0 {
			next := state.LastHit.Step(state.Directions[0])
			if next.InBounds() && !board.IsResolved(next) {
				return next
			}
			state.Directions = state.Directions[1:]
		}
		// Nothing left to probe around this hit
		state.Reset()
	}
	return s.hunt.randomTarget(board)
}

// Observe moves between hunt and target mode based on the attack result
func (s *HuntTargetStrategy) Observe(state *model.TargetingState, target model.Coordinate, result model.AttackResult) {
	switch result.Outcome {
	case model.OutcomeHit:
		hit := target
		state.LastHit = &hit
		state.Directions = model.AllDirections()

	case model.OutcomeMiss:
		if state.InTargetMode() && len(state.Directions) > 0 {
			state.Directions = state.Directions[1:]
		}

	case model.OutcomeSunk:
		state.Reset()
	}
}

// New builds the strategy registered under the given name
func New(name string, rnd random.Random) (Strategy, bool) {
	switch name {
	case model.BotStrategyRandom:
		return NewRandomStrategy(rnd), true
	case model.BotStrategyHuntTarget:
		return NewHuntTargetStrategy(rnd), true
	default:
		return nil, false
	}
}

var (
	_ Strategy = (*RandomStrategy)(nil)
	_ Strategy = (*HuntTargetStrategy)(nil)
)
