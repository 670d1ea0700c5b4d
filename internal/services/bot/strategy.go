package bot

import "github.com/mcoot/battleship-go2/internal/model"

//go:generate go tool mockgen -destination=./mocks/strategy_mock.go -package=mocks . Strategy

// Strategy defines how a bot picks targets on the opposing board.
// Targeting memory lives in the TargetingState so it can be stored with the match.
type Strategy interface {
	// ChooseTarget selects the next coordinate to attack
	ChooseTarget(state *model.TargetingState, board *model.Board) model.Coordinate
	// Observe updates targeting memory with the result of the attack
	Observe(state *model.TargetingState, target model.Coordinate, result model.AttackResult)
}
