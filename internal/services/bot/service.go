package bot

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/battleship-go2/internal/model"
)

// BotAction records a single shot taken by the automated opponent
type BotAction struct {
	Target model.Coordinate
	Result model.AttackResult
}

// Service plays the automated side of a match
type Service struct {
	strategy Strategy
	logger   *slog.Logger
}

// NewService creates a new bot Service
func NewService(strategy Strategy, logger *slog.Logger) *Service {
	return &Service{
		strategy: strategy,
		logger:   logger.With(slog.String("component", "bot-service")),
	}
}

// TakeTurn picks a target on the human board, fires at it and feeds the
// result back into the match's targeting memory.
func (s *Service) TakeTurn(match *model.Match) (BotAction, error) {
	board := match.Human.Board
	target := s.strategy.ChooseTarget(&match.Targeting, board)

	result, err := board.ReceiveAttack(target)
	if err != nil {
		return BotAction{}, fmt.Errorf("bot attack at %s: %w", target, err)
	}

	if result.Outcome == model.OutcomeAlreadyAttacked {
		// Strategies only choose unresolved cells, so this means the board
		// ran out of targets. The turn is still spent.
		s.logger.Warn("bot fired at resolved cell",
			slog.String("match_id", string(match.ID)),
			slog.String("target", target.String()),
		)
	}

	s.strategy.Observe(&match.Targeting, target, result)

	s.logger.Debug("bot fired",
		slog.String("match_id", string(match.ID)),
		slog.String("target", target.String()),
		slog.String("result", result.String()),
		slog.Bool("target_mode", match.Targeting.InTargetMode()),
	)

	return BotAction{Target: target, Result: result}, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	TakeTurn(match *model.Match) (BotAction, error)
}

var _ ServiceInterface = (*Service)(nil)
