package storage

import (
	"context"

	"github.com/mcoot/battleship-go2/internal/model"
)

// Storage defines the interface for the match registry
type Storage interface {
	SaveMatch(ctx context.Context, match *model.Match) error
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
	DeleteMatch(ctx context.Context, id model.MatchID) error
	MatchExists(ctx context.Context, id model.MatchID) (bool, error)
	// ListMatches returns every stored match, oldest first
	ListMatches(ctx context.Context) ([]*model.Match, error)
}
