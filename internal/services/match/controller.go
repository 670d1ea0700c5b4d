package match

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/battleship-go2/internal/dependencies/clock"
	"github.com/mcoot/battleship-go2/internal/dependencies/ids"
	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/services/board"
	"github.com/mcoot/battleship-go2/internal/services/bot"
	"github.com/mcoot/battleship-go2/internal/storage"
)

const (
	// DefaultHumanName is used when a match is created without a name
	DefaultHumanName = "Player"
	// AutomatedName is the display name of the automated opponent
	AutomatedName = "Computer"
)

// TurnReport describes everything that happened during one human attack
type TurnReport struct {
	Target model.Coordinate
	Result model.AttackResult
	Reply  *bot.BotAction // Nil when the automated side did not fire
	State  model.MatchState
	Winner model.Side
	Turn   int
}

// Controller manages the match state machine and turn flow
type Controller struct {
	storage      storage.Storage
	boardService *board.Service
	botService   *bot.Service
	clock        clock.Clock
	ids          ids.Generator
	events       EventSink
	logger       *slog.Logger
}

// NewController creates a new match Controller
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	botService *bot.Service,
	clock clock.Clock,
	ids ids.Generator,
	events EventSink,
	logger *slog.Logger,
) *Controller {
	if events == nil {
		events = NopSink{}
	}
	return &Controller{
		storage:      storage,
		boardService: boardService,
		botService:   botService,
		clock:        clock,
		ids:          ids,
		events:       events,
		logger:       logger.With(slog.String("component", "match-controller")),
	}
}

// CreateMatch starts a new match in setup with both rosters unplaced
func (c *Controller) CreateMatch(ctx context.Context, humanName string) (*model.Match, error) {
	if humanName == "" {
		humanName = DefaultHumanName
	}

	var id model.MatchID
	for {
		id = c.ids.NewMatchID()
		exists, err := c.storage.MatchExists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
	}

	now := c.clock.Now()
	match := &model.Match{
		ID:        id,
		State:     model.MatchStateSetup,
		Human:     model.NewPlayer(humanName, model.SideHuman),
		Automated: model.NewPlayer(AutomatedName, model.SideAutomated),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		c.logger.Error("failed to save match",
			slog.String("match_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("match created",
		slog.String("match_id", string(id)),
		slog.String("human", humanName),
	)

	return match, nil
}

// GetMatch retrieves a match by ID
func (c *Controller) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	return c.storage.GetMatch(ctx, id)
}

// PlaceNextShip places the next roster ship for the human. A rejected
// placement leaves the board and roster cursor unchanged. Placing the last
// ship deploys the automated fleet and starts the battle.
func (c *Controller) PlaceNextShip(ctx context.Context, id model.MatchID, anchor model.Coordinate, orientation model.Orientation) error {
	match, err := c.setupMatch(ctx, id)
	if err != nil {
		return err
	}

	spec, ok := match.Human.NextShip()
	if !ok {
		return model.ErrRosterExhausted
	}

	coords, err := c.boardService.PlaceShipAt(match.Human.Board, spec, anchor, orientation)
	if err != nil {
		return fmt.Errorf("place %s at %s: %w", spec.Name, anchor, err)
	}
	match.Human.AdvanceRoster()
	c.publish(ctx, match, model.EventShipPlaced, model.SideHuman, model.ShipPlacedPayload{
		Ship:      spec.Name,
		Positions: coords,
	})

	if match.Human.FleetPlaced() {
		c.startBattle(ctx, match)
	}

	return c.save(ctx, match)
}

// PlaceRemainingShipsRandomly places every unplaced human ship at random
// and starts the battle
func (c *Controller) PlaceRemainingShipsRandomly(ctx context.Context, id model.MatchID) error {
	match, err := c.setupMatch(ctx, id)
	if err != nil {
		return err
	}

	for _, spec := range match.Human.RemainingShips() {
		coords := c.boardService.PlaceShipRandomly(match.Human.Board, spec)
		match.Human.AdvanceRoster()
		c.publish(ctx, match, model.EventShipPlaced, model.SideHuman, model.ShipPlacedPayload{
			Ship:      spec.Name,
			Positions: coords,
			Random:    true,
		})
	}

	c.startBattle(ctx, match)
	return c.save(ctx, match)
}

// Attack resolves a human shot at the automated board and, when the shot
// counted and the match is still running, the automated reply.
// Shots at already resolved cells return a report without a reply.
func (c *Controller) Attack(ctx context.Context, id model.MatchID, target model.Coordinate) (*TurnReport, error) {
	if !target.InBounds() {
		return nil, model.ErrCoordinateOutOfBounds
	}

	match, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := battleStateError(match.State); err != nil {
		return nil, err
	}

	result, err := match.Automated.Board.ReceiveAttack(target)
	if err != nil {
		return nil, err
	}

	report := &TurnReport{Target: target, Result: result}
	if !result.ConsumedTurn() {
		report.State = match.State
		report.Turn = match.Turn
		return report, nil
	}

	match.Turn++
	c.publish(ctx, match, model.EventAttackResolved, model.SideHuman, model.AttackResolvedPayload{
		Target: target,
		Result: result,
		Turn:   match.Turn,
	})

	if match.Automated.Board.AllShipsSunk() {
		c.finish(ctx, match, model.SideHuman)
	} else {
		action, err := c.botService.TakeTurn(match)
		if err != nil {
			c.logger.Error("automated turn failed",
				slog.String("match_id", string(match.ID)),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
		report.Reply = &action
		c.publish(ctx, match, model.EventAttackResolved, model.SideAutomated, model.AttackResolvedPayload{
			Target: action.Target,
			Result: action.Result,
			Turn:   match.Turn,
		})

		if match.Human.Board.AllShipsSunk() {
			c.finish(ctx, match, model.SideAutomated)
		}
	}

	if err := c.save(ctx, match); err != nil {
		return nil, err
	}

	report.State = match.State
	report.Winner = match.Winner
	report.Turn = match.Turn
	return report, nil
}

// State returns the match phase and, once it is over, the winner
func (c *Controller) State(ctx context.Context, id model.MatchID) (model.MatchState, model.Side, error) {
	match, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return "", "", err
	}
	return match.State, match.Winner, nil
}

// Snapshot returns a render-ready copy of the match
func (c *Controller) Snapshot(ctx context.Context, id model.MatchID) (model.MatchSnapshot, error) {
	match, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return model.MatchSnapshot{}, err
	}
	return match.Snapshot(), nil
}

// AbandonMatch ends a match without a winner
func (c *Controller) AbandonMatch(ctx context.Context, id model.MatchID) error {
	match, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return err
	}
	switch match.State {
	case model.MatchStateGameOver:
		return model.ErrMatchOver
	case model.MatchStateAbandoned:
		return model.ErrMatchAbandoned
	}

	match.State = model.MatchStateAbandoned
	c.publish(ctx, match, model.EventMatchAbandoned, "", nil)

	c.logger.Info("match abandoned",
		slog.String("match_id", string(match.ID)),
		slog.Int("turn", match.Turn),
	)

	return c.save(ctx, match)
}

func (c *Controller) setupMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	match, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	switch match.State {
	case model.MatchStateSetup:
		return match, nil
	case model.MatchStateGameOver:
		return nil, model.ErrMatchOver
	case model.MatchStateAbandoned:
		return nil, model.ErrMatchAbandoned
	default:
		return nil, model.ErrNotInSetup
	}
}

func battleStateError(state model.MatchState) error {
	switch state {
	case model.MatchStateBattle:
		return nil
	case model.MatchStateGameOver:
		return model.ErrMatchOver
	case model.MatchStateAbandoned:
		return model.ErrMatchAbandoned
	default:
		return model.ErrNotInBattle
	}
}

func (c *Controller) startBattle(ctx context.Context, match *model.Match) {
	automated := match.Automated
	c.boardService.PlaceFleetRandomly(automated.Board, automated.RemainingShips())
	automated.RosterCursor = len(automated.Roster)

	match.State = model.MatchStateBattle
	c.publish(ctx, match, model.EventBattleStarted, "", nil)

	c.logger.Info("battle started",
		slog.String("match_id", string(match.ID)),
		slog.Int("fleet_size", len(automated.Roster)),
	)
}

func (c *Controller) finish(ctx context.Context, match *model.Match, winner model.Side) {
	match.State = model.MatchStateGameOver
	match.Winner = winner
	c.publish(ctx, match, model.EventMatchOver, "", model.MatchOverPayload{
		Winner: winner,
		Turns:  match.Turn,
	})

	c.logger.Info("match over",
		slog.String("match_id", string(match.ID)),
		slog.String("winner", string(winner)),
		slog.Int("turns", match.Turn),
	)
}

func (c *Controller) publish(ctx context.Context, match *model.Match, eventType model.EventType, side model.Side, payload any) {
	c.events.Publish(ctx, model.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		MatchID:   match.ID,
		Side:      side,
		Payload:   payload,
	})
}

func (c *Controller) save(ctx context.Context, match *model.Match) error {
	match.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveMatch(ctx, match); err != nil {
		c.logger.Error("failed to save match",
			slog.String("match_id", string(match.ID)),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateMatch(ctx context.Context, humanName string) (*model.Match, error)
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
	PlaceNextShip(ctx context.Context, id model.MatchID, anchor model.Coordinate, orientation model.Orientation) error
	PlaceRemainingShipsRandomly(ctx context.Context, id model.MatchID) error
	Attack(ctx context.Context, id model.MatchID, target model.Coordinate) (*TurnReport, error)
	State(ctx context.Context, id model.MatchID) (model.MatchState, model.Side, error)
	Snapshot(ctx context.Context, id model.MatchID) (model.MatchSnapshot, error)
	AbandonMatch(ctx context.Context, id model.MatchID) error
}

var _ ControllerInterface = (*Controller)(nil)
