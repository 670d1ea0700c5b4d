package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go2/internal/factory"
	"github.com/mcoot/battleship-go2/internal/middleware"
	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/services/match"
)

const playHelp = `Commands:
  place <coord> <h|v>  Place the next ship with its top-left end at coord
  auto                 Place all remaining ships at random
  fire <coord>         Fire at the opponent's board
  board                Show both boards
  new                  Abandon this match and start another
  help                 Show this help
  quit                 Abandon the match and exit

Coordinates are a row letter A-J followed by a column 1-10, e.g. B7.
Board key: O ship, X hit, # sunk, ~ miss, . unknown`

var errUsage = errors.New("usage")

func newPlayCmd() *cobra.Command {
	var autoPlace bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a match against the computer",
		Long: `Start an interactive match. Commands are read line by line from stdin.

` + playHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := cfg.SeedValue()
			if err != nil {
				return err
			}
			app := factory.New(factory.Config{
				Logger: logger,
				Seed:   seed,
				Events: match.NewLogSink(logger),
			})
			s := &session{controller: app.MatchController, name: cfg.Name, out: out}
			s.handle = middleware.Chain(s.dispatch,
				middleware.Recovery(logger),
				middleware.Logging(logger, app.Clock),
			)
			return s.run(cmd.Context(), cmd.InOrStdin(), autoPlace)
		},
	}

	cmd.Flags().StringVar(&cfg.Name, "name", cfg.Name, "Your name (env: BATTLESHIP_NAME)")
	cmd.Flags().BoolVar(&autoPlace, "auto-place", false, "Place your fleet at random and go straight to battle")

	return cmd
}

// session drives one terminal player through any number of matches
type session struct {
	controller *match.Controller
	name       string
	out        *Output
	handle     middleware.Handler
	matchID    model.MatchID
}

func (s *session) run(ctx context.Context, in io.Reader, autoPlace bool) error {
	if err := s.startMatch(ctx, autoPlace); err != nil {
		return err
	}
	s.out.PrintMessage("Type help for commands.")

	scanner := bufio.NewScanner(in)
	for {
		s.out.Prompt("> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		quit, err := s.handle(ctx, strings.ToLower(fields[0]), fields[1:])
		if err != nil {
			s.out.PrintError(err)
		}
		if quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	// Input closed without quit
	return s.abandon(ctx)
}

func (s *session) dispatch(ctx context.Context, command string, args []string) (bool, error) {
	switch command {
	case "place":
		return false, s.place(ctx, args)
	case "auto":
		return false, s.autoPlace(ctx)
	case "fire":
		return false, s.fire(ctx, args)
	case "board":
		return false, s.showBoard(ctx)
	case "new":
		if err := s.abandon(ctx); err != nil {
			return false, err
		}
		return false, s.startMatch(ctx, false)
	case "help":
		s.out.PrintMessage(playHelp)
		return false, nil
	case "quit", "exit":
		return true, s.abandon(ctx)
	default:
		return false, fmt.Errorf("unknown command %q, type help for commands", command)
	}
}

func (s *session) startMatch(ctx context.Context, autoPlace bool) error {
	m, err := s.controller.CreateMatch(ctx, s.name)
	if err != nil {
		return err
	}
	s.matchID = m.ID

	if autoPlace {
		if err := s.controller.PlaceRemainingShipsRandomly(ctx, m.ID); err != nil {
			return err
		}
		s.out.PrintMessage("Your fleet is in position. Fire when ready.")
	} else {
		s.out.PrintMessage("Place your fleet.")
	}
	return s.showBoard(ctx)
}

func (s *session) place(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: place <coord> <h|v>", errUsage)
	}
	anchor, err := ParseCoordinate(args[0])
	if err != nil {
		return err
	}
	orientation, err := ParseOrientation(args[1])
	if err != nil {
		return err
	}

	if err := s.controller.PlaceNextShip(ctx, s.matchID, anchor, orientation); err != nil {
		return err
	}
	return s.afterPlacement(ctx)
}

func (s *session) autoPlace(ctx context.Context) error {
	if err := s.controller.PlaceRemainingShipsRandomly(ctx, s.matchID); err != nil {
		return err
	}
	return s.afterPlacement(ctx)
}

func (s *session) afterPlacement(ctx context.Context) error {
	state, _, err := s.controller.State(ctx, s.matchID)
	if err != nil {
		return err
	}
	if state == model.MatchStateBattle {
		s.out.PrintMessage("All ships placed. The battle begins!")
	}
	return s.showBoard(ctx)
}

func (s *session) fire(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: fire <coord>", errUsage)
	}
	target, err := ParseCoordinate(args[0])
	if err != nil {
		return err
	}

	report, err := s.controller.Attack(ctx, s.matchID, target)
	if err != nil {
		return err
	}
	s.out.Print(NewTurnView(report))

	if report.State == model.MatchStateGameOver {
		if err := s.showBoard(ctx); err != nil {
			return err
		}
		s.out.PrintMessage("Type new to play again or quit to exit.")
	}
	return nil
}

func (s *session) showBoard(ctx context.Context) error {
	snap, err := s.controller.Snapshot(ctx, s.matchID)
	if err != nil {
		return err
	}
	s.out.Print(NewMatchView(snap))
	return nil
}

// abandon ends the current match unless it already finished
func (s *session) abandon(ctx context.Context) error {
	m, err := s.controller.GetMatch(ctx, s.matchID)
	if err != nil {
		return err
	}
	if m.IsFinished() {
		return nil
	}
	if err := s.controller.AbandonMatch(ctx, s.matchID); err != nil {
		return err
	}
	s.out.PrintMessage("Match abandoned.")
	return nil
}
