package simulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/battleship-go2/internal/dependencies/random"
	"github.com/mcoot/battleship-go2/internal/factory"
	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/services/bot"
)

// shooterSalt separates the shooter's random stream from the match's
const shooterSalt uint64 = 0x5eed5eed

// Simulation errors
var (
	ErrNoGames        = errors.New("at least one game is required")
	ErrUnknownShooter = errors.New("unknown shooter strategy")
	ErrStalled        = errors.New("match did not finish")
)

// Options controls a simulation run
type Options struct {
	Games   int
	Workers int    // Defaults to GOMAXPROCS
	Shooter string // Strategy firing for the human side
	Seed    uint64 // Game i is seeded with Seed+i
}

// GameResult is the outcome of a single simulated match
type GameResult struct {
	Index  int        `json:"index"`
	Seed   uint64     `json:"seed"`
	Winner model.Side `json:"winner"`
	Turns  int        `json:"turns"`
}

// Report aggregates the results of a run
type Report struct {
	Shooter       string       `json:"shooter"`
	Games         int          `json:"games"`
	HumanWins     int          `json:"human_wins"`
	AutomatedWins int          `json:"automated_wins"`
	MinTurns      int          `json:"min_turns"`
	MaxTurns      int          `json:"max_turns"`
	MeanTurns     float64      `json:"mean_turns"`
	Results       []GameResult `json:"results"`
}

// Runner plays automated matches to completion
type Runner struct {
	logger    *slog.Logger
	appLogger *slog.Logger // Handed to each match's App unscoped
}

// NewRunner creates a new Runner
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{
		logger:    logger.With(slog.String("component", "simulation")),
		appLogger: logger,
	}
}

// Run plays opts.Games matches on a bounded pool of workers. Every match
// gets its own App, so nothing is shared between goroutines except the
// results slice, which each worker writes at its own index.
func (r *Runner) Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Games < 1 {
		return Report{}, ErrNoGames
	}
	if opts.Shooter == "" {
		opts.Shooter = model.BotStrategyHuntTarget
	}
	if !slices.Contains(model.ValidBotStrategies(), opts.Shooter) {
		return Report{}, fmt.Errorf("%w: %q", ErrUnknownShooter, opts.Shooter)
	}
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	r.logger.Info("simulation started",
		slog.Int("games", opts.Games),
		slog.Int("workers", workers),
		slog.String("shooter", opts.Shooter),
		slog.Uint64("seed", opts.Seed),
	)

	results := make([]GameResult, opts.Games)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range opts.Games {
		eg.Go(func() error {
			result, err := r.playGame(ctx, i, opts.Seed+uint64(i), opts.Shooter)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		r.logger.Error("simulation failed", slog.String("error", err.Error()))
		return Report{}, err
	}

	report := summarize(opts.Shooter, results)
	r.logger.Info("simulation finished",
		slog.Int("human_wins", report.HumanWins),
		slog.Int("automated_wins", report.AutomatedWins),
		slog.Float64("mean_turns", report.MeanTurns),
	)
	return report, nil
}

func (r *Runner) playGame(ctx context.Context, index int, seed uint64, shooterName string) (GameResult, error) {
	if err := ctx.Err(); err != nil {
		return GameResult{}, err
	}

	app := factory.New(factory.Config{Logger: r.appLogger, Seed: &seed})
	shooter, _ := bot.New(shooterName, random.NewSeeded(seed^shooterSalt))
	controller := app.MatchController

	m, err := controller.CreateMatch(ctx, fmt.Sprintf("sim-%d", index))
	if err != nil {
		return GameResult{}, err
	}
	if err := controller.PlaceRemainingShipsRandomly(ctx, m.ID); err != nil {
		return GameResult{}, err
	}

	var state model.TargetingState
	limit := 2 * model.BoardSize * model.BoardSize
	for range limit {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}

		m, err = controller.GetMatch(ctx, m.ID)
		if err != nil {
			return GameResult{}, err
		}
		target := shooter.ChooseTarget(&state, m.Automated.Board)

		report, err := controller.Attack(ctx, m.ID, target)
		if err != nil {
			return GameResult{}, err
		}
		shooter.Observe(&state, target, report.Result)

		if report.State == model.MatchStateGameOver {
			r.logger.Debug("game finished",
				slog.Int("index", index),
				slog.String("winner", string(report.Winner)),
				slog.Int("turns", report.Turn),
			)
			return GameResult{Index: index, Seed: seed, Winner: report.Winner, Turns: report.Turn}, nil
		}
	}
	return GameResult{}, ErrStalled
}

func summarize(shooter string, results []GameResult) Report {
	report := Report{Shooter: shooter, Games: len(results), Results: results}
	total := 0
	for i, res := range results {
		switch res.Winner {
		case model.SideHuman:
			report.HumanWins++
		case model.SideAutomated:
			report.AutomatedWins++
		}
		if i == 0 || res.Turns < report.MinTurns {
			report.MinTurns = res.Turns
		}
		if res.Turns > report.MaxTurns {
			report.MaxTurns = res.Turns
		}
		total += res.Turns
	}
	if len(results) > 0 {
		report.MeanTurns = float64(total) / float64(len(results))
	}
	return report
}
