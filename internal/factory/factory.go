package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/battleship-go2/internal/dependencies/clock"
	"github.com/mcoot/battleship-go2/internal/dependencies/ids"
	"github.com/mcoot/battleship-go2/internal/dependencies/random"
	"github.com/mcoot/battleship-go2/internal/services/board"
	"github.com/mcoot/battleship-go2/internal/services/bot"
	"github.com/mcoot/battleship-go2/internal/services/match"
	"github.com/mcoot/battleship-go2/internal/storage"
	"github.com/mcoot/battleship-go2/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	IDs    ids.Generator
	Events match.EventSink

	// Services
	BoardService    *board.Service
	BotService      *bot.Service
	MatchController *match.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Seed makes ship placement and the opponent's shots reproducible (optional)
	// If nil, crypto/rand is used
	Seed *uint64
	// Events receives match events (optional)
	// If nil, events are discarded
	Events match.EventSink
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var rnd random.Random = random.New()
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
	}

	events := cfg.Events
	if events == nil {
		events = match.NopSink{}
	}

	return newWithDependencies(memory.New(), clock.New(), rnd, ids.New(), events, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	idGen ids.Generator,
	events match.EventSink,
	logger *slog.Logger,
) *App {
	boardService := board.New(rnd, logger)
	botService := bot.NewService(bot.NewHuntTargetStrategy(rnd), logger)
	matchController := match.NewController(store, boardService, botService, clk, idGen, events, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		IDs:             idGen,
		Events:          events,
		BoardService:    boardService,
		BotService:      botService,
		MatchController: matchController,
	}
}
