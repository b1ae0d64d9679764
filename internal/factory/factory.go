package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/rummy500-go/internal/dependencies/clock"
	"github.com/mcoot/rummy500-go/internal/dependencies/random"
	"github.com/mcoot/rummy500-go/internal/events"
	"github.com/mcoot/rummy500-go/internal/model"
	"github.com/mcoot/rummy500-go/internal/services/bot"
	"github.com/mcoot/rummy500-go/internal/services/game"
	"github.com/mcoot/rummy500-go/internal/services/scoring"
	"github.com/mcoot/rummy500-go/internal/storage"
	"github.com/mcoot/rummy500-go/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Notifications
	Notifier *events.Notifier

	// Services
	ScoringService *scoring.Service
	GameController *game.Controller
	BotService     *bot.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Seed selects a deterministic random source when non-zero; zero
	// uses crypto randomness
	Seed int64
	// BotConfig holds bot sequencing settings (optional)
	// If zero value, defaults to bot.DefaultConfig()
	BotConfig bot.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var rnd random.Random
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	} else {
		rnd = random.New()
	}

	botCfg := cfg.BotConfig
	if botCfg.StepDelay == 0 {
		botCfg = bot.DefaultConfig()
	}

	return newWithDependencies(memory.New(), clock.New(), rnd, botCfg, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, botCfg bot.Config, logger *slog.Logger) *App {
	notifier := events.NewNotifier(logger)
	scoringService := scoring.New()
	gameController := game.NewController(store, scoringService, notifier, clk, rnd, logger)

	strategies := map[string]bot.Strategy{
		model.BotStrategyGreedy: bot.NewGreedyStrategy(),
		model.BotStrategyRandom: bot.NewRandomStrategy(rnd),
	}
	botService := bot.NewService(gameController, strategies, clk, rnd, botCfg, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Notifier:       notifier,
		ScoringService: scoringService,
		GameController: gameController,
		BotService:     botService,
	}
}
