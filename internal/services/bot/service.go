package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/rummy500-go/internal/dependencies/clock"
	"github.com/mcoot/rummy500-go/internal/dependencies/random"
	"github.com/mcoot/rummy500-go/internal/model"
	"github.com/mcoot/rummy500-go/internal/services/game"
)

const (
	// PlayerIDAlphabet is the character set for generating bot player IDs
	PlayerIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	// PlayerIDLength is the length of generated bot player IDs
	PlayerIDLength = 16
	// MaxMeldIterations is a safety limit for the meld/extension loops
	MaxMeldIterations = 100
)

// Config holds bot service settings
type Config struct {
	// StepDelay is the pause between a bot's visible steps (draw, each
	// meld, discard), so a watching human can follow the turn
	StepDelay time.Duration
}

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{StepDelay: 600 * time.Millisecond}
}

// Service drives bot players. It issues the same controller actions a
// human driver would, sequenced with delays, and each scheduled turn
// carries its own cancellation so a new round or game can abort a bot
// mid-decision.
type Service struct {
	gameController *game.Controller
	strategies     map[string]Strategy
	clock          clock.Clock
	random         random.Random
	logger         *slog.Logger
	cfg            Config

	mu      sync.Mutex
	cancel  context.CancelFunc
	pending sync.WaitGroup
}

// NewService creates a new bot Service
func NewService(
	gameController *game.Controller,
	strategies map[string]Strategy,
	clk clock.Clock,
	rnd random.Random,
	cfg Config,
	logger *slog.Logger,
) *Service {
	return &Service{
		gameController: gameController,
		strategies:     strategies,
		clock:          clk,
		random:         rnd,
		cfg:            cfg,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// AddBot registers a bot player in the game. Only valid while the game is
// waiting for players.
func (s *Service) AddBot(ctx context.Context, gameID model.GameID, displayName, strategy string) (model.PlayerID, error) {
	if _, ok := s.strategies[strategy]; !ok {
		return "", fmt.Errorf("unknown bot strategy: %s", strategy)
	}

	id := model.PlayerID("bot-" + s.random.String(PlayerIDLength, PlayerIDAlphabet))
	err := s.gameController.AddPlayer(ctx, gameID, model.Player{
		ID:          id,
		DisplayName: displayName,
		IsBot:       true,
		BotStrategy: strategy,
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("bot added",
		slog.String("game_id", string(gameID)),
		slog.String("bot_id", string(id)),
		slog.String("strategy", strategy),
	)

	return id, nil
}

// ScheduleTurn runs TakeTurn in the background under a fresh cancellable
// context, cancelling any previously scheduled turn first. The returned
// channel is closed when the turn finishes, whether it completed or was
// cancelled, so a driver can wait on it without forcing cancellation.
func (s *Service) ScheduleTurn(gameID model.GameID, playerID model.PlayerID) <-chan struct{} {
	s.CancelPending()

	ctx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	done := make(chan struct{})
	s.pending.Add(1)
	go func() {
		defer close(done)
		defer s.pending.Done()
		if err := s.TakeTurn(ctx, gameID, playerID); err != nil && ctx.Err() == nil {
			s.logger.Error("bot turn failed",
				slog.String("game_id", string(gameID)),
				slog.String("player_id", string(playerID)),
				slog.String("error", err.Error()),
			)
		}
	}()
	return done
}

// CancelPending aborts any scheduled bot turn and waits for it to stop.
// Call before starting a new game or round so a stale decision cannot
// land in the fresh state.
func (s *Service) CancelPending() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.pending.Wait()
}

// TakeTurn plays one full bot turn: draw, lay melds, extend table melds,
// discard, pausing between steps. It returns early without error if the
// turn is no longer the bot's (another driver acted, or the round ended).
func (s *Service) TakeTurn(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	g, err := s.gameController.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	player := g.PlayerByID(playerID)
	if player == nil {
		return model.ErrPlayerNotFound
	}
	strategy := s.strategyForPlayer(player)
	if strategy == nil {
		return fmt.Errorf("no strategy registered for bot %s", playerID)
	}

	if err := s.pause(ctx); err != nil {
		return err
	}

	// Draw
	if !g.IsCurrent(playerID) || g.Phase != model.PhaseDraw {
		return nil
	}
	choice := strategy.ChooseDraw(g, player)
	if choice.FromDiscard {
		err = s.gameController.DrawFromDiscard(ctx, gameID, playerID, choice.DiscardIndex)
		if err != nil {
			// A refused pickup falls back to the pile
			err = s.gameController.DrawFromPile(ctx, gameID, playerID)
		}
	} else {
		err = s.gameController.DrawFromPile(ctx, gameID, playerID)
	}
	if err != nil {
		return err
	}

	// Lay melds from hand
	for i := 0; i < MaxMeldIterations; i++ {
		if err := s.pause(ctx); err != nil {
			return err
		}
		if g.Phase != model.PhaseMeldDiscard || !g.IsCurrent(playerID) {
			return nil
		}
		cards := strategy.ChooseMeld(g, player)
		if cards == nil {
			break
		}
		if err := s.gameController.LayMeld(ctx, gameID, playerID, cards); err != nil {
			break
		}
	}

	// Extend table melds
	for i := 0; i < MaxMeldIterations; i++ {
		if g.Phase != model.PhaseMeldDiscard || !g.IsCurrent(playerID) {
			return nil
		}
		ext := strategy.ChooseExtension(g, player)
		if ext == nil {
			break
		}
		if err := s.gameController.ExtendMeld(ctx, gameID, playerID, ext.MeldIndex, ext.Cards); err != nil {
			break
		}
		if err := s.pause(ctx); err != nil {
			return err
		}
	}

	// Discard
	if g.Phase != model.PhaseMeldDiscard || !g.IsCurrent(playerID) {
		return nil
	}
	return s.gameController.Discard(ctx, gameID, playerID, strategy.ChooseDiscard(g, player))
}

// pause waits one step delay, aborting if the turn is cancelled
func (s *Service) pause(ctx context.Context) error {
	if s.cfg.StepDelay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.clock.After(s.cfg.StepDelay):
		return nil
	}
}

// strategyForPlayer returns the strategy for a bot player, falling back
// to the greedy strategy if the player's strategy is not registered
func (s *Service) strategyForPlayer(player *model.Player) Strategy {
	if st, ok := s.strategies[player.BotStrategy]; ok {
		return st
	}
	if st, ok := s.strategies[model.BotStrategyGreedy]; ok {
		return st
	}
	for _, st := range s.strategies {
		return st
	}
	return nil
}
