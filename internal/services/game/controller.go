package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/rummy500-go/internal/dependencies/clock"
	"github.com/mcoot/rummy500-go/internal/dependencies/random"
	"github.com/mcoot/rummy500-go/internal/events"
	"github.com/mcoot/rummy500-go/internal/model"
	"github.com/mcoot/rummy500-go/internal/services/scoring"
	"github.com/mcoot/rummy500-go/internal/storage"
)

// GameIDAlphabet is the character set for generated game IDs
const GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GameIDLength is the length of generated game IDs
const GameIDLength = 12

// Controller is the turn state machine and the sole entry point for all
// mutating game actions. Every action validates the caller, the phase and
// the rule-specific constraints before touching any state; a failed
// action leaves the game exactly as it was.
type Controller struct {
	storage        storage.Storage
	scoringService *scoring.Service
	notifier       *events.Notifier
	clock          clock.Clock
	random         random.Random
	logger         *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	scoringService *scoring.Service,
	notifier *events.Notifier,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		scoringService: scoringService,
		notifier:       notifier,
		clock:          clock,
		random:         random,
		logger:         logger.With(slog.String("component", "game-controller")),
	}
}

// CreateGame initializes a new game waiting for players. A scoreTarget of
// zero or less selects the default of 500.
func (c *Controller) CreateGame(ctx context.Context, scoreTarget int) (*model.Game, error) {
	if scoreTarget <= 0 {
		scoreTarget = model.DefaultScoreTarget
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:          model.GameID(c.random.String(GameIDLength, GameIDAlphabet)),
		Phase:       model.PhaseWaitingForPlayers,
		ScoreTarget: scoreTarget,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("score_target", scoreTarget),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// AddPlayer registers a player while the game is waiting for players.
// Games hold between 2 and 4 players.
func (c *Controller) AddPlayer(ctx context.Context, gameID model.GameID, player model.Player) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.Phase != model.PhaseWaitingForPlayers {
		return model.ErrGameInProgress
	}
	if len(game.Players) >= model.MaxPlayers {
		return model.ErrGameFull
	}
	if game.PlayerByID(player.ID) != nil {
		return model.ErrPlayerAlreadyJoined
	}

	game.Players = append(game.Players, &model.Player{
		ID:          player.ID,
		DisplayName: player.DisplayName,
		IsBot:       player.IsBot,
		BotStrategy: player.BotStrategy,
	})
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return err
	}

	c.logger.Info("player joined",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(player.ID)),
		slog.Bool("is_bot", player.IsBot),
		slog.Int("player_count", len(game.Players)),
	)

	c.publish(game, model.EventPlayerJoined, player.ID, model.PlayerJoinedPayload{
		DisplayName: player.DisplayName,
		IsBot:       player.IsBot,
		PlayerCount: len(game.Players),
	})

	return nil
}

// StartGame deals the first round and begins play with player 0
func (c *Controller) StartGame(ctx context.Context, gameID model.GameID) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.Phase != model.PhaseWaitingForPlayers {
		return model.ErrGameInProgress
	}
	if len(game.Players) < model.MinPlayers {
		return model.ErrInsufficientPlayers
	}

	if err := c.startRound(game); err != nil {
		return err
	}
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return err
	}

	playerIDs := make([]model.PlayerID, len(game.Players))
	for i, p := range game.Players {
		playerIDs[i] = p.ID
	}

	c.logger.Info("game started",
		slog.String("game_id", string(gameID)),
		slog.Int("player_count", len(game.Players)),
	)

	c.publish(game, model.EventGameStarted, "", model.GameStartedPayload{
		Players:     playerIDs,
		ScoreTarget: game.ScoreTarget,
	})
	c.publish(game, model.EventRoundStarted, "", model.RoundStartedPayload{Round: game.Round})
	c.publish(game, model.EventTurnChanged, game.CurrentPlayer().ID, model.TurnChangedPayload{
		CurrentPlayer: game.CurrentPlayer().ID,
	})

	return nil
}

// StartNextRound begins a fresh round after a round has ended, resuming
// with player 0
func (c *Controller) StartNextRound(ctx context.Context, gameID model.GameID) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.Phase == model.PhaseGameOver {
		return model.ErrGameOver
	}
	if game.Phase != model.PhaseRoundOver {
		return model.ErrRoundNotOver
	}

	if err := c.startRound(game); err != nil {
		return err
	}
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return err
	}

	c.logger.Info("round started",
		slog.String("game_id", string(gameID)),
		slog.Int("round", game.Round),
	)

	c.publish(game, model.EventRoundStarted, "", model.RoundStartedPayload{Round: game.Round})
	c.publish(game, model.EventTurnChanged, game.CurrentPlayer().ID, model.TurnChangedPayload{
		CurrentPlayer: game.CurrentPlayer().ID,
	})

	return nil
}

// startRound clears hands and melds, builds and shuffles a fresh deck,
// deals, and enters the draw phase for player 0
func (c *Controller) startRound(game *model.Game) error {
	for _, p := range game.Players {
		p.ClearForNewRound()
	}
	game.TableMelds = nil

	deck := model.NewDeck()
	deck.Shuffle(c.random)
	hands, err := deck.Deal(c.random, len(game.Players), model.CardsPerHand)
	if err != nil {
		return err
	}
	for i, p := range game.Players {
		p.AddCardsToHand(hands[i])
	}

	game.Deck = deck
	game.Round++
	game.Phase = model.PhaseDraw
	game.CurrentPlayerIdx = 0
	game.RequiredMeldCard = nil
	game.HasMeldedThisTurn = false
	game.TurnStartedAt = c.clock.Now()
	game.UpdatedAt = game.TurnStartedAt

	return nil
}

// DrawFromPile has the current player draw the top card of the draw pile
func (c *Controller) DrawFromPile(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	player, err := c.gate(game, playerID, model.PhaseDraw)
	if err != nil {
		return err
	}

	card, err := game.Deck.DrawFromPile(c.random)
	if err != nil {
		return err
	}
	player.AddCardToHand(card)

	game.RequiredMeldCard = nil
	game.HasMeldedThisTurn = false
	game.Phase = model.PhaseMeldDiscard
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return err
	}

	c.publish(game, model.EventCardDrawn, playerID, model.CardDrawnPayload{
		DrawPileCount: game.Deck.DrawPileCount(),
	})

	return nil
}

// DrawFromDiscard has the current player pick up the discard card at
// index along with every card above it. The pickup is refused unless the
// targeted card is immediately meldable from the resulting hand.
func (c *Controller) DrawFromDiscard(ctx context.Context, gameID model.GameID, playerID model.PlayerID, index int) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	player, err := c.gate(game, playerID, model.PhaseDraw)
	if err != nil {
		return err
	}

	picked, err := game.Deck.PeekDiscard(index)
	if err != nil {
		return err
	}

	stack := game.Deck.DiscardPile()[index:]
	if !PickupIsMeldable(player.Hand, stack, picked, game.TableMelds) {
		return model.ErrPickupNotMeldable
	}

	cards, err := game.Deck.DrawFromDiscard(index)
	if err != nil {
		return err
	}
	player.AddCardsToHand(cards)

	game.RequiredMeldCard = &picked
	game.HasMeldedThisTurn = false
	game.Phase = model.PhaseMeldDiscard
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return err
	}

	c.logger.Info("discard stack picked up",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(playerID)),
		slog.String("card", picked.String()),
		slog.Int("stack_size", len(cards)),
	)

	c.publish(game, model.EventDiscardPicked, playerID, model.DiscardPickedPayload{
		PickedCard: picked,
		StackSize:  len(cards),
	})

	return nil
}

// LayMeld lays cards from the current player's hand as a new table meld.
// If a picked-up discard card is pending, it must be among the cards.
func (c *Controller) LayMeld(ctx context.Context, gameID model.GameID, playerID model.PlayerID, cards []model.Card) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	player, err := c.gate(game, playerID, model.PhaseMeldDiscard)
	if err != nil {
		return err
	}

	if game.RequiredMeldCard != nil && !containsCard(cards, *game.RequiredMeldCard) {
		return model.ErrRequiredCardUnmet
	}
	for _, card := range cards {
		if !player.HasCard(card) {
			return model.ErrCardNotInHand
		}
	}

	meld, ok := player.TryLayMeld(cards)
	if !ok {
		return model.ErrInvalidMeld
	}

	game.TableMelds = append(game.TableMelds, meld)
	game.HasMeldedThisTurn = true
	game.RequiredMeldCard = nil
	game.UpdatedAt = c.clock.Now()

	c.publish(game, model.EventMeldLaid, playerID, model.MeldLaidPayload{
		MeldType: meld.Type,
		Cards:    meld.Cards,
	})

	c.checkRoundEnd(game, player)
	return c.storage.SaveGame(ctx, game)
}

// ExtendMeld extends the table meld at meldIndex with cards from the
// current player's hand. The meld may belong to any player.
func (c *Controller) ExtendMeld(ctx context.Context, gameID model.GameID, playerID model.PlayerID, meldIndex int, cards []model.Card) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	player, err := c.gate(game, playerID, model.PhaseMeldDiscard)
	if err != nil {
		return err
	}

	if meldIndex < 0 || meldIndex >= len(game.TableMelds) {
		return model.ErrMeldNotFound
	}
	if game.RequiredMeldCard != nil && !containsCard(cards, *game.RequiredMeldCard) {
		return model.ErrRequiredCardUnmet
	}
	for _, card := range cards {
		if !player.HasCard(card) {
			return model.ErrCardNotInHand
		}
	}

	if !player.TryExtendMeld(game.TableMelds[meldIndex], cards) {
		return model.ErrInvalidExtension
	}

	game.HasMeldedThisTurn = true
	game.RequiredMeldCard = nil
	game.UpdatedAt = c.clock.Now()

	c.publish(game, model.EventMeldExtended, playerID, model.MeldExtendedPayload{
		MeldIndex: meldIndex,
		Cards:     cards,
	})

	c.checkRoundEnd(game, player)
	return c.storage.SaveGame(ctx, game)
}

// Discard moves a card from the current player's hand onto the discard
// pile, ending the turn (or the round, if the hand is now empty). A
// pending picked-up discard card must be melded before discarding.
func (c *Controller) Discard(ctx context.Context, gameID model.GameID, playerID model.PlayerID, card model.Card) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	player, err := c.gate(game, playerID, model.PhaseMeldDiscard)
	if err != nil {
		return err
	}

	if game.RequiredMeldCard != nil {
		return model.ErrRequiredCardUnmet
	}
	if !player.RemoveCardsFromHand([]model.Card{card}) {
		return model.ErrCardNotInHand
	}

	game.Deck.AddToDiscard(card)
	game.UpdatedAt = c.clock.Now()

	c.publish(game, model.EventCardDiscarded, playerID, model.CardDiscardedPayload{Card: card})

	if len(player.Hand) == 0 {
		c.endRound(game, player)
		return c.storage.SaveGame(ctx, game)
	}

	game.CurrentPlayerIdx = (game.CurrentPlayerIdx + 1) % len(game.Players)
	game.Phase = model.PhaseDraw
	game.HasMeldedThisTurn = false
	game.TurnStartedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return err
	}

	c.publish(game, model.EventTurnChanged, game.CurrentPlayer().ID, model.TurnChangedPayload{
		CurrentPlayer: game.CurrentPlayer().ID,
	})

	return nil
}

// gate validates that the player exists, is the current player, and that
// the game is in the expected phase
func (c *Controller) gate(game *model.Game, playerID model.PlayerID, phase model.Phase) (*model.Player, error) {
	player := game.PlayerByID(playerID)
	if player == nil {
		return nil, model.ErrPlayerNotFound
	}
	if !game.IsCurrent(playerID) {
		return nil, model.ErrNotPlayerTurn
	}
	if game.Phase != phase {
		return nil, model.ErrWrongPhase
	}
	return player, nil
}

// checkRoundEnd ends the round if the player's hand has emptied
func (c *Controller) checkRoundEnd(game *model.Game, player *model.Player) {
	if len(player.Hand) == 0 {
		c.endRound(game, player)
	}
}

// endRound scores the round (crediting player as having gone out) and
// moves to RoundOver, or GameOver once the score target is reached
func (c *Controller) endRound(game *model.Game, wentOut *model.Player) {
	scores := c.scoringService.ApplyRoundScores(game, wentOut.ID)
	game.UpdatedAt = c.clock.Now()

	c.logger.Info("round over",
		slog.String("game_id", string(game.ID)),
		slog.Int("round", game.Round),
		slog.String("went_out", string(wentOut.ID)),
	)

	c.publish(game, model.EventRoundOver, wentOut.ID, model.RoundOverPayload{
		Round:  game.Round,
		Scores: scores,
	})

	if c.scoringService.TargetReached(game) {
		winner := c.scoringService.DetermineWinner(game)
		game.Winner = winner
		game.Phase = model.PhaseGameOver

		c.logger.Info("game over",
			slog.String("game_id", string(game.ID)),
			slog.String("winner", string(winner)),
		)

		c.publish(game, model.EventGameOver, winner, model.GameOverPayload{Scores: scores})
		return
	}

	game.Phase = model.PhaseRoundOver
}

// publish raises a notification event for the game
func (c *Controller) publish(game *model.Game, eventType model.EventType, playerID model.PlayerID, payload any) {
	c.notifier.Publish(model.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		GameID:    game.ID,
		PlayerID:  playerID,
		Payload:   payload,
	})
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, scoreTarget int) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	AddPlayer(ctx context.Context, gameID model.GameID, player model.Player) error
	StartGame(ctx context.Context, gameID model.GameID) error
	StartNextRound(ctx context.Context, gameID model.GameID) error
	DrawFromPile(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error
	DrawFromDiscard(ctx context.Context, gameID model.GameID, playerID model.PlayerID, index int) error
	LayMeld(ctx context.Context, gameID model.GameID, playerID model.PlayerID, cards []model.Card) error
	ExtendMeld(ctx context.Context, gameID model.GameID, playerID model.PlayerID, meldIndex int, cards []model.Card) error
	Discard(ctx context.Context, gameID model.GameID, playerID model.PlayerID, card model.Card) error
}

var _ ControllerInterface = (*Controller)(nil)
