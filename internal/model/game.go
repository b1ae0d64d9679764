package model

import "time"

// GameID uniquely identifies a game
type GameID string

// Phase represents the current phase of a game
type Phase string

const (
	PhaseWaitingForPlayers Phase = "waiting_for_players" // Registering players
	PhaseDraw              Phase = "draw"                // Current player must draw
	PhaseMeldDiscard       Phase = "meld_discard"        // Current player may meld, must discard
	PhaseRoundOver         Phase = "round_over"          // Round scored, next round on demand
	PhaseGameOver          Phase = "game_over"           // Score target reached
)

// Player count and deal constants for Rummy 500
const (
	MinPlayers   = 2
	MaxPlayers   = 4
	CardsPerHand = 7

	// DefaultScoreTarget is the score at which the game ends
	DefaultScoreTarget = 500
)

// Game is the full state of one match: players, deck, shared table melds
// and the turn state machine's bookkeeping. All mutation goes through the
// game controller's action methods.
type Game struct {
	ID     GameID
	Phase  Phase
	Round  int
	Winner PlayerID

	Players    []*Player
	Deck       *Deck
	TableMelds []*Meld

	// Turn management
	CurrentPlayerIdx  int
	RequiredMeldCard  *Card // discard pickup that must be melded this turn
	HasMeldedThisTurn bool

	ScoreTarget int

	// Timing
	TurnStartedAt time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CurrentPlayer returns the player whose turn it is, or nil before the
// game starts
func (g *Game) CurrentPlayer() *Player {
	if g.CurrentPlayerIdx < 0 || g.CurrentPlayerIdx >= len(g.Players) {
		return nil
	}
	return g.Players[g.CurrentPlayerIdx]
}

// PlayerByID returns the player with the given id, or nil
func (g *Game) PlayerByID(id PlayerID) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// IsCurrent reports whether it is the given player's turn
func (g *Game) IsCurrent(id PlayerID) bool {
	current := g.CurrentPlayer()
	return current != nil && current.ID == id
}

// HighestScorer returns the player with the highest score; ties go to the
// earliest-registered player
func (g *Game) HighestScorer() *Player {
	var best *Player
	for _, p := range g.Players {
		if best == nil || p.Score > best.Score {
			best = p
		}
	}
	return best
}
