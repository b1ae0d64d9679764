package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	// Setup events
	EventPlayerJoined EventType = "player_joined"
	EventGameStarted  EventType = "game_started"
	EventRoundStarted EventType = "round_started"

	// Turn events
	EventTurnChanged   EventType = "turn_changed"
	EventCardDrawn     EventType = "card_drawn"
	EventDiscardPicked EventType = "discard_picked"
	EventMeldLaid      EventType = "meld_laid"
	EventMeldExtended  EventType = "meld_extended"
	EventCardDiscarded EventType = "card_discarded"

	// End-of-play events
	EventRoundOver EventType = "round_over"
	EventGameOver  EventType = "game_over"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType
	Timestamp time.Time
	GameID    GameID
	PlayerID  PlayerID // The player who triggered or is affected
	Payload   any      // Type-specific data
}

// PlayerJoinedPayload contains data for player joined events
type PlayerJoinedPayload struct {
	DisplayName string
	IsBot       bool
	PlayerCount int
}

// GameStartedPayload contains data for game started events
type GameStartedPayload struct {
	Players     []PlayerID
	ScoreTarget int
}

// RoundStartedPayload contains data for round started events
type RoundStartedPayload struct {
	Round int
}

// TurnChangedPayload contains data for turn changed events
type TurnChangedPayload struct {
	CurrentPlayer PlayerID
}

// CardDrawnPayload contains data for card drawn events. The card itself
// is deliberately omitted: observers see only what a player at the table
// would.
type CardDrawnPayload struct {
	DrawPileCount int
}

// DiscardPickedPayload contains data for discard pickup events
type DiscardPickedPayload struct {
	PickedCard Card
	StackSize  int
}

// MeldLaidPayload contains data for meld laid events
type MeldLaidPayload struct {
	MeldType MeldType
	Cards    []Card
}

// MeldExtendedPayload contains data for meld extended events
type MeldExtendedPayload struct {
	MeldIndex int
	Cards     []Card
}

// CardDiscardedPayload contains data for card discarded events
type CardDiscardedPayload struct {
	Card Card
}

// RoundOverPayload contains data for round over events; PlayerID on the
// event is the player who went out
type RoundOverPayload struct {
	Round  int
	Scores map[PlayerID]int
}

// GameOverPayload contains data for game over events; PlayerID on the
// event is the winner
type GameOverPayload struct {
	Scores map[PlayerID]int
}
