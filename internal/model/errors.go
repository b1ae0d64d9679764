package model

import "errors"

// Common errors used across the application
var (
	// Game lookup / setup errors
	ErrGameNotFound        = errors.New("game not found")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrGameFull            = errors.New("game already has the maximum number of players")
	ErrPlayerAlreadyJoined = errors.New("player is already in the game")
	ErrInsufficientPlayers = errors.New("insufficient players to start game")
	ErrGameInProgress      = errors.New("game is already in progress")
	ErrGameOver            = errors.New("game is over")

	// Turn / phase errors
	ErrNotPlayerTurn = errors.New("not this player's turn")
	ErrWrongPhase    = errors.New("action not allowed in the current phase")
	ErrRoundNotOver  = errors.New("round is not over")

	// Deck errors
	ErrNoCardsAvailable = errors.New("no cards available to draw")
	ErrIndexOutOfRange  = errors.New("discard pile index out of range")

	// Meld errors
	ErrInvalidMeld       = errors.New("cards do not form a valid set or sequence")
	ErrInvalidExtension  = errors.New("cards do not extend the meld")
	ErrMeldNotFound      = errors.New("table meld not found")
	ErrCardNotInHand     = errors.New("card is not in the player's hand")
	ErrRequiredCardUnmet = errors.New("picked-up discard card must be melded first")
	ErrPickupNotMeldable = errors.New("discard card cannot be melded from the current hand")
)
