package storage

import (
	"context"

	"github.com/mcoot/rummy500-go/internal/model"
)

// Storage defines the interface for the in-process game registry. Games
// live in memory for the lifetime of one process; there is no durable
// backend by design.
type Storage interface {
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	ListGames(ctx context.Context) ([]*model.Game, error)
}
