package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/rummy500-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSaveAndGetGame() {
	game := &model.Game{ID: "g1", Phase: model.PhaseWaitingForPlayers}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	got, err := s.storage.GetGame(s.ctx, "g1")
	s.Require().NoError(err)
	s.Equal(game, got)
}

func (s *StorageSuite) TestGetMissingGameFails() {
	_, err := s.storage.GetGame(s.ctx, "nope")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteGame() {
	game := &model.Game{ID: "g1"}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
	s.Require().NoError(s.storage.DeleteGame(s.ctx, "g1"))

	_, err := s.storage.GetGame(s.ctx, "g1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestListGamesOrderedByCreation() {
	later := &model.Game{ID: "later", CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}
	earlier := &model.Game{ID: "earlier", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s.Require().NoError(s.storage.SaveGame(s.ctx, later))
	s.Require().NoError(s.storage.SaveGame(s.ctx, earlier))

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 2)
	s.Equal(model.GameID("earlier"), games[0].ID)
	s.Equal(model.GameID("later"), games[1].ID)
}
