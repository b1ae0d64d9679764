package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type PlayerSuite struct {
	suite.Suite
	player *Player
}

func TestPlayerSuite(t *testing.T) {
	suite.Run(t, new(PlayerSuite))
}

func (s *PlayerSuite) SetupTest() {
	s.player = &Player{ID: "p1", DisplayName: "Alice"}
}

func (s *PlayerSuite) TestRemoveCardsFromHandIsAllOrNothing() {
	s.player.AddCardsToHand([]Card{{Spades, Queen}, {Hearts, Queen}})

	ok := s.player.RemoveCardsFromHand([]Card{{Spades, Queen}, {Clubs, Queen}})
	s.False(ok)
	s.Len(s.player.Hand, 2, "failed removal must leave the hand unchanged")

	ok = s.player.RemoveCardsFromHand([]Card{{Spades, Queen}, {Hearts, Queen}})
	s.True(ok)
	s.Empty(s.player.Hand)
}

func (s *PlayerSuite) TestTryLayMeldMovesCardsOutOfHand() {
	s.player.AddCardsToHand([]Card{
		{Spades, Queen}, {Hearts, Queen}, {Clubs, Queen}, {Diamonds, Two},
	})

	meld, ok := s.player.TryLayMeld([]Card{{Spades, Queen}, {Hearts, Queen}, {Clubs, Queen}})
	s.Require().True(ok)
	s.Equal(MeldTypeSet, meld.Type)
	s.Equal(PlayerID("p1"), meld.Owner)
	s.Len(s.player.Hand, 1)
	s.Len(s.player.Melds, 1)
}

func (s *PlayerSuite) TestTryLayMeldRejectsInvalidWithoutMutation() {
	s.player.AddCardsToHand([]Card{{Spades, Queen}, {Hearts, Queen}, {Clubs, King}})

	_, ok := s.player.TryLayMeld([]Card{{Spades, Queen}, {Hearts, Queen}, {Clubs, King}})
	s.False(ok)
	s.Len(s.player.Hand, 3)
	s.Empty(s.player.Melds)
}

func (s *PlayerSuite) TestTryLayMeldRejectsCardsNotInHand() {
	s.player.AddCardsToHand([]Card{{Spades, Queen}, {Hearts, Queen}})

	_, ok := s.player.TryLayMeld([]Card{{Spades, Queen}, {Hearts, Queen}, {Clubs, Queen}})
	s.False(ok)
	s.Len(s.player.Hand, 2)
}

func (s *PlayerSuite) TestTryExtendMeldRollsBackOnFailure() {
	meld, err := NewSequence("p2", []Card{{Spades, Four}, {Spades, Five}, {Spades, Six}})
	s.Require().NoError(err)
	s.player.AddCardsToHand([]Card{{Spades, Nine}})

	ok := s.player.TryExtendMeld(meld, []Card{{Spades, Nine}})
	s.False(ok)
	s.Len(meld.Cards, 3)
	s.True(s.player.HasCard(Card{Spades, Nine}), "failed extension must return the card to hand")
}

func (s *PlayerSuite) TestTryExtendMeldSucceeds() {
	meld, err := NewSequence("p2", []Card{{Spades, Four}, {Spades, Five}, {Spades, Six}})
	s.Require().NoError(err)
	s.player.AddCardsToHand([]Card{{Spades, Seven}})

	ok := s.player.TryExtendMeld(meld, []Card{{Spades, Seven}})
	s.True(ok)
	s.Len(meld.Cards, 4)
	s.Empty(s.player.Hand)
}

func (s *PlayerSuite) TestScoring() {
	s.player.AddCardsToHand([]Card{{Diamonds, Ten}})
	meld, err := NewSet("p1", []Card{{Spades, King}, {Hearts, King}, {Clubs, King}})
	s.Require().NoError(err)
	s.player.Melds = append(s.player.Melds, meld)

	s.Equal(30, s.player.MeldedPoints())
	s.Equal(10, s.player.HandPoints())

	s.player.ApplyRoundScore(false)
	s.Equal(20, s.player.Score)
}

func (s *PlayerSuite) TestScoringWhenGoneOut() {
	meld, err := NewSet("p1", []Card{{Spades, King}, {Hearts, King}, {Clubs, King}})
	s.Require().NoError(err)
	s.player.Melds = append(s.player.Melds, meld)

	s.player.ApplyRoundScore(true)
	s.Equal(30, s.player.Score)
}

func (s *PlayerSuite) TestScoreCanGoNegative() {
	s.player.AddCardsToHand([]Card{{Spades, Ace}, {Hearts, Ace}})

	s.player.ApplyRoundScore(false)
	s.Equal(-30, s.player.Score)
}

func (s *PlayerSuite) TestClearForNewRoundKeepsScore() {
	s.player.AddCardsToHand([]Card{{Spades, Ace}})
	meld, err := NewSet("p1", []Card{{Spades, King}, {Hearts, King}, {Clubs, King}})
	s.Require().NoError(err)
	s.player.Melds = append(s.player.Melds, meld)
	s.player.Score = 120

	s.player.ClearForNewRound()
	s.Empty(s.player.Hand)
	s.Empty(s.player.Melds)
	s.Equal(120, s.player.Score)
}
