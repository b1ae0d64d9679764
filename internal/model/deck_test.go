package model

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/rummy500-go/internal/dependencies/random"
)

type DeckSuite struct {
	suite.Suite
	rnd random.Random
}

func TestDeckSuite(t *testing.T) {
	suite.Run(t, new(DeckSuite))
}

func (s *DeckSuite) SetupTest() {
	s.rnd = random.NewSeeded(42)
}

func (s *DeckSuite) TestNewDeckHasAllFiftyTwoCards() {
	deck := NewDeck()
	s.Equal(52, deck.DrawPileCount())
	s.Equal(0, deck.DiscardCount())

	seen := make(map[int]bool)
	for i := 0; i < 52; i++ {
		card, err := deck.DrawFromPile(s.rnd)
		s.Require().NoError(err)
		s.False(seen[card.ID()], "duplicate card %v", card)
		seen[card.ID()] = true
	}
}

func (s *DeckSuite) TestShuffleIsAPermutation() {
	deck := NewDeck()
	deck.Shuffle(s.rnd)
	s.Equal(52, deck.DrawPileCount())

	seen := make(map[int]bool)
	for i := 0; i < 52; i++ {
		card, err := deck.DrawFromPile(s.rnd)
		s.Require().NoError(err)
		seen[card.ID()] = true
	}
	s.Len(seen, 52)
}

func (s *DeckSuite) TestDrawFromEmptyDeckFails() {
	deck := &Deck{}
	_, err := deck.DrawFromPile(s.rnd)
	s.ErrorIs(err, ErrNoCardsAvailable)
}

func (s *DeckSuite) TestDrawFromDiscardReturnsStackInOrder() {
	deck := &Deck{}
	bottom := Card{Hearts, Two}
	middle := Card{Clubs, Nine}
	top := Card{Spades, Queen}
	deck.AddToDiscard(bottom)
	deck.AddToDiscard(middle)
	deck.AddToDiscard(top)

	stack, err := deck.DrawFromDiscard(1)
	s.Require().NoError(err)
	s.Equal([]Card{middle, top}, stack)
	s.Equal(1, deck.DiscardCount())

	remaining, err := deck.PeekDiscard(0)
	s.Require().NoError(err)
	s.Equal(bottom, remaining)
}

func (s *DeckSuite) TestDrawFromDiscardRejectsBadIndex() {
	deck := &Deck{}
	deck.AddToDiscard(Card{Hearts, Two})

	_, err := deck.DrawFromDiscard(-1)
	s.ErrorIs(err, ErrIndexOutOfRange)
	_, err = deck.DrawFromDiscard(1)
	s.ErrorIs(err, ErrIndexOutOfRange)
}

func (s *DeckSuite) TestRecycleKeepsTopDiscard() {
	deck := &Deck{}
	for rank := Ace; rank <= Five; rank++ {
		deck.AddToDiscard(Card{Diamonds, rank})
	}

	card, err := deck.DrawFromPile(s.rnd)
	s.Require().NoError(err)
	s.NotEqual(Card{Diamonds, Five}, card, "recycled draw must not include the kept top card")
	s.Equal(1, deck.DiscardCount())
	s.Equal(3, deck.DrawPileCount())

	top, err := deck.PeekDiscard(0)
	s.Require().NoError(err)
	s.Equal(Card{Diamonds, Five}, top)
}

func (s *DeckSuite) TestRecycleWithSingleDiscardFails() {
	deck := &Deck{}
	deck.AddToDiscard(Card{Spades, King})

	_, err := deck.DrawFromPile(s.rnd)
	s.ErrorIs(err, ErrNoCardsAvailable)
	s.Equal(1, deck.DiscardCount())
}

func (s *DeckSuite) TestDealDistributesRoundRobinAndFlips() {
	deck := NewDeck()
	deck.Shuffle(s.rnd)

	hands, err := deck.Deal(s.rnd, 2, 7)
	s.Require().NoError(err)
	s.Len(hands, 2)
	s.Len(hands[0], 7)
	s.Len(hands[1], 7)
	s.Equal(37, deck.DrawPileCount())
	s.Equal(1, deck.DiscardCount())

	seen := make(map[int]bool)
	for _, hand := range hands {
		for _, card := range hand {
			s.False(seen[card.ID()])
			seen[card.ID()] = true
		}
	}
}

func (s *DeckSuite) TestDealFailsWhenNotEnoughCards() {
	deck := &Deck{}
	_, err := deck.Deal(s.rnd, 2, 7)
	s.ErrorIs(err, ErrNoCardsAvailable)
}
