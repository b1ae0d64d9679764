package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/rummy500-go/internal/dependencies/mocks"
	"github.com/mcoot/rummy500-go/internal/model"
)

func card(suit model.Suit, rank model.Rank) model.Card {
	return model.Card{Suit: suit, Rank: rank}
}

func TestCandidateMeldsFindsSets(t *testing.T) {
	hand := []model.Card{
		card(model.Spades, model.Queen),
		card(model.Hearts, model.Queen),
		card(model.Clubs, model.Queen),
		card(model.Diamonds, model.Two),
	}

	candidates := candidateMelds(hand)
	require.Len(t, candidates, 1)
	assert.True(t, model.IsValidSet(candidates[0]))
	assert.Len(t, candidates[0], 3)
}

func TestCandidateMeldsFindsMaximalRuns(t *testing.T) {
	hand := []model.Card{
		card(model.Hearts, model.Seven),
		card(model.Hearts, model.Four),
		card(model.Hearts, model.Six),
		card(model.Hearts, model.Five),
	}

	candidates := candidateMelds(hand)
	require.Len(t, candidates, 1)
	// The full 4-5-6-7 stretch, not a 3-card fragment
	assert.Len(t, candidates[0], 4)
	assert.True(t, model.IsValidSequence(candidates[0]))
}

func TestCandidateMeldsFindsAceHighRuns(t *testing.T) {
	hand := []model.Card{
		card(model.Spades, model.Ace),
		card(model.Spades, model.King),
		card(model.Spades, model.Queen),
	}

	candidates := candidateMelds(hand)
	require.Len(t, candidates, 1)
	assert.True(t, model.IsValidSequence(candidates[0]))
}

func TestCandidateMeldsEmptyForDisconnectedHand(t *testing.T) {
	hand := []model.Card{
		card(model.Spades, model.King),
		card(model.Spades, model.Nine),
		card(model.Hearts, model.Two),
		card(model.Clubs, model.Five),
	}
	assert.Empty(t, candidateMelds(hand))
}

func TestCandidateExtensions(t *testing.T) {
	set, err := model.NewSet("p1", []model.Card{
		card(model.Spades, model.Queen),
		card(model.Hearts, model.Queen),
		card(model.Clubs, model.Queen),
	})
	require.NoError(t, err)
	run, err := model.NewSequence("p1", []model.Card{
		card(model.Hearts, model.Four),
		card(model.Hearts, model.Five),
		card(model.Hearts, model.Six),
	})
	require.NoError(t, err)

	hand := []model.Card{
		card(model.Diamonds, model.Queen),
		card(model.Hearts, model.Seven),
		card(model.Spades, model.Two),
	}

	extensions := candidateExtensions([]*model.Meld{set, run}, hand)
	require.Len(t, extensions, 2)
	assert.Equal(t, 0, extensions[0].MeldIndex)
	assert.Equal(t, []model.Card{card(model.Diamonds, model.Queen)}, extensions[0].Cards)
	assert.Equal(t, 1, extensions[1].MeldIndex)
	assert.Equal(t, []model.Card{card(model.Hearts, model.Seven)}, extensions[1].Cards)
}

func TestGreedyChoosesShallowestMeldablePickup(t *testing.T) {
	deck := &model.Deck{}
	deck.AddToDiscard(card(model.Clubs, model.Two))
	deck.AddToDiscard(card(model.Spades, model.Queen))
	deck.AddToDiscard(card(model.Diamonds, model.Nine))
	g := &model.Game{Deck: deck}
	p := &model.Player{Hand: []model.Card{
		card(model.Hearts, model.Queen),
		card(model.Clubs, model.Queen),
	}}

	choice := NewGreedyStrategy().ChooseDraw(g, p)
	assert.True(t, choice.FromDiscard)
	assert.Equal(t, 1, choice.DiscardIndex, "takes the queen, not the deeper two")
}

func TestGreedyDrawsFromPileWhenNothingIsMeldable(t *testing.T) {
	deck := &model.Deck{}
	deck.AddToDiscard(card(model.Clubs, model.Two))
	g := &model.Game{Deck: deck}
	p := &model.Player{Hand: []model.Card{card(model.Hearts, model.King)}}

	choice := NewGreedyStrategy().ChooseDraw(g, p)
	assert.False(t, choice.FromDiscard)
}

func TestGreedyMeldPrefersRequiredCard(t *testing.T) {
	required := card(model.Spades, model.Queen)
	g := &model.Game{RequiredMeldCard: &required}
	p := &model.Player{Hand: []model.Card{
		// Two possible melds; only the queens satisfy the obligation
		card(model.Hearts, model.Four),
		card(model.Clubs, model.Four),
		card(model.Diamonds, model.Four),
		card(model.Spades, model.Queen),
		card(model.Hearts, model.Queen),
		card(model.Clubs, model.Queen),
	}}

	cards := NewGreedyStrategy().ChooseMeld(g, p)
	require.NotNil(t, cards)
	assert.Contains(t, cards, required)
}

func TestGreedyMeldReturnsNilWhenRequiredCardUnusable(t *testing.T) {
	required := card(model.Spades, model.Queen)
	g := &model.Game{RequiredMeldCard: &required}
	p := &model.Player{Hand: []model.Card{
		card(model.Hearts, model.Four),
		card(model.Clubs, model.Four),
		card(model.Diamonds, model.Four),
		card(model.Spades, model.Queen),
	}}

	assert.Nil(t, NewGreedyStrategy().ChooseMeld(g, p))
}

func TestGreedyDiscardsLeastConnectedCard(t *testing.T) {
	g := &model.Game{}
	p := &model.Player{Hand: []model.Card{
		card(model.Hearts, model.Five),
		card(model.Hearts, model.Six),
		card(model.Spades, model.Six),
		card(model.Clubs, model.Two),
	}}

	discard := NewGreedyStrategy().ChooseDiscard(g, p)
	assert.Equal(t, card(model.Clubs, model.Two), discard)
}

func TestGreedyDiscardBreaksTiesTowardHighPoints(t *testing.T) {
	g := &model.Game{}
	p := &model.Player{Hand: []model.Card{
		card(model.Clubs, model.Two),
		card(model.Diamonds, model.Ace),
	}}

	// Both cards are equally disconnected; shed the expensive ace
	discard := NewGreedyStrategy().ChooseDiscard(g, p)
	assert.Equal(t, card(model.Diamonds, model.Ace), discard)
}

func TestRandomStrategyAlwaysDrawsFromPile(t *testing.T) {
	deck := &model.Deck{}
	deck.AddToDiscard(card(model.Spades, model.Queen))
	g := &model.Game{Deck: deck}
	p := &model.Player{Hand: []model.Card{
		card(model.Hearts, model.Queen),
		card(model.Clubs, model.Queen),
	}}

	choice := NewRandomStrategy(mocks.NewMockRandom()).ChooseDraw(g, p)
	assert.False(t, choice.FromDiscard)
}

func TestRandomStrategyDiscardUsesRandomIndex(t *testing.T) {
	rnd := mocks.NewMockRandom()
	rnd.QueueIntn(2)
	g := &model.Game{}
	p := &model.Player{Hand: []model.Card{
		card(model.Hearts, model.Five),
		card(model.Hearts, model.Six),
		card(model.Clubs, model.Two),
	}}

	discard := NewRandomStrategy(rnd).ChooseDiscard(g, p)
	assert.Equal(t, card(model.Clubs, model.Two), discard)
}
