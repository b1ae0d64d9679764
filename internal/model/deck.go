package model

import (
	"github.com/mcoot/rummy500-go/internal/dependencies/random"
)

// Deck owns the draw pile and the discard pile for one round. The top of
// the draw pile is the end of its slice; the discard pile is ordered
// bottom (index 0) to top (last index).
type Deck struct {
	drawPile    []Card
	discardPile []Card
}

// NewDeck creates a deck with all 52 cards in the draw pile, unshuffled
func NewDeck() *Deck {
	d := &Deck{
		drawPile:    make([]Card, 0, 52),
		discardPile: make([]Card, 0, 52),
	}
	for _, suit := range Suits() {
		for rank := Ace; rank <= King; rank++ {
			d.drawPile = append(d.drawPile, Card{Suit: suit, Rank: rank})
		}
	}
	return d
}

// Shuffle permutes the draw pile in place
func (d *Deck) Shuffle(rnd random.Random) {
	rnd.Shuffle(len(d.drawPile), func(i, j int) {
		d.drawPile[i], d.drawPile[j] = d.drawPile[j], d.drawPile[i]
	})
}

// DrawFromPile removes and returns the top card of the draw pile. If the
// draw pile is empty it first recycles the discard pile: the topmost
// discard card stays put, every other discard card is shuffled into a new
// draw pile. Fails with ErrNoCardsAvailable only when both piles are
// exhausted.
func (d *Deck) DrawFromPile(rnd random.Random) (Card, error) {
	if len(d.drawPile) == 0 {
		if len(d.discardPile) <= 1 {
			return Card{}, ErrNoCardsAvailable
		}
		d.recycle(rnd)
	}
	top := d.drawPile[len(d.drawPile)-1]
	d.drawPile = d.drawPile[:len(d.drawPile)-1]
	return top, nil
}

// recycle moves all but the top discard card into the draw pile and
// shuffles it
func (d *Deck) recycle(rnd random.Random) {
	top := d.discardPile[len(d.discardPile)-1]
	d.drawPile = append(d.drawPile, d.discardPile[:len(d.discardPile)-1]...)
	d.discardPile = d.discardPile[:0]
	d.discardPile = append(d.discardPile, top)
	d.Shuffle(rnd)
}

// DrawFromDiscard removes and returns the card at index and every card
// above it, in bottom-to-top order, as one atomic transfer. index 0 is
// the bottom of the pile.
func (d *Deck) DrawFromDiscard(index int) ([]Card, error) {
	if index < 0 || index >= len(d.discardPile) {
		return nil, ErrIndexOutOfRange
	}
	picked := make([]Card, len(d.discardPile)-index)
	copy(picked, d.discardPile[index:])
	d.discardPile = d.discardPile[:index]
	return picked, nil
}

// AddToDiscard places a card on top of the discard pile
func (d *Deck) AddToDiscard(card Card) {
	d.discardPile = append(d.discardPile, card)
}

// Deal draws cardsPerHand cards round-robin into numHands hands, then
// flips one more card onto the discard pile to start it
func (d *Deck) Deal(rnd random.Random, numHands, cardsPerHand int) ([][]Card, error) {
	hands := make([][]Card, numHands)
	for i := 0; i < cardsPerHand; i++ {
		for h := 0; h < numHands; h++ {
			card, err := d.DrawFromPile(rnd)
			if err != nil {
				return nil, err
			}
			hands[h] = append(hands[h], card)
		}
	}
	flip, err := d.DrawFromPile(rnd)
	if err != nil {
		return nil, err
	}
	d.AddToDiscard(flip)
	return hands, nil
}

// DrawPileCount returns the number of cards left in the draw pile
func (d *Deck) DrawPileCount() int {
	return len(d.drawPile)
}

// DiscardPile returns a copy of the discard pile, bottom to top
func (d *Deck) DiscardPile() []Card {
	pile := make([]Card, len(d.discardPile))
	copy(pile, d.discardPile)
	return pile
}

// DiscardCount returns the number of cards in the discard pile
func (d *Deck) DiscardCount() int {
	return len(d.discardPile)
}

// PeekDiscard returns the card at index in the discard pile without
// removing it
func (d *Deck) PeekDiscard(index int) (Card, error) {
	if index < 0 || index >= len(d.discardPile) {
		return Card{}, ErrIndexOutOfRange
	}
	return d.discardPile[index], nil
}
