package model

import "fmt"

// Suit identifies one of the four card suits
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Rank identifies a card rank, Ace (1) through King (13)
type Rank int

const (
	Ace   Rank = 1
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// AceHighRank is the rank value of an Ace when it sits at the top of a
// sequence (Q-K-A)
const AceHighRank Rank = 14

// Card is an immutable suit/rank pair. Cards are comparable values; two
// cards are the same card iff their suit and rank match.
type Card struct {
	Suit Suit
	Rank Rank
}

// ID returns a stable identity in 0..51, unique per (suit, rank)
func (c Card) ID() int {
	return int(c.Suit)*13 + int(c.Rank) - 1
}

// PointValue returns the Rummy 500 scoring value of the card:
// Ace 15, Ten through King 10, everything else 5
func (c Card) PointValue() int {
	switch {
	case c.Rank == Ace:
		return 15
	case c.Rank >= Ten:
		return 10
	default:
		return 5
	}
}

// String renders the card as rank + suit symbol, e.g. "Q♠" or "10♥"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// String returns the suit's symbol
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// String returns the rank's display form ("A", "2".."10", "J", "Q", "K")
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Suits lists all four suits in a stable order
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}
