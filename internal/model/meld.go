package model

import "sort"

// MeldType distinguishes the two kinds of meld
type MeldType string

const (
	MeldTypeSet      MeldType = "set"      // 3+ cards of one rank, distinct suits
	MeldTypeSequence MeldType = "sequence" // 3+ consecutive cards of one suit
)

// Meld is a laid set or sequence. It is owned by the player who laid it
// but may be extended by anyone. A meld only ever grows, and only via
// TryExtend, which leaves the cards untouched on failure.
type Meld struct {
	Type  MeldType
	Owner PlayerID
	Cards []Card
}

// IsValidSet reports whether cards form a valid set: at least 3 cards,
// all of one rank, with pairwise-distinct suits
func IsValidSet(cards []Card) bool {
	if len(cards) < 3 {
		return false
	}
	rank := cards[0].Rank
	seen := make(map[Suit]bool, len(cards))
	for _, c := range cards {
		if c.Rank != rank {
			return false
		}
		if seen[c.Suit] {
			return false
		}
		seen[c.Suit] = true
	}
	return true
}

// IsValidSequence reports whether cards form a valid sequence: at least 3
// cards of one suit whose ranks form a strictly consecutive ascending run
// under either interpretation of the Ace (low, value 1, or high, value
// 14). The two interpretations are never mixed, so K-A-2 is invalid.
func IsValidSequence(cards []Card) bool {
	if len(cards) < 3 {
		return false
	}
	suit := cards[0].Suit
	for _, c := range cards {
		if c.Suit != suit {
			return false
		}
	}
	return isConsecutive(sequenceRanks(cards, false)) || isConsecutive(sequenceRanks(cards, true))
}

// sequenceRanks returns the sorted rank values of cards, reading the Ace
// as 14 when aceHigh is set
func sequenceRanks(cards []Card, aceHigh bool) []int {
	ranks := make([]int, len(cards))
	for i, c := range cards {
		if aceHigh && c.Rank == Ace {
			ranks[i] = int(AceHighRank)
		} else {
			ranks[i] = int(c.Rank)
		}
	}
	sort.Ints(ranks)
	return ranks
}

// isConsecutive reports whether sorted values ascend strictly by 1
func isConsecutive(ranks []int) bool {
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]+1 {
			return false
		}
	}
	return true
}

// NewSet creates a set meld after validating the cards
func NewSet(owner PlayerID, cards []Card) (*Meld, error) {
	if !IsValidSet(cards) {
		return nil, ErrInvalidMeld
	}
	return &Meld{Type: MeldTypeSet, Owner: owner, Cards: copyCards(cards)}, nil
}

// NewSequence creates a sequence meld after validating the cards; the
// stored cards are sorted ascending by rank, with the Ace placed high
// when that is the interpretation that validates
func NewSequence(owner PlayerID, cards []Card) (*Meld, error) {
	if !IsValidSequence(cards) {
		return nil, ErrInvalidMeld
	}
	return &Meld{Type: MeldTypeSequence, Owner: owner, Cards: sortSequence(cards)}, nil
}

// NewMeld creates a meld from cards, classifying them as a set first and
// a sequence second
func NewMeld(owner PlayerID, cards []Card) (*Meld, error) {
	if IsValidSet(cards) {
		return NewSet(owner, cards)
	}
	if IsValidSequence(cards) {
		return NewSequence(owner, cards)
	}
	return nil, ErrInvalidMeld
}

// TryExtend grows the meld with newCards, revalidating the whole combined
// card list against the meld's type. On failure the meld is untouched.
func (m *Meld) TryExtend(newCards []Card) bool {
	combined := append(copyCards(m.Cards), newCards...)
	switch m.Type {
	case MeldTypeSet:
		if !IsValidSet(combined) {
			return false
		}
		m.Cards = combined
	case MeldTypeSequence:
		if !IsValidSequence(combined) {
			return false
		}
		m.Cards = sortSequence(combined)
	default:
		return false
	}
	return true
}

// Points returns the summed point value of the meld's cards
func (m *Meld) Points() int {
	total := 0
	for _, c := range m.Cards {
		total += c.PointValue()
	}
	return total
}

// sortSequence orders sequence cards ascending by rank, using the
// ace-high reading when the ace-low reading does not hold
func sortSequence(cards []Card) []Card {
	sorted := copyCards(cards)
	aceHigh := !isConsecutive(sequenceRanks(cards, false))
	sort.Slice(sorted, func(i, j int) bool {
		return sequenceValue(sorted[i], aceHigh) < sequenceValue(sorted[j], aceHigh)
	})
	return sorted
}

func sequenceValue(c Card, aceHigh bool) int {
	if aceHigh && c.Rank == Ace {
		return int(AceHighRank)
	}
	return int(c.Rank)
}

func copyCards(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}
