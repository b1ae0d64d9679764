package cli

import (
	"fmt"
	"strings"

	"github.com/mcoot/rummy500-go/internal/model"
)

var rankNames = map[string]model.Rank{
	"A": model.Ace, "2": model.Two, "3": model.Three, "4": model.Four,
	"5": model.Five, "6": model.Six, "7": model.Seven, "8": model.Eight,
	"9": model.Nine, "10": model.Ten, "T": model.Ten,
	"J": model.Jack, "Q": model.Queen, "K": model.King,
}

var suitNames = map[byte]model.Suit{
	'H': model.Hearts,
	'D': model.Diamonds,
	'C': model.Clubs,
	'S': model.Spades,
}

// parseCard reads a card from rank-then-suit notation, e.g. "QS", "10H"
// or "th". Case-insensitive.
func parseCard(s string) (model.Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return model.Card{}, fmt.Errorf("invalid card %q, expected e.g. QS or 10H", s)
	}
	suit, ok := suitNames[s[len(s)-1]]
	if !ok {
		return model.Card{}, fmt.Errorf("invalid suit in %q, expected H, D, C or S", s)
	}
	rank, ok := rankNames[s[:len(s)-1]]
	if !ok {
		return model.Card{}, fmt.Errorf("invalid rank in %q, expected A, 2-10, J, Q or K", s)
	}
	return model.Card{Suit: suit, Rank: rank}, nil
}

func parseCards(tokens []string) ([]model.Card, error) {
	cards := make([]model.Card, 0, len(tokens))
	for _, tok := range tokens {
		card, err := parseCard(tok)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
