package game

import (
	"sort"

	"github.com/mcoot/rummy500-go/internal/model"
)

// PickupIsMeldable is the look-ahead legality check for a discard-pile
// pickup: given the candidate card, the full stack that would come with
// it (the candidate plus everything above it), the player's current hand
// and the table melds, it reports whether the candidate could be melded
// immediately. The pickup is approved if the card can form a set with
// same-rank hand cards, extend any existing table meld, or sit in a
// 3-card same-suit run (checked under both ace-low and ace-high
// orderings).
func PickupIsMeldable(hand []model.Card, stack []model.Card, picked model.Card, tableMelds []*model.Meld) bool {
	hypothetical := make([]model.Card, 0, len(hand)+len(stack))
	hypothetical = append(hypothetical, hand...)
	hypothetical = append(hypothetical, stack...)

	return canFormSet(hypothetical, picked) ||
		canExtendAnyMeld(tableMelds, picked) ||
		canFormRun(hypothetical, picked, false) ||
		canFormRun(hypothetical, picked, true)
}

// canFormSet reports whether picked joins at least two other same-rank
// cards with three or more distinct suits in total
func canFormSet(hand []model.Card, picked model.Card) bool {
	suits := make(map[model.Suit]bool)
	for _, c := range hand {
		if c.Rank == picked.Rank {
			suits[c.Suit] = true
		}
	}
	return len(suits) >= 3
}

// canExtendAnyMeld reports whether appending picked to any table meld,
// validated against that meld's own type, keeps it valid
func canExtendAnyMeld(tableMelds []*model.Meld, picked model.Card) bool {
	for _, m := range tableMelds {
		candidate := make([]model.Card, 0, len(m.Cards)+1)
		candidate = append(candidate, m.Cards...)
		candidate = append(candidate, picked)
		switch m.Type {
		case model.MeldTypeSet:
			if model.IsValidSet(candidate) {
				return true
			}
		case model.MeldTypeSequence:
			if model.IsValidSequence(candidate) {
				return true
			}
		}
	}
	return false
}

// canFormRun slides a 3-card window over the hand's cards of picked's
// suit, sorted ascending by rank (ace high when aceHigh is set), looking
// for a valid run that contains picked
func canFormRun(hand []model.Card, picked model.Card, aceHigh bool) bool {
	var suited []model.Card
	for _, c := range hand {
		if c.Suit == picked.Suit {
			suited = append(suited, c)
		}
	}
	if len(suited) < 3 {
		return false
	}

	sort.Slice(suited, func(i, j int) bool {
		return runValue(suited[i], aceHigh) < runValue(suited[j], aceHigh)
	})

	for i := 0; i+3 <= len(suited); i++ {
		window := suited[i : i+3]
		if !containsCard(window, picked) {
			continue
		}
		if model.IsValidSequence(window) {
			return true
		}
	}
	return false
}

func runValue(c model.Card, aceHigh bool) int {
	if aceHigh && c.Rank == model.Ace {
		return int(model.AceHighRank)
	}
	return int(c.Rank)
}

func containsCard(cards []model.Card, target model.Card) bool {
	for _, c := range cards {
		if c == target {
			return true
		}
	}
	return false
}
