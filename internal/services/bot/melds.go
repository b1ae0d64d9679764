package bot

import (
	"sort"

	"github.com/mcoot/rummy500-go/internal/model"
)

// candidateMelds enumerates the melds a hand could lay right now: one set
// per rank with three or more distinct suits, and maximal same-suit runs
// of three or more consecutive ranks under both ace orderings.
func candidateMelds(hand []model.Card) [][]model.Card {
	var candidates [][]model.Card

	// Sets: group by rank, one card per suit
	byRank := make(map[model.Rank][]model.Card)
	for _, c := range hand {
		if !hasSuit(byRank[c.Rank], c.Suit) {
			byRank[c.Rank] = append(byRank[c.Rank], c)
		}
	}
	ranks := make([]model.Rank, 0, len(byRank))
	for r := range byRank {
		ranks = append(ranks, r)
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })
	for _, r := range ranks {
		if cards := byRank[r]; model.IsValidSet(cards) {
			candidates = append(candidates, cards)
		}
	}

	// Runs: per suit, maximal consecutive stretches, ace low then ace high
	for _, suit := range model.Suits() {
		var suited []model.Card
		for _, c := range hand {
			if c.Suit == suit {
				suited = append(suited, c)
			}
		}
		for _, aceHigh := range []bool{false, true} {
			for _, run := range maximalRuns(suited, aceHigh) {
				if model.IsValidSequence(run) && !containsRun(candidates, run) {
					candidates = append(candidates, run)
				}
			}
		}
	}

	return candidates
}

// candidateExtensions enumerates single-card extensions of the table
// melds that the hand could make
func candidateExtensions(tableMelds []*model.Meld, hand []model.Card) []Extension {
	var extensions []Extension
	for i, m := range tableMelds {
		for _, c := range hand {
			candidate := append(append([]model.Card{}, m.Cards...), c)
			valid := false
			switch m.Type {
			case model.MeldTypeSet:
				valid = model.IsValidSet(candidate)
			case model.MeldTypeSequence:
				valid = model.IsValidSequence(candidate)
			}
			if valid {
				extensions = append(extensions, Extension{MeldIndex: i, Cards: []model.Card{c}})
			}
		}
	}
	return extensions
}

// maximalRuns splits same-suit cards into maximal consecutive stretches
func maximalRuns(suited []model.Card, aceHigh bool) [][]model.Card {
	if len(suited) < 3 {
		return nil
	}
	sorted := append([]model.Card{}, suited...)
	sort.Slice(sorted, func(i, j int) bool {
		return rankValue(sorted[i], aceHigh) < rankValue(sorted[j], aceHigh)
	})

	var runs [][]model.Card
	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && rankValue(sorted[i], aceHigh) == rankValue(sorted[i-1], aceHigh)+1 {
			continue
		}
		if i-start >= 3 {
			runs = append(runs, sorted[start:i])
		}
		start = i
	}
	return runs
}

func rankValue(c model.Card, aceHigh bool) int {
	if aceHigh && c.Rank == model.Ace {
		return int(model.AceHighRank)
	}
	return int(c.Rank)
}

func hasSuit(cards []model.Card, suit model.Suit) bool {
	for _, c := range cards {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

func containsCard(cards []model.Card, target model.Card) bool {
	for _, c := range cards {
		if c == target {
			return true
		}
	}
	return false
}

func containsRun(candidates [][]model.Card, run []model.Card) bool {
	for _, cand := range candidates {
		if len(cand) != len(run) {
			continue
		}
		same := true
		for i := range cand {
			if cand[i] != run[i] {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}
	return false
}
