package bot

import (
	"github.com/mcoot/rummy500-go/internal/model"
	"github.com/mcoot/rummy500-go/internal/services/game"
)

// GreedyStrategy lays everything it can, picks up from the discard pile
// whenever a pickup is legal, and discards its least connected card. The
// heuristics here are not part of the engine's correctness surface.
type GreedyStrategy struct{}

// NewGreedyStrategy creates a new GreedyStrategy
func NewGreedyStrategy() *GreedyStrategy {
	return &GreedyStrategy{}
}

var _ Strategy = (*GreedyStrategy)(nil)

// ChooseDraw scans the discard pile from the top down and takes the first
// card the engine would let it meld, minimizing the size of the picked-up
// stack; otherwise it draws from the pile
func (s *GreedyStrategy) ChooseDraw(g *model.Game, p *model.Player) DrawChoice {
	pile := g.Deck.DiscardPile()
	for i := len(pile) - 1; i >= 0; i-- {
		if game.PickupIsMeldable(p.Hand, pile[i:], pile[i], g.TableMelds) {
			return DrawChoice{FromDiscard: true, DiscardIndex: i}
		}
	}
	return DrawChoice{}
}

// ChooseMeld lays any available meld, preferring one that satisfies a
// pending picked-up discard card
func (s *GreedyStrategy) ChooseMeld(g *model.Game, p *model.Player) []model.Card {
	candidates := candidateMelds(p.Hand)
	if len(candidates) == 0 {
		return nil
	}
	if g.RequiredMeldCard != nil {
		for _, cand := range candidates {
			if containsCard(cand, *g.RequiredMeldCard) {
				return cand
			}
		}
		return nil
	}
	return candidates[0]
}

// ChooseExtension extends any table meld it can, preferring an extension
// that satisfies a pending picked-up discard card
func (s *GreedyStrategy) ChooseExtension(g *model.Game, p *model.Player) *Extension {
	extensions := candidateExtensions(g.TableMelds, p.Hand)
	if len(extensions) == 0 {
		return nil
	}
	if g.RequiredMeldCard != nil {
		for _, ext := range extensions {
			if containsCard(ext.Cards, *g.RequiredMeldCard) {
				return &ext
			}
		}
		return nil
	}
	return &extensions[0]
}

// ChooseDiscard drops the card with the weakest rank/suit adjacency to
// the rest of the hand, breaking ties toward the highest point value
func (s *GreedyStrategy) ChooseDiscard(g *model.Game, p *model.Player) model.Card {
	best := p.Hand[0]
	bestScore := adjacencyScore(p.Hand, best)
	for _, c := range p.Hand[1:] {
		score := adjacencyScore(p.Hand, c)
		if score < bestScore || (score == bestScore && c.PointValue() > best.PointValue()) {
			best = c
			bestScore = score
		}
	}
	return best
}

// adjacencyScore rates how connected a card is to the rest of the hand:
// same-rank pairs score highest, then same-suit neighbors one and two
// ranks away
func adjacencyScore(hand []model.Card, card model.Card) int {
	score := 0
	for _, other := range hand {
		if other == card {
			continue
		}
		if other.Rank == card.Rank && other.Suit != card.Suit {
			score += 3
		}
		if other.Suit == card.Suit {
			gap := int(other.Rank) - int(card.Rank)
			if gap < 0 {
				gap = -gap
			}
			switch gap {
			case 1:
				score += 2
			case 2:
				score++
			}
		}
	}
	return score
}
