package bot

import (
	"github.com/mcoot/rummy500-go/internal/dependencies/random"
	"github.com/mcoot/rummy500-go/internal/model"
)

// RandomStrategy always draws from the pile, lays a random available
// meld, and discards a random card. A baseline opponent.
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

var _ Strategy = (*RandomStrategy)(nil)

// ChooseDraw always draws from the pile, so no pickup obligation can arise
func (s *RandomStrategy) ChooseDraw(g *model.Game, p *model.Player) DrawChoice {
	return DrawChoice{}
}

// ChooseMeld lays a random candidate meld when one exists
func (s *RandomStrategy) ChooseMeld(g *model.Game, p *model.Player) []model.Card {
	candidates := candidateMelds(p.Hand)
	if len(candidates) == 0 {
		return nil
	}
	return candidates[s.random.Intn(len(candidates))]
}

// ChooseExtension extends a random table meld when it can
func (s *RandomStrategy) ChooseExtension(g *model.Game, p *model.Player) *Extension {
	extensions := candidateExtensions(g.TableMelds, p.Hand)
	if len(extensions) == 0 {
		return nil
	}
	return &extensions[s.random.Intn(len(extensions))]
}

// ChooseDiscard discards a random hand card
func (s *RandomStrategy) ChooseDiscard(g *model.Game, p *model.Player) model.Card {
	return p.Hand[s.random.Intn(len(p.Hand))]
}
