package bot

import "github.com/mcoot/rummy500-go/internal/model"

// DrawChoice is a strategy's decision for the draw phase
type DrawChoice struct {
	// FromDiscard selects the discard pile; DiscardIndex is the targeted
	// card (everything above it comes too)
	FromDiscard  bool
	DiscardIndex int
}

// Extension is a strategy's decision to extend a table meld
type Extension struct {
	MeldIndex int
	Cards     []model.Card
}

// Strategy defines how a bot plays its turn. Strategies only read game
// state and propose actions; the turn runner issues them through the
// same controller methods a human driver uses, so an illegal proposal
// is simply rejected.
type Strategy interface {
	// ChooseDraw selects the draw source for this turn
	ChooseDraw(game *model.Game, player *model.Player) DrawChoice
	// ChooseMeld returns the next meld to lay from hand, or nil for none
	ChooseMeld(game *model.Game, player *model.Player) []model.Card
	// ChooseExtension returns the next table-meld extension, or nil for none
	ChooseExtension(game *model.Game, player *model.Player) *Extension
	// ChooseDiscard selects the card to discard, ending the turn
	ChooseDiscard(game *model.Game, player *model.Player) model.Card
}
