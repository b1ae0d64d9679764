package model

// PlayerID uniquely identifies a player within a game
type PlayerID string

// Player holds one player's hand, laid melds and running score. Hand
// order carries no meaning but is preserved for display continuity.
type Player struct {
	ID          PlayerID
	DisplayName string
	IsBot       bool
	BotStrategy string
	Hand        []Card
	Melds       []*Meld
	Score       int
}

// AddCardToHand appends a card to the hand
func (p *Player) AddCardToHand(card Card) {
	p.Hand = append(p.Hand, card)
}

// AddCardsToHand appends cards to the hand in order
func (p *Player) AddCardsToHand(cards []Card) {
	p.Hand = append(p.Hand, cards...)
}

// HasCard reports whether the card is in the hand
func (p *Player) HasCard(card Card) bool {
	for _, c := range p.Hand {
		if c == card {
			return true
		}
	}
	return false
}

// RemoveCardsFromHand removes the given cards from the hand. If any card
// is missing nothing is removed and it returns false; this all-or-nothing
// check keeps the meld operations built on top of it reversible.
func (p *Player) RemoveCardsFromHand(cards []Card) bool {
	// Work on a copy of cards so callers may pass a slice of the hand
	// itself
	toRemove := append([]Card(nil), cards...)
	remaining := make([]Card, 0, len(p.Hand))

outer:
	for _, h := range p.Hand {
		for i, c := range toRemove {
			if h == c {
				toRemove = append(toRemove[:i], toRemove[i+1:]...)
				continue outer
			}
		}
		remaining = append(remaining, h)
	}

	if len(toRemove) > 0 {
		return false
	}
	p.Hand = remaining
	return true
}

// TryLayMeld validates cards as a set or sequence (set checked first),
// removes them from the hand and appends the new meld to the player's
// meld list. Fails atomically: on any failure the hand is unchanged.
func (p *Player) TryLayMeld(cards []Card) (*Meld, bool) {
	meld, err := NewMeld(p.ID, cards)
	if err != nil {
		return nil, false
	}
	if !p.RemoveCardsFromHand(cards) {
		return nil, false
	}
	p.Melds = append(p.Melds, meld)
	return meld, true
}

// TryExtendMeld removes cards from the hand and extends the given meld
// with them. If the extension is rejected the cards are returned to the
// hand, so a failed call leaves the hand's contents unchanged.
func (p *Player) TryExtendMeld(meld *Meld, cards []Card) bool {
	if !p.RemoveCardsFromHand(cards) {
		return false
	}
	if !meld.TryExtend(cards) {
		p.AddCardsToHand(cards)
		return false
	}
	return true
}

// HandPoints returns the summed point value of cards still in hand
func (p *Player) HandPoints() int {
	total := 0
	for _, c := range p.Hand {
		total += c.PointValue()
	}
	return total
}

// MeldedPoints returns the summed point value of cards in this player's
// own melds
func (p *Player) MeldedPoints() int {
	total := 0
	for _, m := range p.Melds {
		total += m.Points()
	}
	return total
}

// ApplyRoundScore adds this round's result to the running score: melded
// points, minus hand points unless the player went out
func (p *Player) ApplyRoundScore(wentOut bool) {
	delta := p.MeldedPoints()
	if !wentOut {
		delta -= p.HandPoints()
	}
	p.Score += delta
}

// ClearForNewRound empties the hand and meld list, keeping the score
func (p *Player) ClearForNewRound() {
	p.Hand = nil
	p.Melds = nil
}
