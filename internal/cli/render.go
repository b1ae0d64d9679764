package cli

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/mcoot/rummy500-go/internal/model"
)

// cardText renders a card with red suits in red
func cardText(c model.Card) string {
	if c.Suit == model.Hearts || c.Suit == model.Diamonds {
		return pterm.LightRed(c.String())
	}
	return pterm.LightWhite(c.String())
}

func cardsText(cards []model.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = cardText(c)
	}
	return strings.Join(parts, " ")
}

// discardText renders the discard pile top-first, numbered so that 1 is
// the top card. Picking number k takes k cards off the pile.
func discardText(discard []model.Card) string {
	if len(discard) == 0 {
		return pterm.Gray("(empty)")
	}
	parts := make([]string, 0, len(discard))
	for i := len(discard) - 1; i >= 0; i-- {
		num := len(discard) - i
		parts = append(parts, fmt.Sprintf("%d:%s", num, cardText(discard[i])))
	}
	return strings.Join(parts, "  ")
}

func meldsText(melds []*model.Meld, players map[model.PlayerID]string) string {
	if len(melds) == 0 {
		return pterm.Gray("(no melds yet)")
	}
	lines := make([]string, len(melds))
	for i, m := range melds {
		owner := players[m.Owner]
		lines[i] = fmt.Sprintf("%d. [%s] %s  %s", i+1, m.Type, cardsText(m.Cards), pterm.Gray(owner))
	}
	return strings.Join(lines, "\n")
}

func playerNames(g *model.Game) map[model.PlayerID]string {
	names := make(map[model.PlayerID]string, len(g.Players))
	for _, p := range g.Players {
		names[p.ID] = p.DisplayName
	}
	return names
}

// renderTable prints the shared table state and the human player's hand
func renderTable(g *model.Game, humanID model.PlayerID) {
	names := playerNames(g)
	pbox := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2)

	statusParts := make([]string, 0, len(g.Players))
	for _, p := range g.Players {
		status := fmt.Sprintf("%s: %d pts, %d cards", p.DisplayName, p.Score, len(p.Hand))
		if g.IsCurrent(p.ID) {
			status = pterm.LightGreen(status)
		}
		statusParts = append(statusParts, status)
	}

	table := fmt.Sprintf("Round %d  |  Draw pile: %d\n\nDiscard: %s\n\nMelds:\n%s",
		g.Round, g.Deck.DrawPileCount(), discardText(g.Deck.DiscardPile()), meldsText(g.TableMelds, names))

	panels := [][]pterm.Panel{
		{{Data: pbox.WithTitle(pterm.LightYellow("|TABLE|")).WithTitleTopCenter().Sprint(table)}},
		{{Data: strings.Join(statusParts, "   ")}},
	}

	if human := g.PlayerByID(humanID); human != nil {
		hand := fmt.Sprintf("Hand: %s", cardsText(human.Hand))
		if g.RequiredMeldCard != nil && g.IsCurrent(humanID) {
			hand += "\n" + pterm.LightYellow(fmt.Sprintf("Must meld %s before discarding", g.RequiredMeldCard))
		}
		panels = append(panels, []pterm.Panel{{Data: pbox.WithTitle(pterm.LightCyan("|YOUR HAND|")).WithTitleTopCenter().Sprint(hand)}})
	}

	_ = pterm.DefaultPanel.WithPanels(panels).Render()
}

// renderScores prints cumulative scores after a round or game
func renderScores(g *model.Game) {
	rows := [][]string{{"Player", "Score"}}
	for _, p := range g.Players {
		rows = append(rows, []string{p.DisplayName, fmt.Sprintf("%d", p.Score)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// announce prints a narration line for a game event. Card draws from
// the pile stay hidden; everything else is table-visible.
func announce(ev model.Event, names map[model.PlayerID]string, humanID model.PlayerID) {
	name := names[ev.PlayerID]
	switch payload := ev.Payload.(type) {
	case model.PlayerJoinedPayload:
		pterm.Info.Printfln("%s joined the game (%d players)", payload.DisplayName, payload.PlayerCount)
	case model.GameStartedPayload:
		pterm.Success.Printfln("Game started, playing to %d points", payload.ScoreTarget)
	case model.RoundStartedPayload:
		pterm.Info.Printfln("Round %d begins", payload.Round)
	case model.TurnChangedPayload:
		pterm.Info.Printfln("It is %s's turn", names[payload.CurrentPlayer])
	case model.CardDrawnPayload:
		if ev.PlayerID != humanID {
			pterm.Info.Printfln("%s drew from the pile (%d cards left)", name, payload.DrawPileCount)
		}
	case model.DiscardPickedPayload:
		pterm.Info.Printfln("%s picked up %s from the discard pile (%d cards)", name, cardText(payload.PickedCard), payload.StackSize)
	case model.MeldLaidPayload:
		pterm.Success.Printfln("%s laid a %s: %s", name, payload.MeldType, cardsText(payload.Cards))
	case model.MeldExtendedPayload:
		pterm.Success.Printfln("%s extended meld %d with %s", name, payload.MeldIndex+1, cardsText(payload.Cards))
	case model.CardDiscardedPayload:
		pterm.Info.Printfln("%s discarded %s", name, cardText(payload.Card))
	case model.RoundOverPayload:
		pterm.Success.Printfln("Round %d over, %s went out", payload.Round, name)
	case model.GameOverPayload:
		pterm.Success.Printfln("%s wins the game!", name)
	}
}
