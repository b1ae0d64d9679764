package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/rummy500-go/internal/model"
)

// IntegrationSuite plays full bot-vs-bot games through the wired app
type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp(7)
	s.ctx = context.Background()
}

func (s *IntegrationSuite) startBotGame(scoreTarget int) *model.Game {
	g, err := s.app.GameController.CreateGame(s.ctx, scoreTarget)
	s.Require().NoError(err)

	_, err = s.app.BotService.AddBot(s.ctx, g.ID, "Greedy", model.BotStrategyGreedy)
	s.Require().NoError(err)
	_, err = s.app.BotService.AddBot(s.ctx, g.ID, "Random", model.BotStrategyRandom)
	s.Require().NoError(err)

	s.Require().NoError(s.app.GameController.StartGame(s.ctx, g.ID))

	g, err = s.app.GameController.GetGame(s.ctx, g.ID)
	s.Require().NoError(err)
	return g
}

// totalCards counts every card in hands, table melds and the deck
func (s *IntegrationSuite) totalCards(g *model.Game) int {
	total := g.Deck.DrawPileCount() + g.Deck.DiscardCount()
	for _, p := range g.Players {
		total += len(p.Hand)
	}
	for _, m := range g.TableMelds {
		total += len(m.Cards)
	}
	return total
}

func (s *IntegrationSuite) TestWiringDealsAPlayableGame() {
	g := s.startBotGame(0)

	s.Equal(model.PhaseDraw, g.Phase)
	s.Equal(model.DefaultScoreTarget, g.ScoreTarget)
	s.Len(g.Players, 2)
	s.Len(g.Players[0].Hand, 7)
	s.Len(g.Players[1].Hand, 7)
	s.Equal(37, g.Deck.DrawPileCount())
	s.Equal(1, g.Deck.DiscardCount())
	s.Equal(52, s.totalCards(g))
}

func (s *IntegrationSuite) TestBotsPlayARoundToCompletion() {
	g := s.startBotGame(0)

	for turns := 0; turns < 1000; turns++ {
		if g.Phase == model.PhaseRoundOver || g.Phase == model.PhaseGameOver {
			break
		}
		err := s.app.BotService.TakeTurn(s.ctx, g.ID, g.CurrentPlayer().ID)
		s.Require().NoError(err)
		s.Require().Equal(52, s.totalCards(g), "no card may appear or vanish mid round")
	}

	s.Require().Contains([]model.Phase{model.PhaseRoundOver, model.PhaseGameOver}, g.Phase,
		"two melding bots must finish a round")

	// Someone went out with an empty hand and banked their melds
	wentOut := false
	for _, p := range g.Players {
		if len(p.Hand) == 0 {
			wentOut = true
			s.GreaterOrEqual(p.Score, 15, "going out requires at least one meld laid")
		}
	}
	s.True(wentOut)
}

func (s *IntegrationSuite) TestBotsPlayAGameToCompletion() {
	var observed []model.EventType
	s.app.Notifier.Subscribe(func(ev model.Event) {
		observed = append(observed, ev.Type)
	})

	// A tiny target ends the game after the first round: whoever goes
	// out banks at least one meld, which is worth 15 or more
	g := s.startBotGame(5)

	for turns := 0; turns < 2000 && g.Phase != model.PhaseGameOver; turns++ {
		if g.Phase == model.PhaseRoundOver {
			s.Require().NoError(s.app.GameController.StartNextRound(s.ctx, g.ID))
			continue
		}
		s.Require().NoError(s.app.BotService.TakeTurn(s.ctx, g.ID, g.CurrentPlayer().ID))
	}

	s.Require().Equal(model.PhaseGameOver, g.Phase)
	s.Require().NotEmpty(g.Winner)
	s.GreaterOrEqual(g.PlayerByID(g.Winner).Score, g.ScoreTarget)
	s.Contains(observed, model.EventRoundOver)
	s.Contains(observed, model.EventGameOver)

	// A finished game accepts no further rounds or actions
	s.ErrorIs(s.app.GameController.StartNextRound(s.ctx, g.ID), model.ErrGameOver)
}
