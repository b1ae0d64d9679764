package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mcoot/rummy500-go/internal/factory"
	"github.com/mcoot/rummy500-go/internal/model"
	"github.com/mcoot/rummy500-go/internal/services/bot"
)

// maxDemoRounds bounds a demo in case a match never reaches the score
// target
const maxDemoRounds = 200

func newDemoCmd() *cobra.Command {
	players := 2
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Watch bots play a full game against each other",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(players)
		},
	}
	cmd.Flags().IntVarP(&players, "players", "p", players, "Number of bot players (2-4)")
	return cmd
}

func runDemo(players int) error {
	if players < model.MinPlayers || players > model.MaxPlayers {
		return fmt.Errorf("players must be between %d and %d", model.MinPlayers, model.MaxPlayers)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := factory.New(factory.Config{
		Logger:    buildLogger(cfg.Verbose),
		Seed:      cfg.Seed,
		BotConfig: bot.Config{StepDelay: cfg.StepDelay},
	})

	g, err := app.GameController.CreateGame(ctx, cfg.ScoreTarget)
	if err != nil {
		return err
	}
	gameID := g.ID

	// Alternate strategies so the matchup is not a mirror
	strategies := model.ValidBotStrategies()
	for i := 0; i < players; i++ {
		strategy := strategies[i%len(strategies)]
		name := fmt.Sprintf("%s %d", model.BotStrategyDisplayName(strategy), i+1)
		if _, err := app.BotService.AddBot(ctx, gameID, name, strategy); err != nil {
			return err
		}
	}

	g, err = app.GameController.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	names := playerNames(g)
	unsubscribe := app.Notifier.Subscribe(func(ev model.Event) {
		announce(ev, names, "")
	})
	defer unsubscribe()

	if err := app.GameController.StartGame(ctx, gameID); err != nil {
		return err
	}

	for {
		if ctx.Err() != nil {
			return nil
		}
		g, err = app.GameController.GetGame(ctx, gameID)
		if err != nil {
			return err
		}

		switch g.Phase {
		case model.PhaseGameOver:
			renderScores(g)
			return nil
		case model.PhaseRoundOver:
			renderScores(g)
			if g.Round >= maxDemoRounds {
				pterm.Warning.Printfln("Stopping after %d rounds without a winner", g.Round)
				return nil
			}
			if err := app.GameController.StartNextRound(ctx, gameID); err != nil {
				return err
			}
			continue
		}

		if err := app.BotService.TakeTurn(ctx, gameID, g.CurrentPlayer().ID); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
}
