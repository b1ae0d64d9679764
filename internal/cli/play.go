package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mcoot/rummy500-go/internal/factory"
	"github.com/mcoot/rummy500-go/internal/model"
	"github.com/mcoot/rummy500-go/internal/services/bot"
)

const humanPlayerID = model.PlayerID("human")

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game against bot opponents",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay()
		},
	}
}

func buildLogger(verbose bool) *slog.Logger {
	if verbose {
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func runPlay() error {
	if cfg.Bots < 1 || cfg.Bots > model.MaxPlayers-1 {
		return fmt.Errorf("bots must be between 1 and %d", model.MaxPlayers-1)
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

	if err := app.GameController.AddPlayer(ctx, gameID, model.Player{
		ID:          humanPlayerID,
		DisplayName: cfg.PlayerName,
	}); err != nil {
		return err
	}
	for i := 0; i < cfg.Bots; i++ {
		name := fmt.Sprintf("%s %d", model.BotStrategyDisplayName(cfg.Strategy), i+1)
		if _, err := app.BotService.AddBot(ctx, gameID, name, cfg.Strategy); err != nil {
			return err
		}
	}

	g, err = app.GameController.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	names := playerNames(g)
	unsubscribe := app.Notifier.Subscribe(func(ev model.Event) {
		announce(ev, names, humanPlayerID)
	})
	defer unsubscribe()

	if err := app.GameController.StartGame(ctx, gameID); err != nil {
		return err
	}

	input := bufio.NewScanner(os.Stdin)
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
			pterm.Print("Press enter for the next round, or q to quit: ")
			line, ok := readLine(input)
			if !ok || strings.EqualFold(line, "q") {
				return nil
			}
			app.BotService.CancelPending()
			if err := app.GameController.StartNextRound(ctx, gameID); err != nil {
				return err
			}
			continue
		}

		current := g.CurrentPlayer()
		if current.IsBot {
			// Bot turns run in the background so an interrupt can abort
			// one mid-decision rather than waiting out its step delays.
			done := app.BotService.ScheduleTurn(gameID, current.ID)
			select {
			case <-ctx.Done():
				app.BotService.CancelPending()
				return nil
			case <-done:
			}
			continue
		}

		renderTable(g, humanPlayerID)
		pterm.Print("> ")
		line, ok := readLine(input)
		if !ok {
			return nil
		}
		if err := dispatch(ctx, app, g, line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			pterm.Error.Println(err)
		}
	}
}

var errQuit = errors.New("quit")

func readLine(input *bufio.Scanner) (string, bool) {
	if !input.Scan() {
		return "", false
	}
	return strings.TrimSpace(input.Text()), true
}

// dispatch executes one human command against the game
func dispatch(ctx context.Context, app *factory.App, g *model.Game, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "draw", "d":
		return app.GameController.DrawFromPile(ctx, g.ID, humanPlayerID)
	case "pickup", "p":
		if len(args) != 1 {
			return errors.New("usage: pickup <n>, where n counts from the top of the discard pile")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return errors.New("pickup needs a positive number")
		}
		// Display numbers count from the top; the deck indexes from
		// the bottom.
		index := g.Deck.DiscardCount() - n
		return app.GameController.DrawFromDiscard(ctx, g.ID, humanPlayerID, index)
	case "meld", "m":
		cards, err := parseCards(args)
		if err != nil {
			return err
		}
		return app.GameController.LayMeld(ctx, g.ID, humanPlayerID, cards)
	case "extend", "e":
		if len(args) < 2 {
			return errors.New("usage: extend <meld#> <card> [card...]")
		}
		meldNum, err := strconv.Atoi(args[0])
		if err != nil || meldNum < 1 {
			return errors.New("extend needs a meld number from the table listing")
		}
		cards, err := parseCards(args[1:])
		if err != nil {
			return err
		}
		return app.GameController.ExtendMeld(ctx, g.ID, humanPlayerID, meldNum-1, cards)
	case "discard", "x":
		if len(args) != 1 {
			return errors.New("usage: discard <card>")
		}
		card, err := parseCard(args[0])
		if err != nil {
			return err
		}
		return app.GameController.Discard(ctx, g.ID, humanPlayerID, card)
	case "help", "h", "?":
		printHelp()
		return nil
	case "quit", "q":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
}

func printHelp() {
	pterm.Println(`Commands:
  draw               draw the top card of the draw pile
  pickup <n>         take the nth discard from the top, plus everything above it
  meld <cards...>    lay a meld from your hand, e.g. meld QS QH QC
  extend <n> <cards> add cards to table meld n, e.g. extend 2 7H
  discard <card>     discard a card and end your turn
  quit               leave the game`)
}
