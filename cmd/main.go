package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/Navodayavarmak/RUMMY-MULTIPLAYER/config"
	"github.com/Navodayavarmak/RUMMY-MULTIPLAYER/domain/deck"
	"github.com/Navodayavarmak/RUMMY-MULTIPLAYER/domain/rummy"
	"github.com/Navodayavarmak/RUMMY-MULTIPLAYER/ledger"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	pterm.DefaultLogger.Level = logLevel(cfg.LogLevel)
	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("R", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ummy", pterm.FgDarkGray.ToStyle()),
	).Render()

	var announcer rummy.Announcer = rummy.NopAnnouncer{}
	if cfg.Voice {
		announcer = terminalAnnouncer{}
	}
	announcer.Say(rummy.Greeting(time.Now()))

	names, err := playerNames(cfg, func(prompt string) (string, error) {
		return pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
	})
	if err != nil {
		logger.Error("reading player names", "error", err)
		os.Exit(1)
	}
	pterm.Println()

	g, err := setupGame(cfg, names, logger, announcer)
	if err != nil {
		logger.Error("setting up the table", "error", err)
		os.Exit(1)
	}

	winner, err := g.Play(newTerminalInput(), newTerminalOutput())
	if err != nil {
		logger.Error("game aborted", "error", err)
		os.Exit(1)
	}
	pterm.Success.Printfln("%s won the game!", winner.Name)

	j := g.Journal()
	if err := j.Verify(); err != nil {
		logger.Error("journal corrupted", "error", err)
		os.Exit(1)
	}
	logger.Info("journal verified", "entries", j.Len(), "rejected", rejectedActions(j))
}

// setupGame shuffles a fresh deck, designates the joker rank when enabled,
// and deals the cards.
func setupGame(cfg config.Config, names []string, logger *slog.Logger, announcer rummy.Announcer) (*rummy.Game, error) {
	spinner, _ := pterm.DefaultSpinner.Start("Shuffling the cards ...")
	d, err := deck.NewDeck(cfg.Packs)
	if err != nil {
		spinner.Fail()
		return nil, err
	}
	d.Shuffle()
	if cfg.Jokers {
		indicator, err := d.DesignateJoker()
		if err != nil {
			spinner.Fail()
			return nil, err
		}
		logger.Info("joker designated", "indicator", indicator.ID())
	}
	spinner.Success()

	g, err := rummy.NewGame(names, d,
		rummy.WithLogger(logger),
		rummy.WithRules(rummy.Rules{CloseMode: cfg.CloseMode}),
		rummy.WithAnnouncer(announcer),
	)
	if err != nil {
		return nil, err
	}

	spinner, _ = pterm.DefaultSpinner.Start("Dealing the cards ...")
	if err := g.Deal(); err != nil {
		spinner.Fail()
		return nil, err
	}
	spinner.Success()
	return g, nil
}

// playerNames completes the configured names by asking for the missing
// ones. Blank answers become "Player N".
func playerNames(cfg config.Config, ask func(prompt string) (string, error)) ([]string, error) {
	names := make([]string, 0, cfg.Players)
	names = append(names, cfg.PlayerNames...)
	for i := len(names); i < cfg.Players; i++ {
		name, err := ask(fmt.Sprintf("Enter name of player %d", i+1))
		if err != nil {
			return nil, err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		names = append(names, name)
	}
	return names, nil
}

func logLevel(level string) pterm.LogLevel {
	switch level {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}

func rejectedActions(j *ledger.Journal) int {
	n := 0
	for _, e := range j.Entries() {
		if e.Rejected() {
			n++
		}
	}
	return n
}
