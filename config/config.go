// Package config reads the table settings of a rummy game from an optional
// .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Navodayavarmak/RUMMY-MULTIPLAYER/domain/deck"
	"github.com/Navodayavarmak/RUMMY-MULTIPLAYER/domain/rummy"
)

const (
	EnvPacks       = "RUMMY_PACKS"
	EnvPlayers     = "RUMMY_PLAYERS"
	EnvPlayerNames = "RUMMY_PLAYER_NAMES"
	EnvJokers      = "RUMMY_JOKERS"
	EnvCloseMode   = "RUMMY_CLOSE_MODE"
	EnvLogLevel    = "RUMMY_LOG_LEVEL"
	EnvVoice       = "RUMMY_VOICE"
)

// LogLevels are the accepted values of RUMMY_LOG_LEVEL.
var LogLevels = []string{"trace", "debug", "info", "warn", "error"}

// Config holds everything needed to set up a table.
type Config struct {
	Packs   int
	Players int
	// PlayerNames may be shorter than Players; missing names are asked for.
	PlayerNames []string
	Jokers      bool
	CloseMode   rummy.CloseMode
	LogLevel    string
	Voice       bool
}

// Default returns the settings of the classic two player, two pack game.
func Default() Config {
	return Config{
		Packs:     2,
		Players:   2,
		Jokers:    false,
		CloseMode: rummy.ClosePositional,
		LogLevel:  "info",
		Voice:     true,
	}
}

// Load starts from Default, then applies the variables found in files and
// finally those set in the environment. Missing files are skipped.
func Load(files ...string) (Config, error) {
	fromFiles := map[string]string{}
	for _, f := range files {
		values, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("reading %s: %w", f, err)
		}
		maps.Copy(fromFiles, values)
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fromFiles[key]
		return v, ok
	}

	cfg := Default()
	var err error
	if v, ok := lookup(EnvPacks); ok {
		if cfg.Packs, err = strconv.Atoi(strings.TrimSpace(v)); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvPacks, err)
		}
	}
	if v, ok := lookup(EnvPlayers); ok {
		if cfg.Players, err = strconv.Atoi(strings.TrimSpace(v)); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvPlayers, err)
		}
	}
	if v, ok := lookup(EnvPlayerNames); ok {
		cfg.PlayerNames = splitNames(v)
	}
	if v, ok := lookup(EnvJokers); ok {
		if cfg.Jokers, err = strconv.ParseBool(strings.TrimSpace(v)); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvJokers, err)
		}
	}
	if v, ok := lookup(EnvCloseMode); ok {
		if cfg.CloseMode, err = rummy.ParseCloseMode(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvCloseMode, err)
		}
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvVoice); ok {
		if cfg.Voice, err = strconv.ParseBool(strings.TrimSpace(v)); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvVoice, err)
		}
	}
	return cfg, cfg.Validate()
}

// Validate reports the first setting that cannot make a playable table.
func (c Config) Validate() error {
	if c.Packs < 1 {
		return fmt.Errorf("need at least one pack, got %d", c.Packs)
	}
	if c.Players < 2 {
		return fmt.Errorf("need at least 2 players, got %d", c.Players)
	}
	if len(c.PlayerNames) > c.Players {
		return fmt.Errorf("%d player names given for %d players", len(c.PlayerNames), c.Players)
	}
	cards := c.Packs * deck.PackSize
	if c.Jokers {
		cards-- // the joker indicator leaves the deck
	}
	if need := rummy.HandSize*c.Players + 1; cards < need {
		return fmt.Errorf("%d packs cannot deal %d players: need %d cards, have %d", c.Packs, c.Players, need, cards)
	}
	if _, err := rummy.ParseCloseMode(string(c.CloseMode)); err != nil {
		return err
	}
	for _, l := range LogLevels {
		if c.LogLevel == l {
			return nil
		}
	}
	return fmt.Errorf("unknown log level %q", c.LogLevel)
}

func splitNames(v string) []string {
	var names []string
	for _, n := range strings.Split(v, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}
