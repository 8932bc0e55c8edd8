// Package config loads the flashcards configuration.
//
// Sources, lowest precedence first: flag defaults, the YAML file named
// by --config, FLASHCARDS_* environment variables, and flags set on
// the command line. Environment keys nest with a double underscore, so
// FLASHCARDS_DECK__DIR sets deck.dir.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/conorfennell/flashcards/internal/deck"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "FLASHCARDS_"

// Config is the complete application configuration.
type Config struct {
	Deck DeckConfig `koanf:"deck"`
	Log  LogConfig  `koanf:"log"`
	UI   UIConfig   `koanf:"ui"`
}

// DeckConfig says where the starting cards come from.
type DeckConfig struct {
	Dir   string `koanf:"dir"`
	Repo  string `koanf:"repo" validate:"omitempty,gitrepo"`
	Cache string `koanf:"cache" validate:"required"`
}

// LogConfig controls log records written during the session.
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	// File receives every record as JSON while the TUI runs.
	File string `koanf:"file"`
}

// UIConfig controls how the terminal is used.
type UIConfig struct {
	AltScreen bool `koanf:"alt_screen"`
}

// SlogLevel returns the configured level. Load has already validated
// it.
func (c LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// flagKeys maps flag names onto configuration keys.
var flagKeys = map[string]string{
	"deck-dir":   "deck.dir",
	"deck-repo":  "deck.repo",
	"deck-cache": "deck.cache",
	"log-level":  "log.level",
	"log-file":   "log.file",
	"alt-screen": "ui.alt_screen",
}

// NewFlagSet declares the command-line flags Load understands.
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.String("config", "", "YAML configuration file")
	flags.String("deck-dir", "", "directory of Markdown decks to start with")
	flags.String("deck-repo", "", "git repository of Markdown decks to start with")
	flags.String("deck-cache", "repos", "directory holding repository checkouts")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-file", "", "write all log records as JSON to this file")
	flags.Bool("alt-screen", true, "use the terminal's alternate screen")
	return flags
}

// Load parses args and merges every configuration source. It returns
// pflag.ErrHelp when help was requested.
func Load(flags *pflag.FlagSet, args []string) (Config, error) {
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	k := koanf.New(".")

	if path, _ := flags.GetString("config"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(key string) string {
		key = strings.TrimPrefix(key, EnvPrefix)
		return strings.ReplaceAll(strings.ToLower(key), "__", ".")
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load environment: %w", err)
	}

	// Unchanged flags only fill keys no other source set.
	err = k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(flags, f)
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load flags: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("gitrepo", isGitRepo); err != nil {
		return Config{}, fmt.Errorf("failed to register validation: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// isGitRepo accepts any repository URL a checkout directory can be
// derived from, scp-like user@host:path included.
func isGitRepo(field validator.FieldLevel) bool {
	_, err := deck.RepoPath("repos", field.Field().String())
	return err == nil
}
