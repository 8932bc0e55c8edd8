// flashcards is a terminal flashcard trainer.
//
// It starts from the cards found in a directory of Markdown decks
// and/or a git repository of them, then lets you add, edit, delete,
// reveal and rate cards. Nothing is written back: a session's changes
// end with it.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/conorfennell/flashcards/internal/config"
	"github.com/conorfennell/flashcards/internal/core"
	"github.com/conorfennell/flashcards/internal/deck"
	"github.com/conorfennell/flashcards/internal/tui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := config.NewFlagSet("flashcards")
	cfg, err := config.Load(flags, args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", flags.Arg(0))
	}

	// Until the TUI owns the terminal, logs go to stderr.
	bootLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cards, err := deck.Load(ctx, deck.Source{
		Dir:      cfg.Deck.Dir,
		Repo:     cfg.Deck.Repo,
		CacheDir: cfg.Deck.Cache,
	}, bootLogger)
	if err != nil {
		return err
	}
	stop()

	tuiHandler := tui.NewLogHandler(slog.LevelWarn)
	logger := slog.New(tuiHandler)
	if cfg.Log.File != "" {
		fileHandler, closeFile, err := openFileLogHandler(cfg.Log.File, cfg.Log.SlogLevel())
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", cfg.Log.File, err)
		}
		defer closeFile()
		logger = slog.New(fanoutHandler{tuiHandler, fileHandler})
	}

	model := tui.New(core.NewModel(cards), logger, tui.DefaultTheme)

	var options []tea.ProgramOption
	if cfg.UI.AltScreen {
		options = append(options, tea.WithAltScreen())
	}
	program := tea.NewProgram(model, options...)
	tuiHandler.SetProgram(program)

	_, err = program.Run()
	return err
}
