package tui

import (
	"AdminDeck/internal/config"
	"AdminDeck/internal/logger"
	"AdminDeck/internal/theme"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"
)

// ErrNoTerminal is returned by Start when stdout is not a terminal.
var ErrNoTerminal = errors.New("the console needs an interactive terminal")

// program holds the running Bubble Tea program
var program *tea.Program

// Start launches the console and blocks until it exits.
func Start(ctx context.Context, cfg config.AppConfig, opts Options) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNoTerminal
	}
	logger.Info(ctx, "TUI Starting...")

	tokens, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		logger.Warn(ctx, "Theme could not be loaded, using defaults", "theme", cfg.UI.Theme, "error", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewAppModel(ctx, cfg, tokens, opts)
	program = tea.NewProgram(model, tea.WithContext(ctx))

	logger.SetTUIActive(true)
	logger.TUIShutdown = Shutdown
	defer func() {
		logger.SetTUIActive(false)
		logger.TUIShutdown = nil
	}()

	if cfg.UI.WatchTheme && cfg.UI.Theme != "" && !strings.EqualFold(cfg.UI.Theme, "default") {
		err := theme.Watch(ctx, theme.Path(cfg.UI.Theme), func(t theme.Tokens) {
			program.Send(ThemeChangedMsg{Tokens: t})
		})
		if err != nil {
			logger.Warn(ctx, "Theme changes will not be picked up", "error", err)
		}
	}

	_, err = program.Run()
	// Reset terminal colors on exit to prevent "bleeding" into the shell prompt
	fmt.Print("\x1b[0m\n")
	return err
}

// Shutdown stops the running program and restores the terminal.
func Shutdown() {
	if program != nil {
		program.Kill()
	}
}
