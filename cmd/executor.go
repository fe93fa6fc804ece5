package cmd

import (
	"AdminDeck/internal/config"
	"AdminDeck/internal/logger"
	"AdminDeck/internal/modal"
	"AdminDeck/internal/paths"
	"AdminDeck/internal/tui"
	"context"
	"errors"
	"os"
)

// Execute runs the console for the parsed flags and returns the exit code.
func Execute(ctx context.Context, f Flags) int {
	if f.Version {
		printVersion()
		return 0
	}
	if f.Config != "" {
		paths.ConfigFileOverride = f.Config
	}

	conf, cfgErr := config.LoadAppConfig()

	l, closer, err := logger.New(logger.Options{
		Level:   conf.Log.Level,
		Format:  conf.Log.Format,
		Verbose: f.Verbose,
		Debug:   f.Debug,
	})
	defer closer.Close()
	ctx = logger.NewContext(ctx, l)
	if err != nil {
		logger.Warn(ctx, "Logging to file is disabled", "error", err)
	}
	if cfgErr != nil {
		logger.Error(ctx, "Failed to load configuration: %v", cfgErr)
		return 1
	}
	logger.Debug(ctx, "Configuration loaded", "path", paths.GetConfigFilePath())

	if f.ThemeList {
		if err := handleThemeList(ctx, os.Stdout); err != nil {
			return 1
		}
		return 0
	}

	if f.Theme != "" {
		if err := applyTheme(ctx, &conf, f.Theme); err != nil {
			return 1
		}
	}
	if f.Observe != "" {
		conf.Modal.Observe = f.Observe
	}
	notifier, _ := modal.NotifierByName(conf.Modal.Observe)

	var size modal.Size
	if f.Size != "" {
		size, _ = modal.ParseSize(f.Size)
	}

	var flags []string
	if f.Verbose {
		flags = append(flags, "VERBOSE")
	}
	if f.Debug {
		flags = append(flags, "DEBUG")
	}

	err = tui.Start(ctx, conf, tui.Options{
		Open:     f.Open,
		Size:     size,
		Notifier: notifier,
		Flags:    flags,
	})
	if errors.Is(err, tui.ErrNoTerminal) {
		logger.Error(ctx, err.Error())
		return 1
	}
	if err != nil {
		logger.Error(ctx, "Console exited with an error", "error", err)
		return 1
	}
	return 0
}
