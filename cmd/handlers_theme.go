package cmd

import (
	"AdminDeck/internal/config"
	"AdminDeck/internal/logger"
	"AdminDeck/internal/paths"
	"AdminDeck/internal/theme"
	"AdminDeck/internal/version"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// applyTheme selects a theme for this run. The theme file must exist.
func applyTheme(ctx context.Context, conf *config.AppConfig, name string) error {
	if name == "" || strings.EqualFold(name, "default") {
		conf.UI.Theme = "default"
		return nil
	}
	if _, err := os.Stat(theme.Path(name)); err != nil {
		logger.Error(ctx, "Theme '%s' not found in '%s'.", name, paths.GetThemesDir())
		logger.Info(ctx, "Run '%s --theme-list' to see available themes.", version.CommandName)
		return err
	}
	conf.UI.Theme = name
	return nil
}

func handleThemeList(ctx context.Context, w io.Writer) error {
	themes, err := theme.List()
	if err != nil {
		logger.Error(ctx, "Failed to read themes directory: %v", err)
		return err
	}

	fmt.Fprintf(w, "Available themes in '%s':\n", paths.GetThemesDir())
	fmt.Fprintln(w, "  - default (built in)")
	for _, t := range themes {
		line := "  - " + t.Name
		if t.Description != "" {
			line += ": " + t.Description
		}
		if t.Author != "" {
			line += " (" + t.Author + ")"
		}
		fmt.Fprintln(w, line)
	}
	return nil
}
