package config

import (
	"AdminDeck/internal/constants"
	"AdminDeck/internal/paths"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// AppConfig holds the application configuration settings.
type AppConfig struct {
	UI    UIConfig    `toml:"ui"`
	Modal ModalConfig `toml:"modal"`
	Log   LogConfig   `toml:"log"`
	Brand BrandConfig `toml:"brand"`
	Audit AuditConfig `toml:"audit"`

	// These are helper fields for runtime use, not saved to TOML
	AuditFile string `toml:"-"`
}

// UIConfig holds user interface related settings.
type UIConfig struct {
	Theme          string `toml:"theme"`
	LineCharacters bool   `toml:"line_characters"`
	Shadow         bool   `toml:"shadow"`
	WatchTheme     bool   `toml:"watch_theme"`
}

// ModalConfig holds modal defaults.
type ModalConfig struct {
	Size     string `toml:"size"`      // sm, md, lg, xl
	ClosedBy string `toml:"closed_by"` // any, closerequest, none
	Observe  string `toml:"observe"`   // "", attribute, toggle, poll
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text, logfmt, json
}

// BrandConfig holds the product branding shown in the about panel.
type BrandConfig struct {
	Title    string `toml:"title"`
	Icon     string `toml:"icon"`
	Licensed bool   `toml:"licensed"`
}

// AuditConfig holds where reason submissions are recorded.
type AuditConfig struct {
	File string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() AppConfig {
	return AppConfig{
		UI: UIConfig{
			Theme:          "default",
			LineCharacters: true,
			Shadow:         true,
		},
		Modal: ModalConfig{
			Size:     "lg",
			ClosedBy: "any",
			Observe:  constants.ObserveDefault,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Brand: BrandConfig{
			Title: "AdminDeck",
			Icon:  "◆",
		},
		Audit: AuditConfig{
			File: "${XDG_STATE_HOME}/admindeck/" + constants.AuditFileName,
		},
	}
}

// ExpandVariables expands environment variables in the config values.
// It supports:
// - ${XDG_CONFIG_HOME} -> xdg.ConfigHome
// - ${XDG_DATA_HOME}   -> xdg.DataHome
// - ${XDG_STATE_HOME}  -> xdg.StateHome
// - ${XDG_CACHE_HOME}  -> xdg.CacheHome
// - ${HOME}            -> os.UserHomeDir()
// - ${USER}            -> Current username
func ExpandVariables(val string) string {
	mapper := func(varName string) string {
		switch varName {
		case "XDG_CONFIG_HOME":
			return xdg.ConfigHome
		case "XDG_DATA_HOME":
			return xdg.DataHome
		case "XDG_STATE_HOME":
			return xdg.StateHome
		case "XDG_CACHE_HOME":
			return xdg.CacheHome
		case "HOME":
			home, err := os.UserHomeDir()
			if err != nil {
				return ""
			}
			return home
		case "USER":
			u, err := user.Current()
			if err != nil {
				return os.Getenv("USERNAME") // Fallback for Windows
			}
			return u.Username
		}
		return ""
	}
	return os.Expand(val, mapper)
}

// Validate checks the enumerated settings.
func (c AppConfig) Validate() error {
	switch strings.ToLower(c.Modal.Size) {
	case "", "sm", "md", "lg", "xl", "small", "medium", "large", "xlarge", "x-large":
	default:
		return fmt.Errorf("modal.size: unknown size %q", c.Modal.Size)
	}
	switch strings.ToLower(c.Modal.ClosedBy) {
	case "", "any", "closerequest", "none":
	default:
		return fmt.Errorf("modal.closed_by: unknown policy %q", c.Modal.ClosedBy)
	}
	switch c.Modal.Observe {
	case constants.ObserveDefault, constants.ObserveAttribute, constants.ObserveToggle, constants.ObservePoll:
	default:
		return fmt.Errorf("modal.observe: unknown mode %q", c.Modal.Observe)
	}
	return nil
}

// LoadAppConfig reads the configuration file and returns the configuration.
// A missing file is created with the defaults. A file that fails to parse is
// reported and left alone.
func LoadAppConfig() (AppConfig, error) {
	conf := Default()

	path := paths.GetConfigFilePath()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &conf); err != nil {
			return Default().resolve(), fmt.Errorf("parsing %s: %w", path, err)
		}
		if err := conf.Validate(); err != nil {
			return conf.resolve(), fmt.Errorf("%s: %w", path, err)
		}
		return conf.resolve(), nil
	case os.IsNotExist(err):
		conf = conf.resolve()
		if err := SaveAppConfig(conf); err != nil {
			return conf, fmt.Errorf("writing default config: %w", err)
		}
		return conf, nil
	default:
		return conf.resolve(), err
	}
}

func (c AppConfig) resolve() AppConfig {
	c.AuditFile = ExpandVariables(c.Audit.File)
	if c.AuditFile == "" {
		c.AuditFile = paths.GetAuditFilePath()
	}
	return c
}

// SaveAppConfig writes the configuration to admindeck.toml.
func SaveAppConfig(conf AppConfig) error {
	path := paths.GetConfigFilePath()

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(conf)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
