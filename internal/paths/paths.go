package paths

import (
	"AdminDeck/internal/constants"
	"AdminDeck/internal/version"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
)

var (
	// StateHomeOverride allows overriding the state home for tests.
	StateHomeOverride string
	// ConfigHomeOverride allows overriding the config home for tests.
	ConfigHomeOverride string
	// ConfigFileOverride is set from --config.
	ConfigFileOverride string
)

func appDirName() string {
	return strings.ToLower(version.ApplicationName)
}

// GetConfigFilePath returns the absolute path to the admindeck.toml file.
// It places it in a subdirectory named after the application (e.g., ~/.config/admindeck/admindeck.toml).
func GetConfigFilePath() string {
	if ConfigFileOverride != "" {
		return ConfigFileOverride
	}
	if ConfigHomeOverride != "" {
		return filepath.Join(ConfigHomeOverride, appDirName(), constants.AppConfigFileName)
	}
	if runtime.GOOS == "darwin" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appDirName(), constants.AppConfigFileName)
	}
	return filepath.Join(xdg.ConfigHome, appDirName(), constants.AppConfigFileName)
}

// GetConfigDir returns the absolute path to the admindeck configuration directory.
func GetConfigDir() string {
	return filepath.Dir(GetConfigFilePath())
}

// GetStateDir returns the absolute path to the admindeck state directory.
func GetStateDir() string {
	if StateHomeOverride != "" {
		return StateHomeOverride
	}
	return filepath.Join(xdg.StateHome, appDirName())
}

// GetThemesDir returns the absolute path to the themes directory in the state folder.
func GetThemesDir() string {
	return filepath.Join(GetStateDir(), constants.ThemesDirName)
}

// GetLogFilePath returns the absolute path to the application log.
func GetLogFilePath() string {
	return filepath.Join(GetStateDir(), constants.LogsDirName, constants.LogFileName)
}

// GetAuditFilePath returns the default location of the audit log written by
// reason submissions.
func GetAuditFilePath() string {
	return filepath.Join(GetStateDir(), constants.AuditFileName)
}
