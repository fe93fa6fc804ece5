package version

import (
	"os"
	"path/filepath"
	"strings"
)

// ApplicationName is the human-readable name of the application.
var ApplicationName = "AdminDeck"

// CommandName is the name of the executable command (e.g., "adeck").
// It is initialized dynamically from the executable filename.
var CommandName = "adeck"

// Version is the current version of the application.
// This is intended to be overwritten at build time using:
// -ldflags "-X AdminDeck/internal/version.Version=v1.2.3"
var Version = "v0.0.0-dev"

// UIVersion is the version of the console front end. It follows Version
// unless the build sets it separately.
var UIVersion = ""

// Commit is the git commit hash of the build.
var Commit = "none"

// BuildDate is the date the binary was built.
var BuildDate = "unknown"

// RepoURL is used to link the build commit in the about panel.
var RepoURL = "https://github.com/admindeck/admindeck"

// Debug marks builds that carry debugging capability.
var Debug = "false"

func init() {
	// Dynamically determine the command name from the executable
	exePath := os.Args[0]
	baseName := filepath.Base(exePath)
	// Strip extension (e.g., .exe on Windows)
	ext := filepath.Ext(baseName)
	CommandName = strings.TrimSuffix(baseName, ext)

	// Fallback to "adeck" if command name matches application name (e.g. dev run)
	if strings.EqualFold(CommandName, ApplicationName) || strings.EqualFold(CommandName, "main") {
		CommandName = "adeck"
	}
}

// IsDebug reports whether the Debug ldflag was set to a true value.
func IsDebug() bool {
	switch strings.ToLower(Debug) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// UI returns UIVersion, falling back to Version.
func UI() string {
	if UIVersion == "" {
		return Version
	}
	return UIVersion
}
