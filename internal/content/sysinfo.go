package content

import (
	"context"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/x/ansi"
)

// BuildInfo describes the running build.
type BuildInfo struct {
	Version   string
	UIVersion string
	Commit    string
	RepoURL   string
	Debug     bool
}

// HasCommit reports whether a real commit hash was stamped into the build.
func (b BuildInfo) HasCommit() bool {
	switch strings.ToLower(strings.TrimSpace(b.Commit)) {
	case "", "none", "unknown":
		return false
	}
	return true
}

// BuildLabel describes the kind of build: "Development" for builds with
// debugging capability, a link to the commit when one is known, otherwise
// "Pre-release" or "Release" depending on the version.
func BuildLabel(b BuildInfo) string {
	if b.Debug {
		return "Development"
	}
	if b.HasCommit() {
		if b.RepoURL == "" {
			return b.Commit
		}
		url := strings.TrimSuffix(b.RepoURL, "/") + "/commit/" + b.Commit
		return ansi.SetHyperlink(url) + b.Commit + ansi.ResetHyperlink()
	}
	if v, err := semver.NewVersion(b.Version); err == nil && v.Prerelease() != "" {
		return "Pre-release"
	}
	return "Release"
}

// SystemProvider reports version and platform details of this host.
func SystemProvider(b BuildInfo) Provider {
	return func(ctx context.Context) ([]Entry, error) {
		kernel, err := kernelRelease()
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ui := b.UIVersion
		if ui == "" {
			ui = b.Version
		}
		return []Entry{
			{Label: "Version", Value: b.Version},
			{Label: "UI Version", Value: ui},
			{Label: "Build", Value: BuildLabel(b)},
			{Label: "Go version", Value: runtime.Version()},
			{Label: "Platform", Value: runtime.GOOS + "/" + runtime.GOARCH},
			{Label: "Kernel", Value: kernel},
		}, nil
	}
}
