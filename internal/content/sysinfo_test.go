package content

import (
	"AdminDeck/internal/testutils"
	"context"
	"runtime"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLabel(t *testing.T) {
	tests := []struct {
		name     string
		info     BuildInfo
		expected string
	}{
		{"debug", BuildInfo{Version: "v1.0.0", Commit: "abcdef0123", Debug: true}, "Development"},
		{"commit", BuildInfo{Version: "v1.0.0", Commit: "abcdef0123"}, "abcdef0123"},
		{"commit link", BuildInfo{Commit: "abcdef0123", RepoURL: "https://example.com/deck/"}, "abcdef0123"},
		{"prerelease", BuildInfo{Version: "v1.2.0-rc.1", Commit: "unknown"}, "Pre-release"},
		{"release", BuildInfo{Version: "v1.2.0", Commit: "none"}, "Release"},
		{"unparseable", BuildInfo{Version: "dev"}, "Release"},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		actual := ansi.Strip(BuildLabel(tt.info))
		cases = append(cases, testutils.TestCase{
			Name:     tt.name,
			Input:    tt.info.Version,
			Expected: tt.expected,
			Actual:   actual,
			Pass:     actual == tt.expected,
		})
	}
	testutils.PrintTestTable(t, cases)
}

func TestBuildLabelHyperlink(t *testing.T) {
	label := BuildLabel(BuildInfo{Commit: "abcdef0123", RepoURL: "https://example.com/deck"})
	assert.Contains(t, label, "https://example.com/deck/commit/abcdef0123")
}

func TestSystemProvider(t *testing.T) {
	entries, err := SystemProvider(BuildInfo{Version: "v2.0.0", Commit: "none"})(context.Background())
	require.NoError(t, err)

	values := map[string]string{}
	for _, e := range entries {
		values[e.Label] = e.Value
	}
	assert.Equal(t, "v2.0.0", values["Version"])
	assert.Equal(t, "v2.0.0", values["UI Version"], "UI version falls back to the app version")
	assert.Equal(t, "Release", values["Build"])
	assert.Equal(t, runtime.Version(), values["Go version"])
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, values["Platform"])
	assert.NotEmpty(t, values["Kernel"])
}

func TestSystemProviderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := SystemProvider(BuildInfo{})(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
