package theme

import (
	"AdminDeck/internal/paths"
	"AdminDeck/internal/testutils"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"black", "0"},
		{"Maroon", "1"},
		{"TEAL", "6"},
		{"cyan", "6"},
		{"grey", "8"},
		{"white", "15"},
		{" navy ", "4"},
		{"-", ""},
		{"#010203", "#010203"},
		{"212", "212"},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		actual := parseColor(tt.input)
		cases = append(cases, testutils.TestCase{
			Input:    tt.input,
			Expected: tt.expected,
			Actual:   actual,
			Pass:     actual == tt.expected,
		})
	}
	testutils.PrintTestTable(t, cases)
}

func TestParseKeepsDefaults(t *testing.T) {
	f, err := Parse([]byte(`
[meta]
name = "Night"
author = "ops"

[tokens]
surface = "#1e1e2e"
title = "white:navy:bu"
`))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, "Night", f.Meta.Name)
	assert.Equal(t, "#1e1e2e", f.Tokens.Surface)
	assert.Equal(t, "white:navy:bu", f.Tokens.Title)
	assert.Equal(t, def.Text, f.Tokens.Text)
	assert.Equal(t, def.Border, f.Tokens.Border)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("[tokens\nsurface = "))
	assert.Error(t, err)
}

func useTempThemes(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := paths.StateHomeOverride
	paths.StateHomeOverride = dir
	t.Cleanup(func() { paths.StateHomeOverride = old })
	require.NoError(t, os.MkdirAll(paths.GetThemesDir(), 0o755))
	return paths.GetThemesDir()
}

func TestLoad(t *testing.T) {
	dir := useTempThemes(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "night"+FileExt), []byte("[tokens]\naccent = \"lime\"\n"), 0o644))

	tokens, err := Load("night")
	require.NoError(t, err)
	assert.Equal(t, "lime", tokens.Accent)

	tokens, err = Load("missing")
	require.NoError(t, err)
	assert.Equal(t, Default(), tokens)

	tokens, err = Load("Default")
	require.NoError(t, err)
	assert.Equal(t, Default(), tokens)
}

func TestLoadBrokenFileFallsBack(t *testing.T) {
	dir := useTempThemes(t)
	path := filepath.Join(dir, "broken"+FileExt)
	require.NoError(t, os.WriteFile(path, []byte("accent = ["), 0o644))

	tokens, err := Load("broken")
	assert.ErrorContains(t, err, path)
	assert.Equal(t, Default(), tokens)
}

func TestList(t *testing.T) {
	dir := useTempThemes(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "night"+FileExt), []byte("[meta]\nname = \"Night Shift\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain"+FileExt), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	themes, err := List()
	require.NoError(t, err)
	var names []string
	for _, m := range themes {
		names = append(names, m.Name)
	}
	assert.ElementsMatch(t, []string{"Night Shift", "plain"}, names)
}

func TestTitleStyle(t *testing.T) {
	s := Tokens{Title: "white:navy:bu"}.TitleStyle()
	assert.True(t, s.GetBold())
	assert.True(t, s.GetUnderline())
	assert.False(t, s.GetItalic())
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live"+FileExt)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Tokens, 4)
	require.NoError(t, Watch(ctx, path, func(tok Tokens) { got <- tok }))
	require.NoError(t, os.WriteFile(path, []byte("[tokens]\nsurface = \"navy\"\n"), 0o644))

	select {
	case tok := <-got:
		assert.Equal(t, "navy", tok.Surface)
	case <-time.After(5 * time.Second):
		t.Fatal("theme change was not reported")
	}
}
