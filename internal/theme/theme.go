package theme

import (
	"AdminDeck/internal/paths"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/pelletier/go-toml/v2"
)

// FileExt is the extension of theme files in the themes directory.
const FileExt = ".adtheme"

// StyleFlags holds ANSI style modifiers
type StyleFlags struct {
	Bold          bool
	Underline     bool
	Italic        bool
	Blink         bool
	Dim           bool
	Reverse       bool
	Strikethrough bool
}

// Tokens are the shared design tokens. They are the only styling input that
// reaches an isolated modal subtree, so every value here is a color
// ("white", "4", "#1e1e2e") or, for Title, a "fg:bg:flags" tag.
type Tokens struct {
	Accent   string `toml:"accent"`
	Text     string `toml:"text"`
	Muted    string `toml:"muted"`
	Surface  string `toml:"surface"`
	Border   string `toml:"border"`
	Border2  string `toml:"border2"`
	Title    string `toml:"title"`
	Danger   string `toml:"danger"`
	Backdrop string `toml:"backdrop"`
	Shadow   string `toml:"shadow"`
}

// Metadata holds information about a theme.
type Metadata struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Author      string `toml:"author"`
}

// File is the on-disk layout of a theme.
type File struct {
	Meta   Metadata `toml:"meta"`
	Tokens Tokens   `toml:"tokens"`
}

// Default returns the classic teal dialog palette.
func Default() Tokens {
	return Tokens{
		Accent:   "maroon",
		Text:     "black",
		Muted:    "gray",
		Surface:  "teal",
		Border:   "white",
		Border2:  "black",
		Title:    "black:teal:b",
		Danger:   "red",
		Backdrop: "silver",
		Shadow:   "black",
	}
}

// Parse decodes theme data. Tokens the file does not set keep their default.
func Parse(data []byte) (File, error) {
	f := File{Tokens: Default()}
	if err := toml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing theme: %w", err)
	}
	return f, nil
}

// Path returns the file path of the named theme.
func Path(name string) string {
	return filepath.Join(paths.GetThemesDir(), name+FileExt)
}

// Load theme by name. An empty name, "default", or a missing file yields
// the defaults.
func Load(name string) (Tokens, error) {
	if name == "" || strings.EqualFold(name, "default") {
		return Default(), nil
	}
	return LoadFile(Path(name))
}

// LoadFile loads a theme from an explicit path.
func LoadFile(path string) (Tokens, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), err
	}
	f, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return f.Tokens, nil
}

// Color resolves a token value to a terminal color. Named colors map onto the
// sixteen ANSI slots; anything else is handed to lipgloss as is.
func Color(v string) color.Color {
	return lipgloss.Color(parseColor(v))
}

// TitleStyle resolves the Title tag into a style.
func (t Tokens) TitleStyle() lipgloss.Style {
	fg, bg, flags := parseTagWithStyles(t.Title)
	s := lipgloss.NewStyle().
		Bold(flags.Bold).
		Underline(flags.Underline).
		Italic(flags.Italic).
		Blink(flags.Blink).
		Faint(flags.Dim).
		Reverse(flags.Reverse).
		Strikethrough(flags.Strikethrough)
	if fg != "" {
		s = s.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		s = s.Background(lipgloss.Color(bg))
	}
	return s
}

func parseColor(c string) string {
	c = strings.TrimSpace(c)
	switch strings.ToUpper(c) {
	case "", "-", "DEFAULT":
		return ""
	case "BLACK":
		return "0"
	case "MAROON":
		return "1"
	case "GREEN":
		return "2"
	case "OLIVE", "YELLOW":
		return "3"
	case "NAVY", "BLUE":
		return "4"
	case "PURPLE", "MAGENTA":
		return "5"
	case "TEAL", "CYAN":
		return "6"
	case "SILVER":
		return "7"
	case "GRAY", "GREY":
		return "8"
	case "RED":
		return "9"
	case "LIME":
		return "10"
	case "WHITE":
		return "15"
	default:
		return c
	}
}

// parseTagWithStyles parses a theme tag and extracts colors and style flags
func parseTagWithStyles(tag string) (fg, bg string, styles StyleFlags) {
	tag = strings.Trim(tag, "[]")
	parts := strings.Split(tag, ":")
	if len(parts) > 0 {
		fg = parseColor(parts[0])
	}
	if len(parts) > 1 {
		bg = parseColor(parts[1])
	}
	// Parse style flags (third part and beyond)
	if len(parts) > 2 {
		flags := strings.ToLower(parts[2])
		styles.Bold = strings.Contains(flags, "b")
		styles.Underline = strings.Contains(flags, "u")
		styles.Italic = strings.Contains(flags, "i")
		styles.Blink = strings.Contains(flags, "l")
		styles.Dim = strings.Contains(flags, "d")
		styles.Reverse = strings.Contains(flags, "r")
		styles.Strikethrough = strings.Contains(flags, "s")
	}
	return
}
