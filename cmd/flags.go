package cmd

import (
	"io"

	"github.com/spf13/pflag"
)

// Flags holds the parsed command line.
type Flags struct {
	Config    string
	Verbose   bool
	Debug     bool
	Open      string
	Size      string
	Theme     string
	ThemeList bool
	Observe   string
	Version   bool
	Help      bool
}

// NewFlagSet defines the pflags used for argument validation and help. Values
// are written into f.
func NewFlagSet(f *Flags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("adeck", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)

	// Modifiers
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVarP(&f.Debug, "debug", "x", false, "Debug output")
	fs.StringVar(&f.Config, "config", "", "Use this configuration file")

	// Modals
	fs.StringVarP(&f.Open, "open", "o", "", "Open a modal at start-up (about, panic)")
	fs.StringVarP(&f.Size, "size", "s", "", "Modal size (sm, md, lg, xl)")
	fs.StringVar(&f.Observe, "observe", "", "How modals watch their surface (attribute, toggle, poll)")

	// Theme
	fs.StringVarP(&f.Theme, "theme", "T", "", "Theme to use for this run")
	fs.BoolVar(&f.ThemeList, "theme-list", false, "List themes")

	// Info
	fs.BoolVarP(&f.Version, "version", "V", false, "Show version")
	fs.BoolVarP(&f.Help, "help", "h", false, "Show help")
	return fs
}
