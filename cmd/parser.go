package cmd

import (
	"AdminDeck/internal/constants"
	"AdminDeck/internal/modal"
	"AdminDeck/internal/version"
	"errors"
	"fmt"
	"strings"
)

var ErrHelp = errors.New("help shown")

// ParseError points at the failing argument, bash style:
//
//	'adeck -o nope'
//	         ^
type ParseError struct {
	Args    []string // The full argument list passed to Parse
	Index   int      // The index where the error occurred, -1 if unknown
	Message string
}

func (e *ParseError) Error() string {
	indent := "   "
	if e.Index < 0 || e.Index >= len(e.Args) {
		return fmt.Sprintf("Error in command line: %s\n\n%sRun '%s --help' for usage.\n", e.Message, indent, version.CommandName)
	}

	cmdLine := "'" + strings.Join(append([]string{version.CommandName}, e.Args[:e.Index+1]...), " ") + "'"
	caretOffset := len(indent) + 1 + len(version.CommandName) + 1
	for i := 0; i < e.Index; i++ {
		caretOffset += len(e.Args[i]) + 1
	}
	pointerLine := strings.Repeat(" ", caretOffset) + "^"

	return fmt.Sprintf("Error in command line:\n\n%s%s\n%s\n\n%s%s\n\n%sRun '%s --help' for usage.\n",
		indent, cmdLine, pointerLine, indent, e.Message, indent, version.CommandName)
}

// Parse parses and validates the command line.
func Parse(args []string) (Flags, error) {
	var f Flags
	fs := NewFlagSet(&f)
	if err := fs.Parse(args); err != nil {
		return f, &ParseError{Args: args, Index: failingIndex(args, err.Error()), Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return f, &ParseError{Args: args, Index: indexOf(args, fs.Arg(0)), Message: fmt.Sprintf("unexpected argument '%s'", fs.Arg(0))}
	}
	if f.Help {
		return f, ErrHelp
	}

	switch f.Open {
	case "", constants.OpenAbout, constants.OpenPanic:
	default:
		return f, valueError(args, "open", "o", f.Open, "expected about or panic")
	}
	if f.Size != "" {
		if _, err := modal.ParseSize(f.Size); err != nil {
			return f, valueError(args, "size", "s", f.Size, err.Error())
		}
	}
	if _, ok := modal.NotifierByName(f.Observe); !ok {
		return f, valueError(args, "observe", "", f.Observe, "expected attribute, toggle or poll")
	}
	return f, nil
}

func valueError(args []string, long, short, value, reason string) error {
	idx := indexOf(args, value)
	for i, a := range args {
		if a == "--"+long+"="+value || (short != "" && a == "-"+short+value) {
			idx = i
		}
	}
	return &ParseError{Args: args, Index: idx, Message: fmt.Sprintf("invalid value '%s' for --%s: %s", value, long, reason)}
}

func indexOf(args []string, s string) int {
	for i, a := range args {
		if a == s {
			return i
		}
	}
	return -1
}

// failingIndex finds the argument a pflag error message refers to.
func failingIndex(args []string, msg string) int {
	for i := len(args) - 1; i >= 0; i-- {
		name, _, _ := strings.Cut(args[i], "=")
		if strings.HasPrefix(name, "-") && strings.Contains(msg, strings.TrimLeft(name, "-")) {
			return i
		}
	}
	return -1
}
