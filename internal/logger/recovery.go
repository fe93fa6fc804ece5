package logger

import (
	"context"
	"runtime/debug"

	tea "charm.land/bubbletea/v2"
)

// Recover traps panics and reports them through Fatal.
// Usage: defer logger.Recover(ctx)
func Recover(ctx context.Context) {
	if r := recover(); r != nil {
		// Check if it's already a FatalError (intentional panic)
		if _, ok := r.(FatalError); ok {
			panic(r)
		}
		fatalAt(ctx, debug.Stack(), "panic: %v", r)
	}
}

// CmdPanicMsg is delivered instead of a command's result when the command
// panicked. The program keeps running.
type CmdPanicMsg struct {
	Value any
	Stack []byte
}

// RecoverTUI wraps a tea.Cmd so that a panic inside it is logged and turned
// into a CmdPanicMsg instead of taking the whole program down.
func RecoverTUI(ctx context.Context, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(FatalError); ok {
					panic(r)
				}
				stack := debug.Stack()
				Error(ctx, "Command panicked", "panic", r)
				msg = CmdPanicMsg{Value: r, Stack: stack}
			}
		}()
		return cmd()
	}
}
