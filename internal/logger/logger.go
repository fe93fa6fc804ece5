package logger

import (
	"AdminDeck/internal/paths"
	"AdminDeck/internal/version"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"runtime/debug"
	"strings"
	"sync/atomic"
	"time"

	"charm.land/log/v2"
	"golang.org/x/term"
)

// Levels used by the helpers below.
const (
	LevelDebug = log.DebugLevel
	LevelInfo  = log.InfoLevel
	LevelWarn  = log.WarnLevel
	LevelError = log.ErrorLevel
	LevelFatal = log.FatalLevel
)

const timeFormat = "2006-01-02 15:04:05"

// Options configures New.
type Options struct {
	Level   string // debug, info, warn, error
	Format  string // text, logfmt, json
	Verbose bool   // -v raises the level to info
	Debug   bool   // -x raises the level to debug
	File    string // defaults to paths.GetLogFilePath()
}

var (
	// tuiActive suppresses the stderr echo while the terminal belongs to the TUI.
	tuiActive atomic.Bool
	echo      atomic.Pointer[log.Logger]

	// TUIShutdown restores the terminal before a fatal error is printed.
	TUIShutdown func()
)

// SetTUIActive switches the stderr echo off (true) or back on (false).
func SetTUIActive(active bool) {
	tuiActive.Store(active)
}

// ResolveLevel turns the configured level and the -v/-x flags into a level.
func ResolveLevel(opts Options) log.Level {
	level := log.WarnLevel
	if opts.Level != "" {
		if l, err := log.ParseLevel(opts.Level); err == nil {
			level = l
		}
	}
	if opts.Verbose && level > log.InfoLevel {
		level = log.InfoLevel
	}
	if opts.Debug {
		level = log.DebugLevel
	}
	return level
}

func formatter(name string) log.Formatter {
	switch strings.ToLower(name) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// New builds the application logger. Everything goes to the log file; the
// same records are echoed to stderr whenever the TUI is not running. The
// returned closer closes the log file.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := ResolveLevel(opts)

	// The echo is plain logfmt unless stderr is a terminal.
	echoFormat := formatter(opts.Format)
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		echoFormat = log.LogfmtFormatter
	}
	echo.Store(log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
		Formatter:       echoFormat,
	}))

	path := opts.File
	if path == "" {
		path = paths.GetLogFilePath()
	}
	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
		ferr   error
	)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		ferr = err
	} else if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644); err != nil {
		ferr = err
	} else {
		w, closer = f, f
	}

	l := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
		Formatter:       formatter(opts.Format),
		Prefix:          strings.ToLower(version.ApplicationName),
	})
	log.SetDefault(l)
	if ferr != nil {
		ferr = fmt.Errorf("opening log file: %w", ferr)
	}
	return l, closer, ferr
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewContext stores l in ctx for the helpers below.
func NewContext(ctx context.Context, l *log.Logger) context.Context {
	return log.WithContext(ctx, l)
}

// FromContext returns the logger stored in ctx, or the default logger.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	return log.FromContext(ctx)
}

// printfVerb matches a formatting verb such as %s, %-8v or %.2f, but not %%.
var printfVerb = regexp.MustCompile(`(^|[^%])(%%)*%[-+#0]*(\*|[0-9]+)?(\.(\*|[0-9]+)?)?[vTtbcdoOqxXUeEfFgGsp]`)

// isPrintf reports whether msg is a format string rather than a plain message.
func isPrintf(msg string) bool {
	return printfVerb.MatchString(msg)
}

func logAt(ctx context.Context, level log.Level, msg any, args ...any) {
	msgStr := resolveMsg(msg)
	// printf-style messages consume their args
	if len(args) > 0 && isPrintf(msgStr) {
		msgStr = fmt.Sprintf(msgStr, args...)
		args = nil
	}
	l := FromContext(ctx)
	l.Log(level, msgStr, args...)
	if tuiActive.Load() {
		return
	}
	if e := echo.Load(); e != nil && e != l {
		e.Log(level, msgStr, args...)
	}
}

// Helper to resolve message from any type to string
func resolveMsg(msg any) string {
	switch v := msg.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	case []any:
		var parts []string
		for _, item := range v {
			parts = append(parts, resolveMsg(item))
		}
		return strings.Join(parts, "\n")
	case error:
		return v.Error()
	default:
		return fmt.Sprint(v)
	}
}

func Debug(ctx context.Context, msg any, args ...any) {
	logAt(ctx, LevelDebug, msg, args...)
}

func Info(ctx context.Context, msg any, args ...any) {
	logAt(ctx, LevelInfo, msg, args...)
}

func Warn(ctx context.Context, msg any, args ...any) {
	logAt(ctx, LevelWarn, msg, args...)
}

func Error(ctx context.Context, msg any, args ...any) {
	logAt(ctx, LevelError, msg, args...)
}

func getSystemInfo() []string {
	executable, _ := os.Executable()
	return []string{
		fmt.Sprintf("%s [%s]", version.ApplicationName, version.Version),
		fmt.Sprintf("Currently running as: %s (PID %d)", executable, os.Getpid()),
		fmt.Sprintf("ARCH: %s", runtime.GOARCH),
		fmt.Sprintf("OS:   %s", runtime.GOOS),
	}
}

// Fatal logs a message at FatalLevel with system info and a stack trace, then
// panics with FatalError so main can clean up before exiting.
func Fatal(ctx context.Context, msg any, args ...any) {
	fatalAt(ctx, debug.Stack(), msg, args...)
}

func fatalAt(ctx context.Context, stack []byte, msg any, args ...any) {
	if TUIShutdown != nil {
		TUIShutdown()
	}
	SetTUIActive(false)

	output := []any{
		"### BEGIN SYSTEM INFORMATION AND STACK TRACE ###",
		getSystemInfo(),
		strings.TrimRight(string(stack), "\n"),
		"### END SYSTEM INFORMATION AND STACK TRACE ###",
		msg,
		fmt.Sprintf("Logged at %s to %s", time.Now().Format(timeFormat), paths.GetLogFilePath()),
	}
	logAt(ctx, LevelFatal, output, args...)

	panic(FatalError{})
}

// FatalError is a special error used to panic from Fatal logger calls
// This allows the main run loop to recover and perform cleanup before exiting
type FatalError struct{}

func (FatalError) Error() string { return "fatal error" }
