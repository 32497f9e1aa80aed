// Package logging is cmd/synless's thin wrapper over pterm, the styled
// terminal-output library github.com/npillmayer/gorgo's own REPL uses for
// its Info/Error prefixed messages. Core packages never log -- they
// return errors (spec.md §7 channels 1-2) or panic via internal/bug
// (channel 3); only cmd/synless calls into this package. Besides this
// package, only internal/pretty's TerminalWindow imports pterm.
package logging

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/synless-editor/synless/internal/bug"
)

func init() {
	pterm.Error.Prefix = pterm.Prefix{Text: " ERROR ", Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack)}
	pterm.Warning.Prefix = pterm.Prefix{Text: " WARN  ", Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)}
	pterm.Info.Prefix = pterm.Prefix{Text: " INFO  ", Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)}
}

func Info(format string, args ...any)    { pterm.Info.Printfln(format, args...) }
func Warn(format string, args ...any)    { pterm.Warning.Printfln(format, args...) }
func Error(format string, args ...any)   { pterm.Error.Printfln(format, args...) }
func Success(format string, args ...any) { pterm.Success.Printfln(format, args...) }

// Fatal prints a styled error message and exits the process with status 1.
// Used by cmd/synless for channel-1/2 errors it cannot recover from (a
// malformed language file, a missing source file).
func Fatal(format string, args ...any) {
	pterm.Error.Printfln(format, args...)
	os.Exit(1)
}

// RecoverBug is deferred by cmd/synless's command entry points to turn an
// internal/bug panic into a styled message and a clean process exit,
// instead of a raw Go stack trace, while letting any other panic (which
// indicates a logging bug of its own) propagate unchanged.
func RecoverBug() {
	r := recover()
	if r == nil {
		return
	}
	b, ok := r.(*bug.Bug)
	if !ok {
		panic(r)
	}
	pterm.Error.Printfln("%s", b.Error())
	os.Exit(1)
}
