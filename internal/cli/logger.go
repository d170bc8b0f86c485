package cli

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/term"
)

// newLogger creates the diagnostics logger. --verbose and --quiet take
// precedence over the configured level name.
func newLogger(out io.Writer, level string, verbose, quiet bool) hclog.Logger {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Info
	}
	switch {
	case verbose:
		lvl = hclog.Debug
	case quiet:
		lvl = hclog.Warn
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "touchicon",
		Output: out,
		Level:  lvl,
		Color:  colorOption(out),
	})
}

// colorOption enables colour only when writing to a terminal.
func colorOption(out io.Writer) hclog.ColorOption {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return hclog.AutoColor
	}
	return hclog.ColorOff
}
