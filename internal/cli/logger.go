package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/tonal/internal/config"
)

// newLogger returns the CLI logger: warnings by default, debug with --verbose,
// errors only with --quiet.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   config.Name,
		Output: w,
		Level:  level,
	})
}
