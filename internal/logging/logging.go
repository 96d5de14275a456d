// Package logging wires the process-wide zerolog.Logger used by every
// other package in this module. Nothing constructs a logger ad hoc;
// everything pulls from logging.Get() or has one injected.
package logging

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	once   sync.Once
	global zerolog.Logger
)

// Get returns the process-wide logger, initializing it on first use
// with a console writer in development-friendly form.
func Get() zerolog.Logger {
	once.Do(func() {
		global = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
			With().Timestamp().Logger()
	})
	return global
}

// SetGlobal overrides the process-wide logger, for tests or for a
// binary that wants structured JSON instead of the console writer.
func SetGlobal(l zerolog.Logger) {
	global = l
}
