package app

import "errors"

// ErrQuit signals a normal, user-requested exit of the event loop.
var ErrQuit = errors.New("quit")

// Options configure the application at startup.
type Options struct {
	// ConfigDir is the configuration directory; empty selects the
	// platform default.
	ConfigDir string

	// Files are the files to open; only the first is opened for now.
	Files []string

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string

	// Debug forces debug-level logging.
	Debug bool
}
