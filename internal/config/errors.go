package config

import "errors"

// Configuration errors.
var (
	// ErrInvalidKeymap indicates the keymap document is not valid JSON
	// or has the wrong shape.
	ErrInvalidKeymap = errors.New("invalid keymap")

	// ErrBindingNotFound indicates no binding exists for a key
	// sequence.
	ErrBindingNotFound = errors.New("binding not found")

	// ErrNoConfigDir indicates the configuration has no backing
	// directory to persist to.
	ErrNoConfigDir = errors.New("no configuration directory")

	// ErrWatcherClosed indicates an operation on a closed watcher.
	ErrWatcherClosed = errors.New("watcher closed")
)
