package execctx

import "errors"

// Context validation errors.
var (
	// ErrMissingBuffer indicates the buffer is required but not set.
	ErrMissingBuffer = errors.New("execution context: buffer is required")

	// ErrMissingClipboard indicates the clipboard is required but not set.
	ErrMissingClipboard = errors.New("execution context: clipboard is required")

	// ErrMissingMark indicates the mark state is required but not set.
	ErrMissingMark = errors.New("execution context: mark is required")

	// ErrMissingSearch indicates the search session is required but not set.
	ErrMissingSearch = errors.New("execution context: search session is required")
)
