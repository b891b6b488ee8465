// Package buffer provides a thread-safe, line-oriented text buffer that
// carries the cursor and selection state for one editor view. It is the
// text surface the command handlers operate on.
//
// The buffer package provides:
//
//   - Thread-safe read/write access via sync.RWMutex
//   - Coordinate conversion between byte offsets and line/column positions
//   - Range extraction and replacement with position clamping
//   - Selection state with paste-over-selection replacement semantics
//   - Line ending normalization
//   - Revision tracking for change detection
//
// Position Types:
//
//   - ByteOffset: raw byte position in the full buffer text
//   - Point: line and column position (0-indexed, column in bytes)
//   - Span: a [Start, End) pair of Points, normalizable when the
//     endpoints arrive in cursor/mark order
//
// Out-of-range positions are clamped rather than rejected: operations at
// the buffer edges are absorbed, never errors.
package buffer
