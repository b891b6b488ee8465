// Package engine groups the editing engines behind the command layer.
//
// The work happens in the sub-packages:
//
//   - buffer: line-oriented text storage with cursor, selection, and
//     byte-offset/point conversion
//   - search: literal incremental search with smart-case matching and
//     nearest-match selection
//   - word: configurable word-boundary scanning for word navigation
//     and word kills
//   - mark: the mark that anchors the region
//
// All state is per view. The dispatcher owns one mark and one search
// session per view and threads them to handlers through the execution
// context.
package engine
