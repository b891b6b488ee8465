// Package editor provides handlers for region, kill, and yank commands.
//
// This package implements Emacs-style kill and yank as action handlers
// for the dispatcher. Kill means cut: the text is deleted from the
// buffer and placed on the system clipboard. Yank means paste. There is
// no kill ring; the clipboard holds a single entry.
//
// # Region Operations
//
//   - editor.copyRegion (M-w): copy the text between mark and cursor to
//     the clipboard and clear the mark; the buffer is untouched
//   - editor.killRegion (C-w): copy the region, then delete it
//
// Both are no-ops while no mark is set. The region endpoint order does
// not matter; the span is normalized.
//
// # Kill Operations
//
//   - editor.killLine (C-k): kill from the cursor to the end of the
//     line. At end of line the single newline is killed instead,
//     joining the next line, so repeated invocations flatten the buffer
//     one line at a time. On the last line with nothing after the
//     cursor, nothing happens.
//   - editor.killWord (M-d): kill to the forward word-scan boundary
//   - editor.backwardKillWord (M-DEL): kill to the backward word-scan
//     boundary
//
// # Yank
//
//   - editor.yank (C-y): insert the clipboard text at the cursor,
//     replacing any active selection
//
// # Keyboard Quit
//
//   - editor.keyboardQuit (C-g): cancel an active incremental search,
//     or clear the mark when no search is running
//
// # Clipboard Failures
//
// Every kill writes the clipboard before deleting. A clipboard failure
// aborts the command and leaves the buffer untouched; the error
// propagates in the result.
package editor
