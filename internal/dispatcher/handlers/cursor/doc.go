// Package cursor provides handlers for cursor movement commands.
//
// This package implements Emacs-style movements as action handlers for
// the dispatcher. Every movement resolves to a target position and then
// runs through one application path: while the mark is set the selection
// extends from mark to target, otherwise the cursor moves to target and
// the selection collapses to zero width.
//
// # Movements
//
//   - cursor.move: relative motion with lineDelta/colDelta arguments; a
//     target line outside the buffer absorbs the step as a no-op, the
//     column clamps into the target line
//   - cursor.forwardChar (C-f): one rune right, stopping at line end
//   - cursor.backwardChar (C-b): one rune left, stopping at column zero
//   - cursor.nextLine (C-n): one line down, column clamped
//   - cursor.previousLine (C-p): one line up, column clamped
//   - cursor.lineStart (C-a): column zero of the current line
//   - cursor.lineEnd (C-e): end of the current line
//   - cursor.bufferStart (M-<): first position of the buffer
//   - cursor.bufferEnd (M->): past the last character of the buffer
//
// # Word Motions
//
//   - cursor.wordForward (M-f): end of the current or next word
//   - cursor.wordBackward (M-b): start of the current or previous word
//
// Word motions share the boundary scan with the kill-word commands. The
// boundary character set is read from live settings on every scan, so
// configuration changes apply to the next keystroke.
//
// # Edge Behavior
//
// Movement at buffer boundaries is absorbed, never an error. A word
// scan that reaches the buffer edge without finding a word leaves the
// cursor unmoved and reports StatusNoOp.
//
// # Usage
//
// Register the handler with the dispatcher:
//
//	d.RegisterNamespace("cursor", cursor.NewHandler())
//
// Dispatch cursor actions:
//
//	result := d.Dispatch(ctx, input.Action{
//	    Name:  cursor.ActionWordForward,
//	    Count: 3,
//	})
package cursor
