// Package isearch provides handlers for incremental search commands.
//
// This package implements Emacs-style incremental search ("I-search")
// over the view's buffer. The match set is recomputed from the live
// query on every keystroke; nothing is cached across edits, so match
// offsets are never stale.
//
// # State Machine
//
// A session has two states, Idle and Searching:
//
//	Idle      --isearch.forward/backward-->  Searching
//	Searching --queryChanged/next/previous-> Searching
//	Searching --isearch.exit/cancel-->       Idle
//
// Every action other than the two starts is a guarded no-op while Idle.
//
// # Actions
//
//   - isearch.forward (C-s), isearch.backward (C-r): open a session
//     anchored at the cursor
//   - isearch.queryChanged: recompute matches for the live query; the
//     selection moves to the match nearest the anchor in the session
//     direction. An empty query restores the cursor to the anchor. A
//     query with no matches keeps the cursor in place and surfaces a
//     failing label.
//   - isearch.next, isearch.previous: step through matches cyclically,
//     updating the session direction
//   - isearch.exit (RET): close the session, leaving the cursor at the
//     end of the current match
//   - isearch.cancel (C-g): close the session, restoring the cursor to
//     the anchor
//
// # Matching
//
// Matching is literal with the smart-case rule: an all-lowercase query
// matches case-insensitively, a query containing an uppercase rune
// matches exactly. The scan resumes one rune past each match start, so
// occurrences whose content overlaps are all reported.
//
// # Observers
//
// Every transition publishes a SearchStateChanged event carrying a
// snapshot of the session. The highlight layer subscribes and
// recomputes decorations purely from that snapshot and the buffer
// content.
package isearch
