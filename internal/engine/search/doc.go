// Package search implements the match computation for incremental
// search: literal occurrence scanning with smart-case sensitivity,
// nearest-match selection relative to an anchor, and the per-view
// session state that drives highlighting and cursor placement.
package search
