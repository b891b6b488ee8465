package search

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/markstorm/internal/engine/buffer"
)

// Match is one occurrence of the query in the buffer text, as byte
// offsets into that text. Start is inclusive, End exclusive.
type Match struct {
	Start buffer.ByteOffset
	End   buffer.ByteOffset
}

// IsCaseSensitive implements the smart-case rule: a query containing
// any uppercase rune matches case-sensitively, an all-lowercase query
// case-insensitively.
func IsCaseSensitive(query string) bool {
	for _, r := range query {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// compilePattern builds a literal-match pattern for query, honoring
// smart case. QuoteMeta makes compilation infallible.
func compilePattern(query string) *regexp.Regexp {
	pattern := regexp.QuoteMeta(query)
	if !IsCaseSensitive(query) {
		pattern = "(?i)" + pattern
	}
	return regexp.MustCompile(pattern)
}

// Find returns every occurrence of query in text, ascending by start
// offset. Matching is literal with smart case. The scan resumes one
// rune past each match start, so occurrences whose content overlaps are
// all reported. An empty query or empty text yields no matches.
func Find(text, query string) []Match {
	if text == "" || query == "" {
		return nil
	}
	re := compilePattern(query)
	var matches []Match
	for off := 0; off < len(text); {
		loc := re.FindStringIndex(text[off:])
		if loc == nil {
			break
		}
		start := off + loc[0]
		matches = append(matches, Match{Start: start, End: off + loc[1]})
		_, size := utf8.DecodeRuneInString(text[start:])
		off = start + size
	}
	return matches
}

// NearestForward returns the index of the first match starting at or
// after anchor, wrapping to the first match when none qualifies.
// matches must be non-empty.
func NearestForward(matches []Match, anchor buffer.ByteOffset) int {
	for i, m := range matches {
		if m.Start >= anchor {
			return i
		}
	}
	return 0
}

// NearestBackward returns the index of the last match starting at or
// before anchor, wrapping to the last match when none qualifies.
// matches must be non-empty.
func NearestBackward(matches []Match, anchor buffer.ByteOffset) int {
	for i := len(matches) - 1; i >= 0; i-- {
		if matches[i].Start <= anchor {
			return i
		}
	}
	return len(matches) - 1
}
