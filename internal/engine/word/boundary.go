// Package word implements word-boundary scanning over a line-oriented
// buffer. A configurable boundary character set decides which runes
// separate words; scans cross line breaks in both directions.
package word

import "unicode/utf8"

// DefaultBoundaryChars is the boundary configuration used when none is
// set: space, tab, newline, and underscore. Tab and newline are written
// with the same backslash escapes the configuration file uses.
const DefaultBoundaryChars = ` \t\n_`

// BoundarySet reports which runes separate words. A rune is a word
// character iff it is not in the set. Line terminators are always
// boundaries regardless of the configured characters.
type BoundarySet struct {
	ascii [128]bool
	other map[rune]bool
}

// NewBoundarySet parses a boundary specification string into a set.
// The escape sequences \t, \n, and \\ denote tab, newline, and a
// literal backslash; every other character stands for itself. The set
// is cheap to build and is constructed fresh on every scan so that
// configuration changes take effect immediately.
func NewBoundarySet(spec string) *BoundarySet {
	s := &BoundarySet{}
	s.add('\n')
	s.add('\r')
	for i := 0; i < len(spec); {
		r, size := utf8.DecodeRuneInString(spec[i:])
		i += size
		if r == '\\' && i < len(spec) {
			next, nsize := utf8.DecodeRuneInString(spec[i:])
			switch next {
			case 't':
				s.add('\t')
				i += nsize
				continue
			case 'n':
				s.add('\n')
				i += nsize
				continue
			case '\\':
				s.add('\\')
				i += nsize
				continue
			}
		}
		s.add(r)
	}
	return s
}

func (s *BoundarySet) add(r rune) {
	if r >= 0 && r < 128 {
		s.ascii[r] = true
		return
	}
	if s.other == nil {
		s.other = make(map[rune]bool)
	}
	s.other[r] = true
}

// IsBoundary returns true if r separates words.
func (s *BoundarySet) IsBoundary(r rune) bool {
	if r >= 0 && r < 128 {
		return s.ascii[r]
	}
	return s.other[r]
}

// IsWord returns true if r is part of a word.
func (s *BoundarySet) IsWord(r rune) bool {
	return !s.IsBoundary(r)
}
