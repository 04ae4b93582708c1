/*
 * Copyright (C) 2026, Steve Pryde
 *
 * This file is part of stringmatch.
 *
 * stringmatch is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * stringmatch is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package stringmatch

import "strings"

// MatchLength selects how much of the haystack the needle text must
// cover. Exactly one length is active per StringMatch.
type MatchLength int

const (
	// Full: the needle must equal the entire haystack.
	Full MatchLength = iota
	// Partial: the needle may appear anywhere as a substring.
	Partial
	// Word: the needle must appear as a whole token, bounded by the
	// start/end of the haystack or by a single space on each side.
	Word
)

// StringMatch is a configurable needle.
//
// It has value semantics: builder methods take and return a copy, so
// a StringMatch can be freely shared, compared with == and used as a
// map key. The zero value matches only the empty haystack (empty
// text, Full, case-sensitive).
type StringMatch struct {
	text     string
	length   MatchLength
	foldCase bool
}

// New returns a full, case-sensitive matcher for text.
func New(text string) StringMatch {
	return StringMatch{text: text}
}

// Text returns the needle text.
func (m StringMatch) Text() string { return m.text }

// Length returns the active match length.
func (m StringMatch) Length() MatchLength { return m.length }

func (m StringMatch) IsFullMatch() bool    { return m.length == Full }
func (m StringMatch) IsPartialMatch() bool { return m.length == Partial }
func (m StringMatch) IsWordMatch() bool    { return m.length == Word }
func (m StringMatch) IsCaseSensitive() bool { return !m.foldCase }

// Full returns a copy that requires the needle to equal the entire
// haystack. Length builders are mutually exclusive, last call wins.
func (m StringMatch) Full() StringMatch {
	m.length = Full
	return m
}

// Partial returns a copy that matches the needle anywhere in the
// haystack.
func (m StringMatch) Partial() StringMatch {
	m.length = Partial
	return m
}

// Word returns a copy that matches the needle as a whole
// space-delimited token.
func (m StringMatch) Word() StringMatch {
	m.length = Word
	return m
}

// CaseSensitive returns a copy that compares text as-is.
func (m StringMatch) CaseSensitive() StringMatch {
	m.foldCase = false
	return m
}

// CaseInsensitive returns a copy that lowercases both sides before
// comparison.
func (m StringMatch) CaseInsensitive() StringMatch {
	m.foldCase = true
	return m
}

// IsMatch implements Needle.
func (m StringMatch) IsMatch(haystack string) bool {
	needle := m.text
	if m.foldCase {
		needle = strings.ToLower(needle)
		haystack = strings.ToLower(haystack)
	}
	switch m.length {
	case Partial:
		return strings.Contains(haystack, needle)
	case Word:
		// Padding both sides with a space turns the token-boundary
		// test into a plain substring test: "a" is found in "x a y"
		// but not in "xa", and a multi-word needle only matches the
		// exact space-delimited phrase.
		return strings.Contains(" "+haystack+" ", " "+needle+" ")
	default:
		return haystack == needle
	}
}
