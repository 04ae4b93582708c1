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

// Package stringmatch provides a uniform predicate over strings.
//
// The Needle interface is the single contract: "does this value match
// that haystack". Exact strings, configurable StringMatch values,
// compiled regular expressions and arbitrary func predicates all
// implement it, so callers can accept any matching style through one
// parameter type and dispatch at runtime through interface values.
package stringmatch

import "regexp"

var (
	_ Needle = Str("")
	_ Needle = Func(nil)
	_ Needle = Regexp{}
	_ Needle = StringMatch{}
	_ Needle = Group(nil)
)

// Needle is the capability every matcher kind implements.
type Needle interface {
	// IsMatch reports whether haystack satisfies this needle.
	// It is a pure function. It never fails: anything that can go
	// wrong (e.g. an invalid regexp) must fail at construction time,
	// before the value becomes a Needle.
	IsMatch(haystack string) bool
}

// Str matches iff the haystack equals it exactly.
// It is always a full, case-sensitive comparison. Callers that need
// partial or case-insensitive behavior use StringMatch instead.
type Str string

func (s Str) IsMatch(haystack string) bool {
	return string(s) == haystack
}

// Func adapts a plain predicate into a Needle.
type Func func(haystack string) bool

func (f Func) IsMatch(haystack string) bool {
	return f(haystack)
}

// Regexp adapts a compiled *regexp.Regexp into a Needle.
// Matching delegates entirely to the regexp engine: anchors, inline
// flags and partial-vs-full semantics are owned by the pattern syntax.
type Regexp struct {
	re *regexp.Regexp
}

// NewRegexp wraps re. re must not be nil.
func NewRegexp(re *regexp.Regexp) Regexp {
	return Regexp{re: re}
}

// MustRegexp compiles expr and wraps it. It panics if expr is invalid.
func MustRegexp(expr string) Regexp {
	return Regexp{re: regexp.MustCompile(expr)}
}

func (r Regexp) IsMatch(haystack string) bool {
	return r.re.MatchString(haystack)
}

// Group is a set of needles. It matches iff at least one member
// matches. Members are tested in order and testing stops at the
// first match.
type Group []Needle

func (g Group) IsMatch(haystack string) bool {
	for _, n := range g {
		if n.IsMatch(haystack) {
			return true
		}
	}
	return false
}

// IsMatchIn reports whether any haystack matches n.
// It returns false for an empty slice and stops at the first match.
func IsMatchIn(n Needle, haystacks []string) bool {
	for _, h := range haystacks {
		if n.IsMatch(h) {
			return true
		}
	}
	return false
}

// IsMatchInFunc is IsMatchIn over a pull sequence. next returns the
// next haystack, or ok == false when the sequence is exhausted.
// next is not called again after a match, so candidates that are
// expensive to produce are never produced past the first hit.
func IsMatchInFunc(n Needle, next func() (haystack string, ok bool)) bool {
	for {
		h, ok := next()
		if !ok {
			return false
		}
		if n.IsMatch(h) {
			return true
		}
	}
}
