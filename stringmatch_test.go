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

import "testing"

func assertMatchFunc(t *testing.T, n Needle) func(haystack string, want bool) {
	return func(haystack string, want bool) {
		t.Helper()
		if got := n.IsMatch(haystack); got != want {
			t.Fatalf("%q: want %v, got %v", haystack, want, got)
		}
	}
}

func TestStringMatch_defaults(t *testing.T) {
	m := New("a")
	if !m.IsFullMatch() {
		t.Fatal("default length is not full")
	}
	if m.IsPartialMatch() || m.IsWordMatch() {
		t.Fatal("more than one length active")
	}
	if !m.IsCaseSensitive() {
		t.Fatal("default is not case-sensitive")
	}
	if m.Text() != "a" {
		t.Fatalf("text = %q", m.Text())
	}

	assert := assertMatchFunc(t, m)
	assert("a", true)
	assert("", false)
	assert("b", false)
	assert("A", false)
	assert("aa", false)
}

func TestStringMatch_partial(t *testing.T) {
	m := New("a").Partial()
	if !m.IsPartialMatch() || !m.IsCaseSensitive() {
		t.Fatal("bad config")
	}

	assert := assertMatchFunc(t, m)
	assert("a", true)
	assert("aa", true)
	assert("dad", true)
	assert("ba", true)
	assert("A", false)
	assert("", false)
}

func TestStringMatch_word(t *testing.T) {
	m := New("a").Word()
	if !m.IsWordMatch() {
		t.Fatal("bad config")
	}

	assert := assertMatchFunc(t, m)
	assert("a", true)
	assert("a aa", true)
	assert("aa a", true)
	assert("aa a aa", true)
	assert("aa", false)
	assert("dad", false)
	assert("ba", false)
	assert("ax", false)
	assert("A", false)
	assert("", false)
}

func TestStringMatch_wordMultiToken(t *testing.T) {
	m := New("aaa aa").Word().CaseInsensitive()

	assert := assertMatchFunc(t, m)
	assert("aaa aa", true)
	assert("aa aaa aa aaa", true)
	assert("aaa aa aaa", true)
	assert("aa aaa aa", true)
	assert("AAA AA", true)
	// "aaa" followed by "aaa" contains "aaa aa" as a plain substring
	// but not as a space-delimited phrase.
	assert("aa aaa aaa", false)
}

func TestStringMatch_caseInsensitive(t *testing.T) {
	m := New("a").CaseInsensitive()
	if m.IsCaseSensitive() || !m.IsFullMatch() {
		t.Fatal("bad config")
	}

	assert := assertMatchFunc(t, m)
	assert("a", true)
	assert("A", true)
	assert("aa", false)
	assert("b", false)

	assert = assertMatchFunc(t, New("aA").Partial().CaseInsensitive())
	assert("Aa", true)
	assert("Aaa", true)
	assert("b", false)
}

func TestStringMatch_lastBuilderWins(t *testing.T) {
	m := New("a").Partial().Word().Full()
	if !m.IsFullMatch() {
		t.Fatal("last length builder did not win")
	}
	m = New("a").CaseInsensitive().CaseSensitive()
	if !m.IsCaseSensitive() {
		t.Fatal("last case builder did not win")
	}
}

func TestStringMatch_valueSemantics(t *testing.T) {
	orig := New("a")
	derived := orig.Partial().CaseInsensitive()
	if !orig.IsFullMatch() || !orig.IsCaseSensitive() {
		t.Fatal("builder mutated the original")
	}
	if !derived.IsPartialMatch() || derived.IsCaseSensitive() {
		t.Fatal("derived config lost")
	}
}

func TestStringMatch_equality(t *testing.T) {
	a := New("a").Word().CaseInsensitive()
	b := New("a").Word().CaseInsensitive()
	if a != b {
		t.Fatal("structurally equal matchers compare unequal")
	}
	if a == b.CaseSensitive() || a == New("b").Word().CaseInsensitive() {
		t.Fatal("different matchers compare equal")
	}

	// Comparable, so usable as a map key.
	seen := map[StringMatch]int{a: 1}
	if seen[b] != 1 {
		t.Fatal("map lookup by equal matcher failed")
	}
}

func TestShortcuts(t *testing.T) {
	if !MatchFull("a").IsFullMatch() {
		t.Fatal("MatchFull")
	}
	if !MatchPartial("a").IsPartialMatch() {
		t.Fatal("MatchPartial")
	}
	if !MatchWord("a").IsWordMatch() {
		t.Fatal("MatchWord")
	}
	if !MatchCaseSensitive("a").IsCaseSensitive() {
		t.Fatal("MatchCaseSensitive")
	}
	if MatchCaseInsensitive("a").IsCaseSensitive() {
		t.Fatal("MatchCaseInsensitive")
	}
}
