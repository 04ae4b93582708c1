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

package provider

import (
	"testing"

	"github.com/stevepryde/stringmatch"
	"github.com/stretchr/testify/require"
)

func TestProvider_LoadYAML(t *testing.T) {
	r := require.New(t)
	p := New(nil)

	r.NoError(p.LoadYAML([]byte(`
- tag: exact
  type: string
  args:
    text: Test
- tag: keyword
  type: string_match
  args:
    text: es
    match: partial
- tag: word
  type: string_match
  args:
    text: aaa aa
    match: word
    case_sensitive: false
- tag: re
  type: regexp
  args:
    expr: "^T.+t$"
- tag: combined
  type: expr
  args:
    expr: exact && (keyword || re)
`)))

	r.Equal([]string{"combined", "exact", "keyword", "re", "word"}, p.Tags())

	doTest := func(tag, haystack string, want bool) {
		t.Helper()
		n := p.Get(tag)
		r.NotNil(n)
		r.Equal(want, n.IsMatch(haystack))
	}

	doTest("exact", "Test", true)
	doTest("exact", "test", false)
	doTest("keyword", "Test", true)
	doTest("keyword", "TEST", false)
	doTest("word", "aa AAA AA aaa", true)
	doTest("word", "aa aaa aaa", false)
	doTest("re", "Test", true)
	doTest("re", "Tes", false)
	doTest("combined", "Test", true)
	doTest("combined", "test", false)
}

func TestProvider_Add_errors(t *testing.T) {
	r := require.New(t)
	p := New(nil)

	r.Error(p.Add(Config{Tag: "a", Type: "bogus"}))
	r.Error(p.Add(Config{Tag: "a", Type: "regexp", Args: map[string]interface{}{"expr": "("}}))
	r.Error(p.Add(Config{Tag: "a", Type: "string_match", Args: map[string]interface{}{
		"text":  "x",
		"match": "whole",
	}}))
	r.Error(p.Add(Config{Tag: "a", Type: "string", Args: map[string]interface{}{"bogus": 1}}))
	r.Error(p.Add(Config{Tag: "a", Type: "expr", Args: map[string]interface{}{"expr": "missing"}}))
	r.Error(p.Add(Config{Type: "string"}), "empty tag")

	r.NoError(p.Add(Config{Tag: "a", Type: "string", Args: map[string]interface{}{"text": "x"}}))
	r.Error(p.Add(Config{Tag: "a", Type: "string", Args: map[string]interface{}{"text": "y"}}), "dup tag")
}

func TestProvider_Register(t *testing.T) {
	r := require.New(t)
	p := New(nil)

	r.NoError(p.Register("f", stringmatch.Func(func(s string) bool { return len(s) == 0 })))
	r.True(p.Get("f").IsMatch(""))
	r.Error(p.Register("f", stringmatch.Str("x")))
	r.Error(p.Register("", stringmatch.Str("x")))
	r.Error(p.Register("nil", nil))
	r.Nil(p.Get("unknown"))

	// Needles() is a copy, mutating it must not affect the registry.
	m := p.Needles()
	delete(m, "f")
	r.NotNil(p.Get("f"))
}

func TestParseQuick(t *testing.T) {
	r := require.New(t)

	doTest := func(shorthand, haystack string, want bool) {
		t.Helper()
		n, err := ParseQuick(shorthand)
		r.NoError(err)
		r.Equal(want, n.IsMatch(haystack))
	}

	doTest("string:Test", "Test", true)
	doTest("string:Te", "Test", false)
	doTest("full:Test", "Test", true)
	doTest("partial:es", "Test", true)
	doTest("word:a", "b a c", true)
	doTest("word:a", "bac", false)
	doTest("regexp:^T", "Test", true)

	_, err := ParseQuick("Test")
	r.Error(err, "missing type")
	_, err = ParseQuick("bogus:Test")
	r.Error(err)
	_, err = ParseQuick("regexp:(")
	r.Error(err)
}
