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

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Wire form of a StringMatch: three plain fields, so a value survives
// an encode/decode round trip through JSON or YAML unchanged.
type stringMatchView struct {
	Text          string      `yaml:"text" json:"text"`
	Match         MatchLength `yaml:"match" json:"match"`
	CaseSensitive bool        `yaml:"case_sensitive" json:"case_sensitive"`
}

func (m StringMatch) view() stringMatchView {
	return stringMatchView{
		Text:          m.text,
		Match:         m.length,
		CaseSensitive: !m.foldCase,
	}
}

func fromView(v stringMatchView) StringMatch {
	return StringMatch{
		text:     v.Text,
		length:   v.Match,
		foldCase: !v.CaseSensitive,
	}
}

func (l MatchLength) String() string {
	switch l {
	case Full:
		return "full"
	case Partial:
		return "partial"
	case Word:
		return "word"
	default:
		return fmt.Sprintf("invalid(%d)", int(l))
	}
}

// ParseMatchLength parses "full", "partial" or "word".
func ParseMatchLength(s string) (MatchLength, error) {
	switch s {
	case "full":
		return Full, nil
	case "partial":
		return Partial, nil
	case "word":
		return Word, nil
	default:
		return 0, fmt.Errorf("invalid match length [%s]", s)
	}
}

func (l MatchLength) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *MatchLength) UnmarshalText(b []byte) error {
	parsed, err := ParseMatchLength(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// yaml.v3 does not consult encoding.TextUnmarshaler, so MatchLength
// carries its own yaml hooks.

func (l MatchLength) MarshalYAML() (any, error) {
	return l.String(), nil
}

func (l *MatchLength) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return l.UnmarshalText([]byte(s))
}

func (m StringMatch) MarshalYAML() (any, error) {
	return m.view(), nil
}

func (m *StringMatch) UnmarshalYAML(value *yaml.Node) error {
	var v stringMatchView
	if err := value.Decode(&v); err != nil {
		return err
	}
	*m = fromView(v)
	return nil
}

func (m StringMatch) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.view())
}

func (m *StringMatch) UnmarshalJSON(b []byte) error {
	var v stringMatchView
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*m = fromView(v)
	return nil
}
