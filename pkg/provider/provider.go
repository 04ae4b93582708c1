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

// Package provider builds needles from configuration.
//
// Callers hand in decoded maps or raw yaml bytes; the provider never
// touches files or the network.
package provider

import (
	"fmt"
	"regexp"

	"github.com/stevepryde/stringmatch"
	"github.com/stevepryde/stringmatch/mlog"
	"github.com/stevepryde/stringmatch/pkg/expr"
	"github.com/stevepryde/stringmatch/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Config defines one named needle.
type Config struct {
	// Tag, required, must be unique within a Provider.
	Tag string `yaml:"tag"`

	// Type, required. One of "string", "string_match", "regexp", "expr".
	Type string `yaml:"type"`

	// Args, schema depends on Type.
	Args map[string]interface{} `yaml:"args"`
}

// StringArgs is the args schema for type "string".
type StringArgs struct {
	Text string `yaml:"text"`
}

// StringMatchArgs is the args schema for type "string_match".
type StringMatchArgs struct {
	Text string `yaml:"text"`

	// Match is "full", "partial" or "word". Default is "full".
	Match string `yaml:"match"`

	// CaseSensitive defaults to true.
	CaseSensitive *bool `yaml:"case_sensitive"`
}

// RegexpArgs is the args schema for type "regexp".
type RegexpArgs struct {
	Expr string `yaml:"expr"`
}

// ExprArgs is the args schema for type "expr". Variables refer to
// tags already registered in the Provider.
type ExprArgs struct {
	Expr string `yaml:"expr"`
}

// Provider is a registry of named needles.
type Provider struct {
	lg      *zap.Logger
	needles map[string]stringmatch.Needle
}

// New returns an empty Provider. A nil logger disables logging.
func New(lg *zap.Logger) *Provider {
	if lg == nil {
		lg = mlog.Nop()
	}
	return &Provider{
		lg:      lg,
		needles: make(map[string]stringmatch.Needle),
	}
}

// Register adds n under tag.
func (p *Provider) Register(tag string, n stringmatch.Needle) error {
	if len(tag) == 0 {
		return fmt.Errorf("empty needle tag")
	}
	if n == nil {
		return fmt.Errorf("nil needle")
	}
	if _, dup := p.needles[tag]; dup {
		return fmt.Errorf("duplicated needle tag %s", tag)
	}
	p.needles[tag] = n
	return nil
}

// Get returns the needle registered under tag, or nil.
func (p *Provider) Get(tag string) stringmatch.Needle {
	return p.needles[tag]
}

// Tags returns all registered tags, sorted.
func (p *Provider) Tags() []string {
	tags := maps.Keys(p.needles)
	slices.Sort(tags)
	return tags
}

// Needles returns a copy of the registry.
func (p *Provider) Needles() map[string]stringmatch.Needle {
	return maps.Clone(p.needles)
}

// Add builds a needle from c and registers it.
func (p *Provider) Add(c Config) error {
	n, err := p.build(c)
	if err != nil {
		return fmt.Errorf("failed to build needle %s: %w", c.Tag, err)
	}
	if err := p.Register(c.Tag, n); err != nil {
		return err
	}
	p.lg.Debug("needle registered", zap.String("tag", c.Tag), zap.String("type", c.Type))
	return nil
}

// LoadYAML decodes a yaml list of Config and adds every entry in
// order, so expr entries can refer to tags defined above them.
func (p *Provider) LoadYAML(b []byte) error {
	var cs []Config
	if err := yaml.Unmarshal(b, &cs); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	for _, c := range cs {
		if err := p.Add(c); err != nil {
			return err
		}
	}
	return nil
}

func (p *Provider) build(c Config) (stringmatch.Needle, error) {
	switch c.Type {
	case "string":
		args := new(StringArgs)
		if err := utils.WeakDecode(c.Args, args); err != nil {
			return nil, err
		}
		return stringmatch.Str(args.Text), nil

	case "string_match":
		args := new(StringMatchArgs)
		if err := utils.WeakDecode(c.Args, args); err != nil {
			return nil, err
		}
		return buildStringMatch(args)

	case "regexp":
		args := new(RegexpArgs)
		if err := utils.WeakDecode(c.Args, args); err != nil {
			return nil, err
		}
		re, err := regexp.Compile(args.Expr)
		if err != nil {
			return nil, fmt.Errorf("invalid reg expression, %w", err)
		}
		return stringmatch.NewRegexp(re), nil

	case "expr":
		args := new(ExprArgs)
		if err := utils.WeakDecode(c.Args, args); err != nil {
			return nil, err
		}
		return expr.NewMatcher(p.lg.Named(c.Tag), args.Expr, p.needles)

	default:
		return nil, fmt.Errorf("unsupported needle type [%s]", c.Type)
	}
}

func buildStringMatch(args *StringMatchArgs) (stringmatch.StringMatch, error) {
	m := stringmatch.New(args.Text)
	if len(args.Match) > 0 {
		length, err := stringmatch.ParseMatchLength(args.Match)
		if err != nil {
			return m, err
		}
		switch length {
		case stringmatch.Partial:
			m = m.Partial()
		case stringmatch.Word:
			m = m.Word()
		}
	}
	if args.CaseSensitive != nil && !*args.CaseSensitive {
		m = m.CaseInsensitive()
	}
	return m, nil
}

// ParseQuick parses the shorthand "type:pattern" into a needle.
// type = {string|full|partial|word|regexp}
func ParseQuick(s string) (stringmatch.Needle, error) {
	typ, pattern, ok := utils.SplitString2(s, ":")
	if !ok {
		return nil, fmt.Errorf("invalid shorthand [%s], missing type", s)
	}
	switch typ {
	case "string":
		return stringmatch.Str(pattern), nil
	case "full":
		return stringmatch.MatchFull(pattern), nil
	case "partial":
		return stringmatch.MatchPartial(pattern), nil
	case "word":
		return stringmatch.MatchWord(pattern), nil
	case "regexp":
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid reg expression, %w", err)
		}
		return stringmatch.NewRegexp(re), nil
	default:
		return nil, fmt.Errorf("unsupported needle type [%s]", typ)
	}
}
