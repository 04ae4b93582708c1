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

// Package expr composes named needles with boolean expressions,
// e.g. "(host || path) && !blocked".
package expr

import (
	"fmt"
	"sync"

	"github.com/Knetic/govaluate"
	"github.com/stevepryde/stringmatch"
	"github.com/stevepryde/stringmatch/mlog"
	"go.uber.org/zap"
)

var _ stringmatch.Needle = (*Matcher)(nil)

// Matcher evaluates a boolean expression whose variables are needles.
// A variable is true iff its needle matches the haystack. Variables
// are evaluated lazily: govaluate short-circuits && and ||, so a
// needle whose result cannot affect the outcome is never tested.
type Matcher struct {
	lg         *zap.Logger
	expr       *govaluate.EvaluableExpression
	needles    map[string]stringmatch.Needle
	paramsPool sync.Pool
}

// NewMatcher compiles s and binds every variable to a needle from
// needles. Unknown variables and non-boolean expressions are rejected
// here, never at match time. A nil logger disables logging.
func NewMatcher(lg *zap.Logger, s string, needles map[string]stringmatch.Needle) (*Matcher, error) {
	if lg == nil {
		lg = mlog.Nop()
	}

	m := &Matcher{
		lg:      lg,
		needles: make(map[string]stringmatch.Needle),
	}

	expr, err := govaluate.NewEvaluableExpression(s)
	if err != nil {
		return nil, err
	}

	m.expr = expr
	for _, tag := range expr.Vars() {
		n, ok := needles[tag]
		if !ok || n == nil {
			return nil, fmt.Errorf("cannot find needle %s", tag)
		}
		m.needles[tag] = n
	}

	// params type check
	expr.ChecksTypes = true
	params := make(govaluate.MapParameters)
	for tag := range m.needles {
		params[tag] = true
	}
	if out, err := expr.Eval(params); err != nil {
		return nil, fmt.Errorf("invalid param, %w", err)
	} else if _, ok := out.(bool); !ok {
		return nil, fmt.Errorf("expression is not boolean, got %T", out)
	}

	return m, nil
}

type varResult int

const (
	varResultNull varResult = iota // not evaluated, short-circuited away
	varResultFalse
	varResultTrue
)

func (r varResult) String() string {
	switch r {
	case varResultNull:
		return "nil"
	case varResultFalse:
		return "false"
	case varResultTrue:
		return "true"
	default:
		return "invalid"
	}
}

// paramsPlaceholder implements govaluate.Parameters. Variables are
// resolved through callbacks so that only the variables govaluate
// actually asks for are tested, and the per-variable outcomes are
// kept for logging.
type paramsPlaceholder struct {
	f   map[string]func() bool
	res map[string]varResult
}

func newParamsPlaceholder() *paramsPlaceholder {
	return &paramsPlaceholder{
		f:   make(map[string]func() bool),
		res: make(map[string]varResult),
	}
}

func (p *paramsPlaceholder) reset() {
	for tag := range p.f {
		delete(p.f, tag)
	}
	for tag := range p.res {
		delete(p.res, tag)
	}
}

func (p *paramsPlaceholder) Get(name string) (interface{}, error) {
	f, ok := p.f[name]
	if !ok {
		return nil, fmt.Errorf("cannot find var %s", name)
	}
	res := f()
	if res {
		p.res[name] = varResultTrue
	} else {
		p.res[name] = varResultFalse
	}
	return res, nil
}

func (p *paramsPlaceholder) setCall(name string, f func() bool) {
	p.f[name] = f
}

// A helper func for better log.
func (p *paramsPlaceholder) makeResultZapFields(haystack string, res bool) []zap.Field {
	o := make([]zap.Field, 2, len(p.res)+2)
	o[0] = zap.String("haystack", haystack)
	o[1] = zap.Bool("result", res)
	for tag, result := range p.res {
		o = append(o, zap.Stringer(tag, result))
	}
	return o
}

// IsMatch implements stringmatch.Needle.
func (m *Matcher) IsMatch(haystack string) bool {
	paramsPH, ok := m.paramsPool.Get().(*paramsPlaceholder)
	if !ok {
		paramsPH = newParamsPlaceholder()
	}
	defer m.paramsPool.Put(paramsPH)
	paramsPH.reset()

	for tag, n := range m.needles {
		n := n
		paramsPH.setCall(tag, func() bool {
			return n.IsMatch(haystack)
		})
	}
	out, err := m.expr.Eval(paramsPH)
	if err != nil {
		// Cannot happen: the expression was type-checked with boolean
		// params at construction.
		m.lg.Error("expression eval failed", zap.Error(err))
		return false
	}
	res := out.(bool)
	m.lg.Debug(
		"expression matcher result",
		paramsPH.makeResultZapFields(haystack, res)...,
	)
	return res
}
