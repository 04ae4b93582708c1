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

// Package metrics instruments needles with prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stevepryde/stringmatch"
)

var _ stringmatch.Needle = (*Observed)(nil)

// Observed wraps a needle and counts match tests and hits.
// Match semantics are delegated unchanged.
type Observed struct {
	inner stringmatch.Needle

	testTotal prometheus.Counter
	hitTotal  prometheus.Counter
}

// NewObserved wraps n and registers its counters on r. If nameSpace
// is not empty it is prepended to the metric names. It panics on
// duplicate registration, like prometheus MustRegister.
func NewObserved(n stringmatch.Needle, nameSpace string, r prometheus.Registerer) *Observed {
	o := &Observed{
		inner: n,
		testTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "test_total",
			Help: "The total number of match tests run through this needle",
		}),
		hitTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hit_total",
			Help: "The total number of match tests that reported a match",
		}),
	}

	var register func(...prometheus.Collector)
	if len(nameSpace) > 0 {
		register = prometheus.WrapRegistererWithPrefix(nameSpace, r).MustRegister
	} else {
		register = r.MustRegister
	}
	register(o.testTotal, o.hitTotal)
	return o
}

// IsMatch implements stringmatch.Needle.
func (o *Observed) IsMatch(haystack string) bool {
	o.testTotal.Inc()
	ok := o.inner.IsMatch(haystack)
	if ok {
		o.hitTotal.Inc()
	}
	return ok
}
