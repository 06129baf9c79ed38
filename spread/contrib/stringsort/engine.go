// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stringsort

import (
	"slices"

	"golang.org/x/tools/container/intsets"

	"github.com/ajroetker/go-spreadsort/spread"
)

// task is one pending range of the recursion tree: x[lo:hi] still needs
// sorting from character offset off, and depth radix levels have already
// been spent on its lineage.
type task struct {
	lo, hi, off, depth int
}

// engine sorts one slice. Every element of a task range agrees on all
// characters before the task offset and is at least that long.
type engine[E any, C spread.Char] struct {
	acc    Accessor[E, C]
	suffix SuffixComparer[E]
	desc   bool
	bits   int
	step   int
	set    settings

	pending []task

	// Scratch for 8-bit alphabets.
	denseBounds [denseBuckets + 1]int

	// Scratch for wide alphabets.
	counts map[int]int
	keys   intsets.Sparse
	order  []int
	bounds []int
	next   []int
}

func newEngine[E any, C spread.Char](acc Accessor[E, C], desc bool, set settings) *engine[E, C] {
	e := &engine[E, C]{
		acc:  acc,
		desc: desc,
		bits: spread.CharBits[C](),
		step: set.PrefixStep(spread.CharBytes[C]()),
		set:  set,
	}
	e.suffix, _ = acc.(SuffixComparer[E])
	if e.bits > 8 {
		e.counts = make(map[int]int)
	}
	return e
}

// run sorts x. The recursion over character offsets is driven by an explicit
// work list, so native stack use does not grow with shared prefix length.
func (e *engine[E, C]) run(x []E) {
	e.push(task{lo: 0, hi: len(x)})
	for len(e.pending) > 0 {
		t := e.pending[len(e.pending)-1]
		e.pending = e.pending[:len(e.pending)-1]
		e.sortRange(x, t)
	}
}

func (e *engine[E, C]) push(t task) {
	e.pending = append(e.pending, t)
	if st := e.set.stats; st != nil && len(e.pending) > st.MaxPending {
		st.MaxPending = len(e.pending)
	}
}

// sortRange runs one radix level over t and dispatches the resulting buckets.
func (e *engine[E, C]) sortRange(x []E, t task) {
	lo, hi := t.lo, t.hi
	if hi-lo < 2 {
		return
	}

	// Elements already exhausted at t.off stay in the range: partition
	// gathers all of them into one bucket, which sortTies orders with the
	// full comparator.
	s := x[lo:hi]
	off := e.skipPrefix(s, t.off)
	bounds, exhausted := e.partition(s, off)
	depth := t.depth + 1
	if st := e.set.stats; st != nil {
		st.PrefixSkipped += off - t.off
		st.RadixPasses++
		st.MaxDepth = max(st.MaxDepth, depth)
	}

	// Buckets are handled in output order. Ones needing another level are
	// queued, then the queued run is flipped so the lowest pops first.
	mark := len(e.pending)
	for b := 0; b+1 < len(bounds); b++ {
		blo, bhi := bounds[b], bounds[b+1]
		n := bhi - blo
		if n < 2 {
			continue
		}
		sub := s[blo:bhi]
		switch {
		case b == exhausted:
			e.sortTies(sub)
		case depth >= e.set.MaxDepth:
			if st := e.set.stats; st != nil {
				st.DepthCapped++
			}
			e.fallback(sub, off+1)
		case n <= e.set.Cutoff || !e.set.policy.Radix(n, e.bits):
			e.fallback(sub, off+1)
		default:
			e.push(task{lo: lo + blo, hi: lo + bhi, off: off + 1, depth: depth})
		}
	}
	slices.Reverse(e.pending[mark:])
}

// skipPrefix returns the first offset at or after off where the elements of
// s that are longer than off stop agreeing. It never moves past the last
// character of any such element, so each of them still has a character at
// the returned offset.
//
// Characters are compared a stride at a time; on a mismatch the stride drops
// to 4 and then to 1 before giving up.
func (e *engine[E, C]) skipPrefix(s []E, off int) int {
	ref := -1
	for i, x := range s {
		if e.acc.Len(x) > off {
			ref = i
			break
		}
	}
	if ref < 0 {
		return off
	}

	first := s[ref]
	step := e.step
	next := off
	for {
		for i := ref; i < len(s); {
			l := e.acc.Len(s[i])
			if l <= off {
				i++
				continue
			}
			if l <= next+step {
				step = l - next - 1
				if step < 1 {
					return next
				}
			}
			if !e.sameRun(s[i], first, next, step) {
				if step == 1 {
					return next
				}
				if step > 4 {
					step = 4
				} else {
					step = 1
				}
				continue
			}
			i++
		}
		next += step
	}
}

func (e *engine[E, C]) sameRun(a, b E, from, n int) bool {
	for i := from; i < from+n; i++ {
		if e.acc.CharAt(a, i) != e.acc.CharAt(b, i) {
			return false
		}
	}
	return true
}
