package stringsort

import (
	"slices"

	"github.com/ajroetker/go-spreadsort/spread"
)

// Comparison sorts shared by the engine and the entry points. These are not
// radix based; they are the base case the radix passes hand buckets to.

// compareFunc returns acc's full order, flipped for descending sorts.
func compareFunc[E any, C spread.Char](acc Accessor[E, C], desc bool) func(a, b E) int {
	if desc {
		return func(a, b E) int { return acc.Compare(b, a) }
	}
	return acc.Compare
}

// compareFrom orders elements known to agree on every character before off.
func (e *engine[E, C]) compareFrom(off int) func(a, b E) int {
	if e.suffix == nil {
		return compareFunc(e.acc, e.desc)
	}
	if e.desc {
		return func(a, b E) int { return e.suffix.CompareFrom(b, a, off) }
	}
	return func(a, b E) int { return e.suffix.CompareFrom(a, b, off) }
}

// fallback comparison sorts a bucket whose elements agree before off.
func (e *engine[E, C]) fallback(s []E, off int) {
	if st := e.set.stats; st != nil {
		st.Fallbacks++
	}
	slices.SortFunc(s, e.compareFrom(off))
}

// sortTies finishes an exhausted bucket. Its elements have run out of
// characters, so they can only differ in length, and usually they are all
// equal; the sort is skipped when they are already in order.
func (e *engine[E, C]) sortTies(s []E) {
	cmp := compareFunc(e.acc, e.desc)
	if slices.IsSortedFunc(s, cmp) {
		return
	}
	if st := e.set.stats; st != nil {
		st.Fallbacks++
	}
	slices.SortFunc(s, cmp)
}
