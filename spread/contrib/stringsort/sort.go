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

	"github.com/ajroetker/go-spreadsort/spread"
)

// noRadix is set from SPREADSORT_NO_RADIX at startup.
var noRadix = spread.NoRadixEnv()

// Strings sorts x in ascending byte-wise order.
func Strings(x []string) {
	Sort(x, StringAccessor[string]{})
}

// StringsReverse sorts x in descending byte-wise order.
func StringsReverse(x []string) {
	SortReverse(x, StringAccessor[string]{})
}

// Bytes sorts x in ascending bytes.Compare order.
func Bytes(x [][]byte) {
	Sort(x, BytesAccessor[[]byte]{})
}

// BytesReverse sorts x in descending bytes.Compare order.
func BytesReverse(x [][]byte) {
	SortReverse(x, BytesAccessor[[]byte]{})
}

// Sort sorts x in place in ascending order as defined by acc.
//
// Inputs shorter than the size gate (see WithMinSize) are handed to the
// comparison sort directly. Larger inputs are radix partitioned one
// character position at a time, falling back to the comparison sort for
// small buckets and once the depth cap is reached.
//
// Sort is not stable. A panic raised by acc propagates unchanged; x then
// still holds every one of its original elements exactly once, in an
// unspecified order. Sort panics if opts fail Check.
func Sort[S ~[]E, E any, C spread.Char](x S, acc Accessor[E, C], opts ...Option) {
	sortMode[E, C](x, acc, false, opts)
}

// SortReverse sorts x in place in descending order as defined by acc.
// Elements that are a prefix of another element sort after it.
// It otherwise behaves like Sort.
func SortReverse[S ~[]E, E any, C spread.Char](x S, acc Accessor[E, C], opts ...Option) {
	sortMode[E, C](x, acc, true, opts)
}

func sortMode[E any, C spread.Char](x []E, acc Accessor[E, C], desc bool, opts []Option) {
	set, err := newSettings(opts)
	if err != nil {
		panic(err)
	}
	if len(x) <= 1 {
		return
	}

	// Don't radix sort if it's too small to optimize
	if noRadix || len(x) < set.MinSize {
		if set.stats != nil {
			set.stats.Fallbacks++
		}
		slices.SortFunc(x, compareFunc(acc, desc))
		return
	}

	// The engine needs one element with a character at offset 0. Leading
	// (trailing when descending) empties are skipped to find it; they stay
	// in the range so the root partition puts them in the same bucket as
	// every other empty element.
	empties := 0
	if desc {
		for empties < len(x) && acc.Len(x[len(x)-1-empties]) == 0 {
			empties++
		}
	} else {
		for empties < len(x) && acc.Len(x[empties]) == 0 {
			empties++
		}
	}

	e := newEngine(acc, desc, set)
	if empties == len(x) {
		e.sortTies(x)
		return
	}
	e.run(x)
}

// IsSorted reports whether x is sorted in ascending order as defined by acc.
func IsSorted[S ~[]E, E any, C spread.Char](x S, acc Accessor[E, C]) bool {
	return slices.IsSortedFunc(x, acc.Compare)
}

// IsSortedReverse reports whether x is sorted in descending order as defined by acc.
func IsSortedReverse[S ~[]E, E any, C spread.Char](x S, acc Accessor[E, C]) bool {
	return slices.IsSortedFunc(x, compareFunc(acc, true))
}
