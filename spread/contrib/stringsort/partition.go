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

import "github.com/ajroetker/go-spreadsort/spread"

// denseBuckets is the bucket count for 8-bit characters: one per byte value
// plus one for elements with no character at the offset.
const denseBuckets = 1<<8 + 1

// partition reorders s in place into contiguous buckets keyed by the
// character at off and returns the bucket bounds relative to s: bucket b is
// s[bounds[b]:bounds[b+1]]. Buckets are numbered in output order, so in
// ascending mode the exhausted bucket is 0 followed by characters ascending,
// and in descending mode characters descending are followed by the
// exhausted bucket. The returned slice is only valid until the next call.
//
// All scratch space is acquired before the first swap.
func (e *engine[E, C]) partition(s []E, off int) (bounds []int, exhausted int) {
	if e.bits == 8 {
		return e.partitionDense(s, off)
	}
	return e.partitionSparse(s, off)
}

func (e *engine[E, C]) denseID(x E, off int) int {
	if e.acc.Len(x) <= off {
		if e.desc {
			return denseBuckets - 1
		}
		return 0
	}
	c := int(e.acc.CharAt(x, off))
	if e.desc {
		return denseBuckets - 2 - c
	}
	return c + 1
}

func (e *engine[E, C]) partitionDense(s []E, off int) ([]int, int) {
	exhausted := 0
	if e.desc {
		exhausted = denseBuckets - 1
	}

	// Count histogram
	var counts [denseBuckets]int
	for _, x := range s {
		counts[e.denseID(x, off)]++
	}

	// Compute prefix sum to get bucket offsets
	bounds := e.denseBounds[:]
	pos, last := 0, 0
	for b, n := range counts {
		bounds[b] = pos
		pos += n
		if n > 0 {
			last = b
		}
	}
	bounds[denseBuckets] = pos

	if counts[last] == len(s) {
		return bounds, exhausted
	}
	var next [denseBuckets]int
	place(s, bounds, next[:], last, func(x E) int { return e.denseID(x, off) })
	return bounds, exhausted
}

// sparseKey maps a character to an int whose signed order matches the
// character's unsigned order on every platform.
func sparseKey[C spread.Char](c C) int {
	return int(int32(uint32(c) ^ 1<<31))
}

// partitionSparse handles alphabets too wide for a dense table. Counts live
// in a map and the distinct keys in an intsets.Sparse, so scratch space grows
// with the number of distinct characters present, not with the alphabet.
func (e *engine[E, C]) partitionSparse(s []E, off int) ([]int, int) {
	clear(e.counts)
	e.keys.Clear()

	exhaustedN := 0
	for _, x := range s {
		if e.acc.Len(x) <= off {
			exhaustedN++
			continue
		}
		k := sparseKey(e.acc.CharAt(x, off))
		e.keys.Insert(k)
		e.counts[k]++
	}
	e.order = e.keys.AppendTo(e.order[:0])

	nb := len(e.order) + 1
	if cap(e.bounds) < nb+1 {
		e.bounds = make([]int, nb+1)
		e.next = make([]int, nb)
	}
	bounds := e.bounds[:nb+1]

	exhausted, last := 0, nb-1
	pos := 0
	if e.desc {
		exhausted = nb - 1
		if exhaustedN == 0 {
			last = nb - 2
		}
	} else {
		bounds[0] = 0
		pos = exhaustedN
	}
	n := len(e.order)
	for j := range n {
		k, id := e.order[j], j+1
		if e.desc {
			k, id = e.order[n-1-j], j
		}
		bounds[id] = pos
		pos += e.counts[k]
		// From here on the map resolves a key to its bucket.
		e.counts[k] = id
	}
	if e.desc {
		bounds[exhausted] = pos
		pos += exhaustedN
	}
	bounds[nb] = pos

	if n == 0 || (n == 1 && exhaustedN == 0) {
		return bounds, exhausted
	}
	place(s, bounds, e.next[:nb], last, func(x E) int {
		if e.acc.Len(x) <= off {
			return exhausted
		}
		return e.counts[sparseKey(e.acc.CharAt(x, off))]
	})
	return bounds, exhausted
}

// place moves every element of s into its bucket using swaps only. id
// returns an element's bucket. Buckets after last are empty, and last itself
// needs no visit: once every earlier bucket is full it holds exactly its own
// elements.
func place[E any](s []E, bounds, next []int, last int, id func(E) int) {
	copy(next, bounds[:last+1])
	for b := 0; b < last; b++ {
		end := bounds[b+1]
		for i := next[b]; i < end; i = next[b] {
			d := id(s[i])
			if d != b {
				s[i], s[next[d]] = s[next[d]], s[i]
			}
			next[d]++
		}
	}
}
