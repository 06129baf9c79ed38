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
	"bytes"
	"slices"
	"strings"

	"github.com/ajroetker/go-spreadsort/spread"
)

// Accessor is the capability set an element type must offer to be radix sorted.
//
// Compare must be a total order that agrees with lexicographic order of the
// characters reported by CharAt and Len: a string that is a proper prefix of
// another sorts before it. Sorting with an inconsistent Accessor leaves the
// data permuted but in an unspecified order.
type Accessor[E any, C spread.Char] interface {
	// CharAt returns the character at offset, for 0 <= offset < Len(e).
	CharAt(e E, offset int) C

	// Len returns the number of characters in e.
	Len(e E) int

	// Compare returns a negative number when a < b, a positive number when
	// a > b and zero when they are equal.
	Compare(a, b E) int
}

// SuffixComparer is implemented by accessors that can compare two elements
// starting at a character offset. The engine only calls it on elements that
// agree on every character before offset, which lets it skip the prefix the
// radix passes have already resolved.
type SuffixComparer[E any] interface {
	CompareFrom(a, b E, offset int) int
}

// StringAccessor orders strings byte-wise, like the < operator.
type StringAccessor[E ~string] struct{}

func (StringAccessor[E]) CharAt(e E, offset int) byte { return e[offset] }
func (StringAccessor[E]) Len(e E) int                 { return len(e) }
func (StringAccessor[E]) Compare(a, b E) int          { return strings.Compare(string(a), string(b)) }

func (StringAccessor[E]) CompareFrom(a, b E, offset int) int {
	return strings.Compare(string(a[offset:]), string(b[offset:]))
}

// BytesAccessor orders byte slices like bytes.Compare.
type BytesAccessor[E ~[]byte] struct{}

func (BytesAccessor[E]) CharAt(e E, offset int) byte { return e[offset] }
func (BytesAccessor[E]) Len(e E) int                 { return len(e) }
func (BytesAccessor[E]) Compare(a, b E) int          { return bytes.Compare(a, b) }

func (BytesAccessor[E]) CompareFrom(a, b E, offset int) int {
	return bytes.Compare(a[offset:], b[offset:])
}

// UnitsAccessor orders slices of wide code units, such as UTF-16 text held
// as []uint16 or code points held as []uint32, like slices.Compare.
type UnitsAccessor[E ~[]C, C spread.Char] struct{}

func (UnitsAccessor[E, C]) CharAt(e E, offset int) C { return e[offset] }
func (UnitsAccessor[E, C]) Len(e E) int              { return len(e) }
func (UnitsAccessor[E, C]) Compare(a, b E) int       { return slices.Compare(a, b) }

func (UnitsAccessor[E, C]) CompareFrom(a, b E, offset int) int {
	return slices.Compare(a[offset:], b[offset:])
}

// ByKey returns an Accessor that orders arbitrary values by a string key.
// key is called often, so it should not allocate.
func ByKey[E any](key func(E) string) Accessor[E, byte] {
	return keyAccessor[E]{key: key}
}

type keyAccessor[E any] struct {
	key func(E) string
}

func (a keyAccessor[E]) CharAt(e E, offset int) byte { return a.key(e)[offset] }
func (a keyAccessor[E]) Len(e E) int                 { return len(a.key(e)) }
func (a keyAccessor[E]) Compare(x, y E) int          { return strings.Compare(a.key(x), a.key(y)) }

func (a keyAccessor[E]) CompareFrom(x, y E, offset int) int {
	return strings.Compare(a.key(x)[offset:], a.key(y)[offset:])
}

// Funcs builds an Accessor out of plain functions.
//
// CharAtFunc and LenFunc are required. CompareFunc is optional; when nil the
// elements are ordered lexicographically by CharAtFunc and LenFunc.
type Funcs[E any, C spread.Char] struct {
	CharAtFunc  func(e E, offset int) C
	LenFunc     func(e E) int
	CompareFunc func(a, b E) int
}

func (f Funcs[E, C]) CharAt(e E, offset int) C { return f.CharAtFunc(e, offset) }
func (f Funcs[E, C]) Len(e E) int              { return f.LenFunc(e) }

func (f Funcs[E, C]) Compare(a, b E) int {
	if f.CompareFunc != nil {
		return f.CompareFunc(a, b)
	}
	return f.CompareFrom(a, b, 0)
}

// CompareFrom compares lexicographically from offset. It is only used when
// CompareFunc is nil; a caller-supplied order is always honored in full.
func (f Funcs[E, C]) CompareFrom(a, b E, offset int) int {
	if f.CompareFunc != nil {
		return f.CompareFunc(a, b)
	}
	la, lb := f.LenFunc(a), f.LenFunc(b)
	for i := offset; i < la && i < lb; i++ {
		ca, cb := f.CharAtFunc(a, i), f.CharAtFunc(b, i)
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case la < lb:
		return -1
	case la > lb:
		return 1
	}
	return 0
}
