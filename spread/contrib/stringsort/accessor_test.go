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
	"errors"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"modernc.org/mathutil"

	"github.com/ajroetker/go-spreadsort/spread"
)

func randomUnits[C spread.Char](rng *rand.Rand, n, maxLen int, units []C) [][]C {
	data := make([][]C, n)
	for i := range data {
		s := make([]C, rng.Intn(maxLen+1))
		for j := range s {
			s[j] = units[rng.Intn(len(units))]
		}
		data[i] = s
	}
	return data
}

func TestSortUint16(t *testing.T) {
	rng := rand.New(rand.NewSource(16))
	units := []uint16{0, 1, 0x7f, 0x80, 0xff, 0x100, 0x7fff, 0x8000, 0xd800, 0xffff}
	data := randomUnits(rng, 3000, 6, units)
	acc := UnitsAccessor[[]uint16, uint16]{}

	for _, opts := range [][]Option{nil, {WithMinSize(0)}, engineOpts()} {
		got := slices.Clone(data)
		Sort(got, acc, opts...)
		want := slices.Clone(data)
		slices.SortFunc(want, slices.Compare)
		require.Equal(t, want, got)

		got = slices.Clone(data)
		SortReverse(got, acc, opts...)
		slices.Reverse(want)
		require.Equal(t, want, got)
	}
}

func TestSortUint32(t *testing.T) {
	rng := rand.New(rand.NewSource(32))
	units := []uint32{0, 1, 'a', 0x10ffff, 0x7fffffff, 0x80000000, 0xfffffffe, 0xffffffff}
	data := randomUnits(rng, 2500, 5, units)
	acc := UnitsAccessor[[]uint32, uint32]{}

	var st Stats
	got := slices.Clone(data)
	Sort(got, acc, append(engineOpts(), WithStats(&st))...)
	want := slices.Clone(data)
	slices.SortFunc(want, slices.Compare)
	require.Equal(t, want, got)
	require.Positive(t, st.RadixPasses)

	got = slices.Clone(data)
	SortReverse(got, acc, engineOpts()...)
	slices.Reverse(want)
	require.Equal(t, want, got)
}

// TestSortRunes sorts []rune text, whose int32 units still order unsigned.
func TestSortRunes(t *testing.T) {
	words := []string{"zebra", "éclair", "apple", "日本", "", "app", "Zulu", "日"}
	data := make([][]rune, len(words))
	for i, w := range words {
		data[i] = []rune(w)
	}
	acc := Funcs[[]rune, uint32]{
		CharAtFunc: func(e []rune, i int) uint32 { return uint32(e[i]) },
		LenFunc:    func(e []rune) int { return len(e) },
	}
	Sort(data, acc, engineOpts()...)

	got := make([]string, len(data))
	for i, r := range data {
		got[i] = string(r)
	}
	// UTF-8 byte order and code point order agree.
	assert.Equal(t, sortedCopy(words), got)
}

func TestByKey(t *testing.T) {
	type user struct {
		Name string
		ID   int
	}
	users := []user{
		{"mallory", 1}, {"alice", 2}, {"bob", 3}, {"alice", 4}, {"", 5}, {"carol", 6},
	}
	acc := ByKey(func(u user) string { return u.Name })

	Sort(users, acc, engineOpts()...)
	require.True(t, IsSorted(users, acc))
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Name
	}
	assert.Equal(t, []string{"", "alice", "alice", "bob", "carol", "mallory"}, names)

	SortReverse(users, acc, engineOpts()...)
	require.True(t, IsSortedReverse(users, acc))
	assert.Equal(t, "mallory", users[0].Name)
	assert.Equal(t, "", users[len(users)-1].Name)
}

func TestFuncsDefaultCompare(t *testing.T) {
	f := Funcs[string, byte]{
		CharAtFunc: func(e string, i int) byte { return e[i] },
		LenFunc:    func(e string) int { return len(e) },
	}
	tests := []struct {
		a, b string
		off  int
		want int
	}{
		{"", "", 0, 0},
		{"a", "", 0, 1},
		{"", "a", 0, -1},
		{"abc", "abd", 0, -1},
		{"abc", "ab", 0, 1},
		{"xbc", "ybd", 1, -1},
		{"xxa", "yya", 2, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.CompareFrom(tt.a, tt.b, tt.off), "CompareFrom(%q, %q, %d)", tt.a, tt.b, tt.off)
		if tt.off == 0 {
			assert.Equal(t, tt.want, f.Compare(tt.a, tt.b), "Compare(%q, %q)", tt.a, tt.b)
		}
	}
}

// TestFuncsCustomCompare folds ASCII case. The radix passes see the folded
// characters, and the comparator breaks the remaining ties.
func TestFuncsCustomCompare(t *testing.T) {
	fold := func(c byte) byte {
		if 'A' <= c && c <= 'Z' {
			return c + 'a' - 'A'
		}
		return c
	}
	cmpFold := func(a, b string) int {
		if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	}
	acc := Funcs[string, byte]{
		CharAtFunc:  func(e string, i int) byte { return fold(e[i]) },
		LenFunc:     func(e string) int { return len(e) },
		CompareFunc: cmpFold,
	}

	rng := rand.New(rand.NewSource(21))
	data := randomStrings(rng, 3000, 5, 3)
	for i, s := range data {
		if rng.Intn(2) == 0 {
			data[i] = strings.ToUpper(s)
		}
	}
	want := slices.Clone(data)
	slices.SortFunc(want, cmpFold)

	got := slices.Clone(data)
	Sort(got, acc, engineOpts()...)
	require.Equal(t, want, got)

	got = slices.Clone(data)
	SortReverse(got, acc, WithMinSize(0))
	slices.Reverse(want)
	require.Equal(t, want, got)
}

type record struct {
	name string
	id   int
}

func compareRecords(a, b record) int {
	if c := strings.Compare(a.name, b.name); c != 0 {
		return c
	}
	return a.id - b.id
}

// recordAccessor radix sorts by name and breaks ties by id.
var recordAccessor = Funcs[record, byte]{
	CharAtFunc:  func(r record, i int) byte { return r.name[i] },
	LenFunc:     func(r record) int { return len(r.name) },
	CompareFunc: compareRecords,
}

func TestSortTieBreakingComparator(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	names := []string{"", "ab", "abc", "abd", "b"}
	data := make([]record, 3000)
	for i := range data {
		data[i] = record{name: names[rng.Intn(len(names))], id: i}
	}
	rng.Shuffle(len(data), func(i, j int) { data[i], data[j] = data[j], data[i] })

	want := slices.Clone(data)
	slices.SortFunc(want, compareRecords)
	configs := map[string][]Option{
		"default": nil,
		"gate0":   {WithMinSize(0)},
		"engine":  engineOpts(),
		"depth1":  engineOpts(WithMaxDepth(1)),
	}
	for cname, opts := range configs {
		got := slices.Clone(data)
		Sort(got, recordAccessor, opts...)
		require.Equal(t, want, got, "Sort %s", cname)

		got = slices.Clone(data)
		SortReverse(got, recordAccessor, opts...)
		require.Equal(t, lo.Reverse(slices.Clone(want)), got, "SortReverse %s", cname)
	}
}

// TestSortMergesExhaustedTies places elements that run out of characters at
// the same offset both at the ends of a range and between longer ones. They
// must end up as one run ordered by the comparator.
func TestSortMergesExhaustedTies(t *testing.T) {
	data := []record{
		{"ab", 9}, {"", 7}, {"ab", 2}, {"abz", 1}, {"", 3}, {"ab", 5},
		{"abz", 0}, {"ab", 6}, {"", 8}, {"", 4}, {"ab", 1},
	}
	asc := []record{
		{"", 3}, {"", 4}, {"", 7}, {"", 8},
		{"ab", 1}, {"ab", 2}, {"ab", 5}, {"ab", 6}, {"ab", 9},
		{"abz", 0}, {"abz", 1},
	}
	for _, opts := range [][]Option{engineOpts(), engineOpts(WithMaxDepth(2)), {WithMinSize(0)}} {
		got := slices.Clone(data)
		Sort(got, recordAccessor, opts...)
		require.Equal(t, asc, got)

		got = slices.Clone(data)
		SortReverse(got, recordAccessor, opts...)
		require.Equal(t, lo.Reverse(slices.Clone(asc)), got)
	}

	// Every element empty skips the engine but still honors the comparator.
	empties := []record{{"", 2}, {"", 0}, {"", 1}}
	Sort(empties, recordAccessor, engineOpts()...)
	require.Equal(t, []record{{"", 0}, {"", 1}, {"", 2}}, empties)
	SortReverse(empties, recordAccessor, engineOpts()...)
	require.Equal(t, []record{{"", 2}, {"", 1}, {"", 0}}, empties)
}

var errAccessor = errors.New("accessor failed")

// TestSortAccessorPanic checks that a panicking accessor neither loses nor
// duplicates elements.
func TestSortAccessorPanic(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	data := randomStrings(rng, 2000, 8, 4)

	calls, limit := 0, -1
	acc := Funcs[string, byte]{
		CharAtFunc: func(e string, i int) byte {
			calls++
			if limit >= 0 && calls > limit {
				panic(errAccessor)
			}
			return e[i]
		},
		LenFunc: func(e string) int { return len(e) },
	}
	Sort(slices.Clone(data), acc, engineOpts()...)
	total := calls
	require.Greater(t, total, 100)

	for _, limit = range []int{0, 1, total / 10, total / 2, total - 1} {
		calls = 0

		got := slices.Clone(data)
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r, "limit=%d", limit)
				require.ErrorIs(t, r.(error), errAccessor)
			}()
			Sort(got, acc, engineOpts()...)
		}()
		require.ElementsMatch(t, data, got, "limit=%d", limit)
	}
}

// TestSortPermutations sorts every cycle of a full-cycle generator, so each
// run sees the same multiset in a different order.
func TestSortPermutations(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	pool := randomStrings(rng, 1500, 7, 5)
	want := sortedCopy(pool)

	fc, err := mathutil.NewFC32(0, len(pool)-1, true)
	require.NoError(t, err)
	for round := range 4 {
		data := make([]string, len(pool))
		for i := range data {
			data[i] = pool[fc.Next()]
		}
		require.ElementsMatch(t, pool, data)

		Sort(data, StringAccessor[string]{}, WithMinSize(0))
		require.Equal(t, want, data, "round %d", round)
	}
}
