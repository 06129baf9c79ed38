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

package spread

import "modernc.org/mathutil"

// Policy decides, per bucket, whether another radix pass is worth it.
//
// Radix reports whether a bucket of n elements whose next key is drawn from
// an alphabet of 1<<charBits symbols should be partitioned again. Returning
// false sends the bucket to the comparison sort.
type Policy interface {
	Radix(n, charBits int) bool
}

// PolicyFunc adapts an ordinary function to a Policy.
type PolicyFunc func(n, charBits int) bool

// Radix calls f(n, charBits).
func (f PolicyFunc) Radix(n, charBits int) bool {
	return f(n, charBits)
}

// DefaultFactor is the CostModel weight used by DefaultPolicy.
const DefaultFactor = 4

// CostModel compares the estimated cost of comparison sorting a bucket,
// n*log2(n), against Factor times the cost of one more radix level: a
// histogram and placement pass over n elements plus a walk over the bucket
// table, which holds at most min(n, alphabet) live entries.
//
// With Factor 4 and 8-bit characters the break-even lands near 256
// elements, the alphabet size.
type CostModel struct {
	Factor int
}

// DefaultPolicy is the policy used when none is configured.
var DefaultPolicy Policy = CostModel{Factor: DefaultFactor}

// Radix implements Policy.
func (m CostModel) Radix(n, charBits int) bool {
	if n < 2 {
		return false
	}
	factor := m.Factor
	if factor <= 0 {
		factor = DefaultFactor
	}
	table := n
	if charBits < mathutil.BitLen(n) {
		table = 1 << charBits
	}
	comparison := uint64(n) * uint64(mathutil.BitLen(n))
	radix := uint64(factor) * uint64(n+table)
	return comparison > radix
}
