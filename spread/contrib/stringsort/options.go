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

// Option tunes a single Sort or SortReverse call.
type Option func(*settings)

type settings struct {
	spread.Config
	policy spread.Policy
	stats  *Stats
}

// WithConfig replaces every threshold at once.
func WithConfig(c spread.Config) Option {
	return func(s *settings) { s.Config = c }
}

// WithMinSize sets the size gate. Inputs shorter than n are handed directly
// to the comparison sort. Zero sends every input with two or more elements
// through the engine.
func WithMinSize(n int) Option {
	return func(s *settings) { s.MinSize = n }
}

// WithCutoff sets the bucket length at or below which buckets are comparison sorted.
func WithCutoff(n int) Option {
	return func(s *settings) { s.Cutoff = n }
}

// WithMaxDepth bounds the radix levels attempted along one recursion path.
func WithMaxDepth(n int) Option {
	return func(s *settings) { s.MaxDepth = n }
}

// WithPolicy replaces the radix-versus-comparison cost model. A nil policy
// restores spread.DefaultPolicy.
func WithPolicy(p spread.Policy) Option {
	return func(s *settings) { s.policy = p }
}

// WithStats makes the sort record what it did into st. st is reset first.
func WithStats(st *Stats) Option {
	return func(s *settings) { s.stats = st }
}

// Check validates opts without sorting anything. Sort and SortReverse panic
// with the same error when given options Check would reject.
func Check(opts ...Option) error {
	_, err := newSettings(opts)
	return err
}

func newSettings(opts []Option) (settings, error) {
	s := settings{Config: spread.DefaultConfig()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.policy == nil {
		s.policy = spread.DefaultPolicy
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	if s.stats != nil {
		*s.stats = Stats{}
	}
	return s, nil
}

// Stats describes the work done by one sort.
type Stats struct {
	// RadixPasses counts partition passes (histogram plus placement).
	RadixPasses int

	// MaxDepth is the deepest radix level reached; the first pass is level 1.
	MaxDepth int

	// Fallbacks counts ranges handed to the comparison sort, including
	// the whole input when it is below the size gate.
	Fallbacks int

	// DepthCapped counts fallbacks forced by the depth cap.
	DepthCapped int

	// PrefixSkipped totals the character offsets skipped because every
	// element of a range shared them.
	PrefixSkipped int

	// MaxPending is the high-water mark of the work list.
	MaxPending int
}
