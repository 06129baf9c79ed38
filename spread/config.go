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

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Thresholds for the different sorting strategies.
const (
	// DefaultMinSize: ranges shorter than this go straight to the comparison sort.
	DefaultMinSize = 1000

	// DefaultCutoff: buckets this size or smaller are comparison sorted.
	DefaultCutoff = 16

	// DefaultMaxDepth: radix levels attempted for one bucket lineage before
	// the comparison sort takes over unconditionally.
	DefaultMaxDepth = 32

	// DefaultPrefixStepBytes: widest stride used when skipping a shared prefix.
	DefaultPrefixStepBytes = 64
)

// NoRadixEnvVar names the environment variable checked by NoRadixEnv.
const NoRadixEnvVar = "SPREADSORT_NO_RADIX"

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("spread: invalid config")

// Config carries the engine thresholds.
type Config struct {
	// MinSize is the size gate below which the engine is never entered.
	MinSize int

	// Cutoff is the bucket length at or below which buckets are comparison sorted.
	Cutoff int

	// MaxDepth bounds the number of radix levels along one recursion path.
	MaxDepth int

	// PrefixStepBytes is the widest stride, in bytes, compared at once while
	// skipping characters every element shares. It is divided by the
	// character width to get a stride in characters.
	PrefixStepBytes int
}

// DefaultConfig returns the thresholds used when no options are given.
func DefaultConfig() Config {
	return Config{
		MinSize:         DefaultMinSize,
		Cutoff:          DefaultCutoff,
		MaxDepth:        DefaultMaxDepth,
		PrefixStepBytes: DefaultPrefixStepBytes,
	}
}

// Validate reports the first field holding an unusable value.
func (c Config) Validate() error {
	switch {
	case c.MinSize < 0:
		return fmt.Errorf("%w: min size %d is negative", ErrInvalidConfig, c.MinSize)
	case c.Cutoff < 0:
		return fmt.Errorf("%w: cutoff %d is negative", ErrInvalidConfig, c.Cutoff)
	case c.MaxDepth < 1:
		return fmt.Errorf("%w: max depth %d must be at least 1", ErrInvalidConfig, c.MaxDepth)
	case c.PrefixStepBytes < 4:
		return fmt.Errorf("%w: prefix step %d must be at least 4 bytes", ErrInvalidConfig, c.PrefixStepBytes)
	}
	return nil
}

// PrefixStep returns the prefix skip stride in characters for characters
// charBytes wide. The stride is never below one.
func (c Config) PrefixStep(charBytes int) int {
	step := c.PrefixStepBytes / max(charBytes, 1)
	return max(step, 1)
}

// NoRadixEnv checks if the SPREADSORT_NO_RADIX environment variable is set.
// When set, sorts skip radix partitioning and use the comparison fallback.
func NoRadixEnv() bool {
	val := os.Getenv(NoRadixEnvVar)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
