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

// Package spread holds the pieces shared by the spreadsort engines: the
// character types radix keys are drawn from, the policy deciding between a
// radix pass and a comparison sort, tuning configuration and host detection.
//
// The engines themselves live under spread/contrib:
//
//	import "github.com/ajroetker/go-spreadsort/spread/contrib/stringsort"
//
//	stringsort.Strings(lines)
//
// # Tuning
//
// DefaultConfig returns the thresholds used when no options are given. The
// cost model (CostModel) is a heuristic, not a proven optimum; callers with
// unusual data can replace it with any Policy.
//
// # Environment
//
// Setting SPREADSORT_NO_RADIX disables radix partitioning entirely so every
// sort goes through the comparison fallback. This is useful for testing and
// for bisecting suspected engine bugs.
package spread
