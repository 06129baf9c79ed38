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
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Platform returns a short human-readable description of the host, such as
// "amd64 avx2 bmi2" or "arm64 asimd". Benchmark output carries it so timings
// from different machines are not compared by accident.
func Platform() string {
	return strings.Join(append([]string{runtime.GOARCH}, cpuFeatures()...), " ")
}

// cpuFeatures lists the features that change memory-bound loop throughput,
// which is what the histogram and placement passes are.
func cpuFeatures() []string {
	var features []string
	switch runtime.GOARCH {
	case "amd64", "386":
		if cpu.X86.HasAVX512 {
			features = append(features, "avx512")
		}
		if cpu.X86.HasAVX2 {
			features = append(features, "avx2")
		}
		if cpu.X86.HasBMI2 {
			features = append(features, "bmi2")
		}
		if cpu.X86.HasERMS {
			features = append(features, "erms")
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			features = append(features, "asimd")
		}
		if cpu.ARM64.HasSVE {
			features = append(features, "sve")
		}
	}
	return features
}
