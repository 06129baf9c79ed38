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

import "unsafe"

// Char is the set of unsigned character types a radix key can be drawn from.
// byte covers UTF-8 and raw binary keys, uint16 UTF-16 code units and uint32
// full code points.
type Char interface {
	~uint8 | ~uint16 | ~uint32
}

// CharBits returns the width of C in bits.
// The alphabet of C has 1<<CharBits[C]() symbols.
func CharBits[C Char]() int {
	var c C
	return int(unsafe.Sizeof(c)) * 8
}

// CharBytes returns the width of C in bytes.
func CharBytes[C Char]() int {
	var c C
	return int(unsafe.Sizeof(c))
}
