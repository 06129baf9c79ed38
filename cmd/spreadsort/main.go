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

// Command spreadsort sorts the lines of text files with the hybrid radix
// string sort.
//
// Usage:
//
//	spreadsort words.txt                  # ascending, to stdout
//	spreadsort -r -u -o out.txt a.txt b.txt
//	cat words.txt | spreadsort --stats    # engine counters on stderr
//	spreadsort bench --size 200000 --runs 10
//
// Every flag can also be set through an environment variable prefixed with
// SPREADSORT (SPREADSORT_MIN_SIZE=0) or a spreadsort.yaml file in
// /etc/spreadsort, $HOME/.spreadsort or the current directory.
package main

import (
	"os"
)

func main() {
	rootCmd := NewRootCommand()
	rootCmd.AddCommand(NewBenchCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
