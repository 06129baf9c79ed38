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

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ajroetker/go-spreadsort/spread"
)

const (
	reverseFlag   = "reverse"
	uniqueFlag    = "unique"
	skipEmptyFlag = "skip-empty"
	outputFlag    = "output"
	minSizeFlag   = "min-size"
	cutoffFlag    = "cutoff"
	maxDepthFlag  = "max-depth"
	statsFlag     = "stats"
	logLevelFlag  = "log-level"
	logFormatFlag = "log-format"
)

// newViper returns a configuration that reads keys from bound flags,
// environment variables prefixed with SPREADSORT, or spreadsort.yaml (in that
// order). A missing config file is not an error.
func newViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName("spreadsort")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("SPREADSORT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	configPaths := []string{"/etc/spreadsort", "$HOME/.spreadsort", "."}
	for _, path := range configPaths {
		v.AddConfigPath(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return v, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

// mustBindPFlags binds each named flag of flags to the key of the same name
// and panics if a binding fails.
func mustBindPFlags(v *viper.Viper, flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic("failed to bind pflag: " + err.Error())
		}
	}
}

// NewRootCommand returns the sort command. Subcommands inherit the logging flags.
func NewRootCommand() *cobra.Command {
	v, cfgErr := newViper()

	cmd := &cobra.Command{
		Use:   "spreadsort [file ...]",
		Short: "Sort lines of text with a hybrid radix string sort",
		Long: `Sort lines of text with a hybrid radix string sort.

Lines are read from the named files, or from standard input when no file (or "-")
is given, and written in byte-wise order. Large inputs are partitioned one
character position at a time; small buckets are finished by comparison sort.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			mustBindPFlags(v, cmd.Flags(),
				reverseFlag, uniqueFlag, skipEmptyFlag, outputFlag,
				minSizeFlag, cutoffFlag, maxDepthFlag, statsFlag,
				logLevelFlag, logFormatFlag)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd, v, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolP(reverseFlag, "r", false, "sort in descending order")
	flags.BoolP(uniqueFlag, "u", false, "output only the first of equal lines")
	flags.Bool(skipEmptyFlag, false, "drop empty lines")
	flags.StringP(outputFlag, "o", "", "write to this file instead of standard output")
	flags.Int(minSizeFlag, spread.DefaultMinSize, "inputs with fewer lines are comparison sorted")
	flags.Int(cutoffFlag, spread.DefaultCutoff, "buckets with at most this many lines are comparison sorted")
	flags.Int(maxDepthFlag, spread.DefaultMaxDepth, "radix levels attempted before falling back to comparison sort")
	flags.Bool(statsFlag, false, "print engine counters to standard error")

	// NOTE: if you add a new flag here, add the binding in PreRunE

	pflags := cmd.PersistentFlags()
	pflags.String(logLevelFlag, "none", "log level: none, debug, info, warn or error")
	pflags.String(logFormatFlag, "text", "log format: text or json")

	return cmd
}
