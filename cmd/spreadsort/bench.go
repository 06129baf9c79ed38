package main

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/ajroetker/go-spreadsort/spread"
	"github.com/ajroetker/go-spreadsort/spread/contrib/stringsort"
)

const (
	sizeFlag      = "size"
	runsFlag      = "runs"
	prefixLenFlag = "prefix-len"
	seedFlag      = "seed"
)

// NewBenchCommand returns the command timing the engine against slices.Sort.
func NewBenchCommand() *cobra.Command {
	v, cfgErr := newViper()

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the radix sort against slices.Sort on generated lines",
		Long: `Time the radix sort against slices.Sort on generated lines.

Every generated line starts with one of a few random prefixes of --prefix-len
bytes followed by a short random suffix. Each sort runs --runs times over a
fresh copy; the mean and standard deviation are reported in milliseconds.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			mustBindPFlags(v, cmd.Flags(),
				sizeFlag, runsFlag, prefixLenFlag, seedFlag,
				logLevelFlag, logFormatFlag)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.Int(sizeFlag, 100000, "number of lines to sort")
	flags.Int(runsFlag, 5, "timed runs per sort")
	flags.Int(prefixLenFlag, 16, "length of the prefixes shared by the generated lines")
	flags.Int64(seedFlag, 1, "random seed")

	// NOTE: if you add a new flag here, add the binding in PreRunE

	return cmd
}

type benchCandidate struct {
	name string
	sort func([]string)
	desc bool
}

var benchCandidates = []benchCandidate{
	{name: "spreadsort", sort: stringsort.Strings},
	{name: "spreadsort-reverse", sort: stringsort.StringsReverse, desc: true},
	{name: "slices.Sort", sort: slices.Sort[[]string]},
}

func runBench(cmd *cobra.Command, v *viper.Viper) error {
	log, err := NewLogger(cmd.ErrOrStderr(), v.GetString(logFormatFlag), v.GetString(logLevelFlag))
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	size, runs, prefixLen := v.GetInt(sizeFlag), v.GetInt(runsFlag), v.GetInt(prefixLenFlag)
	if size < 0 || runs < 1 || prefixLen < 0 {
		return fmt.Errorf("bench needs --size >= 0, --runs >= 1 and --prefix-len >= 0")
	}

	ref := benchLines(rand.New(rand.NewSource(v.GetInt64(seedFlag))), size, prefixLen)
	data := make([]string, len(ref))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "platform: %s\n", spread.Platform())
	fmt.Fprintf(out, "lines: %d  runs: %d  prefix: %d\n", size, runs, prefixLen)

	acc := stringsort.StringAccessor[string]{}
	for _, c := range benchCandidates {
		ms := make([]float64, runs)
		for i := range ms {
			copy(data, ref)
			start := time.Now()
			c.sort(data)
			ms[i] = float64(time.Since(start)) / float64(time.Millisecond)
		}
		sorted := stringsort.IsSorted(data, acc)
		if c.desc {
			sorted = stringsort.IsSortedReverse(data, acc)
		}
		if !sorted {
			return fmt.Errorf("%s left the data unsorted", c.name)
		}

		mean, std := stat.MeanStdDev(ms, nil)
		log.Debug("bench done", zap.String("sort", c.name), zap.Float64s("ms", ms))
		fmt.Fprintf(out, "%-20s mean %10.3fms  stddev %9.3fms\n", c.name, mean, std)
	}
	return nil
}

// benchLines generates n lines, each one of four random prefixes of
// prefixLen bytes followed by 4 to 19 random lowercase letters.
func benchLines(rng *rand.Rand, n, prefixLen int) []string {
	randomWord := func(sb *strings.Builder, l int) {
		for range l {
			sb.WriteByte(byte('a' + rng.Intn(26)))
		}
	}

	prefixes := make([]string, 4)
	var sb strings.Builder
	for i := range prefixes {
		sb.Reset()
		randomWord(&sb, prefixLen)
		prefixes[i] = sb.String()
	}

	lines := make([]string, n)
	for i := range lines {
		sb.Reset()
		sb.WriteString(prefixes[rng.Intn(len(prefixes))])
		randomWord(&sb, 4+rng.Intn(16))
		lines[i] = sb.String()
	}
	return lines
}
