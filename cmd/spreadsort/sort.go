package main

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"modernc.org/sortutil"
	"modernc.org/strutil"

	"github.com/ajroetker/go-spreadsort/spread/contrib/stringsort"
)

func runSort(cmd *cobra.Command, v *viper.Viper, args []string) error {
	log, err := NewLogger(cmd.ErrOrStderr(), v.GetString(logFormatFlag), v.GetString(logLevelFlag))
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	opts := []stringsort.Option{
		stringsort.WithMinSize(v.GetInt(minSizeFlag)),
		stringsort.WithCutoff(v.GetInt(cutoffFlag)),
		stringsort.WithMaxDepth(v.GetInt(maxDepthFlag)),
	}
	if err := stringsort.Check(opts...); err != nil {
		return err
	}

	lines, err := readLines(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	log.Debug("read input", zap.Int("lines", len(lines)), zap.Strings("files", args))

	if v.GetBool(skipEmptyFlag) {
		lines = lo.Filter(lines, func(s string, _ int) bool { return s != "" })
	}

	reverse := v.GetBool(reverseFlag)
	var st stringsort.Stats
	opts = append(opts, stringsort.WithStats(&st))
	start := time.Now()
	if reverse {
		stringsort.SortReverse(lines, stringsort.StringAccessor[string]{}, opts...)
	} else {
		stringsort.Sort(lines, stringsort.StringAccessor[string]{}, opts...)
	}
	elapsed := time.Since(start)

	if v.GetBool(uniqueFlag) {
		var data sort.Interface = sort.StringSlice(lines)
		if reverse {
			data = sort.Reverse(data)
		}
		lines = lines[:sortutil.Dedupe(data)]
	}

	log.Info("sorted",
		zap.Int("lines", len(lines)),
		zap.Duration("elapsed", elapsed),
		zap.Int("radix_passes", st.RadixPasses),
		zap.Int("max_depth", st.MaxDepth))

	if err := writeLines(cmd.OutOrStdout(), v.GetString(outputFlag), lines); err != nil {
		return err
	}
	if v.GetBool(statsFlag) {
		return printStats(cmd.ErrOrStderr(), &st)
	}
	return nil
}

// readLines reads every line of the named files in turn. "-" and an empty
// list read stdin. Line terminators are dropped.
func readLines(stdin io.Reader, files []string) ([]string, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	var lines []string
	for _, name := range files {
		var err error
		if name == "-" {
			lines, err = appendLines(lines, stdin)
		} else {
			lines, err = appendFileLines(lines, name)
		}
		if err != nil {
			return nil, err
		}
	}
	return lines, nil
}

func appendFileLines(lines []string, name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return lines, err
	}
	defer f.Close()
	return appendLines(lines, f)
}

func appendLines(lines []string, r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimSuffix(line, "\n"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
	}
}

// writeLines writes lines to path, or to stdout when path is empty or "-".
func writeLines(stdout io.Writer, path string, lines []string) (err error) {
	w := stdout
	if path != "" && path != "-" {
		f, cerr := os.Create(path)
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func printStats(w io.Writer, st *stringsort.Stats) error {
	f := strutil.IndentFormatter(w, "  ")
	_, err := f.Format("stats:%i\nradix passes: %d\nmax depth: %d\nfallbacks: %d\ndepth capped: %d\nprefix skipped: %d\nmax pending: %d%u\n",
		st.RadixPasses, st.MaxDepth, st.Fallbacks, st.DepthCapped, st.PrefixSkipped, st.MaxPending)
	return err
}
