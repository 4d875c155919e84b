package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
	"github.com/kr/pretty"
)

type reportOptions struct {
	failed    bool // also report pairs seen only in failing sequences
	positions bool // report position-pairs seen only in passing sequences
	dump      bool
}

type options struct {
	corpusFile string
	original   bool
	verbose    bool
	profile    string
	report     reportOptions
}

func main() {
	log.SetFlags(0)
	var opts options
	flag.StringVar(&opts.corpusFile, "corpus", "", "Read passed/failed sequences from this ini `file` (keys within a section must be unique)")
	flag.BoolVar(&opts.original, "original", false, "Use only the original embedded sequences")
	flag.BoolVar(&opts.report.failed, "failed", false, "Also report pairs that only show up in failing sequences")
	flag.BoolVar(&opts.report.positions, "positions", false, "Also report position-pairs that only show up in passing sequences")
	flag.BoolVar(&opts.report.dump, "dump", false, "Pretty-print both position tables")
	flag.BoolVar(&opts.verbose, "v", false, "Print a summary to stderr")
	flag.StringVar(&opts.profile, "fgprof", "", "Write a wall-clock profile to `file`")
	flag.Parse()

	if err := run(opts, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

// run loads the corpus before starting the profiler so that a bad
// corpus never leaves an empty profile behind.
func run(opts options, stdout, stderr io.Writer) (err error) {
	c := defaultCorpus(!opts.original)
	if opts.corpusFile != "" {
		c, err = loadCorpusFile(opts.corpusFile)
		if err != nil {
			return err
		}
	}

	if opts.profile != "" {
		f, createErr := os.Create(opts.profile)
		if createErr != nil {
			return createErr
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if stopErr := stop(); stopErr != nil && err == nil {
				err = fmt.Errorf("error writing profile: %s", stopErr)
			}
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}()
	}

	passedTable := buildTable(c.passed)
	failedTable := buildTable(c.failed)

	w := bufio.NewWriter(stdout)
	report(w, passedTable, failedTable, opts.report)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("error writing report: %s", err)
	}
	if opts.verbose {
		fmt.Fprintln(stderr, summary(c, passedTable, failedTable))
	}
	return nil
}

func report(w io.Writer, passedTable, failedTable positionTable, opts reportOptions) {
	if opts.dump {
		fmt.Fprintln(w, "passed:")
		pretty.Fprintf(w, "%# v\n", passedTable)
		fmt.Fprintln(w, "failed:")
		pretty.Fprintf(w, "%# v\n", failedTable)
	}
	for _, p := range onlyIn(passedTable, failedTable) {
		fmt.Fprintf(w, "This pair only showed up in passing: %s\n", p)
	}
	if opts.failed {
		for _, p := range onlyIn(failedTable, passedTable) {
			fmt.Fprintf(w, "This pair only showed up in failing: %s\n", p)
		}
	}
	if opts.positions {
		for _, pp := range positionsOnlyIn(passedTable, failedTable) {
			fmt.Fprintf(w, "This position only showed up in passing: %s at %s x %d\n",
				pp.pair, pp.pos, pp.count)
		}
	}
}

func summary(c corpus, passedTable, failedTable positionTable) string {
	return fmt.Sprintf(
		"passed: %s sequences, %s pairs, %s observations; failed: %s sequences, %s pairs, %s observations",
		humanize.Comma(int64(len(c.passed))),
		humanize.Comma(int64(len(passedTable))),
		humanize.Comma(int64(passedTable.observations())),
		humanize.Comma(int64(len(c.failed))),
		humanize.Comma(int64(len(failedTable))),
		humanize.Comma(int64(failedTable.observations())),
	)
}
