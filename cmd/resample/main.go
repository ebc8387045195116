// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Resample runs permutation tests and bootstrap confidence intervals
// over columns of numeric data.
//
// Usage:
//
//	resample [flags] file...
//
// Each input file holds whitespace- or comma-separated columns of
// numbers, one observation per line. Lines starting with # are
// comments. If the first data line is not numeric, it names the
// columns. A field of "-", or a short line, marks a missing value, so
// the two groups of an unpaired test may differ in size.
//
// The -test flag selects the analysis applied to the two columns
// chosen by -cols (by name or 1-based index):
//
//	paired     sign-flip permutation test of the paired t-statistic
//	corr       label-swap permutation test of the correlation t-statistic
//	unpaired   shuffle permutation test of the difference in means
//	boot-mean  bootstrap confidence interval of each column's mean
//	boot-corr  bootstrap confidence interval of the correlation
//
// The permutation tests report the observed statistic, the central
// percentile interval of the null distribution, the permutation
// p-value, and the p-value of the matching parametric t-test. Note
// that both p-values are computed as 2*(1-F(t)), so a negative
// statistic yields a p-value above 1; resample prints a warning when
// this happens.
//
// Results for all files are printed as one table. The -format flag
// selects text (the default), csv, json or html output.
//
// All resampling is driven by a seeded random source, so a given
// -seed and -n reproduce their output exactly, regardless of
// -workers.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/resample/internal/datafmt"
	"golang.org/x/resample/internal/report"
	"golang.org/x/resample/resample"
)

var exit = os.Exit // replaced during testing

// errUsage reports bad command line arguments. The usage message has
// already been printed.
var errUsage = errors.New("usage error")

func main() {
	log.SetPrefix("resample: ")
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if errors.Is(err, flag.ErrHelp) {
		exit(0)
	} else if errors.Is(err, errUsage) {
		exit(2)
	} else if err != nil {
		log.Fatal(err)
	}
}

// An input is the pair of columns selected from one file.
type input struct {
	file         string
	name1, name2 string
	x, y         []float64
}

func (in *input) label() string {
	return fmt.Sprintf("%s: %s vs %s", in.file, in.name1, in.name2)
}

// A test analyzes one input and adds the resulting rows to rep.
type test func(ctx context.Context, c resample.Config, in *input, rep *report.Report) error

var tests = map[string]test{
	"paired":    permTest(resample.PairedPermutationTest),
	"corr":      permTest(resample.CorrelationPermutationTest),
	"unpaired":  permTest(resample.TwoSamplePermutationTest),
	"boot-mean": bootMean,
	"boot-corr": bootCorr,
}

var testNames = []string{"paired", "corr", "unpaired", "boot-mean", "boot-corr"}

func permTest(f func(ctx context.Context, d1, d2 []float64, c resample.Config) (*resample.Result, error)) test {
	return func(ctx context.Context, c resample.Config, in *input, rep *report.Report) error {
		r, err := f(ctx, in.x, in.y, c)
		if err != nil {
			return err
		}
		rep.Add(report.ResultRow(in.label(), r, c.Confidence))
		return nil
	}
}

// bootMean reports the mean of each column separately.
func bootMean(ctx context.Context, c resample.Config, in *input, rep *report.Report) error {
	for _, col := range []struct {
		name string
		xs   []float64
	}{{in.name1, in.x}, {in.name2, in.y}} {
		s, err := resample.BootstrapCI(ctx, c, resample.MeanStat, col.xs)
		if err != nil {
			return err
		}
		rep.Add(report.SummaryRow(in.file+": "+col.name, "bootstrap mean", s))
	}
	return nil
}

func bootCorr(ctx context.Context, c resample.Config, in *input, rep *report.Report) error {
	s, err := resample.BootstrapCI(ctx, c, resample.CorrelationStat, in.x, in.y)
	if err != nil {
		return err
	}
	rep.Add(report.SummaryRow(in.label(), "bootstrap corr", s))
	return nil
}

func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	fs := flag.NewFlagSet("resample", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: resample [flags] file...\n")
		fs.PrintDefaults()
	}
	def := resample.DefaultConfig
	flagTest := fs.String("test", "paired", "analysis to run: "+strings.Join(testNames, ", "))
	flagN := fs.Int("n", def.Iterations, "number of resampling `iterations`")
	flagSeed := fs.Int64("seed", def.Seed, "random `seed`")
	flagWorkers := fs.Int("workers", 0, "maximum concurrent workers (0 means GOMAXPROCS)")
	flagAlpha := fs.Float64("alpha", def.Alpha, "consider a test significant if p < `α`")
	flagConfidence := fs.Float64("confidence", def.Confidence, "confidence `level` of reported intervals")
	flagCols := fs.String("cols", "1,2", "the two `columns` to analyze, by name or 1-based index")
	flagFormat := fs.String("format", "text", "print results in `format`: text, csv, json, html")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}

	usageErr := func(format string, a ...interface{}) error {
		fmt.Fprintf(fs.Output(), format+"\n", a...)
		fs.Usage()
		return errUsage
	}
	t, ok := tests[*flagTest]
	if !ok {
		return usageErr("unknown test %q", *flagTest)
	}
	cols := strings.Split(*flagCols, ",")
	if len(cols) != 2 {
		return usageErr("-cols must name two columns, got %q", *flagCols)
	}
	write, ok := writers[*flagFormat]
	if !ok {
		return usageErr("unknown format %q", *flagFormat)
	}
	if fs.NArg() == 0 {
		return usageErr("no input files")
	}

	c := def
	c.Iterations = *flagN
	c.Seed = *flagSeed
	c.Workers = *flagWorkers
	c.Alpha = *flagAlpha
	c.Confidence = *flagConfidence

	var rep report.Report
	if *flagFormat == "html" {
		rep.Title = "resample " + *flagTest
	}
	for _, file := range fs.Args() {
		in, err := readInput(file, cols[0], cols[1])
		if err != nil {
			return err
		}
		if err := t(ctx, c, in, &rep); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	return write(&rep, stdout)
}

var writers = map[string]func(*report.Report, io.Writer) error{
	"text": (*report.Report).WriteText,
	"csv":  (*report.Report).WriteCSV,
	"json": (*report.Report).WriteJSON,
	"html": (*report.Report).WriteHTML,
}

func readInput(file, col1, col2 string) (*input, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tab, err := datafmt.ReadTable(f, file)
	if err != nil {
		return nil, err
	}
	in := &input{file: file, name1: col1, name2: col2}
	if in.x, err = tab.Column(col1); err != nil {
		return nil, err
	}
	if in.y, err = tab.Column(col2); err != nil {
		return nil, err
	}
	return in, nil
}
