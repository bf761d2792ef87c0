package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"primefinder/internal/primes"
	"primefinder/internal/utils"

	_ "go.uber.org/automaxprocs"
)

type cliOptions struct {
	upper          int
	chunkSize      int
	workers        int
	strategy       string
	exponent       float64
	timeoutSeconds int
	outputFile     string
}

func parseFlags() (cliOptions, error) {
	var opts cliOptions

	flag.IntVar(&opts.upper, "upper", 0, "search for primes below this bound (required)")
	flag.IntVar(&opts.chunkSize, "chunk-size", 1000, "how many numbers each work chunk carries")
	flag.IntVar(&opts.workers, "workers", 0, "worker pool size; 0 uses all available cores")
	flag.StringVar(&opts.strategy, "strategy", "fixed", "chunking strategy: fixed or powerlaw")
	flag.Float64Var(&opts.exponent, "exponent", 0.3, "power-law exponent in (0, 0.5), used with -strategy powerlaw")
	flag.IntVar(&opts.timeoutSeconds, "timeout", 0, "timeout in seconds before the search is aborted; 0 disables it")
	flag.StringVar(&opts.outputFile, "file", "", "output file to write found prime numbers; stdout when omitted")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s --upper <bound> [--chunk-size n] [--workers n] [--strategy fixed|powerlaw] [--file <filename>]\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "\nExample:")
		fmt.Fprintln(flag.CommandLine.Output(), "  find-primes --upper 10000000 --chunk-size 1000 --workers 8 --strategy powerlaw --file primes.txt")
		fmt.Fprintln(flag.CommandLine.Output(), "\nNotes:")
		fmt.Fprintln(flag.CommandLine.Output(), "  - Chunks are fed to a fixed pool of workers through a work queue")
		fmt.Fprintln(flag.CommandLine.Output(), "  - The powerlaw strategy shrinks chunks as the numbers grow")
		fmt.Fprintln(flag.CommandLine.Output(), "  - Progress is reported on stderr while the search runs")
	}
	flag.Parse()

	if opts.upper < 2 {
		return opts, errors.New("--upper must be at least 2")
	}
	if opts.timeoutSeconds < 0 {
		return opts, errors.New("--timeout must not be negative")
	}
	if opts.strategy != "fixed" && opts.strategy != "powerlaw" {
		return opts, fmt.Errorf("unknown --strategy %q", opts.strategy)
	}
	return opts, nil
}

func reportProgress(progress *primes.Progress, done <-chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			fmt.Fprint(os.Stderr, "\r")
			return
		case <-ticker.C:
			fmt.Fprintf(os.Stderr, "\rchecked %d of %d (%.1f%%)",
				progress.Checked(), progress.Total(), 100*progress.Fraction())
		}
	}
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	if opts.timeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(opts.timeoutSeconds)*time.Second)
		defer cancel()
	}

	var progress primes.Progress
	searchOpts := primes.Options{
		ChunkSize: opts.chunkSize,
		Workers:   opts.workers,
		Progress:  &progress,
	}
	if opts.strategy == "powerlaw" {
		searchOpts.Strategy = primes.PowerLaw{Size: opts.chunkSize, Exponent: opts.exponent}
	}

	done := make(chan struct{})
	go reportProgress(&progress, done)

	start := time.Now()
	found, err := primes.Search(ctx, opts.upper, searchOpts)
	close(done)
	if err != nil {
		fmt.Fprintln(os.Stderr, "\nError:", err)
		os.Exit(1)
	}

	if opts.outputFile != "" {
		err = utils.WritePrimesFile(opts.outputFile, found)
	} else {
		err = utils.WritePrimes(os.Stdout, found)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Write error:", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "found %d primes below %d in %s\n", len(found), opts.upper, time.Since(start))
}
