// Command maxseg segments a corpus of unspaced text into dictionary words.
//
// Usage:
//
//	maxseg -dict data/dict.txt -corpus data/demo.txt -stats
//	maxseg -dict data/dict.txt -complete 人
//	maxseg -dict data/dict.txt -serve :8080
//
// Without -corpus, sentences are read from standard input. Each sentence is
// printed as one line of space separated tokens.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/npillmayer/maxmatch"
	"github.com/npillmayer/maxmatch/cascade"
	"github.com/npillmayer/maxmatch/internal/server"
	"github.com/npillmayer/maxmatch/plaintext"
	"github.com/npillmayer/maxmatch/plaintext/textenc"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var (
	dictFile   = flag.String("dict", "data/dict.txt", "dictionary file with word=>definition lines")
	corpusFile = flag.String("corpus", "", "file of sentences to segment, one per line (default stdin)")
	layers     = flag.Int("layers", 8, "number of hash table layers")
	capacity   = flag.Int("capacity", 100000, "target capacity of the first layer")
	shrink     = flag.Float64("shrink", 0.8, "capacity ratio between adjacent layers, in (0,1)")
	stableHash = flag.Bool("stable-hash", false, "use a hash which is stable across processes")
	fallback   = flag.String("fallback", "rune", "emit unknown text per code point (rune) or per run (run)")
	normalize  = flag.Bool("normalize", false, "normalize dictionary and input to NFC")
	cacheSize  = flag.Int("cache", 0, "number of segmentation results to cache")
	showStats  = flag.Bool("stats", false, "print hash table statistics")
	complete   = flag.String("complete", "", "print dictionary words starting with this prefix and exit")
	serveAddr  = flag.String("serve", "", "serve the HTTP API on this address instead of segmenting a corpus")
	traceLevel = flag.String("trace", "error", "trace level: error, info or debug")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	setupTracing(*traceLevel)
	cfg, err := tableConfig()
	if err != nil {
		return err
	}
	fb, err := parseFallback(*fallback)
	if err != nil {
		return err
	}
	var encOpts []textenc.Option
	if *normalize {
		encOpts = append(encOpts, textenc.WithNormalization())
	}
	dict, err := loadDictionary(*dictFile, cfg, encOpts)
	if err != nil {
		return err
	}
	seg := dict.Segmenter(maxmatch.WithFallback(fb), maxmatch.WithCache(*cacheSize))

	switch {
	case *complete != "":
		for _, w := range dict.Completions(*complete, 0) {
			fmt.Println(w)
		}
		return nil
	case *serveAddr != "":
		var opts []server.Option
		if *normalize {
			opts = append(opts, server.WithNormalization())
		}
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return server.New(dict, seg, opts...).Run(ctx, *serveAddr)
	}

	sentences, err := readCorpus(*corpusFile, encOpts)
	if err != nil {
		return err
	}
	start := time.Now()
	results := make([][]string, len(sentences))
	for i, s := range sentences {
		results[i] = seg.Segment(s)
	}
	elapsed := time.Since(start)
	for _, tokens := range results {
		fmt.Println(plaintext.Render(tokens))
	}
	if *showStats {
		dict.Stats().WriteTable(os.Stdout)
	}
	fmt.Printf("Total time: %d μs\n", elapsed.Microseconds())
	return nil
}

// traceSelector hands out the same tracer for every key.
type traceSelector struct {
	t tracing.Trace
}

func (s traceSelector) Select(string) tracing.Trace {
	return s.t
}

func setupTracing(level string) {
	t := gologadapter.New()
	t.SetOutput(os.Stderr)
	t.SetTraceLevel(tracing.TraceLevelFromString(level))
	tracing.SetTraceSelector(traceSelector{t: t})
}

func tableConfig() (cascade.Config, error) {
	cfg := cascade.Config{
		Layers:   *layers,
		Capacity: *capacity,
		Shrink:   *shrink,
	}
	if *stableHash {
		cfg.Hash = cascade.StableHash
	}
	// validate early, before touching any file
	if _, err := cascade.PlanCapacities(cfg.Layers, cfg.Capacity, cfg.Shrink); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func parseFallback(s string) (maxmatch.Fallback, error) {
	switch s {
	case "rune":
		return maxmatch.FallbackRune, nil
	case "run":
		return maxmatch.FallbackRun, nil
	}
	return 0, fmt.Errorf("unknown fallback %q, expected \"rune\" or \"run\"", s)
}

func loadDictionary(path string, cfg cascade.Config, opts []textenc.Option) (*maxmatch.Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary file: %w", err)
	}
	defer f.Close()
	return plaintext.LoadDictionary(path, f, cfg, opts...)
}

func readCorpus(path string, opts []textenc.Option) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open corpus file: %w", err)
		}
		defer f.Close()
		r = f
	}
	return plaintext.ReadCorpus(r, opts...)
}
