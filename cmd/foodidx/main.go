// Command foodidx loads food record files into an index and queries it.
//
// Usage:
//
//	foodidx [flags] <command> [args]
//
// Commands:
//
//	list               print every record sorted by name
//	name <term>        records whose name contains term
//	filter <rule>...   records matching every nutrient rule, e.g. "calories <= 100"
//	id <id>            records with the given id
//	stats              index and load statistics
//	tree <attribute>   level-order dump of one tree ("id" for the identifier tree)
//	export <dest>      write every record to a file or blob location
//
// Data locations given with -data may be local files or directories,
// s3://bucket/prefix or minio://host:port/bucket/prefix. The flag can be
// repeated.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hupe1980/foodidx"
	"github.com/hupe1980/foodidx/dataset"
)

var errUsage = errors.New("usage")

type config struct {
	data        []string
	json        bool
	branching   int
	logLevel    string
	logFormat   string
	readLimit   int
	concurrency int
	minioSecure bool
}

type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "foodidx:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cfg config
	var data stringList

	fs := flag.NewFlagSet("foodidx", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&data, "data", "dataset file, directory or blob location (repeatable)")
	fs.BoolVar(&cfg.json, "json", false, "write JSON instead of a table")
	fs.IntVar(&cfg.branching, "branching", foodidx.DefaultBranchingFactor, "B+ tree branching factor")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format: text or json")
	fs.IntVar(&cfg.readLimit, "read-limit", 0, "blob read limit in bytes per second (0 = unlimited)")
	fs.IntVar(&cfg.concurrency, "concurrency", dataset.DefaultConcurrency, "blobs fetched in parallel")
	fs.BoolVar(&cfg.minioSecure, "minio-secure", false, "use HTTPS for minio:// locations")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: foodidx [flags] <list|name|filter|id|stats|tree|export> [args]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.data = data

	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	logger, err := newLogger(stderr, cfg.logLevel, cfg.logFormat)
	if err != nil {
		return err
	}

	metrics := &foodidx.BasicMetricsCollector{}
	idx, err := foodidx.New(
		foodidx.WithBranchingFactor(cfg.branching),
		foodidx.WithLogger(logger),
		foodidx.WithMetricsCollector(metrics),
	)
	if err != nil {
		return err
	}

	loaded, err := load(ctx, cfg, idx)
	if err != nil {
		return err
	}

	app := &app{
		cfg:     cfg,
		idx:     idx,
		loaded:  loaded,
		metrics: metrics,
		out:     stdout,
	}
	return app.dispatch(ctx, fs.Arg(0), fs.Args()[1:])
}

func newLogger(w io.Writer, level, format string) (*foodidx.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid -log-level %q", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return foodidx.NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return foodidx.NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid -log-format %q", format)
	}
}

func load(ctx context.Context, cfg config, idx *foodidx.Index) (dataset.LoadStats, error) {
	var total dataset.LoadStats

	optFns := []func(*dataset.Options){
		dataset.WithReadLimit(cfg.readLimit),
		dataset.WithConcurrency(cfg.concurrency),
	}

	for _, raw := range cfg.data {
		loc, err := parseLocation(ctx, raw, cfg.minioSecure)
		if err != nil {
			return total, err
		}

		var stats dataset.LoadStats
		if loc.single {
			stats, err = dataset.LoadBlob(ctx, loc.store, loc.path, idx, optFns...)
		} else {
			stats, err = dataset.LoadAll(ctx, loc.store, loc.path, idx, optFns...)
		}
		if err != nil {
			return total, err
		}

		total.Blobs += stats.Blobs
		total.Records += stats.Records
		total.Skipped += stats.Skipped
		total.Bytes += stats.Bytes
	}
	return total, nil
}
