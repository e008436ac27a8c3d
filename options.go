package foodidx

import (
	"log/slog"
	"strings"

	"github.com/hupe1980/foodidx/model"
)

// DefaultBranchingFactor is the branching factor used when none is configured.
const DefaultBranchingFactor = 11

type options struct {
	branchingFactor  int
	attributes       []string
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Index construction.
type Option func(*options)

// WithBranchingFactor sets the branching factor of every tree the index
// builds. Values below 3 make New fail with *ErrInvalidBranchingFactor.
func WithBranchingFactor(n int) Option {
	return func(o *options) {
		o.branchingFactor = n
	}
}

// WithAttributes replaces the set of indexed attributes. Names are
// lower-cased; empty names, repeats and IDAttribute are dropped. Records may still carry
// other attributes, they are simply not indexed.
//
// Example:
//
//	idx, _ := foodidx.New(foodidx.WithAttributes("calories", "sugar"))
func WithAttributes(names ...string) Option {
	return func(o *options) {
		seen := make(map[string]struct{}, len(names))
		attrs := make([]string, 0, len(names))
		for _, n := range names {
			n = strings.ToLower(strings.TrimSpace(n))
			if n == "" || n == IDAttribute {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			attrs = append(attrs, n)
		}
		o.attributes = attrs
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &foodidx.BasicMetricsCollector{}
//	idx, _ := foodidx.New(foodidx.WithMetricsCollector(metrics))
//	// ... use idx ...
//	stats := metrics.GetStats()
//	fmt.Printf("Filters: %d, Avg latency: %dns\n", stats.FilterCount, stats.FilterAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := foodidx.NewJSONLogger(slog.LevelInfo)
//	idx, _ := foodidx.New(foodidx.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		branchingFactor:  DefaultBranchingFactor,
		attributes:       model.Attributes(),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
