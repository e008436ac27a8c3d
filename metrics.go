package foodidx

import (
	"sync/atomic"
	"time"
)

// FilterKind identifies the filter operation reported to a MetricsCollector.
type FilterKind string

const (
	// FilterName is a FilterByName call.
	FilterName FilterKind = "name"
	// FilterNutrients is a FilterByNutrients call.
	FilterNutrients FilterKind = "nutrients"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAdd is called after each record is indexed.
	RecordAdd(duration time.Duration)

	// RecordFilter is called after each filter operation with the number of
	// records returned.
	RecordFilter(kind FilterKind, results int, duration time.Duration)

	// RecordRuleSkipped is called for each nutrient rule that was ignored.
	RecordRuleSkipped()

	// RecordLookup is called after each identifier lookup.
	RecordLookup(results int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(time.Duration)                     {}
func (NoopMetricsCollector) RecordFilter(FilterKind, int, time.Duration) {}
func (NoopMetricsCollector) RecordRuleSkipped()                          {}
func (NoopMetricsCollector) RecordLookup(int, time.Duration)             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount         atomic.Int64
	AddTotalNanos    atomic.Int64
	NameFilterCount  atomic.Int64
	NutrientFilters  atomic.Int64
	FilterResults    atomic.Int64
	FilterTotalNanos atomic.Int64
	RulesSkipped     atomic.Int64
	LookupCount      atomic.Int64
	LookupMisses     atomic.Int64
	LookupTotalNanos atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(duration time.Duration) {
	b.AddCount.Add(1)
	b.AddTotalNanos.Add(duration.Nanoseconds())
}

// RecordFilter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFilter(kind FilterKind, results int, duration time.Duration) {
	switch kind {
	case FilterName:
		b.NameFilterCount.Add(1)
	case FilterNutrients:
		b.NutrientFilters.Add(1)
	}
	b.FilterResults.Add(int64(results))
	b.FilterTotalNanos.Add(duration.Nanoseconds())
}

// RecordRuleSkipped implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRuleSkipped() {
	b.RulesSkipped.Add(1)
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(results int, duration time.Duration) {
	b.LookupCount.Add(1)
	b.LookupTotalNanos.Add(duration.Nanoseconds())
	if results == 0 {
		b.LookupMisses.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	filters := b.NameFilterCount.Load() + b.NutrientFilters.Load()
	return BasicMetricsStats{
		AddCount:        b.AddCount.Load(),
		AddAvgNanos:     avg(b.AddTotalNanos.Load(), b.AddCount.Load()),
		FilterCount:     filters,
		NameFilters:     b.NameFilterCount.Load(),
		NutrientFilters: b.NutrientFilters.Load(),
		FilterResults:   b.FilterResults.Load(),
		FilterAvgNanos:  avg(b.FilterTotalNanos.Load(), filters),
		RulesSkipped:    b.RulesSkipped.Load(),
		LookupCount:     b.LookupCount.Load(),
		LookupMisses:    b.LookupMisses.Load(),
		LookupAvgNanos:  avg(b.LookupTotalNanos.Load(), b.LookupCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddCount        int64
	AddAvgNanos     int64
	FilterCount     int64
	NameFilters     int64
	NutrientFilters int64
	FilterResults   int64
	FilterAvgNanos  int64
	RulesSkipped    int64
	LookupCount     int64
	LookupMisses    int64
	LookupAvgNanos  int64
}
