// Package telemetry provides hierarchical timing collection for teller
// operations. Collectors travel through the context, so instrumentation is
// non-intrusive: with no collector installed every timer is a no-op.
//
// Example usage:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	timer := telemetry.StartTimer(ctx, "book.deposit")
//	// ... work ...
//	timer.End()
//
//	collector.Report(os.Stderr, styles)
package telemetry

import (
	"context"
	"io"

	"github.com/crownbank/teller/output"
)

// Collector gathers timing data for a run.
type Collector interface {
	// Start begins timing an operation; end the returned Timer when the
	// operation completes.
	Start(name string) Timer

	// Report writes the collected timings. Styles may be nil for plain
	// output.
	Report(w io.Writer, styles *output.Styles)
}

// Timer tracks one operation. Timers nest via Child.
type Timer interface {
	// End stops the timer and records its duration.
	End()

	// Child creates a timer nested under this one.
	Child(name string) Timer
}

type contextKey struct{ name string }

var (
	collectorKey = contextKey{"collector"}
	rootTimerKey = contextKey{"root-timer"}
)

// WithCollector installs a collector on the context.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext returns the context's collector, or a no-op collector when
// none is installed.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}

// WithRootTimer installs a timer that StartTimer nests new timers under.
func WithRootTimer(ctx context.Context, timer Timer) context.Context {
	return context.WithValue(ctx, rootTimerKey, timer)
}

// StartTimer starts a timer for name, nested under the context's root timer
// when one is present, otherwise directly on the collector.
func StartTimer(ctx context.Context, name string) Timer {
	if root, ok := ctx.Value(rootTimerKey).(Timer); ok {
		return root.Child(name)
	}
	return FromContext(ctx).Start(name)
}

// noOpCollector and noOpTimer provide zero overhead when telemetry is off.
type noOpCollector struct{}

func (noOpCollector) Start(name string) Timer                   { return noOpTimer{} }
func (noOpCollector) Report(w io.Writer, styles *output.Styles) {}

type noOpTimer struct{}

func (noOpTimer) End()                    {}
func (noOpTimer) Child(name string) Timer { return noOpTimer{} }
