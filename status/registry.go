// Package status publishes run metrics from the tick loop to readers on other goroutines
package status

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Metric keys written by the engine loop
const (
	KeyTicks   = "runner.ticks"
	KeyScore   = "runner.score"
	KeySpeed   = "runner.speed"
	KeyHeight  = "runner.height"
	KeyTurns   = "runner.turns"
	KeyJumps   = "runner.jumps"
	KeySlides  = "runner.slides"
	KeyAlive   = "runner.alive"
	KeySliding = "runner.sliding"
	KeyPaused  = "runner.paused"
	KeyHeading = "runner.heading"
	KeyCause   = "runner.cause"
	KeyRunID   = "runner.run_id"
)

// Registry groups metric maps by value type
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
	Labels *MetricMap[AtomicLabel]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
		Labels: NewMetricMap[AtomicLabel](),
	}
}

// TotalCount returns the number of metrics across all maps
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Labels.Count()
}

// MarshalZerologObject writes every metric as a log field in key order per type
func (r *Registry) MarshalZerologObject(e *zerolog.Event) {
	r.Bools.Range(func(k string, v *atomic.Bool) { e.Bool(k, v.Load()) })
	r.Ints.Range(func(k string, v *atomic.Int64) { e.Int64(k, v.Load()) })
	r.Floats.Range(func(k string, v *AtomicFloat) { e.Float64(k, v.Get()) })
	r.Labels.Range(func(k string, v *AtomicLabel) { e.Str(k, v.Load()) })
}
