// Package metrics provides lock-light counters, gauges and histograms for
// the conformance harness. Counter and Gauge use atomics; Histogram uses a
// mutex.
package metrics

import (
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// Counter is a monotonically incrementing counter.
type Counter struct {
	name  string
	value atomic.Int64
}

// NewCounter returns a new Counter with the given name.
func NewCounter(name string) *Counter {
	return &Counter{name: name}
}

// Inc increments the counter by 1.
func (c *Counter) Inc() { c.value.Add(1) }

// Add increments the counter by n. Non-positive n is ignored.
func (c *Counter) Add(n int64) {
	if n > 0 {
		c.value.Add(n)
	}
}

// Value returns the current count.
func (c *Counter) Value() int64 { return c.value.Load() }

// Name returns the metric name.
func (c *Counter) Name() string { return c.name }

// Gauge is a value that can go up and down.
type Gauge struct {
	name  string
	value atomic.Int64
}

// NewGauge returns a new Gauge with the given name.
func NewGauge(name string) *Gauge {
	return &Gauge{name: name}
}

// Inc increments the gauge by 1.
func (g *Gauge) Inc() { g.value.Add(1) }

// Dec decrements the gauge by 1.
func (g *Gauge) Dec() { g.value.Add(-1) }

// Value returns the current value.
func (g *Gauge) Value() int64 { return g.value.Load() }

// Name returns the metric name.
func (g *Gauge) Name() string { return g.name }

// HistogramSnapshot is a point-in-time view of a Histogram.
type HistogramSnapshot struct {
	Count int64
	Sum   float64
	Min   float64
	Max   float64
}

// Mean returns Sum/Count, or 0 for an empty snapshot.
func (s HistogramSnapshot) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Histogram tracks count, sum, min and max of observed values.
type Histogram struct {
	name string
	mu   sync.Mutex
	snap HistogramSnapshot
}

// NewHistogram returns a new Histogram with the given name.
func NewHistogram(name string) *Histogram {
	return &Histogram{name: name}
}

// Observe records a value.
func (h *Histogram) Observe(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.snap.Count == 0 {
		h.snap.Min, h.snap.Max = v, v
	} else {
		h.snap.Min = math.Min(h.snap.Min, v)
		h.snap.Max = math.Max(h.snap.Max, v)
	}
	h.snap.Count++
	h.snap.Sum += v
}

// ObserveSince records the milliseconds elapsed since start.
func (h *Histogram) ObserveSince(start time.Time) {
	h.Observe(float64(time.Since(start).Microseconds()) / 1000)
}

// Snapshot returns the current state.
func (h *Histogram) Snapshot() HistogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snap
}

// Name returns the metric name.
func (h *Histogram) Name() string { return h.name }
