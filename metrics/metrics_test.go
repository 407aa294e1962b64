package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	c := NewCounter("cases")
	c.Inc()
	c.Add(4)
	c.Add(-3)
	c.Add(0)
	require.Equal(t, int64(5), c.Value())
	require.Equal(t, "cases", c.Name())
}

func TestCounterConcurrent(t *testing.T) {
	c := NewCounter("n")
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.Inc()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, int64(16000), c.Value())
}

func TestGauge(t *testing.T) {
	g := NewGauge("workers")
	g.Inc()
	g.Inc()
	g.Dec()
	require.Equal(t, int64(1), g.Value())
	g.Dec()
	g.Dec()
	require.Equal(t, int64(-1), g.Value())
}

func TestHistogram(t *testing.T) {
	h := NewHistogram("ms")
	require.Equal(t, HistogramSnapshot{}, h.Snapshot())
	require.Zero(t, h.Snapshot().Mean())

	for _, v := range []float64{3, -1, 10, 4} {
		h.Observe(v)
	}
	s := h.Snapshot()
	require.Equal(t, int64(4), s.Count)
	require.Equal(t, 16.0, s.Sum)
	require.Equal(t, -1.0, s.Min)
	require.Equal(t, 10.0, s.Max)
	require.Equal(t, 4.0, s.Mean())
}

func TestHistogramObserveSince(t *testing.T) {
	h := NewHistogram("ms")
	h.ObserveSince(time.Now().Add(-20 * time.Millisecond))
	s := h.Snapshot()
	require.Equal(t, int64(1), s.Count)
	require.GreaterOrEqual(t, s.Sum, 20.0)
}

func TestRegistryGetOrCreate(t *testing.T) {
	r := NewRegistry()
	require.Same(t, r.Counter("a"), r.Counter("a"))
	require.Same(t, r.Gauge("a"), r.Gauge("a"))
	require.Same(t, r.Histogram("a"), r.Histogram("a"))
	require.NotSame(t, r.Counter("a"), r.Counter("b"))
}

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()
	r.Counter("c").Add(3)
	r.Gauge("g").Inc()
	r.Histogram("h").Observe(2)

	snap := r.Snapshot()
	require.Equal(t, int64(3), snap["c"])
	require.Equal(t, int64(1), snap["g"])
	require.Equal(t, HistogramSnapshot{Count: 1, Sum: 2, Min: 2, Max: 2}, snap["h"])
}

func TestRegistryConcurrent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Counter("shared").Inc()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, int64(800), r.Counter("shared").Value())
}

func TestStandardMetricsRegistered(t *testing.T) {
	snap := DefaultRegistry.Snapshot()
	for _, name := range []string{
		"eftest.fixtures_loaded", "eftest.fixture_errors",
		"eftest.cases_passed", "eftest.cases_failed", "eftest.cases_skipped",
		"eftest.active_workers", "eftest.fixture_ms",
	} {
		require.Contains(t, snap, name)
	}
}
