package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Registry holds the simulation's runtime counters and gauges
// Managers cache pointers at construction and write them every tick, the debug HUD reads them
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[Gauge]
}

func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[Gauge](),
	}
}

// Counter is shorthand for Counters.Get
func (r *Registry) Counter(key string) *atomic.Int64 {
	return r.Counters.Get(key)
}

// Gauge is shorthand for Gauges.Get
func (r *Registry) Gauge(key string) *Gauge {
	return r.Gauges.Get(key)
}

// Format renders every metric as "key=value" pairs, counters first, each group in key order
func (r *Registry) Format() string {
	var sb strings.Builder
	sep := func() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
	}
	r.Counters.Range(func(key string, c *atomic.Int64) {
		sep()
		fmt.Fprintf(&sb, "%s=%d", key, c.Load())
	})
	r.Gauges.Range(func(key string, g *Gauge) {
		sep()
		fmt.Fprintf(&sb, "%s=%.2f", key, g.Load())
	})
	return sb.String()
}
