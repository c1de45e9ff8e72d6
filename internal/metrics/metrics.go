// Package metrics counts sidebar activity and exposes it in the Prometheus
// text format.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder counts drag gestures and drop outcomes by move kind.
type Recorder interface {
	Drag()
	Drop(kind string)
}

// Counters holds the sidebar counters on a dedicated registry.
type Counters struct {
	registry *prometheus.Registry
	moves    *prometheus.CounterVec
	drags    prometheus.Counter
}

// New registers the counters on a fresh registry.
func New() *Counters {
	return NewWithRegistry(prometheus.NewRegistry())
}

// NewWithRegistry registers the counters on reg.
func NewWithRegistry(reg *prometheus.Registry) *Counters {
	c := &Counters{
		registry: reg,
		moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dragmenu_moves_total",
			Help: "Drops handled by the reorder engine, by move kind.",
		}, []string{"kind"}),
		drags: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dragmenu_drags_total",
			Help: "Drag gestures started.",
		}),
	}
	reg.MustRegister(c.moves, c.drags)
	return c
}

// Drop increments the move counter for kind.
func (c *Counters) Drop(kind string) {
	if c == nil {
		return
	}
	c.moves.WithLabelValues(kind).Inc()
}

// Drag increments the drag counter.
func (c *Counters) Drag() {
	if c == nil {
		return
	}
	c.drags.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Counters) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Nop discards observations.
type Nop struct{}

func (Nop) Drag()       {}
func (Nop) Drop(string) {}
