// Package metrics records Prometheus counters and histograms for grid
// searches, cell toggles and full adjacency rebuilds.
//
// A nil *Recorder is valid and records nothing, so callers can keep a single
// code path whether or not instrumentation is wired in.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gridpath/pathgrid"
)

// Search outcome label values.
const (
	OutcomeFound   = "found"
	OutcomeTrivial = "trivial"
	OutcomeNoPath  = "no_path"
	OutcomeError   = "error"
)

// Recorder owns the gridpath collectors on one registry.
type Recorder struct {
	gatherer prometheus.Gatherer

	searchTotal    *prometheus.CounterVec
	searchDuration prometheus.Histogram
	pathLength     prometheus.Histogram
	expanded       prometheus.Histogram
	toggleTotal    *prometheus.CounterVec
	rebuildTotal   prometheus.Counter
}

// NewRecorder registers the collectors on reg. A nil reg gets a fresh private
// registry. Registering twice on the same registry panics, as promauto does.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	gatherer, _ := reg.(prometheus.Gatherer)
	f := promauto.With(reg)

	return &Recorder{
		gatherer: gatherer,

		// searchTotal counts searches by outcome
		searchTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_search_total",
			Help: "Total A* searches by outcome",
		}, []string{"outcome"}),

		searchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "A* search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 14), // 10µs to ~80ms
		}),

		pathLength: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_path_cells",
			Help:    "Number of cells in returned paths",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 200, 500},
		}),

		expanded: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_expanded_cells",
			Help:    "Number of cells popped from the frontier per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),

		// toggleTotal counts toggles by the cell's new state
		toggleTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_toggle_total",
			Help: "Total cell toggles by resulting state",
		}, []string{"state"}), // "passable" or "barrier"

		rebuildTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "gridpath_rebuild_total",
			Help: "Total full adjacency rebuilds",
		}),
	}
}

// Outcome classifies a Search result into one of the outcome labels.
func Outcome(err error, res pathgrid.Result) string {
	switch {
	case errors.Is(err, pathgrid.ErrNoPath):
		return OutcomeNoPath
	case err != nil:
		return OutcomeError
	case len(res.Path) == 0:
		return OutcomeTrivial
	default:
		return OutcomeFound
	}
}

// ObserveSearch records one search. Path length and expansion count are only
// observed for found paths.
func (r *Recorder) ObserveSearch(outcome string, d time.Duration, pathLen, expanded int) {
	if r == nil {
		return
	}
	r.searchTotal.WithLabelValues(outcome).Inc()
	r.searchDuration.Observe(d.Seconds())
	if outcome == OutcomeFound {
		r.pathLength.Observe(float64(pathLen))
		r.expanded.Observe(float64(expanded))
	}
}

// ObserveToggle records one ToggleAndRepair.
func (r *Recorder) ObserveToggle(nowPassable bool) {
	if r == nil {
		return
	}
	state := "barrier"
	if nowPassable {
		state = "passable"
	}
	r.toggleTotal.WithLabelValues(state).Inc()
}

// ObserveRebuild records one RebuildAllAdjacency.
func (r *Recorder) ObserveRebuild() {
	if r == nil {
		return
	}
	r.rebuildTotal.Inc()
}

// Gatherer returns the registry the collectors live on, or nil when the
// caller's Registerer cannot gather.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	if r == nil {
		return nil
	}
	return r.gatherer
}
