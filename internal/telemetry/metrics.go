// Package telemetry wraps the prometheus counters and histograms the
// search driver and reduction engine can optionally feed, generalizing
// the teacher's hand-rolled per-rule counters (statFanAnn, statRepAnn,
// ... in the original deltanet.Network) into a labeled metric vector any
// scrape target can read.
package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Metrics bundles every counter/histogram this repo exposes. Callers
// that don't want metrics can simply never call these methods; nothing
// in the core depends on telemetry being wired up.
type Metrics struct {
	IndicesSearched prometheus.Counter
	SolutionsFound  prometheus.Counter
	GasUsed         prometheus.Histogram
	RewritesByRule  *prometheus.CounterVec
}

// New registers a fresh metric set on reg. Passing a new
// prometheus.NewRegistry() per test keeps tests from colliding on the
// global default registry.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		IndicesSearched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "icfactor",
			Name:      "indices_searched_total",
			Help:      "Number of candidate indices built and reduced.",
		}),
		SolutionsFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "icfactor",
			Name:      "solutions_found_total",
			Help:      "Number of candidates whose terminal net satisfied the factorization predicate.",
		}),
		GasUsed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "icfactor",
			Name:      "gas_used",
			Help:      "Gas consumed per candidate reduction.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 20),
		}),
		RewritesByRule: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "icfactor",
			Name:      "rewrites_total",
			Help:      "Rewrite steps applied, broken down by schema.",
		}, []string{"rule"}),
	}

	reg.MustRegister(m.IndicesSearched, m.SolutionsFound, m.GasUsed, m.RewritesByRule)
	return m
}

// ObserveCandidate records one reduced candidate's outcome: gas spent and
// its per-rule breakdown, and whether it solved the predicate.
func (m *Metrics) ObserveCandidate(gasUsed int, deltaDelta, gammaGamma, deltaGamma, erasure int, solved bool) {
	if m == nil {
		return
	}
	m.IndicesSearched.Inc()
	m.GasUsed.Observe(float64(gasUsed))
	m.RewritesByRule.WithLabelValues("delta_delta").Add(float64(deltaDelta))
	m.RewritesByRule.WithLabelValues("gamma_gamma").Add(float64(gammaGamma))
	m.RewritesByRule.WithLabelValues("delta_gamma").Add(float64(deltaGamma))
	m.RewritesByRule.WithLabelValues("erasure").Add(float64(erasure))
	if solved {
		m.SolutionsFound.Inc()
	}
}
