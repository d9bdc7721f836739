package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeRendered = "rendered"
	OutcomeError    = "error"
	OutcomeOK       = "ok"
)

// DefaultBuckets is a latency bucket set in seconds.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

var (
	registry = prometheus.NewRegistry()

	loadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "resume_loads_total",
		Help: "Résumé document loads by outcome.",
	}, []string{"outcome"})

	loadDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "resume_load_duration_seconds",
		Help:    "Time spent reading and decoding the résumé document.",
		Buckets: DefaultBuckets,
	})

	pageViewsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "resume_page_views_total",
		Help: "Page views by final state.",
	}, []string{"outcome"})

	renderDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "resume_render_duration_seconds",
		Help:    "Time spent building and attaching section fragments.",
		Buckets: DefaultBuckets,
	})
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		loadsTotal,
		loadDuration,
		pageViewsTotal,
		renderDuration,
	)
}

// ObserveLoad records one document load.
func ObserveLoad(outcome string, d time.Duration) {
	loadsTotal.WithLabelValues(outcome).Inc()
	loadDuration.Observe(d.Seconds())
}

// ObservePageView records the terminal state of a page view.
func ObservePageView(outcome string) {
	pageViewsTotal.WithLabelValues(outcome).Inc()
}

// ObserveRender records the synchronous assembly time of a page.
func ObserveRender(d time.Duration) {
	renderDuration.Observe(d.Seconds())
}

// Registry exposes the collector registry.
func Registry() *prometheus.Registry {
	return registry
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
