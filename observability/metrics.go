package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the accident-data
// pipeline.
type Metrics struct {
	TablesLoaded       prometheus.Counter
	RecordsParsed      prometheus.Counter
	YearLoadFailures   prometheus.Counter
	SummariesGenerated prometheus.Counter
	MapsRendered       prometheus.Counter

	LoadDuration  prometheus.Histogram
	PointsPlotted prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		TablesLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "tables_loaded_total",
			Help:      "Total yearly accident tables loaded from storage.",
		}),
		RecordsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "records_parsed_total",
			Help:      "Total accident records parsed across all loads.",
		}),
		YearLoadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "year_load_failures_total",
			Help:      "Total per-year load failures downgraded to warnings.",
		}),
		SummariesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "summaries_generated_total",
			Help:      "Total month-by-year summaries produced.",
		}),
		MapsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "maps_rendered_total",
			Help:      "Total state maps handed to the renderer.",
		}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fars",
			Name:      "load_duration_seconds",
			Help:      "Duration of a single year-file load and parse.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}),
		PointsPlotted: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fars",
			Name:      "points_plotted",
			Help:      "Number of points per rendered state map.",
			Buckets:   []float64{1, 10, 50, 100, 250, 500, 1000, 2500},
		}),
	}

	prometheus.MustRegister(
		m.TablesLoaded,
		m.RecordsParsed,
		m.YearLoadFailures,
		m.SummariesGenerated,
		m.MapsRendered,
		m.LoadDuration,
		m.PointsPlotted,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		TablesLoaded:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars", Name: "tables_loaded_total"}),
		RecordsParsed:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars", Name: "records_parsed_total"}),
		YearLoadFailures:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars", Name: "year_load_failures_total"}),
		SummariesGenerated: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars", Name: "summaries_generated_total"}),
		MapsRendered:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars", Name: "maps_rendered_total"}),
		LoadDuration:       prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "fars", Name: "load_duration_seconds"}),
		PointsPlotted:      prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "fars", Name: "points_plotted"}),
	}
}
