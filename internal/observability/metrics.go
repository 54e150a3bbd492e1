package observability

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for one analysis run.
// The toolkit is a single-shot command with no exposition endpoint, so
// metrics live on a private registry and are gathered into the log at the
// end of a verbose run instead of being scraped.
type Metrics struct {
	registry *prometheus.Registry

	FilesParsed      prometheus.Counter
	RowsParsed       prometheus.Counter
	ValuesMissing    prometheus.Counter
	ParseFailures    prometheus.Counter
	AnalysisDuration prometheus.Histogram
}

// NewMetrics creates and registers all run metrics on a fresh registry, so
// repeated constructions (tests, multiple invocations in one process) never
// collide.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		FilesParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tidal",
			Name:      "files_parsed_total",
			Help:      "Gauge archive files parsed successfully.",
		}),
		RowsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tidal",
			Name:      "rows_parsed_total",
			Help:      "Data rows decoded across all parsed files.",
		}),
		ValuesMissing: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tidal",
			Name:      "values_missing_total",
			Help:      "Sea-level values converted to the missing sentinel by flag sanitization.",
		}),
		ParseFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tidal",
			Name:      "parse_failures_total",
			Help:      "Files aborted by a parse failure.",
		}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tidal",
			Name:      "analysis_duration_seconds",
			Help:      "Duration of a complete ingest-and-analyze run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
	}

	m.registry.MustRegister(
		m.FilesParsed,
		m.RowsParsed,
		m.ValuesMissing,
		m.ParseFailures,
		m.AnalysisDuration,
	)

	return m
}

// LogSummary gathers the registry and logs one line per metric. Histograms
// log their sample count and sum.
func (m *Metrics) LogSummary(logger *slog.Logger) {
	families, err := m.registry.Gather()
	if err != nil {
		logger.Warn("gather metrics failed", "error", err)
		return
	}

	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				logger.Info("metric", "name", mf.GetName(), "value", metric.GetCounter().GetValue())
			case metric.GetHistogram() != nil:
				h := metric.GetHistogram()
				logger.Info("metric", "name", mf.GetName(),
					"count", h.GetSampleCount(), "sum_seconds", h.GetSampleSum())
			}
		}
	}
}
