package obs

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	stepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "eda_step_duration_seconds",
		Help:    "Duration of pipeline steps.",
		Buckets: prometheus.ExponentialBuckets(0.0005, 4, 9),
	}, []string{"step", "status"})

	uploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eda_uploads_total",
		Help: "Dataset uploads by outcome.",
	}, []string{"outcome"})

	rowsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eda_rows_dropped_total",
		Help: "Rows removed by cleaning for missing required fields.",
	})

	chartRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eda_chart_renders_total",
		Help: "Chart renders by kind and status.",
	}, []string{"kind", "status"})

	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "eda_sessions_active",
		Help: "Sessions currently held in memory.",
	})
)

func status(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}

func observeStep(step string, err error, d time.Duration) {
	stepDuration.WithLabelValues(step, status(err)).Observe(d.Seconds())
}

// RecordUpload counts one upload; outcome is e.g. "ok", "parse_error", "no_file".
func RecordUpload(outcome string) {
	uploads.WithLabelValues(outcome).Inc()
}

// RecordDropped adds rows removed by cleaning.
func RecordDropped(n int) {
	if n > 0 {
		rowsDropped.Add(float64(n))
	}
}

// RecordChart counts one chart render.
func RecordChart(kind string, err error) {
	chartRenders.WithLabelValues(kind, status(err)).Inc()
}

// SetActiveSessions publishes the current session count.
func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}
