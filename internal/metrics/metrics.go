package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"breaking_news/internal/domain"
)

const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultSkipped = "skipped"
)

// Metrics groups the Prometheus instruments of the notifier. It satisfies
// service.Observer and scheduler.Recorder.
type Metrics struct {
	QueueEnqueued   prometheus.Counter
	MessagesSent    *prometheus.CounterVec
	SendFailures    prometheus.Counter
	ReceivedMarks   prometheus.Counter
	QueueDrained    prometheus.Counter
	Runs            *prometheus.CounterVec
	RunDuration     prometheus.Histogram
	LastSuccessTime prometheus.Gauge
}

// New registers all instruments with reg. Pass a fresh prometheus.Registry
// in tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		QueueEnqueued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "breaking_news_enqueued_total",
			Help: "Queued items created by the selector.",
		}),
		MessagesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "breaking_news_messages_sent_total",
			Help: "Messages accepted by the sender, by message type.",
		}, []string{"type"}),
		SendFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "breaking_news_send_failures_total",
			Help: "Pages aborted because a send failed.",
		}),
		ReceivedMarks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "breaking_news_received_marks_total",
			Help: "Articles marked as received by a user.",
		}),
		QueueDrained: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "breaking_news_drained_total",
			Help: "Queued items delivered and removed from the queue.",
		}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "breaking_news_runs_total",
			Help: "Pipeline runs by result.",
		}, []string{"result"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "breaking_news_run_duration_seconds",
			Help:    "Wall time of a pipeline run.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		LastSuccessTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "breaking_news_last_success_timestamp_seconds",
			Help: "Unix time of the last successful run.",
		}),
	}

	reg.MustRegister(
		m.QueueEnqueued,
		m.MessagesSent,
		m.SendFailures,
		m.ReceivedMarks,
		m.QueueDrained,
		m.Runs,
		m.RunDuration,
		m.LastSuccessTime,
	)

	return m
}

func (m *Metrics) Enqueued() { m.QueueEnqueued.Inc() }

func (m *Metrics) MessageSent(t domain.MessageType) {
	m.MessagesSent.WithLabelValues(string(t)).Inc()
}

func (m *Metrics) SendFailed() { m.SendFailures.Inc() }

func (m *Metrics) ReceivedMarked(n int) { m.ReceivedMarks.Add(float64(n)) }

func (m *Metrics) Drained(n int) { m.QueueDrained.Add(float64(n)) }

// RunFinished records the outcome of one scheduled run.
func (m *Metrics) RunFinished(err error, d time.Duration) {
	result := ResultSuccess
	switch {
	case errors.Is(err, domain.ErrRunInProgress):
		m.Runs.WithLabelValues(ResultSkipped).Inc()
		return
	case err != nil:
		result = ResultError
	}

	m.Runs.WithLabelValues(result).Inc()
	m.RunDuration.Observe(d.Seconds())
	if err == nil {
		m.LastSuccessTime.SetToCurrentTime()
	}
}
