package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// PollResults counts poll iterations by result kind.
	PollResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homework_bot_poll_results_total",
			Help: "Number of poll iterations by result kind",
		},
		[]string{"result"},
	)

	NotificationsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homework_bot_notifications_sent_total",
			Help: "Number of messages delivered to the chat",
		},
		[]string{"type"},
	)

	NotificationsSuppressed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homework_bot_notifications_suppressed_total",
			Help: "Number of messages skipped because they repeat the last one sent",
		},
		[]string{"type"},
	)

	SendFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homework_bot_send_failures_total",
			Help: "Number of failed chat deliveries",
		},
		[]string{"type"},
	)

	// Checkpoint is the from_date used for the next poll.
	Checkpoint = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "homework_bot_checkpoint_seconds",
			Help: "Current checkpoint timestamp in epoch seconds",
		},
	)

	UpstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "homework_bot_upstream_request_duration_seconds",
			Help:    "Duration of status endpoint requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"code"},
	)
)

// Message types used as label values.
const (
	TypeStatus = "status"
	TypeError  = "error"
)

func Init() {
	prometheus.MustRegister(PollResults, NotificationsSent, NotificationsSuppressed, SendFailures, Checkpoint, UpstreamDuration)
}
