package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	RequestTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "service_request_transitions_total",
			Help: "Service request lifecycle transitions by target status",
		},
		[]string{"to"},
	)

	OTPCodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "otp_codes_total",
			Help: "One-time code operations by outcome",
		},
		[]string{"operation", "result"},
	)

	ChatLinks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_chat_links_total",
			Help: "Chat identity link attempts by outcome",
		},
		[]string{"result"},
	)
)

var once sync.Once

// Init registers collectors with the default registry. Safe to call more
// than once.
func Init() {
	once.Do(func() {
		prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration, RequestTransitions, OTPCodes, ChatLinks)
	})
}

func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
