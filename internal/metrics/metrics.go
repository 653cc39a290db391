// Package metrics holds the Prometheus collectors for the service.
//
// Collectors are registered with the default registry at init and exposed on
// /metrics through Handler.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "monkey"

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests by route and status",
	}, []string{"method", "route", "status"})
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace, Name: "http_request_duration_seconds", Help: "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	ChatResponses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "chat_responses_total", Help: "Chat replies by matching rule family",
	}, []string{"branch"})
	LessonsGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "lessons_generated_total", Help: "Generated lesson plans by level",
	}, []string{"level"})
	ProgressSaved = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "progress_saved_total", Help: "Saved game results by game type",
	}, []string{"game_type"})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, ChatResponses, LessonsGenerated, ProgressSaved)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveRequest(method, route string, status int, d time.Duration) {
	HTTPRequests.WithLabelValues(method, route, statusLabel(status)).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func IncChatResponse(branch string) { ChatResponses.WithLabelValues(branch).Inc() }

func IncLessonGenerated(level string) { LessonsGenerated.WithLabelValues(level).Inc() }

func IncProgressSaved(gameType string) { ProgressSaved.WithLabelValues(gameType).Inc() }

// statusLabel buckets unusual codes so a misbehaving client cannot blow up
// label cardinality.
func statusLabel(status int) string {
	switch {
	case status < 100 || status > 599:
		return "other"
	default:
		return strconv.Itoa(status)
	}
}
