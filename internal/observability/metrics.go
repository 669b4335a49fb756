package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tts_api_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tts_api_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: []float64{0.005, 0.025, 0.1, 0.5, 1.0, 5.0, 15.0, 30.0, 60.0},
	}, []string{"path"})

	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tts_api_active_requests",
		Help: "Number of HTTP requests currently in flight",
	})

	// Synthesis metrics
	synthesisRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tts_api_synthesis_requests_total",
		Help: "Total number of synthesis requests",
	}, []string{"status"})

	synthesisLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tts_api_synthesis_duration_seconds",
		Help:    "End-to-end synthesis latency in seconds, retries included",
		Buckets: []float64{0.5, 1.0, 2.0, 5.0, 10.0, 20.0, 30.0, 60.0},
	})

	// Upstream metrics
	upstreamAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tts_api_upstream_attempts_total",
		Help: "Total number of Gemini generate-content attempts",
	}, []string{"status"})

	// Audio metrics
	audioBytesOut = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tts_api_audio_bytes_total",
		Help: "Total audio bytes returned to clients",
	})

	audioSecondsOut = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tts_api_audio_seconds_total",
		Help: "Total seconds of audio returned to clients",
	})
)

// ObserveHTTPRequest records one completed HTTP request
func ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpLatency.WithLabelValues(path).Observe(duration.Seconds())
}

// RequestStarted marks an HTTP request as in flight
func RequestStarted() {
	activeRequests.Inc()
}

// RequestFinished marks an HTTP request as done
func RequestFinished() {
	activeRequests.Dec()
}

// RecordSynthesis records one synthesis call end to end
func RecordSynthesis(success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "error"
	}
	synthesisRequests.WithLabelValues(status).Inc()
	synthesisLatency.Observe(duration.Seconds())
}

// RecordUpstreamAttempt records one Gemini attempt
func RecordUpstreamAttempt(success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	upstreamAttempts.WithLabelValues(status).Inc()
}

// RecordAudioOut records audio returned to a client
func RecordAudioOut(bytes int, playback time.Duration) {
	audioBytesOut.Add(float64(bytes))
	audioSecondsOut.Add(playback.Seconds())
}
