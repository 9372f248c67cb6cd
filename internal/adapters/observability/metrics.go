package observability

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	ToolInvocations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ivy", Name: "tool_invocations_total", Help: "Tool calls by outcome."},
		[]string{"tool", "outcome"}, // outcome: ok|empty|not_found|degraded|bad_args
	)
	ToolLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ivy", Name: "tool_duration_seconds",
			Help:    "Tool execution duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"tool"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ivy", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ivy", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ExternalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ivy", Name: "external_requests_total", Help: "Outbound inventory API requests."},
		[]string{"endpoint", "status"},
	)
	ExternalLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ivy", Name: "external_request_duration_seconds",
			Help:    "Outbound inventory API request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ivy", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
	CatalogSize = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: "ivy", Name: "catalog_properties", Help: "Properties in the loaded catalog."},
	)
	CatalogReloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ivy", Name: "catalog_reloads_total", Help: "Catalog load attempts by status."},
		[]string{"status"}, // status: ok|error
	)
)

func Serve() {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		ToolInvocations, ToolLatency,
		HTTPRequests, HTTPLatency,
		ExternalRequests, ExternalLatency,
		CacheEvents, CatalogSize, CatalogReloads,
	)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveTool(tool, outcome string, dur time.Duration) {
	ToolInvocations.WithLabelValues(tool, outcome).Inc()
	ToolLatency.WithLabelValues(tool).Observe(dur.Seconds())
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveExternal(endpoint string, status int, dur time.Duration) {
	ExternalRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	ExternalLatency.WithLabelValues(endpoint).Observe(dur.Seconds())
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func SetCatalogSize(n int) { CatalogSize.Set(float64(n)) }

func ObserveCatalogReload(status string) { CatalogReloads.WithLabelValues(status).Inc() }
