// Package metrics exposes Prometheus instrumentation for the ingestion pipeline.
package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RowsRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pulse_ingest_rows_rejected_total",
			Help: "CSV rows dropped for missing or unparseable timestamps",
		},
	)

	EventsIngested = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pulse_ingest_events_total",
			Help: "Canonical events accepted into raw storage",
		},
	)

	UploadsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_ingest_uploads_total",
			Help: "Uploads reaching a terminal status",
		},
		[]string{"status"},
	)

	VisitorAggregations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_ingest_visitor_aggregations_total",
			Help: "Per-visitor profile aggregations",
		},
		[]string{"status"},
	)

	GeoCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_geo_cache_lookups_total",
			Help: "Geo cache lookups by layer and outcome",
		},
		[]string{"layer", "outcome"},
	)

	GeoProviderCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_geo_provider_calls_total",
			Help: "Outbound geolocation provider calls",
		},
		[]string{"provider", "status"},
	)

	IngestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pulse_ingest_duration_seconds",
			Help:    "Wall time of one upload ingestion",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300},
		},
	)
)

func Init() {
	prometheus.MustRegister(RowsRejected)
	prometheus.MustRegister(EventsIngested)
	prometheus.MustRegister(UploadsProcessed)
	prometheus.MustRegister(VisitorAggregations)
	prometheus.MustRegister(GeoCacheLookups)
	prometheus.MustRegister(GeoProviderCalls)
	prometheus.MustRegister(IngestDuration)
}

// Handler adapts promhttp for Fiber.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
