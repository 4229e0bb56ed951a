// Package metrics provides centralized Prometheus metrics for the catalog.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Gateway metrics track persistence round trips
var (
	// DBOperationDuration measures gateway operation duration in seconds
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_db_operation_duration_seconds",
			Help:    "Duration of persistence gateway operations in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"repository", "operation"},
	)

	// DBOperationErrors counts failed gateway operations
	DBOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_db_operation_errors_total",
			Help: "Total number of failed persistence gateway operations",
		},
		[]string{"repository", "operation"},
	)
)

// Domain metrics track entity lifecycle
var (
	// EntitiesCreatedTotal counts persisted entities by kind
	EntitiesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_entities_created_total",
			Help: "Total number of entities persisted",
		},
		[]string{"entity"},
	)

	// ValidationFailuresTotal counts rejected field values
	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_validation_failures_total",
			Help: "Total number of field validation failures",
		},
		[]string{"entity", "field"},
	)
)
