package http

import (
	"qrmenu-analytics/internal/shared/metrics"
)

var (
	// Labelled by chi route pattern, never the raw path, so query strings and ids stay out.
	metricRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_total",
		},
		[]string{"method", "route", "status", metrics.FieldErrorCode},
	)

	metricRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"method", "route", "status", metrics.FieldErrorCode},
	)

	metricExportBytes = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "csv_export_bytes",
			Buckets:   metrics.ExponentialBuckets(1024, 4, 8),
		},
		[]string{"route"},
	)
)
