package analytics

import (
	"qrmenu-analytics/internal/shared/metrics"
)

const (
	skipReasonMalformedTimestamp = "malformed_timestamp"
)

var (
	// metricQueriesTotal counts facade calls per query shape (summary, timeseries, ...) and
	// the error code they ended with, "" on success.
	metricQueriesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalytics,
			Name:      "queries_total",
		},
		[]string{"query", metrics.FieldErrorCode},
	)

	metricQueryDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalytics,
			Name:      "query_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"query"},
	)

	// metricQueryEvents observes how many events one query pulled into memory.
	metricQueryEvents = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalytics,
			Name:      "query_events",
			Buckets:   []float64{0, 10, 100, 1_000, 10_000, 100_000, 1_000_000},
		},
		[]string{"query"},
	)

	// metricSkippedEventsTotal counts events left out of session reconstruction.
	metricSkippedEventsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalytics,
			Name:      "skipped_events_total",
		},
		[]string{"reason"},
	)
)
