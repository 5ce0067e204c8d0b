package ingestors

import (
	"qrmenu-analytics/internal/shared/metrics"
)

var (
	metricBatchIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "batch_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricEventsAcceptedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "events_accepted_total",
		},
		[]string{"event_type"},
	)
)
