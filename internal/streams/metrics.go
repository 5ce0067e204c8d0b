package streams

import (
	"qrmenu-analytics/internal/shared/metrics"
)

var (
	streamTrackedEvents              = "tracked_events"
	metricTrackedEventsProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "tracked_event_batches_published_total",
		},
		[]string{"stream_id"},
	)

	metricTrackedEventsConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "tracked_event_batches_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)

	// metricInsertedEvents observes how many events one event store insert carried after
	// buffered batches were coalesced.
	metricInsertedEvents = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "inserted_events",
			Buckets:   []float64{1, 10, 50, 100, 500, 1_000, 5_000},
		},
		[]string{"stream_id"},
	)
)
