package streams

import (
	"context"

	"qrmenu-analytics/internal/events"
	"qrmenu-analytics/internal/models"
)

// TrackedEventProducer hands accepted tracking batches to the write-behind queue.
//
// The partition key is the restaurant id, so every batch of one restaurant is inserted by
// the same partition worker in the order it was produced, while different restaurants are
// written in parallel.
//
//go:generate mockgen -source=tracked_event_producer.go -destination=./mocks/tracked_event_producer_mock.go -package=mocks
type TrackedEventProducer interface {
	Produce(ctx context.Context, batch *models.TrackingBatch) error
}

type trackedEventProducer struct {
	queue *PartitionedQueue[events.TrackedEventBatch]
}

func NewTrackedEventProducer(queue *PartitionedQueue[events.TrackedEventBatch]) TrackedEventProducer {
	return &trackedEventProducer{
		queue: queue,
	}
}

func (producer *trackedEventProducer) Produce(ctx context.Context, batch *models.TrackingBatch) error {
	if len(batch.Events) == 0 {
		return nil
	}

	msg := events.TrackedEventBatch{
		BatchID:      batch.BatchID,
		RestaurantID: batch.RestaurantID,
		Events:       batch.Events,
	}
	if err := producer.queue.Publish(ctx, batch.RestaurantID, msg); err != nil {
		return err
	}

	metricTrackedEventsProducedTotal.WithLabelValues(streamTrackedEvents).Inc()
	return nil
}
