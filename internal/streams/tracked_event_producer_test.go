package streams

import (
	"context"
	"testing"

	"qrmenu-analytics/internal/events"
	"qrmenu-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackedEventProducer_Produce(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[events.TrackedEventBatch](4, 10)
	producer := NewTrackedEventProducer(queue)

	batch := &models.TrackingBatch{
		BatchID:      "batch-1",
		RestaurantID: "rst-bistro",
		Events: []*models.Event{
			{ID: "e1", RestaurantID: "rst-bistro", EventType: models.EventQRScan},
		},
	}
	require.NoError(t, producer.Produce(context.Background(), batch))

	ch := queue.partitions[partitionIndex("rst-bistro", 4)]
	require.Len(t, ch, 1)
	msg := <-ch
	assert.Equal(t, "batch-1", msg.BatchID)
	assert.Equal(t, "rst-bistro", msg.RestaurantID)
	assert.Equal(t, batch.Events, msg.Events)
}

func TestTrackedEventProducer_Produce_EmptyBatchIsNoop(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[events.TrackedEventBatch](1, 0)
	producer := NewTrackedEventProducer(queue)

	// an unbuffered partition with no reader would block if anything were published
	assert.NoError(t, producer.Produce(context.Background(), &models.TrackingBatch{BatchID: "b", RestaurantID: "r"}))
}

func TestTrackedEventProducer_Produce_ContextDone(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[events.TrackedEventBatch](1, 0)
	producer := NewTrackedEventProducer(queue)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := producer.Produce(ctx, &models.TrackingBatch{
		BatchID:      "b",
		RestaurantID: "r",
		Events:       []*models.Event{{ID: "e1"}},
	})
	assert.ErrorIs(t, err, context.Canceled)
}
