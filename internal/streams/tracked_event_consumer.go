package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"qrmenu-analytics/internal/events"
	"qrmenu-analytics/internal/models"
	"qrmenu-analytics/internal/shared/loggers"
	"qrmenu-analytics/internal/shared/metrics"
	"qrmenu-analytics/internal/shared/svcerrors"
	"qrmenu-analytics/internal/shared/ulid"
	"qrmenu-analytics/internal/stores"
)

const (
	defaultMaxCoalescedBatches = 64
	shutdownFlushTimeout       = 10 * time.Second
)

//go:generate mockgen -source=tracked_event_consumer.go -destination=./mocks/tracked_event_consumer_mock.go -package=mocks
type TrackedEventConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type trackedEventConsumer struct {
	queue      *PartitionedQueue[events.TrackedEventBatch]
	eventStore stores.EventStore

	maxCoalescedBatches int

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewTrackedEventConsumer(queue *PartitionedQueue[events.TrackedEventBatch], eventStore stores.EventStore, logger loggers.Logger) TrackedEventConsumer {
	return &trackedEventConsumer{
		queue:               queue,
		eventStore:          eventStore,
		maxCoalescedBatches: defaultMaxCoalescedBatches,
		stopCh:              make(chan struct{}),
		logger:              logger,
	}
}

// Start spawns 1 worker goroutine per partition.
// Each worker takes one batch, drains whatever else is already buffered on its partition
// (up to maxCoalescedBatches) and writes all of it with a single insert.
func (consumer *trackedEventConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		partitionIndex := partitionIndex
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop flushes what is still buffered and waits for workers to exit (best called during app
// shutdown, after the HTTP server stopped accepting events).
func (consumer *trackedEventConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *trackedEventConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.TrackedEventBatch) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			consumer.flushBuffered(ctx, partitionIndex, ch)
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			consumer.insert(ctx, partitionIndex, consumer.coalesce(msg, ch))
		}
	}
}

// coalesce appends batches already waiting on ch to first without blocking.
func (consumer *trackedEventConsumer) coalesce(first events.TrackedEventBatch, ch <-chan events.TrackedEventBatch) []events.TrackedEventBatch {
	batches := []events.TrackedEventBatch{first}
	for len(batches) < consumer.maxCoalescedBatches {
		select {
		case msg, ok := <-ch:
			if !ok {
				return batches
			}
			batches = append(batches, msg)
		default:
			return batches
		}
	}
	return batches
}

func (consumer *trackedEventConsumer) flushBuffered(ctx context.Context, partitionIndex int, ch <-chan events.TrackedEventBatch) {
	flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownFlushTimeout)
	defer cancel()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			consumer.insert(flushCtx, partitionIndex, consumer.coalesce(msg, ch))
		default:
			return
		}
	}
}

func (consumer *trackedEventConsumer) insert(ctx context.Context, partitionIndex int, batches []events.TrackedEventBatch) {
	// Handle panic recovery to prevent worker goroutine from crashing
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricTrackedEventsConsumedTotal.WithLabelValues(streamTrackedEvents, svcErr.Code).Add(float64(len(batches)))
		}
	}()

	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, strconv.Itoa(partitionIndex)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(ctx)

	var toInsert []*models.Event
	batchIDs := make([]string, 0, len(batches))
	for _, b := range batches {
		toInsert = append(toInsert, b.Events...)
		batchIDs = append(batchIDs, b.BatchID)
	}

	code := metrics.ValueNoError
	if err := consumer.eventStore.Insert(ctx, toInsert); err != nil {
		svcErr := errInternalEventStoreInsertFailed(err)
		code = svcErr.Code
		// the raw batches stay archived in file storage and can be replayed from there
		loggers.Ctx(ctx).Error().
			Err(err).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Strs(loggers.FieldBatchID, batchIDs).
			Int(loggers.FieldEventCount, len(toInsert)).
			Msg("failed to insert tracked events")
	} else {
		metricInsertedEvents.WithLabelValues(streamTrackedEvents).Observe(float64(len(toInsert)))
	}
	metricTrackedEventsConsumedTotal.WithLabelValues(streamTrackedEvents, code).Add(float64(len(batches)))
}
