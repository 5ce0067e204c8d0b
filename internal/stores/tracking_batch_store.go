package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"qrmenu-analytics/internal/models"
	"qrmenu-analytics/internal/shared/filestorages"
)

var (
	ErrTrackingBatchAlreadyExist = errors.New("tracking batch already exists")
)

// TrackingBatchStore archives raw tracking batches with an atomic "create-if-not-exists" Put,
// similar to S3's conditional PUT:
//   - Request A and Request B both try to store batch "batch-123" simultaneously
//   - Request A's Put succeeds → batch stored
//   - Request B's Put fails → ErrTrackingBatchAlreadyExist returned (duplicate detected)
//
// Delete releases a batch id again, used when the accepted events could not be handed over
// to the stream so the client may retry with the same idempotency key.
//
//go:generate mockgen -source=tracking_batch_store.go -destination=./mocks/tracking_batch_store_mock.go -package=mocks
type TrackingBatchStore interface {
	Put(ctx context.Context, batch *models.TrackingBatch) error
	Delete(ctx context.Context, restaurantID, batchID string) error
}

type trackingBatchStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewTrackingBatchStore(fileStorage filestorages.FileStorage) TrackingBatchStore {
	return &trackingBatchStore{fileStorage: fileStorage, dir: "tracking-batches"}
}

func (s *trackingBatchStore) key(restaurantID, batchID string) string {
	return fmt.Sprintf("%s/%s/%s.json", s.dir, restaurantID, batchID)
}

func (s *trackingBatchStore) Put(ctx context.Context, batch *models.TrackingBatch) error {
	jsonData, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("failed to marshal tracking batch: %w", err)
	}

	_, err = s.fileStorage.Put(ctx, s.key(batch.RestaurantID, batch.BatchID), bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrTrackingBatchAlreadyExist
		}
		return fmt.Errorf("failed to put tracking batch: %w", err)
	}
	return nil
}

func (s *trackingBatchStore) Delete(ctx context.Context, restaurantID, batchID string) error {
	err := s.fileStorage.Delete(ctx, s.key(restaurantID, batchID))
	if err != nil && !errors.Is(err, filestorages.ErrFileNotFound) {
		return fmt.Errorf("failed to delete tracking batch: %w", err)
	}
	return nil
}
