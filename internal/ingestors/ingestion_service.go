package ingestors

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"qrmenu-analytics/internal/models"
	"qrmenu-analytics/internal/shared/loggers"
	"qrmenu-analytics/internal/shared/metrics"
	"qrmenu-analytics/internal/shared/ulid"
	"qrmenu-analytics/internal/shared/validators"
	"qrmenu-analytics/internal/stores"
	"qrmenu-analytics/internal/streams"
)

const (
	maxBatchBytes    = 1024 * 1024
	maxBatchEvents   = 500
	maxFutureSkew    = 5 * time.Minute
	maxRestaurantLen = 64
)

// IngestResult represents the result of a batch ingestion operation.
type IngestResult struct {
	BatchID  string `json:"batchId"`
	Accepted int    `json:"accepted"`
}

// trackingEventRequest is one element of the POST /events body.
type trackingEventRequest struct {
	RestaurantID string     `json:"restaurantId" validate:"max=64"`
	EventType    string     `json:"eventType" validate:"required,oneof=QR_SCAN MENU_VIEW PRODUCT_VIEW CONTACT_CLICK"`
	OccurredAt   *time.Time `json:"occurredAt"`
	SessionID    string     `json:"sessionId" validate:"max=128"`
	VisitorID    string     `json:"visitorId" validate:"max=128"`
	DeviceType   string     `json:"deviceType" validate:"omitempty,oneof=MOBILE DESKTOP TABLET"`
	Source       string     `json:"source" validate:"max=64"`
	ProductID    string     `json:"productId" validate:"required_if=EventType PRODUCT_VIEW,max=64"`
	TableNo      string     `json:"tableNo" validate:"max=16"`
	PagePath     string     `json:"pagePath" validate:"max=2048"`
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestBatch validates a JSON array of storefront tracking events for one restaurant,
	// archives it under its idempotency key and hands the events to the write-behind stream.
	IngestBatch(ctx context.Context, restaurantID string, idempotencyKey string, userAgent string, r io.Reader) (*IngestResult, error)
}

type ingestionService struct {
	deviceDetector       DeviceDetector
	batchStore           stores.TrackingBatchStore
	trackedEventProducer streams.TrackedEventProducer
	validate             *validators.Validate
	now                  func() time.Time
}

func NewIngestionService(deviceDetector DeviceDetector, batchStore stores.TrackingBatchStore, trackedEventProducer streams.TrackedEventProducer) IngestionService {
	return &ingestionService{
		deviceDetector:       deviceDetector,
		batchStore:           batchStore,
		trackedEventProducer: trackedEventProducer,
		validate:             validators.New(),
		now:                  time.Now,
	}
}

func (s *ingestionService) IngestBatch(ctx context.Context, restaurantID string, idempotencyKey string, userAgent string, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting tracking batch with restaurant ID: %s, idempotency key: %s", restaurantID, idempotencyKey)

	receivedAt := s.now().UTC()
	trackedEvents, err := s.validateTrackingBatch(restaurantID, userAgent, receivedAt, r)
	if err != nil {
		metricBatchIngestedTotal.WithLabelValues(codeValidationFailed).Inc()
		return nil, err
	}

	batchID := strings.TrimSpace(idempotencyKey)
	if batchID == "" {
		batchID = ulid.NewULID()
	}

	batch := &models.TrackingBatch{
		BatchID:      batchID,
		RestaurantID: restaurantID,
		ReceivedAt:   receivedAt,
		Events:       trackedEvents,
	}

	// Archive the raw batch; a second request with the same key is rejected here
	err = s.batchStore.Put(ctx, batch)
	if err != nil {
		if errors.Is(err, stores.ErrTrackingBatchAlreadyExist) {
			svcError := errBatchAlreadyProcessed(err)
			metricBatchIngestedTotal.WithLabelValues(svcError.Code).Inc()
			return nil, svcError
		}
		svcError := errInternalTrackingBatchStoreFailed(err)
		metricBatchIngestedTotal.WithLabelValues(svcError.Code).Inc()
		return nil, svcError
	}

	err = s.trackedEventProducer.Produce(ctx, batch)
	if err != nil {
		// release the key so the client can retry the same batch
		if deleteErr := s.batchStore.Delete(ctx, restaurantID, batchID); deleteErr != nil {
			logger.Error().
				Err(deleteErr).
				Str(loggers.FieldBatchID, batchID).
				Msg("failed to release tracking batch after publish failure")
		}
		svcError := errInternalTrackedEventProducerFailed(err)
		metricBatchIngestedTotal.WithLabelValues(svcError.Code).Inc()
		return nil, svcError
	}

	for _, e := range trackedEvents {
		metricEventsAcceptedTotal.WithLabelValues(string(e.EventType)).Inc()
	}
	metricBatchIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()

	return &IngestResult{BatchID: batchID, Accepted: len(trackedEvents)}, nil
}

func (s *ingestionService) validateTrackingBatch(restaurantID string, userAgent string, receivedAt time.Time, r io.Reader) ([]*models.Event, error) {
	if restaurantID == "" {
		return nil, errValidationFailed("restaurantID is required", nil)
	}
	if len(restaurantID) > maxRestaurantLen {
		return nil, errValidationFailed(fmt.Sprintf("restaurantID too long: max %d characters", maxRestaurantLen), nil)
	}

	// Handle nil reader
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	buf, err := s.readWithLimit(r, maxBatchBytes)
	if err != nil {
		return nil, err
	}

	requests, err := s.parseJSON(buf)
	if err != nil {
		return nil, err
	}

	if len(requests) == 0 {
		return nil, errValidationFailed("tracking events cannot be empty", nil)
	}
	if len(requests) > maxBatchEvents {
		return nil, errValidationFailed(fmt.Sprintf("too many tracking events: max %d per batch", maxBatchEvents), nil)
	}

	// detect once per request, every event of a batch comes from the same browser
	detectedDevice := s.deviceDetector.Detect(userAgent)

	trackedEvents := make([]*models.Event, 0, len(requests))
	for i, req := range requests {
		e, err := s.toEvent(req, i, restaurantID, detectedDevice, receivedAt)
		if err != nil {
			return nil, err
		}
		trackedEvents = append(trackedEvents, e)
	}
	return trackedEvents, nil
}

// readWithLimit reads up to max+1 bytes from r and checks if it exceeds max.
func (s *ingestionService) readWithLimit(r io.Reader, max int) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r, int64(max+1)))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}

	// If we read more than max bytes, the batch is too large
	if len(buf) > max {
		return nil, errValidationFailed("batch too large: must be <= 1MB", nil)
	}
	return buf, nil
}

// parseJSON parses buf as a JSON array of tracking events.
func (s *ingestionService) parseJSON(buf []byte) ([]trackingEventRequest, error) {
	buf = bytes.TrimSpace(buf)
	if len(buf) == 0 {
		return nil, errValidationFailed("empty request body", nil)
	}

	var requests []trackingEventRequest
	if err := json.Unmarshal(buf, &requests); err != nil {
		return nil, errValidationFailed("invalid json", err)
	}
	return requests, nil
}

func (s *ingestionService) toEvent(req trackingEventRequest, index int, restaurantID string, detectedDevice models.DeviceType, receivedAt time.Time) (*models.Event, error) {
	normalizeTrackingEvent(&req)

	if err := s.validate.Struct(req); err != nil {
		return nil, errValidationFailed(fmt.Sprintf("item at index %d: %s", index, describeValidationError(err)), err)
	}
	if req.RestaurantID != "" && req.RestaurantID != restaurantID {
		return nil, errValidationFailed(fmt.Sprintf("item at index %d: restaurantId does not match x-restaurant-id", index), nil)
	}

	occurredAt := receivedAt
	if req.OccurredAt != nil {
		occurredAt = req.OccurredAt.UTC()
		if occurredAt.After(receivedAt.Add(maxFutureSkew)) {
			return nil, errValidationFailed(fmt.Sprintf("item at index %d: occurredAt is in the future", index), nil)
		}
	}

	deviceType := models.DeviceType(req.DeviceType)
	if deviceType == models.DeviceUnknown {
		deviceType = detectedDevice
	}

	return &models.Event{
		ID:           ulid.NewULIDAt(occurredAt),
		RestaurantID: restaurantID,
		EventType:    models.EventType(req.EventType),
		OccurredAt:   occurredAt,
		SessionID:    req.SessionID,
		VisitorID:    req.VisitorID,
		DeviceType:   deviceType,
		Source:       req.Source,
		ProductID:    req.ProductID,
		TableNo:      req.TableNo,
		PagePath:     req.PagePath,
	}, nil
}

func normalizeTrackingEvent(req *trackingEventRequest) {
	req.RestaurantID = strings.TrimSpace(req.RestaurantID)
	req.EventType = strings.ToUpper(strings.TrimSpace(req.EventType))
	req.SessionID = strings.TrimSpace(req.SessionID)
	req.VisitorID = strings.TrimSpace(req.VisitorID)
	req.DeviceType = strings.ToUpper(strings.TrimSpace(req.DeviceType))
	req.Source = strings.ToLower(strings.TrimSpace(req.Source))
	req.ProductID = strings.TrimSpace(req.ProductID)
	req.TableNo = strings.TrimSpace(req.TableNo)
	req.PagePath = strings.TrimSpace(req.PagePath)
}

// describeValidationError renders the first failing field as "<field>: <tag>".
func describeValidationError(err error) string {
	var validationErrs validators.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fmt.Sprintf("%s: failed on %s", fe.Field(), fe.Tag())
	}
	return err.Error()
}
