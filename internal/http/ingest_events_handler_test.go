package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"qrmenu-analytics/internal/ingestors"
	ingestormocks "qrmenu-analytics/internal/ingestors/mocks"
	"qrmenu-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUserAgent = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X)"

func TestIngestEventsHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewIngestEventsHandler(mockIngestionService)

	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader([]byte(`[{"eventType":"QR_SCAN"}]`)))
	req.Header.Set(headerRestaurantID, "rst-bistro")
	req.Header.Set(headerIdempotencyKey, "key123")
	req.Header.Set(headerUserAgent, testUserAgent)
	rr := httptest.NewRecorder()

	mockIngestionService.EXPECT().
		IngestBatch(
			gomock.Any(),
			"rst-bistro",
			"key123",
			testUserAgent,
			gomock.Any(),
		).
		Return(&ingestors.IngestResult{BatchID: "key123", Accepted: 1}, nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"batchId":"key123","accepted":1}`, rr.Body.String())
}

func TestIngestEventsHandler_Handle_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewIngestEventsHandler(mockIngestionService)

	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader([]byte(`[]`)))
	req.Header.Set(headerRestaurantID, "rst-bistro")
	req.Header.Set(headerIdempotencyKey, "key123")
	rr := httptest.NewRecorder()

	expectedErr := svcerrors.NewInvalidArgumentError("TEST_1000", "validation failed", nil)
	mockIngestionService.EXPECT().
		IngestBatch(gomock.Any(), "rst-bistro", "key123", "", gomock.Any()).
		Return(nil, expectedErr)

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "TEST_1000", svcErr.Code)
	// Status should not be set when error occurs
	assert.Equal(t, http.StatusOK, rr.Code)
}
