package ingestors

import (
	"fmt"

	"qrmenu-analytics/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed      = "ING_1000"
	codeBatchAlreadyProcessed = "ING_1001"

	codeInternalTrackingBatchStoreFailed   = "ING_9000"
	codeInternalTrackedEventProducerFailed = "ING_9001"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errBatchAlreadyProcessed returns an error when a tracking batch with the same idempotency
// key was already accepted.
func errBatchAlreadyProcessed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeBatchAlreadyProcessed, "tracking batch already processed", cause)
}

func errInternalTrackingBatchStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalTrackingBatchStoreFailed, fmt.Errorf("trackingBatchStoreFailed: %w", cause))
}

func errInternalTrackedEventProducerFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalTrackedEventProducerFailed, fmt.Errorf("trackedEventProducerFailed: %w", cause))
}
