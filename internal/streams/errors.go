package streams

import (
	"fmt"

	"qrmenu-analytics/internal/shared/svcerrors"
)

const (
	codeInternalEventStoreInsertFailed = "STR_9000"
)

func errInternalEventStoreInsertFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventStoreInsertFailed, fmt.Errorf("eventStoreInsertFailed: %w", cause))
}
