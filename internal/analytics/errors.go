package analytics

import (
	"fmt"

	"qrmenu-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidExportKind = "ANA_1000"

	codeUpstreamEventStoreFailed = "ANA_9000"
	codeUpstreamCatalogFailed    = "ANA_9001"
	codeInternalRankingFailed    = "ANA_9002"
)

func errInvalidExportKind(kind string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidExportKind, fmt.Sprintf("unsupported export kind: %q", kind), nil)
}

// errUpstreamEventStoreFailed returns an error when the event store cannot serve a read.
// The store error stays in the chain unchanged.
func errUpstreamEventStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUpstreamError(codeUpstreamEventStoreFailed, "event store unavailable", cause)
}

// errUpstreamCatalogFailed returns an error when the restaurant catalog cannot serve a read.
func errUpstreamCatalogFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUpstreamError(codeUpstreamCatalogFailed, "catalog unavailable", cause)
}

func errInternalRankingFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRankingFailed, fmt.Errorf("rankingFailed: %w", cause))
}
