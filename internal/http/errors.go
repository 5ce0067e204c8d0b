package http

import (
	"qrmenu-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidQuery = "HTTP_1000"
)

func errInvalidQuery(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQuery, msg, cause)
}
