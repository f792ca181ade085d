package queries

import (
	"traffic-dashboard/internal/shared/svcerrors"
)

// TrafficQueryService errors
const (
	codeInvalidQuery = "QRY_1000"
	codeBinNotFound  = "QRY_1001"
)

func errInvalidQuery(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQuery, msg, cause)
}

func errBinNotFound() *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeBinNotFound, "Bin not found")
}
