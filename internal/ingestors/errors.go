package ingestors

import (
	"fmt"

	"traffic-dashboard/internal/shared/svcerrors"
)

// JSONDataIngestionService errors
const (
	codeValidationFailed         = "ING_1000"
	codeTransferAlreadyProcessed = "ING_1001"
	codeTransferNotFound         = "ING_1002"

	codeInternalJSONDataStoreFailed = "ING_9000"
)

func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

func errTransferAlreadyProcessed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeTransferAlreadyProcessed, "json data transfer already processed", cause)
}

func errTransferNotFound() *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeTransferNotFound, "json data transfer not found")
}

func errInternalJSONDataStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalJSONDataStoreFailed, fmt.Errorf("jsonDataStoreFailed: %w", cause))
}
