package ingestors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"traffic-dashboard/internal/models"
	"traffic-dashboard/internal/shared/loggers"
	"traffic-dashboard/internal/shared/metrics"
	"traffic-dashboard/internal/shared/svcerrors"
	"traffic-dashboard/internal/shared/ulid"
	"traffic-dashboard/internal/shared/validators"
	"traffic-dashboard/internal/stores"
)

const (
	maxBodyBytes = 2 * 1024 * 1024
)

const (
	FormatJSON = "json"

	messageReceived = "JSON data received and stored"
)

// transferRef names one stored transfer. Both parts end up in a file path.
type transferRef struct {
	ClientID   string `json:"client_id" validate:"required,max=128,excludesall=/\\,ne=.,ne=.."`
	TransferID string `json:"transfer_id" validate:"omitempty,max=128,excludesall=/\\,ne=.,ne=.."`
}

//go:generate mockgen -source=json_data_ingestion_service.go -destination=./mocks/json_data_ingestion_service_mock.go -package=mocks
type JSONDataIngestionService interface {
	// Ingest validates and stores one JSON data transfer. A non-empty
	// idempotencyKey becomes the transfer ID; repeating it yields ING_1001.
	Ingest(ctx context.Context, idempotencyKey string, contentType string, r io.Reader) (*models.JSONDataResponse, error)
	Get(ctx context.Context, clientID, transferID string) (*models.JSONDataRecord, error)
	List(ctx context.Context, clientID string) ([]string, error)
}

type jsonDataIngestionService struct {
	store    stores.JSONDataStore
	validate *validators.Validate
	now      func() time.Time
}

func NewJSONDataIngestionService(store stores.JSONDataStore) JSONDataIngestionService {
	return &jsonDataIngestionService{
		store:    store,
		validate: validators.NewJSON(),
		now:      time.Now,
	}
}

func (s *jsonDataIngestionService) Ingest(ctx context.Context, idempotencyKey string, contentType string, r io.Reader) (*models.JSONDataResponse, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting json data with idempotency key: %s, content type: %s", idempotencyKey, contentType)

	request, size, err := s.parseRequest(contentType, r)
	if err != nil {
		metricJSONDataIngestedTotal.WithLabelValues(err.Code).Inc()
		return nil, err
	}

	ref := transferRef{ClientID: request.ClientID, TransferID: strings.TrimSpace(idempotencyKey)}
	if err := s.validate.Struct(ref); err != nil {
		svcErr := errValidationFailed("invalid idempotency key: "+strings.Join(validators.Describe(err), ", "), err)
		metricJSONDataIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}
	received := s.now()
	if ref.TransferID == "" {
		ref.TransferID = ulid.NewULIDAt(received)
	}

	receivedAt := received.Unix()
	record := &models.JSONDataRecord{
		TransferID:  ref.TransferID,
		ReceivedAt:  receivedAt,
		Request:     *request,
		StoredBytes: size,
	}

	if err := s.store.Put(ctx, record); err != nil {
		if errors.Is(err, stores.ErrJSONDataAlreadyExist) {
			svcErr := errTransferAlreadyProcessed(err)
			metricJSONDataIngestedTotal.WithLabelValues(svcErr.Code).Inc()
			return nil, svcErr
		}
		svcErr := errInternalJSONDataStoreFailed(err)
		metricJSONDataIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	metricJSONDataIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricJSONDataIngestedBytes.Add(float64(size))
	logger.Info().
		Str("client_id", request.ClientID).
		Str("transfer_id", ref.TransferID).
		Str("data_type", request.DataType).
		Int64("stored_bytes", size).
		Msg("json data transfer stored")

	return &models.JSONDataResponse{
		Received:    true,
		ProcessedAt: receivedAt,
		ClientID:    request.ClientID,
		FileSize:    request.FileSize,
		Message:     messageReceived,
		TransferID:  ref.TransferID,
	}, nil
}

func (s *jsonDataIngestionService) Get(ctx context.Context, clientID, transferID string) (*models.JSONDataRecord, error) {
	ref := transferRef{ClientID: strings.TrimSpace(clientID), TransferID: strings.TrimSpace(transferID)}
	if ref.TransferID == "" {
		return nil, errValidationFailed("transfer_id is required", nil)
	}
	if err := s.validate.Struct(ref); err != nil {
		return nil, errValidationFailed("invalid parameters: "+strings.Join(validators.Describe(err), ", "), err)
	}

	record, err := s.store.Get(ctx, ref.ClientID, ref.TransferID)
	if err != nil {
		if errors.Is(err, stores.ErrJSONDataNotFound) {
			return nil, errTransferNotFound()
		}
		return nil, errInternalJSONDataStoreFailed(err)
	}
	return record, nil
}

func (s *jsonDataIngestionService) List(ctx context.Context, clientID string) ([]string, error) {
	ref := transferRef{ClientID: strings.TrimSpace(clientID)}
	if err := s.validate.Struct(ref); err != nil {
		return nil, errValidationFailed("invalid parameters: "+strings.Join(validators.Describe(err), ", "), err)
	}

	transferIDs, err := s.store.ListTransferIDs(ctx, ref.ClientID)
	if err != nil {
		return nil, errInternalJSONDataStoreFailed(err)
	}
	return transferIDs, nil
}

func (s *jsonDataIngestionService) parseRequest(contentType string, r io.Reader) (*models.JSONDataRequest, int64, *svcerrors.ServiceError) {
	if !strings.Contains(strings.ToLower(contentType), FormatJSON) {
		return nil, 0, errValidationFailed(fmt.Sprintf("unsupported content type: %q", contentType), nil)
	}
	if r == nil {
		return nil, 0, errValidationFailed("empty request body", nil)
	}

	buf, err := io.ReadAll(io.LimitReader(r, maxBodyBytes+1))
	if err != nil {
		return nil, 0, errValidationFailed("failed to read request body", err)
	}
	if len(buf) > maxBodyBytes {
		return nil, 0, errValidationFailed("request too large: must be <= 2MB", nil)
	}
	if len(buf) == 0 {
		return nil, 0, errValidationFailed("empty request body", nil)
	}

	var request models.JSONDataRequest
	if err := json.Unmarshal(buf, &request); err != nil {
		return nil, 0, errValidationFailed("invalid json", err)
	}
	request.ClientID = strings.TrimSpace(request.ClientID)
	request.DataType = strings.TrimSpace(request.DataType)

	if err := s.validate.Struct(request); err != nil {
		return nil, 0, errValidationFailed("invalid request: "+strings.Join(validators.Describe(err), ", "), err)
	}
	return &request, int64(len(buf)), nil
}
