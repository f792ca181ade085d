package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"traffic-dashboard/internal/models"
	"traffic-dashboard/internal/shared/filestorages"
)

var (
	ErrJSONDataAlreadyExist = errors.New("json data transfer already exists")
	ErrJSONDataNotFound     = errors.New("json data transfer not found")
)

const jsonDataDir = "json-data"

// JSONDataStore keeps uploaded JSON documents, one file per transfer under
// json-data/<client_id>/<transfer_id>.json. Put is create-only: a second Put
// with the same transfer ID fails with ErrJSONDataAlreadyExist, which makes a
// retried upload carrying the same Idempotency-Key detectable.
//
//go:generate mockgen -source=json_data_store.go -destination=./mocks/json_data_store_mock.go -package=mocks
type JSONDataStore interface {
	Put(ctx context.Context, record *models.JSONDataRecord) error
	Get(ctx context.Context, clientID, transferID string) (*models.JSONDataRecord, error)
	// ListTransferIDs returns the transfer IDs stored for a client, sorted.
	ListTransferIDs(ctx context.Context, clientID string) ([]string, error)
}

type jsonDataStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewJSONDataStore(fileStorage filestorages.FileStorage) JSONDataStore {
	return &jsonDataStore{fileStorage: fileStorage, dir: jsonDataDir}
}

func (s *jsonDataStore) Put(ctx context.Context, record *models.JSONDataRecord) error {
	jsonData, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal json data record: %w", err)
	}

	_, err = s.fileStorage.Create(ctx, s.key(record.Request.ClientID, record.TransferID), bytes.NewReader(jsonData))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrJSONDataAlreadyExist
		}
		return fmt.Errorf("failed to put json data record: %w", err)
	}
	return nil
}

func (s *jsonDataStore) Get(ctx context.Context, clientID, transferID string) (*models.JSONDataRecord, error) {
	reader, err := s.fileStorage.Open(ctx, s.key(clientID, transferID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) || errors.Is(err, filestorages.ErrInvalidKey) {
			return nil, ErrJSONDataNotFound
		}
		return nil, fmt.Errorf("failed to open json data record: %w", err)
	}
	defer reader.Close()

	var record models.JSONDataRecord
	if err := json.NewDecoder(reader).Decode(&record); err != nil {
		return nil, fmt.Errorf("failed to decode json data record: %w", err)
	}
	return &record, nil
}

func (s *jsonDataStore) ListTransferIDs(ctx context.Context, clientID string) ([]string, error) {
	keys, err := s.fileStorage.List(ctx, path.Join(s.dir, clientID))
	if err != nil {
		if errors.Is(err, filestorages.ErrInvalidKey) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list json data records: %w", err)
	}

	transferIDs := make([]string, 0, len(keys))
	for _, key := range keys {
		name := path.Base(key)
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		transferIDs = append(transferIDs, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(transferIDs)
	return transferIDs, nil
}

func (s *jsonDataStore) key(clientID, transferID string) string {
	return fmt.Sprintf("%s/%s/%s.json", s.dir, clientID, transferID)
}
