package http

import (
	"net/http"

	"traffic-dashboard/internal/ingestors"

	"github.com/go-chi/chi/v5"
)

const (
	urlParamClientID   = "clientID"
	urlParamTransferID = "transferID"
)

// TransferListResponse lists the stored transfers of one client.
type TransferListResponse struct {
	ClientID    string   `json:"client_id"`
	TransferIDs []string `json:"transfer_ids"`
}

type jsonDataHandler struct {
	ingestionService ingestors.JSONDataIngestionService
}

func newJSONDataHandler(ingestionService ingestors.JSONDataIngestionService) *jsonDataHandler {
	return &jsonDataHandler{ingestionService: ingestionService}
}

// Upload processes POST /api/json-data requests.
func (h *jsonDataHandler) Upload(w http.ResponseWriter, r *http.Request) error {
	response, err := h.ingestionService.Ingest(r.Context(), idempotencyKey(r), contentType(r), r.Body)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusCreated, response)
}

// List processes GET /api/json-data/{clientID} requests.
func (h *jsonDataHandler) List(w http.ResponseWriter, r *http.Request) error {
	clientID := chi.URLParam(r, urlParamClientID)
	transferIDs, err := h.ingestionService.List(r.Context(), clientID)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, TransferListResponse{ClientID: clientID, TransferIDs: transferIDs})
}

// Get processes GET /api/json-data/{clientID}/{transferID} requests.
func (h *jsonDataHandler) Get(w http.ResponseWriter, r *http.Request) error {
	record, err := h.ingestionService.Get(r.Context(), chi.URLParam(r, urlParamClientID), chi.URLParam(r, urlParamTransferID))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, record)
}
