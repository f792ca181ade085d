package http

import (
	"net/http"

	"traffic-dashboard/internal/models"
	"traffic-dashboard/internal/queries"
)

const (
	paramFromTs   = "from_ts"
	paramToTs     = "to_ts"
	paramTs       = "ts"
	paramClientIP = "client_ip"
)

// SummaryResponse wraps the bins so the payload can grow without breaking clients.
type SummaryResponse struct {
	Bins []models.SummaryBin `json:"bins"`
}

type healthHandler struct {
	queryService queries.TrafficQueryService
}

func NewHealthHandler(queryService queries.TrafficQueryService) AppHttpHandler {
	return &healthHandler{queryService: queryService}
}

// Handle processes GET /api/health requests.
func (h *healthHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(w, http.StatusOK, h.queryService.Health(r.Context()))
}

type summaryHandler struct {
	queryService queries.TrafficQueryService
}

func NewSummaryHandler(queryService queries.TrafficQueryService) AppHttpHandler {
	return &summaryHandler{queryService: queryService}
}

// Handle processes GET /api/summary?from_ts=&to_ts= requests.
func (h *summaryHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	bins, err := h.queryService.Summary(r.Context(), queryParam(r, paramFromTs), queryParam(r, paramToTs))
	if err != nil {
		return err
	}
	if bins == nil {
		bins = []models.SummaryBin{}
	}
	return writeJSON(w, http.StatusOK, SummaryResponse{Bins: bins})
}

type drilldownHandler struct {
	queryService queries.TrafficQueryService
}

func NewDrilldownHandler(queryService queries.TrafficQueryService) AppHttpHandler {
	return &drilldownHandler{queryService: queryService}
}

// Handle processes GET /api/drilldown?ts=&client_ip= requests.
func (h *drilldownHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	drilldown, err := h.queryService.Drilldown(r.Context(), queryParam(r, paramTs), queryParam(r, paramClientIP))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, drilldown)
}
