package queries

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"traffic-dashboard/internal/aggregators"
	"traffic-dashboard/internal/models"
	"traffic-dashboard/internal/shared/loggers"
	"traffic-dashboard/internal/shared/validators"
)

// drilldownQuery is validated before the timestamp is parsed.
type drilldownQuery struct {
	Ts       string `json:"ts" validate:"required"`
	ClientIP string `json:"client_ip" validate:"required"`
}

// TrafficQueryService turns raw query-string values into aggregator reads.
// Parameters arrive as strings so that parse failures are reported as
// QRY_1000 rather than left to the HTTP layer.
//
//go:generate mockgen -source=traffic_query_service.go -destination=./mocks/traffic_query_service_mock.go -package=mocks
type TrafficQueryService interface {
	// Summary accepts optional integer bounds; empty strings mean "use the default".
	Summary(ctx context.Context, fromTs, toTs string) ([]models.SummaryBin, error)
	Drilldown(ctx context.Context, ts, clientIP string) (*models.Drilldown, error)
	Health(ctx context.Context) *models.HealthStatus
}

type trafficQueryService struct {
	aggregator aggregators.TrafficAggregator
	validate   *validators.Validate
	now        func() time.Time
}

func NewTrafficQueryService(aggregator aggregators.TrafficAggregator) TrafficQueryService {
	return &trafficQueryService{
		aggregator: aggregator,
		validate:   validators.NewJSON(),
		now:        time.Now,
	}
}

func (s *trafficQueryService) Summary(ctx context.Context, fromTs, toTs string) ([]models.SummaryBin, error) {
	from, err := parseOptionalTs("from_ts", fromTs)
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalTs("to_ts", toTs)
	if err != nil {
		return nil, err
	}

	bins := s.aggregator.Summary(ctx, from, to)
	loggers.Ctx(ctx).Debug().Int("bins", len(bins)).Msg("summary served")
	return bins, nil
}

func (s *trafficQueryService) Drilldown(ctx context.Context, ts, clientIP string) (*models.Drilldown, error) {
	query := drilldownQuery{Ts: strings.TrimSpace(ts), ClientIP: strings.TrimSpace(clientIP)}
	if err := s.validate.Struct(query); err != nil {
		return nil, errInvalidQuery("invalid parameters: "+strings.Join(validators.Describe(err), ", "), err)
	}

	windowKey, err := strconv.ParseInt(query.Ts, 10, 64)
	if err != nil {
		return nil, errInvalidQuery(fmt.Sprintf("ts must be an integer, got %q", query.Ts), err)
	}

	drilldown, ok := s.aggregator.Drilldown(ctx, windowKey, query.ClientIP)
	if !ok {
		return nil, errBinNotFound()
	}
	return drilldown, nil
}

func (s *trafficQueryService) Health(_ context.Context) *models.HealthStatus {
	return &models.HealthStatus{
		OK:         true,
		Now:        s.now().Unix(),
		StoreStats: s.aggregator.Stats(),
	}
}

func parseOptionalTs(name, raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errInvalidQuery(fmt.Sprintf("%s must be an integer, got %q", name, raw), err)
	}
	return &value, nil
}
