package http

import (
	"net/http"

	"traffic-dashboard/internal/ingestors"
	"traffic-dashboard/internal/queries"
	"traffic-dashboard/internal/shared/loggers"
	"traffic-dashboard/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(queryService queries.TrafficQueryService, ingestionService ingestors.JSONDataIngestionService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	jsonData := newJSONDataHandler(ingestionService)

	router.Route("/api", func(api chi.Router) {
		api.Get("/health", errorHandlingAdapter(NewHealthHandler(queryService)))
		api.Get("/summary", errorHandlingAdapter(NewSummaryHandler(queryService)))
		api.Get("/drilldown", errorHandlingAdapter(NewDrilldownHandler(queryService)))

		api.Post("/json-data", errorHandlingAdapter(AppHandlerFunc(jsonData.Upload)))
		api.Get("/json-data/{clientID}", errorHandlingAdapter(AppHandlerFunc(jsonData.List)))
		api.Get("/json-data/{clientID}/{transferID}", errorHandlingAdapter(AppHandlerFunc(jsonData.Get)))
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
