package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// SetRoutes registers every endpoint on the router. All /api routes
// require a valid key query parameter; the health check does not.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/health", http.HandlerFunc(api.healthHandler))

	router.Handler(http.MethodGet, "/api/current-time.json", validateAPIKey(api, api.currentTimeHandler))

	router.Handler(http.MethodGet, "/api/stations/:year", validateAPIKey(api, api.stationsHandler))
	router.Handler(http.MethodGet, "/api/stations/:year/coverage.json", validateAPIKey(api, api.stationCoverageHandler))
	router.Handler(http.MethodGet, "/api/stations/:year/connections.json", validateAPIKey(api, api.stationConnectionsHandler))
	router.Handler(http.MethodGet, "/api/lines/:year/:color", validateAPIKey(api, api.lineHandler))
	router.Handler(http.MethodGet, "/api/network-coverage/:year", validateAPIKey(api, api.networkCoverageHandler))

	router.Handler(http.MethodGet, "/api/map/layers/cityline/:year", validateAPIKey(api, api.citylineLayerHandler))
	router.Handler(http.MethodGet, "/api/map/layers/small-areas.json", validateAPIKey(api, api.smallAreasLayerHandler))
	router.Handler(http.MethodGet, "/api/map/layers/density.json", validateAPIKey(api, api.densityLayerHandler))
	router.Handler(http.MethodGet, "/api/map/layers/coverage/:year", validateAPIKey(api, api.coverageLayerHandler))
	router.Handler(http.MethodGet, "/api/map/layers/schools.json", validateAPIKey(api, api.schoolsLayerHandler))
	router.Handler(http.MethodGet, "/api/map/layers/straeto.json", validateAPIKey(api, api.straetoLayerHandler))
	router.Handler(http.MethodGet, "/api/map/layers/straeto-routes.json", validateAPIKey(api, api.straetoRoutesLayerHandler))
}

// Routes builds the complete handler chain around the router: security
// headers, compression, rate limiting and request logging.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)

	var handler http.Handler = router
	handler = api.rateLimiter(handler)
	handler = CompressionMiddleware(handler)
	handler = api.WithSecurityHeaders(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	return handler
}
