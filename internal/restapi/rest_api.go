// Package restapi exposes the Borgarlína coverage analysis over HTTP as a
// JSON and GeoJSON API.
package restapi

import (
	"net/http"
	"time"

	"borgarlina.gagnavist.is/internal/app"
)

// DefaultRadiusMeters is the walkshed radius used when a request does not
// set one.
const DefaultRadiusMeters = 400.0

type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}
