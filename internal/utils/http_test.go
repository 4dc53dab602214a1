package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func requestWithParams(params httprouter.Params) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(r.Context(), httprouter.ParamsKey, params)
	return r.WithContext(ctx)
}

func TestExtractPathParam(t *testing.T) {
	r := requestWithParams(httprouter.Params{{Key: "year", Value: "2025.json"}})
	assert.Equal(t, "2025", ExtractPathParam(r, "year"))

	r = requestWithParams(httprouter.Params{{Key: "year", Value: "2030"}})
	assert.Equal(t, "2030", ExtractPathParam(r, "year"))

	r = requestWithParams(httprouter.Params{})
	assert.Equal(t, "", ExtractPathParam(r, "year"))
}

func TestParseFloatParam(t *testing.T) {
	params := url.Values{"radius": {"400"}}

	radius, fieldErrors := ParseFloatParam(params, "radius", nil)
	assert.Equal(t, 400.0, radius)
	assert.Empty(t, fieldErrors)

	// Missing keys default to zero without an error.
	value, fieldErrors := ParseFloatParam(params, "missing", fieldErrors)
	assert.Zero(t, value)
	assert.Empty(t, fieldErrors)

	params.Set("radius", "four hundred")
	_, fieldErrors = ParseFloatParam(params, "radius", fieldErrors)
	assert.Contains(t, fieldErrors, "radius")
}
