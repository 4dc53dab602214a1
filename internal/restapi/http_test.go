package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"borgarlina.gagnavist.is/internal/app"
	"borgarlina.gagnavist.is/internal/appconf"
	"borgarlina.gagnavist.is/internal/config"
	"borgarlina.gagnavist.is/internal/coverage"
	"borgarlina.gagnavist.is/internal/dataset"
	"borgarlina.gagnavist.is/internal/logging"
	"borgarlina.gagnavist.is/internal/models"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/require"
)

// createTestApi builds a RestAPI over the testdata fixtures.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	loader := dataset.NewLoader(filepath.Join("..", "..", "testdata"))

	application := &app.Application{
		Config: app.Config{
			Env:       appconf.Test,
			ApiKeys:   []string{"TEST"},
			RateLimit: 100,
			DataDir:   filepath.Join("..", "..", "testdata"),
		},
		Logger: logging.NewStructuredLogger(io.Discard, slog.LevelError),
		Loader: loader,
		Lines:  config.DefaultLines(),
		Engine: coverage.NewEngine(loader, loader),
	}

	return NewRestAPI(application)
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveRaw(t *testing.T, api *RestAPI) *httptest.Server {
	t.Helper()
	return httptest.NewServer(api.Routes())
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	server := httptest.NewServer(api.Routes())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// retrieveLayer fetches a GeoJSON endpoint and decodes the feature
// collection.
func retrieveLayer(t *testing.T, api *RestAPI, endpoint string) (*http.Response, *geojson.FeatureCollection) {
	server := httptest.NewServer(api.Routes())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	fc, err := geojson.UnmarshalFeatureCollection(body)
	require.NoError(t, err)

	return resp, fc
}
