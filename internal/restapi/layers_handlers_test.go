package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCitylineLayerHandler(t *testing.T) {
	api := createTestApi(t)
	resp, fc := retrieveLayer(t, api, "/api/map/layers/cityline/2025.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/geo+json", resp.Header.Get("Content-Type"))

	// Two lines plus five station markers.
	assert.Len(t, fc.Features, 7)

	lines := 0
	for _, f := range fc.Features {
		if f.Properties.MustString("type") == "line" {
			lines++
		}
	}
	assert.Equal(t, 2, lines)
}

func TestSmallAreasLayerHandler(t *testing.T) {
	api := createTestApi(t)
	resp, fc := retrieveLayer(t, api, "/api/map/layers/small-areas.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, fc.Features, 3)
	assert.Equal(t, "0101", fc.Features[0].Properties.MustString("smsv"))
}

func TestDensityLayerHandler(t *testing.T) {
	api := createTestApi(t)
	resp, fc := retrieveLayer(t, api, "/api/map/layers/density.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, fc.Features, 3)

	for _, f := range fc.Features {
		assert.NotEmpty(t, f.Properties.MustString("fill"))
	}

	legend, ok := fc.ExtraMembers["density"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 3.0, legend["count"])
}

func TestCoverageLayerHandler(t *testing.T) {
	api := createTestApi(t)
	resp, fc := retrieveLayer(t, api, "/api/map/layers/coverage/2025.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, fc.Features, 5)

	byName := map[string]int{}
	for i, f := range fc.Features {
		byName[f.Properties.MustString("name")] = i
	}

	bsi := fc.Features[byName["BSÍ"]].Properties
	assert.Equal(t, 710.0, bsi["population"])
	assert.Equal(t, 2.0, bsi["affected_areas"])

	assert.Equal(t, 400.0, fc.ExtraMembers["radius_m"])
}

func TestSchoolsLayerHandler(t *testing.T) {
	api := createTestApi(t)
	resp, fc := retrieveLayer(t, api, "/api/map/layers/schools.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, fc.Features, 3)

	names := make([]string, 0, len(fc.Features))
	for _, f := range fc.Features {
		names = append(names, f.Properties.MustString("name"))
	}
	assert.Contains(t, names, "Austurbæjarskóli")
}

func TestStraetoLayerHandlerWithoutFeed(t *testing.T) {
	// No GTFS source is configured in the test fixture, so the Stræto
	// layers report not found.
	api := createTestApi(t)
	server := serveRaw(t, api)
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/map/layers/straeto.json?key=TEST")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/map/layers/straeto-routes.json?key=TEST")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
