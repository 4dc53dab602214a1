package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineHandlerEndToEnd(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/lines/2025/red.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)

	entry := model.Data.(map[string]interface{})["entry"].(map[string]interface{})
	assert.Equal(t, "2025", entry["year"])
	assert.Equal(t, "red", entry["color"])
	assert.NotEmpty(t, entry["hex"])

	// Only the stations present in the 2025 layout are served.
	stations := entry["stations"].([]interface{})
	require.Len(t, stations, 3)
	assert.Equal(t, "BSÍ", stations[0].(map[string]interface{})["name"])

	// Only BSÍ reaches populated areas in the fixtures.
	assert.Equal(t, 710.0, entry["totalPopulation"])
	assert.Equal(t, 2.0, entry["totalCoverage"])
	assert.Equal(t, []interface{}{"0101", "0102"}, entry["affectedAreaIds"])
}

func TestLineHandlerUnknownColor(t *testing.T) {
	// Purple only exists in the 2030 scenario.
	_, resp, _ := serveAndRetrieveEndpoint(t, "/api/lines/2025/purple.json?key=TEST")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLineHandlerPurpleIn2030(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/lines/2030/purple.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	entry := model.Data.(map[string]interface{})["entry"].(map[string]interface{})
	assert.Equal(t, "purple", entry["color"])
}
