package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetworkCoverageHandlerEndToEnd(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/network-coverage/2025.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)

	entry := model.Data.(map[string]interface{})["entry"].(map[string]interface{})
	assert.Equal(t, "2025", entry["year"])
	assert.Equal(t, 400.0, entry["radiusMeters"])
	assert.Equal(t, 3.0, entry["totalAreas"])
	assert.Equal(t, 2.0, entry["coveredAreas"])
	assert.InDelta(t, 66.67, entry["coveragePercentage"], 0.01)
	assert.Equal(t, []interface{}{"0101", "0102"}, entry["affectedAreaIds"])
}

func TestNetworkCoverageHandlerTinyRadius(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/network-coverage/2025.json?key=TEST&radius=10")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := model.Data.(map[string]interface{})["entry"].(map[string]interface{})
	assert.Equal(t, 1.0, entry["coveredAreas"])
}
