package restapi

import (
	"compress/gzip"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityHeaders(t *testing.T) {
	api := createTestApi(t)
	server := serveRaw(t, api)
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/current-time.json?key=TEST")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.NotEmpty(t, resp.Header.Get("Strict-Transport-Security"))
	assert.NotEmpty(t, resp.Header.Get("Content-Security-Policy"))
	assert.Equal(t, "strict-origin-when-cross-origin", resp.Header.Get("Referrer-Policy"))
}

func TestCORSHeadersForBrowserClients(t *testing.T) {
	api := createTestApi(t)
	server := serveRaw(t, api)
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/current-time.json?key=TEST", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://kort.gagnavist.is")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "GET")
}

func TestPreflightRequestShortCircuits(t *testing.T) {
	api := createTestApi(t)
	server := serveRaw(t, api)
	defer server.Close()

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/api/stations/2025.json", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://kort.gagnavist.is")
	req.Header.Set("Access-Control-Request-Method", "GET")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	// Preflight requests are answered before API key validation runs.
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestResponseCompression(t *testing.T) {
	api := createTestApi(t)
	server := serveRaw(t, api)
	defer server.Close()

	// The coverage layer is comfortably over the compression threshold.
	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/map/layers/coverage/2025.json?key=TEST", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")

	transport := &http.Transport{DisableCompression: true}
	resp, err := (&http.Client{Transport: transport}).Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

	gz, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Contains(t, string(body), "FeatureCollection")
}

func TestSmallResponsesAreNotCompressed(t *testing.T) {
	api := createTestApi(t)
	server := serveRaw(t, api)
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")

	transport := &http.Transport{DisableCompression: true}
	resp, err := (&http.Client{Transport: transport}).Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Empty(t, resp.Header.Get("Content-Encoding"),
		"responses under the size threshold should not be compressed")
}

func TestRequestIDHeader(t *testing.T) {
	api := createTestApi(t)
	server := serveRaw(t, api)
	defer server.Close()

	first, err := http.Get(server.URL + "/api/current-time.json?key=TEST")
	require.NoError(t, err)
	_ = first.Body.Close()

	second, err := http.Get(server.URL + "/api/current-time.json?key=TEST")
	require.NoError(t, err)
	_ = second.Body.Close()

	assert.NotEmpty(t, first.Header.Get("X-Request-Id"))
	assert.NotEmpty(t, second.Header.Get("X-Request-Id"))
	assert.NotEqual(t, first.Header.Get("X-Request-Id"), second.Header.Get("X-Request-Id"),
		"each request gets its own id")
}
