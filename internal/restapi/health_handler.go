package restapi

import (
	"encoding/json"
	"net/http"
)

// healthHandler reports liveness. It deliberately avoids touching the
// datasets so a broken data directory does not fail the probe.
func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	setJSONResponseType(&w)
	status := map[string]interface{}{
		"status": "UP",
		"env":    api.Config.Env.String(),
	}
	if err := json.NewEncoder(w).Encode(status); err != nil {
		api.Logger.Error("failed to encode health response", "error", err)
	}
}
