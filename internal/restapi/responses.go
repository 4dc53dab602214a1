package restapi

import (
	"encoding/json"
	"net/http"

	"borgarlina.gagnavist.is/internal/models"

	"github.com/paulmach/orb/geojson"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	setJSONResponseType(&w)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}

// sendGeoJSON writes a feature collection directly, without the response
// envelope, so map clients can feed it straight to their layer sources.
func (api *RestAPI) sendGeoJSON(w http.ResponseWriter, r *http.Request, fc *geojson.FeatureCollection) {
	w.Header().Set("Content-Type", "application/geo+json")
	err := json.NewEncoder(w).Encode(fc)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	setJSONResponseType(&w)
	w.WriteHeader(http.StatusNotFound)

	response := models.ResponseModel{
		Code:        http.StatusNotFound,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "resource not found",
		Version:     2,
	}

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}
