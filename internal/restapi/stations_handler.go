package restapi

import (
	"net/http"

	"borgarlina.gagnavist.is/internal/models"
)

// stationsHandler lists the cityline stations of a scenario year.
func (api *RestAPI) stationsHandler(w http.ResponseWriter, r *http.Request) {
	year, fieldErrors := api.resolveYear(r)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	stations, err := api.Loader.Cityline(year)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	scenario := api.Lines.Scenario(year)
	response := models.NewListResponse(stationModels(stations), scenarioReferences(scenario, stations))
	api.sendResponse(w, r, response)
}
