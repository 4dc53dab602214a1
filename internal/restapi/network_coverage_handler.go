package restapi

import (
	"net/http"

	"borgarlina.gagnavist.is/internal/models"

	"github.com/paulmach/orb"
)

// networkCoverageHandler reports how much of the small-area grid a
// scenario year's full station set reaches.
func (api *RestAPI) networkCoverageHandler(w http.ResponseWriter, r *http.Request) {
	year, fieldErrors := api.resolveYear(r)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	radius, fieldErrors := api.parseRadius(r)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	stations, err := api.Loader.Cityline(year)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	points := make([]orb.Point, 0, len(stations))
	for _, station := range stations {
		points = append(points, station.Point)
	}

	network, err := api.Engine.NetworkCoverage(points, radius)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := models.NetworkCoverageModel{
		Year:               year,
		RadiusMeters:       radius,
		TotalAreas:         network.TotalAreas,
		CoveredAreas:       network.CoveredAreas,
		CoveragePercentage: network.CoveragePercentage,
		AffectedAreaIDs:    network.AffectedAreaIDs,
	}

	api.sendResponse(w, r, models.NewEntryResponse(entry, scenarioReferences(api.Lines.Scenario(year), stations)))
}
