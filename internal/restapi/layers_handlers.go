package restapi

import (
	"net/http"

	"borgarlina.gagnavist.is/internal/coverage"
	"borgarlina.gagnavist.is/internal/layers"
)

// citylineLayerHandler serves a scenario year's lines and stations as a
// GeoJSON layer.
func (api *RestAPI) citylineLayerHandler(w http.ResponseWriter, r *http.Request) {
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

	api.sendGeoJSON(w, r, layers.Cityline(api.Lines.Scenario(year), stations))
}

func (api *RestAPI) smallAreasLayerHandler(w http.ResponseWriter, r *http.Request) {
	areas, err := api.Loader.SmallAreas()
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendGeoJSON(w, r, layers.AreaOutlines(areas))
}

func (api *RestAPI) densityLayerHandler(w http.ResponseWriter, r *http.Request) {
	areas, err := api.Loader.SmallAreas()
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	densities, summary, err := api.Engine.AreaDensities()
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendGeoJSON(w, r, layers.DensityChoropleth(areas, densities, summary))
}

// coverageLayerHandler serves every station's catchment disc for a year,
// annotated with the population the disc reaches.
func (api *RestAPI) coverageLayerHandler(w http.ResponseWriter, r *http.Request) {
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

	stats := make(map[string]coverage.StationStats, len(stations))
	for _, station := range stations {
		stationStats, err := api.Engine.StationStatistics(station.Point, radius)
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		stats[station.Name] = stationStats
	}

	api.sendGeoJSON(w, r, layers.CoverageCircles(stations, radius, stats))
}

func (api *RestAPI) schoolsLayerHandler(w http.ResponseWriter, r *http.Request) {
	schools, err := api.Loader.Schools()
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendGeoJSON(w, r, layers.SchoolMarkers(schools))
}

func (api *RestAPI) straetoLayerHandler(w http.ResponseWriter, r *http.Request) {
	if api.Transit == nil {
		api.sendNotFound(w, r)
		return
	}

	api.sendGeoJSON(w, r, layers.StraetoStops(api.Transit.GetStops(), api.Transit.RidershipRank))
}

func (api *RestAPI) straetoRoutesLayerHandler(w http.ResponseWriter, r *http.Request) {
	if api.Transit == nil {
		api.sendNotFound(w, r)
		return
	}

	api.sendGeoJSON(w, r, layers.StraetoRoutes(api.Transit.GetShapes()))
}
