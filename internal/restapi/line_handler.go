package restapi

import (
	"net/http"

	"borgarlina.gagnavist.is/internal/config"
	"borgarlina.gagnavist.is/internal/dataset"
	"borgarlina.gagnavist.is/internal/models"
	"borgarlina.gagnavist.is/internal/utils"

	"github.com/paulmach/orb"
)

// lineHandler aggregates coverage statistics over every station of one
// line in a scenario year.
func (api *RestAPI) lineHandler(w http.ResponseWriter, r *http.Request) {
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

	color := utils.ExtractPathParam(r, "color")
	line, ok := api.Lines.Line(year, color)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	stations, err := api.Loader.Cityline(year)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	lineStations := stationsOnLine(stations, line)
	points := make([]orb.Point, 0, len(lineStations))
	for _, station := range lineStations {
		points = append(points, station.Point)
	}

	metrics, err := api.Engine.LineMetrics(points, radius)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := models.LineModel{
		Year:            year,
		Color:           line.Color,
		Hex:             config.LineColorHex[line.Color],
		Stations:        stationModels(lineStations),
		TotalPopulation: metrics.TotalPopulation,
		AgeDistribution: metrics.AgeDistribution,
		AffectedAreaIDs: metrics.AffectedAreaIDs,
		TotalCoverage:   metrics.TotalCoverage,
	}

	api.sendResponse(w, r, models.NewEntryResponse(entry, scenarioReferences(api.Lines.Scenario(year), lineStations)))
}

// stationsOnLine filters the scenario's stations to those the line serves,
// in the line's configured order.
func stationsOnLine(stations []dataset.Station, line config.LineConfig) []dataset.Station {
	byName := make(map[string]dataset.Station, len(stations))
	for _, station := range stations {
		byName[station.Name] = station
	}

	result := make([]dataset.Station, 0, len(line.Stations))
	for _, name := range line.Stations {
		if station, ok := byName[name]; ok {
			result = append(result, station)
		}
	}
	return result
}
