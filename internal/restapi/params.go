package restapi

import (
	"net/http"

	"borgarlina.gagnavist.is/internal/config"
	"borgarlina.gagnavist.is/internal/dataset"
	"borgarlina.gagnavist.is/internal/models"
	"borgarlina.gagnavist.is/internal/utils"
)

// resolveYear validates the year path parameter and maps years without a
// configured scenario to the default year.
func (api *RestAPI) resolveYear(r *http.Request) (string, map[string][]string) {
	year := utils.ExtractPathParam(r, "year")
	if err := utils.ValidateYear(year); err != nil {
		return "", map[string][]string{"year": {err.Error()}}
	}
	return api.Lines.Scenario(year).Year, nil
}

// parseRadius reads the radius query parameter, applying the default
// walkshed radius when absent.
func (api *RestAPI) parseRadius(r *http.Request) (float64, map[string][]string) {
	radius, fieldErrors := utils.ParseFloatParam(r.URL.Query(), "radius", nil)
	if len(fieldErrors) > 0 {
		return 0, fieldErrors
	}

	if radius == 0 {
		radius = DefaultRadiusMeters
	}
	if err := utils.ValidateRadius(radius); err != nil {
		return 0, map[string][]string{"radius": {err.Error()}}
	}
	return radius, nil
}

func stationModels(stations []dataset.Station) []models.StationModel {
	result := make([]models.StationModel, 0, len(stations))
	for _, station := range stations {
		result = append(result, models.NewStationModel(
			station.Name,
			station.LineColors(),
			station.Point.Lat(),
			station.Point.Lon(),
		))
	}
	return result
}

// scenarioReferences builds the references block for a year's scenario.
func scenarioReferences(scenario config.ScenarioConfig, stations []dataset.Station) models.ReferencesModel {
	references := models.NewEmptyReferences()
	for _, line := range scenario.Lines {
		references.Lines = append(references.Lines, models.LineReference{
			Color: line.Color,
			Hex:   config.LineColorHex[line.Color],
			Year:  scenario.Year,
		})
	}
	for _, station := range stationModels(stations) {
		references.Stations = append(references.Stations, models.StationReferenceFrom(station))
	}
	return references
}
