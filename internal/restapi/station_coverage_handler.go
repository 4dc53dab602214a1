package restapi

import (
	"net/http"

	"borgarlina.gagnavist.is/internal/coverage"
	"borgarlina.gagnavist.is/internal/dataset"
	"borgarlina.gagnavist.is/internal/models"
	"borgarlina.gagnavist.is/internal/utils"
)

// stationCoverageHandler reports the small areas and population a single
// station reaches within the requested radius.
func (api *RestAPI) stationCoverageHandler(w http.ResponseWriter, r *http.Request) {
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

	name, err := utils.ValidateAndSanitizeQuery(r.URL.Query().Get("station"))
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"station": {err.Error()}})
		return
	}
	if name == "" {
		api.validationErrorResponse(w, r, map[string][]string{"station": {"station is required"}})
		return
	}

	stations, err := api.Loader.Cityline(year)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	var station *dataset.Station
	for i := range stations {
		if stations[i].Name == name {
			station = &stations[i]
			break
		}
	}
	if station == nil {
		api.sendNotFound(w, r)
		return
	}

	covered, err := api.Engine.StationCoverage(station.Point, radius)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	stats, err := api.Engine.StationStatistics(station.Point, radius)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	students, err := api.Engine.StudentStatistics(station.Point, radius)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := models.StationCoverageModel{
		Station: models.NewStationModel(
			station.Name,
			station.LineColors(),
			station.Point.Lat(),
			station.Point.Lon(),
		),
		RadiusMeters:      radius,
		TotalPopulation:   stats.TotalPopulation,
		PopulationDensity: stats.PopulationDensity,
		AffectedAreas:     stats.AffectedAreas,
		AgeDistribution:   stats.AgeDistribution,
		AgePercentages:    stats.AgePercentages,
		Students:          studentModels(students),
		Areas:             coverageAreaModels(covered),
	}

	references := models.NewEmptyReferences()
	for _, area := range covered {
		references.Areas = append(references.Areas, models.AreaReference{ID: area.ID, Label: area.Label})
	}

	api.sendResponse(w, r, models.NewEntryResponse(entry, references))
}

func studentModels(students map[string]coverage.StudentGroupStats) map[string]models.StudentGroupModel {
	result := make(map[string]models.StudentGroupModel, len(students))
	for group, stats := range students {
		result[group] = models.StudentGroupModel{
			Total:        stats.Total,
			WithinRadius: stats.WithinRadius,
		}
	}
	return result
}

func coverageAreaModels(covered []coverage.CoveredArea) []models.CoverageAreaModel {
	result := make([]models.CoverageAreaModel, 0, len(covered))
	for _, area := range covered {
		result = append(result, models.CoverageAreaModel{
			ID:              area.ID,
			Label:           area.Label,
			CoveragePercent: area.CoveragePercent,
		})
	}
	return result
}
