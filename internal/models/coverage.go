package models

// CoverageAreaModel is one small area reached by a station, with the share
// of its surface inside the query radius.
type CoverageAreaModel struct {
	ID              string  `json:"id"`
	Label           string  `json:"label"`
	CoveragePercent float64 `json:"coveragePercent"`
}

// StudentGroupModel reports one school-age cohort around a station.
type StudentGroupModel struct {
	Total        int64   `json:"total"`
	WithinRadius float64 `json:"withinRadius"`
}

// StationCoverageModel is the entry payload of the station coverage
// endpoint.
type StationCoverageModel struct {
	Station           StationModel                 `json:"station"`
	RadiusMeters      float64                      `json:"radiusMeters"`
	TotalPopulation   int64                        `json:"totalPopulation"`
	PopulationDensity float64                      `json:"populationDensity"`
	AffectedAreas     int                          `json:"affectedAreas"`
	AgeDistribution   map[string]int64             `json:"ageDistribution"`
	AgePercentages    map[string]float64           `json:"agePercentages"`
	Students          map[string]StudentGroupModel `json:"students"`
	Areas             []CoverageAreaModel          `json:"areas"`
}

// NetworkCoverageModel is the entry payload of the network coverage
// endpoint.
type NetworkCoverageModel struct {
	Year               string   `json:"year"`
	RadiusMeters       float64  `json:"radiusMeters"`
	TotalAreas         int      `json:"totalAreas"`
	CoveredAreas       int      `json:"coveredAreas"`
	CoveragePercentage float64  `json:"coveragePercentage"`
	AffectedAreaIDs    []string `json:"affectedAreaIds"`
}

// LineModel is the entry payload of the line metrics endpoint.
type LineModel struct {
	Year            string           `json:"year"`
	Color           string           `json:"color"`
	Hex             string           `json:"hex"`
	Stations        []StationModel   `json:"stations"`
	TotalPopulation int64            `json:"totalPopulation"`
	AgeDistribution map[string]int64 `json:"ageDistribution"`
	AffectedAreaIDs []string         `json:"affectedAreaIds"`
	TotalCoverage   int              `json:"totalCoverage"`
}
