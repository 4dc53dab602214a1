// Package coverage computes catchment statistics for proposed cityline
// stations: which small areas a station reaches, what share of each area
// falls inside the radius, and how many people that covers.
package coverage

import (
	"math"
	"sort"
	"sync"

	"borgarlina.gagnavist.is/internal/dataset"
	"borgarlina.gagnavist.is/internal/geo"

	"github.com/paulmach/orb"
)

// StudentAgeGroups are the school-age cohorts reported by the student
// statistics, in display order.
var StudentAgeGroups = []string{"10-14 ára", "15-19 ára", "20-24 ára"}

// AreaSource provides small-area geometry.
type AreaSource interface {
	SmallAreas() ([]dataset.SmallArea, error)
	AreasWithinRadius(point orb.Point, radiusMeters float64) ([]dataset.SmallArea, error)
}

// PopulationSource provides the population records.
type PopulationSource interface {
	Population() ([]dataset.PopulationRecord, error)
}

// CoveredArea is one small area reached by a station, with the share of
// its surface inside the station's radius.
type CoveredArea struct {
	ID              string
	Label           string
	CoveragePercent float64
}

// StationStats aggregates the population a station's radius reaches.
type StationStats struct {
	TotalPopulation   int64
	AgeDistribution   map[string]int64
	AgePercentages    map[string]float64
	AffectedAreas     int
	PopulationDensity float64 // people per km² of the catchment disc
}

// StudentGroupStats reports one school-age cohort: the cohort total across
// the affected areas' dataset and the coverage-weighted count inside the
// radius.
type StudentGroupStats struct {
	Total        int64
	WithinRadius float64
}

// LineMetrics aggregates coverage over all stations of one line.
type LineMetrics struct {
	TotalPopulation int64
	AgeDistribution map[string]int64
	AffectedAreaIDs []string
	TotalCoverage   int
}

// NetworkCoverage summarizes how much of the small-area grid a scenario's
// stations reach.
type NetworkCoverage struct {
	TotalAreas         int
	CoveredAreas       int
	CoveragePercentage float64
	AffectedAreaIDs    []string
}

// AreaDensity is the population density of one small area.
type AreaDensity struct {
	ID         string
	Label      string
	Population int64
	AreaKm2    float64
	Density    float64
}

// DensitySummary carries the distribution of area densities for choropleth
// legends.
type DensitySummary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Engine answers coverage queries against an area and population source.
// Population records are indexed by area on first use.
type Engine struct {
	areas      AreaSource
	population PopulationSource

	mu          sync.Mutex
	byArea      map[string][]dataset.PopulationRecord
	groupTotals map[string]int64
}

func NewEngine(areas AreaSource, population PopulationSource) *Engine {
	return &Engine{areas: areas, population: population}
}

// StationCoverage returns the small areas overlapping a circular buffer of
// radiusMeters around the station point, with per-area coverage percent.
func (e *Engine) StationCoverage(point orb.Point, radiusMeters float64) ([]CoveredArea, error) {
	affected, err := e.areas.AreasWithinRadius(point, radiusMeters)
	if err != nil {
		return nil, err
	}

	buffer := geo.Buffer(point, radiusMeters)
	covered := make([]CoveredArea, 0, len(affected))
	for _, area := range affected {
		total := geo.Area(area.Geometry)
		percent := 0.0
		if total > 0 {
			percent = geo.IntersectionArea(area.Geometry, buffer) / total * 100
			if percent > 100 {
				percent = 100
			}
		}
		covered = append(covered, CoveredArea{
			ID:              area.ID,
			Label:           area.Label,
			CoveragePercent: percent,
		})
	}
	return covered, nil
}

// StationStatistics aggregates population figures over the areas a station
// reaches. Density is people per km² of the full catchment disc.
func (e *Engine) StationStatistics(point orb.Point, radiusMeters float64) (StationStats, error) {
	affected, err := e.areas.AreasWithinRadius(point, radiusMeters)
	if err != nil {
		return StationStats{}, err
	}

	index, _, err := e.populationIndex()
	if err != nil {
		return StationStats{}, err
	}

	stats := StationStats{
		AgeDistribution: map[string]int64{},
		AgePercentages:  map[string]float64{},
		AffectedAreas:   len(affected),
	}

	for _, area := range affected {
		for _, record := range index[area.ID] {
			stats.TotalPopulation += record.Count
			stats.AgeDistribution[record.AgeGroup] += record.Count
		}
	}

	if len(affected) > 0 && radiusMeters > 0 {
		discKm2 := math.Pi * math.Pow(radiusMeters/1000, 2)
		stats.PopulationDensity = float64(stats.TotalPopulation) / discKm2
	}

	if stats.TotalPopulation > 0 {
		for group, count := range stats.AgeDistribution {
			stats.AgePercentages[group] = float64(count) / float64(stats.TotalPopulation) * 100
		}
	}

	return stats, nil
}

// StudentStatistics reports the school-age cohorts around a station. The
// within-radius count weights each area's cohort by the share of the area
// the radius covers.
func (e *Engine) StudentStatistics(point orb.Point, radiusMeters float64) (map[string]StudentGroupStats, error) {
	covered, err := e.StationCoverage(point, radiusMeters)
	if err != nil {
		return nil, err
	}

	index, totals, err := e.populationIndex()
	if err != nil {
		return nil, err
	}

	result := make(map[string]StudentGroupStats, len(StudentAgeGroups))
	for _, group := range StudentAgeGroups {
		result[group] = StudentGroupStats{Total: totals[group]}
	}

	for _, area := range covered {
		fraction := area.CoveragePercent / 100
		for _, record := range index[area.ID] {
			stats, ok := result[record.AgeGroup]
			if !ok {
				continue
			}
			stats.WithinRadius += float64(record.Count) * fraction
			result[record.AgeGroup] = stats
		}
	}

	return result, nil
}

// LineMetrics aggregates statistics over every station of a line,
// deduplicating areas reached by more than one station.
func (e *Engine) LineMetrics(stations []orb.Point, radiusMeters float64) (LineMetrics, error) {
	index, _, err := e.populationIndex()
	if err != nil {
		return LineMetrics{}, err
	}

	seen := map[string]bool{}
	metrics := LineMetrics{AgeDistribution: map[string]int64{}}

	for _, station := range stations {
		affected, err := e.areas.AreasWithinRadius(station, radiusMeters)
		if err != nil {
			return LineMetrics{}, err
		}
		for _, area := range affected {
			if seen[area.ID] {
				continue
			}
			seen[area.ID] = true
			metrics.AffectedAreaIDs = append(metrics.AffectedAreaIDs, area.ID)
			for _, record := range index[area.ID] {
				metrics.TotalPopulation += record.Count
				metrics.AgeDistribution[record.AgeGroup] += record.Count
			}
		}
	}

	sort.Strings(metrics.AffectedAreaIDs)
	metrics.TotalCoverage = len(metrics.AffectedAreaIDs)
	return metrics, nil
}

// NetworkCoverage summarizes the share of all small areas reached by any
// of the given stations.
func (e *Engine) NetworkCoverage(stations []orb.Point, radiusMeters float64) (NetworkCoverage, error) {
	all, err := e.areas.SmallAreas()
	if err != nil {
		return NetworkCoverage{}, err
	}

	seen := map[string]bool{}
	for _, station := range stations {
		affected, err := e.areas.AreasWithinRadius(station, radiusMeters)
		if err != nil {
			return NetworkCoverage{}, err
		}
		for _, area := range affected {
			seen[area.ID] = true
		}
	}

	coverage := NetworkCoverage{
		TotalAreas:   len(all),
		CoveredAreas: len(seen),
	}
	for id := range seen {
		coverage.AffectedAreaIDs = append(coverage.AffectedAreaIDs, id)
	}
	sort.Strings(coverage.AffectedAreaIDs)

	if coverage.TotalAreas > 0 {
		coverage.CoveragePercentage = float64(coverage.CoveredAreas) / float64(coverage.TotalAreas) * 100
	}
	return coverage, nil
}

// AreaDensities joins area geometry with population totals and returns
// per-area densities plus a Welford summary of the distribution.
func (e *Engine) AreaDensities() ([]AreaDensity, DensitySummary, error) {
	all, err := e.areas.SmallAreas()
	if err != nil {
		return nil, DensitySummary{}, err
	}

	index, _, err := e.populationIndex()
	if err != nil {
		return nil, DensitySummary{}, err
	}

	densities := make([]AreaDensity, 0, len(all))
	var w welfordState
	summary := DensitySummary{}

	for _, area := range all {
		var population int64
		for _, record := range index[area.ID] {
			population += record.Count
		}

		density := 0.0
		if area.AreaKm2 > 0 {
			density = float64(population) / area.AreaKm2
		}

		w.update(density)
		if summary.Count == 0 || density < summary.Min {
			summary.Min = density
		}
		if summary.Count == 0 || density > summary.Max {
			summary.Max = density
		}
		summary.Count++

		densities = append(densities, AreaDensity{
			ID:         area.ID,
			Label:      area.Label,
			Population: population,
			AreaKm2:    area.AreaKm2,
			Density:    density,
		})
	}

	summary.Mean = w.mean
	summary.StdDev = w.stdDev()
	return densities, summary, nil
}

// populationIndex groups the population records by area and caches the
// result, with per-age-group totals across the whole dataset.
func (e *Engine) populationIndex() (map[string][]dataset.PopulationRecord, map[string]int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.byArea != nil {
		return e.byArea, e.groupTotals, nil
	}

	records, err := e.population.Population()
	if err != nil {
		return nil, nil, err
	}

	byArea := map[string][]dataset.PopulationRecord{}
	groupTotals := map[string]int64{}
	for _, record := range records {
		byArea[record.AreaID] = append(byArea[record.AreaID], record)
		groupTotals[record.AgeGroup] += record.Count
	}

	e.byArea = byArea
	e.groupTotals = groupTotals
	return byArea, groupTotals, nil
}

// InvalidateCaches drops the population index, for use after reloads.
func (e *Engine) InvalidateCaches() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.byArea = nil
	e.groupTotals = nil
}
