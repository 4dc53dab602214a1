package coverage

import (
	"path/filepath"
	"testing"

	"borgarlina.gagnavist.is/internal/dataset"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fixtures place a station at BSÍ (-21.90, 64.11) with small area 0101
// fully inside a 400 m radius, 0102 partially inside and 0199 far away.
var bsi = orb.Point{-21.90, 64.11}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	loader := dataset.NewLoader(filepath.Join("..", "..", "testdata"))
	return NewEngine(loader, loader)
}

func TestStationCoverage(t *testing.T) {
	engine := newTestEngine(t)

	covered, err := engine.StationCoverage(bsi, 400)
	require.NoError(t, err)
	require.Len(t, covered, 2)

	byID := map[string]CoveredArea{}
	for _, area := range covered {
		byID[area.ID] = area
	}

	assert.InDelta(t, 100, byID["0101"].CoveragePercent, 0.5)
	assert.Equal(t, "Miðborg vestur", byID["0101"].Label)

	partial := byID["0102"].CoveragePercent
	assert.Greater(t, partial, 0.0)
	assert.Less(t, partial, 100.0)
}

func TestStationCoverageSmallRadius(t *testing.T) {
	engine := newTestEngine(t)

	covered, err := engine.StationCoverage(bsi, 50)
	require.NoError(t, err)
	require.Len(t, covered, 1)
	assert.Equal(t, "0101", covered[0].ID)
}

func TestStationStatistics(t *testing.T) {
	engine := newTestEngine(t)

	stats, err := engine.StationStatistics(bsi, 400)
	require.NoError(t, err)

	// 0101 holds 600 people, 0102 another 110.
	assert.Equal(t, int64(710), stats.TotalPopulation)
	assert.Equal(t, 2, stats.AffectedAreas)
	assert.Equal(t, int64(280), stats.AgeDistribution["10-14 ára"])
	assert.Equal(t, int64(90), stats.AgeDistribution["15-19 ára"])
	assert.Equal(t, int64(260), stats.AgeDistribution["30-34 ára"])

	// 710 people over a 400 m disc, π·0.4² km².
	assert.InDelta(t, 1412.4, stats.PopulationDensity, 0.5)

	var percentSum float64
	for _, pct := range stats.AgePercentages {
		percentSum += pct
	}
	assert.InDelta(t, 100, percentSum, 0.01)
}

func TestStationStatisticsNoAreas(t *testing.T) {
	engine := newTestEngine(t)

	stats, err := engine.StationStatistics(orb.Point{-20.0, 63.5}, 400)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalPopulation)
	assert.Equal(t, 0, stats.AffectedAreas)
	assert.Zero(t, stats.PopulationDensity)
}

func TestStudentStatistics(t *testing.T) {
	engine := newTestEngine(t)

	students, err := engine.StudentStatistics(bsi, 400)
	require.NoError(t, err)
	require.Len(t, students, len(StudentAgeGroups))

	// Dataset-wide totals: 230+50 ten-to-fourteens, 90 fifteen-to-nineteens,
	// 80+75 twenty-to-twentyfours.
	assert.Equal(t, int64(280), students["10-14 ára"].Total)
	assert.Equal(t, int64(90), students["15-19 ára"].Total)
	assert.Equal(t, int64(155), students["20-24 ára"].Total)

	// 0101 is fully covered, 0102 only partially, 0199 not at all.
	tens := students["10-14 ára"].WithinRadius
	assert.GreaterOrEqual(t, tens, 230.0)
	assert.Less(t, tens, 280.0)

	assert.InDelta(t, 90, students["15-19 ára"].WithinRadius, 0.5)
	assert.InDelta(t, 80, students["20-24 ára"].WithinRadius, 0.5)
}

func TestLineMetricsDeduplicatesAreas(t *testing.T) {
	engine := newTestEngine(t)

	// Two stops close together reach the same areas once.
	metrics, err := engine.LineMetrics([]orb.Point{bsi, {-21.901, 64.1101}}, 400)
	require.NoError(t, err)

	assert.Equal(t, 2, metrics.TotalCoverage)
	assert.Equal(t, []string{"0101", "0102"}, metrics.AffectedAreaIDs)
	assert.Equal(t, int64(710), metrics.TotalPopulation)
	assert.Equal(t, int64(280), metrics.AgeDistribution["10-14 ára"])
}

func TestNetworkCoverage(t *testing.T) {
	engine := newTestEngine(t)

	coverage, err := engine.NetworkCoverage([]orb.Point{bsi}, 400)
	require.NoError(t, err)

	assert.Equal(t, 3, coverage.TotalAreas)
	assert.Equal(t, 2, coverage.CoveredAreas)
	assert.InDelta(t, 66.67, coverage.CoveragePercentage, 0.01)
	assert.Equal(t, []string{"0101", "0102"}, coverage.AffectedAreaIDs)
}

func TestNetworkCoverageNoStations(t *testing.T) {
	engine := newTestEngine(t)

	coverage, err := engine.NetworkCoverage(nil, 400)
	require.NoError(t, err)
	assert.Equal(t, 3, coverage.TotalAreas)
	assert.Equal(t, 0, coverage.CoveredAreas)
	assert.Zero(t, coverage.CoveragePercentage)
}

func TestAreaDensities(t *testing.T) {
	engine := newTestEngine(t)

	densities, summary, err := engine.AreaDensities()
	require.NoError(t, err)
	require.Len(t, densities, 3)
	assert.Equal(t, 3, summary.Count)

	byID := map[string]AreaDensity{}
	for _, d := range densities {
		byID[d.ID] = d
	}

	midborg := byID["0101"]
	assert.Equal(t, int64(600), midborg.Population)
	assert.Greater(t, midborg.AreaKm2, 0.0)
	assert.InDelta(t, float64(midborg.Population)/midborg.AreaKm2, midborg.Density, 0.001)

	assert.LessOrEqual(t, summary.Min, summary.Mean)
	assert.LessOrEqual(t, summary.Mean, summary.Max)
	assert.Greater(t, summary.StdDev, 0.0)
}
