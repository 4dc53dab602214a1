package geodb

import (
	"context"
	"testing"

	"borgarlina.gagnavist.is/internal/appconf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(NewConfig(":memory:", appconf.Test, false))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestTestEnvRequiresMemoryDB(t *testing.T) {
	_, err := NewClient(NewConfig("/tmp/should-not-exist.db", appconf.Test, false))
	assert.Error(t, err)
}

func TestSmallAreaRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	area := SmallArea{
		ID:       "0103",
		Label:    "Hlíðar",
		Geometry: `{"type":"Polygon","coordinates":[[[-21.9,64.1],[-21.8,64.1],[-21.8,64.2],[-21.9,64.1]]]}`,
		AreaKm2:  1.25,
	}
	require.NoError(t, client.Queries.UpsertSmallArea(ctx, area))

	// Upserting again replaces rather than duplicates.
	area.Label = "Hlíðar (rev)"
	require.NoError(t, client.Queries.UpsertSmallArea(ctx, area))

	got, err := client.Queries.GetSmallArea(ctx, "0103")
	require.NoError(t, err)
	assert.Equal(t, "Hlíðar (rev)", got.Label)
	assert.Equal(t, 1.25, got.AreaKm2)

	n, err := client.Queries.CountSmallAreas(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestPopulationQueries(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	rows := []PopulationRow{
		{AreaID: "0101", Year: 2024, AgeGroup: "10-14 ára", Sex: "1", Count: 120},
		{AreaID: "0101", Year: 2024, AgeGroup: "10-14 ára", Sex: "2", Count: 110},
		{AreaID: "0101", Year: 2024, AgeGroup: "15-19 ára", Sex: "1", Count: 90},
		{AreaID: "0102", Year: 2024, AgeGroup: "10-14 ára", Sex: "1", Count: 50},
		{AreaID: "0199", Year: 2024, AgeGroup: "20-24 ára", Sex: "1", Count: 75},
	}
	require.NoError(t, client.Queries.InsertPopulation(ctx, rows))

	total, err := client.Queries.TotalPopulation(ctx, []string{"0101", "0102"})
	require.NoError(t, err)
	assert.EqualValues(t, 370, total)

	total, err = client.Queries.TotalPopulation(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, total)

	dist, err := client.Queries.AgeDistribution(ctx, []string{"0101", "0102"})
	require.NoError(t, err)
	require.Len(t, dist, 2)
	assert.Equal(t, "10-14 ára", dist[0].AgeGroup)
	assert.EqualValues(t, 280, dist[0].Count)
	assert.Equal(t, "15-19 ára", dist[1].AgeGroup)
	assert.EqualValues(t, 90, dist[1].Count)

	groupTotal, err := client.Queries.AgeGroupTotal(ctx, "10-14 ára")
	require.NoError(t, err)
	assert.EqualValues(t, 280, groupTotal)

	inArea, err := client.Queries.AgeGroupCountForArea(ctx, "0101", "10-14 ára")
	require.NoError(t, err)
	assert.EqualValues(t, 230, inArea)

	totals, err := client.Queries.AreaPopulationTotals(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 3)
	assert.Equal(t, "0101", totals[0].AreaID)
	assert.EqualValues(t, 320, totals[0].Count)
}

func TestPopulationUpsertReplacesCount(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	row := PopulationRow{AreaID: "0101", Year: 2024, AgeGroup: "10-14 ára", Sex: "1", Count: 100}
	require.NoError(t, client.Queries.InsertPopulation(ctx, []PopulationRow{row}))

	row.Count = 150
	require.NoError(t, client.Queries.InsertPopulation(ctx, []PopulationRow{row}))

	total, err := client.Queries.TotalPopulation(ctx, []string{"0101"})
	require.NoError(t, err)
	assert.EqualValues(t, 150, total)
}

func TestSchoolsAndStations(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Queries.InsertSchool(ctx, School{Name: "Austurbæjarskóli", Lat: 64.14, Lon: -21.91}))
	require.NoError(t, client.Queries.InsertSchool(ctx, School{Name: "Hlíðaskóli", Lat: 64.13, Lon: -21.92}))

	schools, err := client.Queries.ListSchools(ctx)
	require.NoError(t, err)
	require.Len(t, schools, 2)
	assert.Equal(t, "Austurbæjarskóli", schools[0].Name)

	require.NoError(t, client.Queries.UpsertStation(ctx, Station{
		Year: "2025", Name: "Hlemmur", Lines: "blue", Lat: 64.1437, Lon: -21.9161,
	}))
	require.NoError(t, client.Queries.UpsertStation(ctx, Station{
		Year: "2025", Name: "BSÍ", Lines: "red/blue", Lat: 64.1356, Lon: -21.9338,
	}))

	stations, err := client.Queries.ListStations(ctx, "2025")
	require.NoError(t, err)
	require.Len(t, stations, 2)
	assert.Equal(t, "BSÍ", stations[0].Name)
	assert.Equal(t, "red/blue", stations[0].Lines)

	none, err := client.Queries.ListStations(ctx, "2030")
	require.NoError(t, err)
	assert.Empty(t, none)
}
