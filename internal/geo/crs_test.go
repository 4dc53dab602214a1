package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISN93RoundTrip(t *testing.T) {
	proj := NewISN93()

	// Hlemmur, central Reykjavík.
	original := orb.Point{-21.9161, 64.1437}

	projected := proj.FromWGS84(original)
	back := proj.ToWGS84(projected)

	assert.InDelta(t, original.Lon(), back.Lon(), 1e-8)
	assert.InDelta(t, original.Lat(), back.Lat(), 1e-8)
}

func TestISN93ProjectionOrigin(t *testing.T) {
	proj := NewISN93()

	// The grid origin (65N, 19W) maps onto the false easting/northing.
	projected := proj.FromWGS84(orb.Point{-19.0, 65.0})

	assert.InDelta(t, 500000.0, projected[0], 0.01)
	assert.InDelta(t, 500000.0, projected[1], 0.01)
}

func TestISN93PlausibleForReykjavik(t *testing.T) {
	proj := NewISN93()

	projected := proj.FromWGS84(orb.Point{-21.90, 64.11})

	// Capital area sits southwest of the grid origin.
	assert.Less(t, projected[0], 500000.0)
	assert.Less(t, projected[1], 500000.0)
	assert.Greater(t, projected[0], 300000.0)
	assert.Greater(t, projected[1], 300000.0)
}

func TestWebMercatorRoundTrip(t *testing.T) {
	proj := WebMercator{}

	original := orb.Point{-21.90, 64.11}
	back := proj.ToWGS84(proj.FromWGS84(original))

	assert.InDelta(t, original.Lon(), back.Lon(), 1e-9)
	assert.InDelta(t, original.Lat(), back.Lat(), 1e-9)
}

func TestWebMercatorKnownPoint(t *testing.T) {
	proj := WebMercator{}

	// Null island projects onto the grid origin.
	projected := proj.FromWGS84(orb.Point{0, 0})
	assert.InDelta(t, 0.0, projected[0], 1e-9)
	assert.InDelta(t, 0.0, projected[1], 1e-9)
}

func TestProjectionForEPSG(t *testing.T) {
	isn, err := ProjectionForEPSG(3057)
	require.NoError(t, err)
	assert.IsType(t, &ISN93{}, isn)

	merc, err := ProjectionForEPSG(3857)
	require.NoError(t, err)
	assert.IsType(t, WebMercator{}, merc)

	_, err = ProjectionForEPSG(4326)
	assert.Error(t, err)
}
