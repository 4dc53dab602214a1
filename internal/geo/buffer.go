package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

// bufferSegments is the number of vertices used to approximate a circular
// buffer, matching the circle resolution of the map overlays.
const bufferSegments = 64

const earthRadius = 6371008.8

// Buffer returns a polygon approximating the set of points within
// radiusMeters of center, built from spherical destination points so the
// circle keeps its size at Icelandic latitudes.
func Buffer(center orb.Point, radiusMeters float64) orb.Polygon {
	ring := make(orb.Ring, 0, bufferSegments+1)
	for i := 0; i < bufferSegments; i++ {
		bearing := 360.0 * float64(i) / bufferSegments
		ring = append(ring, destination(center, bearing, radiusMeters))
	}
	ring = append(ring, ring[0])
	return orb.Polygon{ring}
}

// destination computes the point at the given initial bearing (degrees) and
// distance (meters) from origin on a spherical earth.
func destination(origin orb.Point, bearingDeg, distance float64) orb.Point {
	lat1 := radians(origin.Lat())
	lon1 := radians(origin.Lon())
	bearing := radians(bearingDeg)
	angular := distance / earthRadius

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(angular) +
		math.Cos(lat1)*math.Sin(angular)*math.Cos(bearing))
	lon2 := lon1 + math.Atan2(
		math.Sin(bearing)*math.Sin(angular)*math.Cos(lat1),
		math.Cos(angular)-math.Sin(lat1)*math.Sin(lat2))

	return orb.Point{degrees(lon2), degrees(lat2)}
}

// Distance returns the haversine distance between two lon/lat points in meters.
func Distance(a, b orb.Point) float64 {
	return orbgeo.Distance(a, b)
}

// Area returns the geodesic area of a polygonal geometry in square meters.
func Area(g orb.Geometry) float64 {
	return math.Abs(orbgeo.Area(g))
}

// PlanarArea returns the planar (coordinate space) area of a geometry. Only
// meaningful for comparing geometries in the same projection.
func PlanarArea(g orb.Geometry) float64 {
	return math.Abs(planar.Area(g))
}
