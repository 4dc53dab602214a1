package geo

import (
	"math"

	"github.com/paulmach/orb"
)

var compassPoints = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Bearing returns the initial great-circle bearing from one point to
// another, in degrees clockwise from north.
func Bearing(from, to orb.Point) float64 {
	phi1 := radians(from.Lat())
	phi2 := radians(to.Lat())
	deltaLon := radians(to.Lon() - from.Lon())

	y := math.Sin(deltaLon) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(deltaLon)

	return math.Mod(degrees(math.Atan2(y, x))+360, 360)
}

// CompassDirection returns the 8-point compass heading from one point to
// another.
func CompassDirection(from, to orb.Point) string {
	bearing := Bearing(from, to)
	return compassPoints[int((bearing+22.5)/45.0)%8]
}
