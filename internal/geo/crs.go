package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// EPSG codes of the coordinate reference systems in play.
const (
	EPSGISN93       = 3057
	EPSGWebMercator = 3857
	EPSGWGS84       = 4326
)

// GRS80 / WGS84 ellipsoid constants shared by the supported projections.
const (
	semiMajorAxis     = 6378137.0
	inverseFlattening = 298.257222101
	webMercatorRadius = 6378137.0
)

// ISN93 / Lambda 93 (EPSG:3057) Lambert conformal conic parameters.
const (
	isn93LatOrigin     = 65.0
	isn93LonOrigin     = -19.0
	isn93StdParallel1  = 64.25
	isn93StdParallel2  = 65.75
	isn93FalseEasting  = 500000.0
	isn93FalseNorthing = 500000.0
)

// Projection converts projected coordinates to and from WGS84 lon/lat.
// Points follow the orb convention: [lon, lat] for geographic,
// [easting, northing] for projected coordinates.
type Projection interface {
	// ToWGS84 converts a projected point to geographic lon/lat degrees.
	ToWGS84(p orb.Point) orb.Point
	// FromWGS84 converts a geographic lon/lat point to projected coordinates.
	FromWGS84(p orb.Point) orb.Point
}

// ProjectionForEPSG returns the projection registered for the given EPSG
// code. Supported codes: 3057 (ISN93) and 3857 (Web Mercator).
func ProjectionForEPSG(code int) (Projection, error) {
	switch code {
	case EPSGISN93:
		return NewISN93(), nil
	case EPSGWebMercator:
		return WebMercator{}, nil
	default:
		return nil, fmt.Errorf("unsupported EPSG code: %d", code)
	}
}

// ISN93 implements the Icelandic national grid, a Lambert conformal conic
// projection on GRS80 (EPSG:3057). Constants n, F and rho0 are derived once
// at construction following the EPSG 9802 method.
type ISN93 struct {
	e    float64
	n    float64
	f    float64
	rho0 float64
}

// NewISN93 derives the projection constants for EPSG:3057.
func NewISN93() *ISN93 {
	flattening := 1.0 / inverseFlattening
	e2 := flattening * (2 - flattening)
	e := math.Sqrt(e2)

	phi0 := radians(isn93LatOrigin)
	phi1 := radians(isn93StdParallel1)
	phi2 := radians(isn93StdParallel2)

	m1 := lccM(phi1, e)
	m2 := lccM(phi2, e)
	t0 := lccT(phi0, e)
	t1 := lccT(phi1, e)
	t2 := lccT(phi2, e)

	n := (math.Log(m1) - math.Log(m2)) / (math.Log(t1) - math.Log(t2))
	f := m1 / (n * math.Pow(t1, n))
	rho0 := semiMajorAxis * f * math.Pow(t0, n)

	return &ISN93{e: e, n: n, f: f, rho0: rho0}
}

func (p *ISN93) FromWGS84(pt orb.Point) orb.Point {
	phi := radians(pt.Lat())
	lam := radians(pt.Lon())

	t := lccT(phi, p.e)
	rho := semiMajorAxis * p.f * math.Pow(t, p.n)
	theta := p.n * (lam - radians(isn93LonOrigin))

	easting := isn93FalseEasting + rho*math.Sin(theta)
	northing := isn93FalseNorthing + p.rho0 - rho*math.Cos(theta)
	return orb.Point{easting, northing}
}

func (p *ISN93) ToWGS84(pt orb.Point) orb.Point {
	dx := pt[0] - isn93FalseEasting
	dy := p.rho0 - (pt[1] - isn93FalseNorthing)

	rho := math.Sqrt(dx*dx + dy*dy)
	if p.n < 0 {
		rho = -rho
	}
	t := math.Pow(rho/(semiMajorAxis*p.f), 1/p.n)
	theta := math.Atan2(dx, dy)

	lam := theta/p.n + radians(isn93LonOrigin)

	// Iterate the latitude; converges in a handful of rounds.
	phi := math.Pi/2 - 2*math.Atan(t)
	for i := 0; i < 15; i++ {
		es := p.e * math.Sin(phi)
		next := math.Pi/2 - 2*math.Atan(t*math.Pow((1-es)/(1+es), p.e/2))
		if math.Abs(next-phi) < 1e-12 {
			phi = next
			break
		}
		phi = next
	}

	return orb.Point{degrees(lam), degrees(phi)}
}

// WebMercator implements spherical Web Mercator (EPSG:3857).
type WebMercator struct{}

func (WebMercator) FromWGS84(pt orb.Point) orb.Point {
	x := radians(pt.Lon()) * webMercatorRadius
	y := math.Log(math.Tan(math.Pi/4+radians(pt.Lat())/2)) * webMercatorRadius
	return orb.Point{x, y}
}

func (WebMercator) ToWGS84(pt orb.Point) orb.Point {
	lon := degrees(pt[0] / webMercatorRadius)
	lat := degrees(2*math.Atan(math.Exp(pt[1]/webMercatorRadius)) - math.Pi/2)
	return orb.Point{lon, lat}
}

// lccM is the EPSG 9802 m term: cos(phi)/sqrt(1 - e^2 sin^2(phi)).
func lccM(phi, e float64) float64 {
	s := math.Sin(phi)
	return math.Cos(phi) / math.Sqrt(1-e*e*s*s)
}

// lccT is the EPSG 9802 t term.
func lccT(phi, e float64) float64 {
	s := math.Sin(phi)
	return math.Tan(math.Pi/4-phi/2) / math.Pow((1-e*s)/(1+e*s), e/2)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
