// Package layers renders the analysis results as GeoJSON feature
// collections ready for a web map client.
package layers

import (
	"fmt"
	"strings"

	"borgarlina.gagnavist.is/internal/config"
	"borgarlina.gagnavist.is/internal/coverage"
	"borgarlina.gagnavist.is/internal/dataset"
	"borgarlina.gagnavist.is/internal/geo"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Map viewport over the capital region.
const (
	MapCenterLat = 64.11
	MapCenterLon = -21.90
	MapZoom      = 11
)

// Station marker sizes. Interchange stations serving more than one line
// get the larger marker.
const (
	stationMarkerSize     = 10.0
	interchangeMarkerSize = 15.0
)

func mapMetadata() geojson.Properties {
	return geojson.Properties{
		"center": []float64{MapCenterLon, MapCenterLat},
		"zoom":   MapZoom,
	}
}

func newCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	fc.ExtraMembers = geojson.Properties{"map": mapMetadata()}
	return fc
}

// Cityline renders a scenario's lines and stations. Lines are drawn as
// colored polylines through their station sequence; stations become point
// markers sized by how many lines serve them.
func Cityline(scenario config.ScenarioConfig, stations []dataset.Station) *geojson.FeatureCollection {
	fc := newCollection()

	byName := make(map[string]dataset.Station, len(stations))
	for _, station := range stations {
		byName[station.Name] = station
	}

	for _, line := range scenario.Lines {
		var path orb.LineString
		for _, name := range line.Stations {
			if station, ok := byName[name]; ok {
				path = append(path, station.Point)
			}
		}
		if len(path) < 2 {
			continue
		}

		feature := geojson.NewFeature(path)
		feature.Properties = geojson.Properties{
			"type":         "line",
			"line":         line.Color,
			"stroke":       config.LineColorHex[line.Color],
			"stroke-width": 4,
		}
		fc.Append(feature)
	}

	for _, station := range stations {
		colors := station.LineColors()
		size := stationMarkerSize
		if len(colors) > 1 {
			size = interchangeMarkerSize
		}

		markerColor := ""
		if len(colors) > 0 {
			markerColor = config.LineColorHex[colors[0]]
		}

		feature := geojson.NewFeature(station.Point)
		feature.Properties = geojson.Properties{
			"type":         "station",
			"name":         station.Name,
			"lines":        strings.Join(colors, "/"),
			"marker-size":  size,
			"marker-color": markerColor,
		}
		fc.Append(feature)
	}

	return fc
}

// AreaOutlines renders the small-area boundaries.
func AreaOutlines(areas []dataset.SmallArea) *geojson.FeatureCollection {
	fc := newCollection()
	for _, area := range areas {
		feature := geojson.NewFeature(area.Geometry)
		feature.Properties = geojson.Properties{
			"smsv":       area.ID,
			"smsv_label": area.Label,
			"area_km2":   area.AreaKm2,
		}
		fc.Append(feature)
	}
	return fc
}

// DensityChoropleth renders the small areas filled by population density.
// The distribution summary rides along in the collection's extra members
// so a client can build a legend.
func DensityChoropleth(areas []dataset.SmallArea, densities []coverage.AreaDensity, summary coverage.DensitySummary) *geojson.FeatureCollection {
	byID := make(map[string]coverage.AreaDensity, len(densities))
	for _, d := range densities {
		byID[d.ID] = d
	}

	fc := newCollection()
	fc.ExtraMembers["density"] = geojson.Properties{
		"count":  summary.Count,
		"mean":   summary.Mean,
		"stddev": summary.StdDev,
		"min":    summary.Min,
		"max":    summary.Max,
	}

	span := summary.Max - summary.Min
	for _, area := range areas {
		d := byID[area.ID]

		fraction := 0.0
		if span > 0 {
			fraction = (d.Density - summary.Min) / span
		}

		feature := geojson.NewFeature(area.Geometry)
		feature.Properties = geojson.Properties{
			"smsv":         area.ID,
			"smsv_label":   area.Label,
			"population":   d.Population,
			"density":      d.Density,
			"fill":         rampColor(fraction),
			"fill-opacity": 0.6,
		}
		fc.Append(feature)
	}
	return fc
}

// CoverageCircles renders each station's catchment disc with its
// aggregate statistics.
func CoverageCircles(stations []dataset.Station, radiusMeters float64, stats map[string]coverage.StationStats) *geojson.FeatureCollection {
	fc := newCollection()
	fc.ExtraMembers["radius_m"] = radiusMeters

	for _, station := range stations {
		feature := geojson.NewFeature(geo.Buffer(station.Point, radiusMeters))
		feature.Properties = geojson.Properties{
			"type":     "coverage",
			"name":     station.Name,
			"lines":    station.Lines,
			"radius_m": radiusMeters,
		}
		if s, ok := stats[station.Name]; ok {
			feature.Properties["population"] = s.TotalPopulation
			feature.Properties["affected_areas"] = s.AffectedAreas
			feature.Properties["density"] = s.PopulationDensity
		}
		fc.Append(feature)
	}
	return fc
}

// SchoolMarkers renders the school register as point markers.
func SchoolMarkers(schools []dataset.School) *geojson.FeatureCollection {
	fc := newCollection()
	for _, school := range schools {
		feature := geojson.NewFeature(school.Point)
		feature.Properties = geojson.Properties{
			"type":          "school",
			"name":          school.Name,
			"marker-symbol": "school",
		}
		fc.Append(feature)
	}
	return fc
}

// rampColor interpolates the green ramp used for bus layers, from
// #205930 at 0 to #77d198 at 1.
func rampColor(fraction float64) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	lerp := func(a, b int) int {
		return a + int(fraction*float64(b-a)+0.5)
	}
	return fmt.Sprintf("#%02x%02x%02x", lerp(0x20, 0x77), lerp(0x59, 0xd1), lerp(0x30, 0x98))
}
