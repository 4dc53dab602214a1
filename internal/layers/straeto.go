package layers

import (
	"borgarlina.gagnavist.is/internal/transit"

	"github.com/jamespfennell/gtfs"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Bus stop markers: ranked stops shade green and shrink with rank,
// unranked stops stay small and neutral.
const (
	rankedStopColor    = "#2d6a3e"
	rankedStopBaseSize = 20.0
	rankedStopSizeStep = 0.25
	defaultStopSize    = 6.0
	defaultStopColor   = "#888888"
	defaultStopOpacity = 0.5
	rankedStopOpacity  = 0.9
)

// RankLookup resolves a stop name to its ridership rank, reporting
// whether the stop is ranked at all.
type RankLookup func(stopName string) (transit.RidershipStop, bool)

// StraetoStops renders the bus stops of the feed. Stops present in the
// ridership ranking are emphasized by size and color.
func StraetoStops(stops []gtfs.Stop, rank RankLookup) *geojson.FeatureCollection {
	fc := newCollection()

	for i := range stops {
		stop := &stops[i]
		if stop.Latitude == nil || stop.Longitude == nil {
			continue
		}

		feature := geojson.NewFeature(orb.Point{*stop.Longitude, *stop.Latitude})
		feature.Properties = geojson.Properties{
			"type":           "bus_stop",
			"name":           stop.Name,
			"stop_id":        stop.Id,
			"marker-size":    defaultStopSize,
			"marker-color":   defaultStopColor,
			"marker-opacity": defaultStopOpacity,
		}

		if ranked, ok := rank(stop.Name); ok {
			feature.Properties["marker-size"] = rankedStopBaseSize - float64(ranked.Rank-1)*rankedStopSizeStep
			feature.Properties["marker-color"] = rankedStopColor
			feature.Properties["marker-opacity"] = rankedStopOpacity
			feature.Properties["rank"] = ranked.Rank
			feature.Properties["passengers"] = ranked.Passengers
		}

		fc.Append(feature)
	}
	return fc
}

// StraetoRoutes renders the feed's shapes as polylines, colored along the
// green ramp so overlapping routes stay distinguishable.
func StraetoRoutes(shapes []gtfs.Shape) *geojson.FeatureCollection {
	fc := newCollection()

	var drawable []gtfs.Shape
	for _, shape := range shapes {
		if len(shape.Points) >= 2 {
			drawable = append(drawable, shape)
		}
	}

	for i, shape := range drawable {
		path := make(orb.LineString, 0, len(shape.Points))
		for _, point := range shape.Points {
			path = append(path, orb.Point{point.Longitude, point.Latitude})
		}

		fraction := 0.0
		if len(drawable) > 1 {
			fraction = float64(i) / float64(len(drawable)-1)
		}

		feature := geojson.NewFeature(path)
		feature.Properties = geojson.Properties{
			"type":         "bus_route",
			"shape_id":     shape.ID,
			"stroke":       rampColor(fraction),
			"stroke-width": 2,
		}
		fc.Append(feature)
	}
	return fc
}
