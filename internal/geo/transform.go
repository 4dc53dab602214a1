package geo

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// TransformGeometry applies fn to every coordinate of g and returns the
// transformed geometry. The input geometry is not modified.
func TransformGeometry(g orb.Geometry, fn func(orb.Point) orb.Point) orb.Geometry {
	switch geom := g.(type) {
	case orb.Point:
		return fn(geom)
	case orb.MultiPoint:
		out := make(orb.MultiPoint, len(geom))
		for i, p := range geom {
			out[i] = fn(p)
		}
		return out
	case orb.LineString:
		out := make(orb.LineString, len(geom))
		for i, p := range geom {
			out[i] = fn(p)
		}
		return out
	case orb.MultiLineString:
		out := make(orb.MultiLineString, len(geom))
		for i, ls := range geom {
			out[i] = TransformGeometry(ls, fn).(orb.LineString)
		}
		return out
	case orb.Ring:
		out := make(orb.Ring, len(geom))
		for i, p := range geom {
			out[i] = fn(p)
		}
		return out
	case orb.Polygon:
		out := make(orb.Polygon, len(geom))
		for i, r := range geom {
			out[i] = TransformGeometry(r, fn).(orb.Ring)
		}
		return out
	case orb.MultiPolygon:
		out := make(orb.MultiPolygon, len(geom))
		for i, poly := range geom {
			out[i] = TransformGeometry(poly, fn).(orb.Polygon)
		}
		return out
	case orb.Collection:
		out := make(orb.Collection, len(geom))
		for i, child := range geom {
			out[i] = TransformGeometry(child, fn)
		}
		return out
	default:
		return g
	}
}

// ReprojectCollection converts every feature geometry in the collection from
// the source projection to WGS84 and rewrites the CRS member to EPSG:4326.
func ReprojectCollection(fc *geojson.FeatureCollection, source Projection) *geojson.FeatureCollection {
	out := geojson.NewFeatureCollection()
	out.ExtraMembers = geojson.Properties{
		"crs": map[string]interface{}{
			"type": "name",
			"properties": map[string]interface{}{
				"name": "urn:ogc:def:crs:EPSG::4326",
			},
		},
	}
	for _, feature := range fc.Features {
		transformed := geojson.NewFeature(TransformGeometry(feature.Geometry, source.ToWGS84))
		transformed.ID = feature.ID
		transformed.Properties = feature.Properties.Clone()
		out.Append(transformed)
	}
	return out
}

// PointOf returns the representative point of a geometry: the point itself,
// the first coordinate of lines, or the centroid-ish first vertex of the
// largest polygon for polygonal geometries.
func PointOf(g orb.Geometry) (orb.Point, error) {
	switch geom := g.(type) {
	case orb.Point:
		return geom, nil
	case orb.MultiPoint:
		if len(geom) > 0 {
			return geom[0], nil
		}
	case orb.LineString:
		if len(geom) > 0 {
			return geom[0], nil
		}
	case orb.Polygon:
		if len(geom) > 0 && len(geom[0]) > 0 {
			return geom[0][0], nil
		}
	case orb.MultiPolygon:
		if largest := LargestPolygon(geom); len(largest) > 0 && len(largest[0]) > 0 {
			return largest[0][0], nil
		}
	}
	return orb.Point{}, fmt.Errorf("unsupported geometry type: %s", g.GeoJSONType())
}

// LargestPolygon returns the member polygon with the greatest planar area.
func LargestPolygon(mp orb.MultiPolygon) orb.Polygon {
	var largest orb.Polygon
	best := -1.0
	for _, poly := range mp {
		a := PlanarArea(poly)
		if a > best {
			best = a
			largest = poly
		}
	}
	return largest
}
