package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"borgarlina.gagnavist.is/internal/geo"

	"github.com/paulmach/orb/geojson"
)

// CitylineFileName returns the processed cityline file name for a scenario
// year, e.g. cityline_2025_4326.geojson.
func CitylineFileName(year string) string {
	return fmt.Sprintf("cityline_%s_4326.geojson", year)
}

// ParseCityline decodes the station points of one scenario year from the
// processed (already WGS84) cityline GeoJSON file in dir.
func ParseCityline(dir, year string) ([]Station, error) {
	path := filepath.Join(dir, CitylineFileName(year))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cityline data for year %s: %w", year, err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parsing cityline geojson for year %s: %w", year, err)
	}

	stations := make([]Station, 0, len(fc.Features))
	for _, feature := range fc.Features {
		name := feature.Properties.MustString("name", "")
		if name == "" {
			continue
		}

		point, err := geo.PointOf(feature.Geometry)
		if err != nil {
			return nil, fmt.Errorf("station %s: %w", name, err)
		}

		stations = append(stations, Station{
			Name:  name,
			Lines: feature.Properties.MustString("line", ""),
			Point: point,
		})
	}

	return stations, nil
}
