package dataset

import (
	"fmt"
	"os"

	"borgarlina.gagnavist.is/internal/geo"

	"github.com/paulmach/orb/geojson"
)

// ParseSmallAreas decodes a small-areas GeoJSON file. The published
// smásvæði file is projected in ISN93 (EPSG:3057); sourceEPSG 4326 skips
// reprojection for files that were already transformed.
func ParseSmallAreas(path string, sourceEPSG int) ([]SmallArea, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading small areas file: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parsing small areas geojson: %w", err)
	}

	if sourceEPSG != 4326 {
		proj, err := geo.ProjectionForEPSG(sourceEPSG)
		if err != nil {
			return nil, err
		}
		fc = geo.ReprojectCollection(fc, proj)
	}

	areas := make([]SmallArea, 0, len(fc.Features))
	for _, feature := range fc.Features {
		id := feature.Properties.MustString("smsv", "")
		if id == "" {
			continue
		}

		areas = append(areas, SmallArea{
			ID:       NormalizeAreaID(id),
			Label:    feature.Properties.MustString("smsv_label", ""),
			Geometry: feature.Geometry,
			AreaKm2:  geo.Area(feature.Geometry) / 1e6,
		})
	}

	if len(areas) == 0 {
		return nil, fmt.Errorf("small areas file %s contains no features with an smsv id", path)
	}
	return areas, nil
}
