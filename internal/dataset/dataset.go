// Package dataset loads the Borgarlína analysis inputs from disk: the
// statistical small areas, the proposed cityline station layouts, the
// Statistics Iceland population figures and the school register.
package dataset

import (
	"strings"

	"github.com/paulmach/orb"
)

// SmallArea is a statistical small area ("smásvæði") with its WGS84
// geometry.
type SmallArea struct {
	ID       string
	Label    string
	Geometry orb.Geometry
	AreaKm2  float64
}

// Station is a proposed cityline station. Lines holds the slash-separated
// line colors serving it, e.g. "red/blue".
type Station struct {
	Name  string
	Lines string
	Point orb.Point
}

// LineColors splits the station's Lines field into individual colors.
func (s Station) LineColors() []string {
	parts := strings.Split(s.Lines, "/")
	colors := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			colors = append(colors, trimmed)
		}
	}
	return colors
}

// PopulationRecord is one row of the population dataset.
type PopulationRecord struct {
	AreaID   string
	AgeGroup string
	Sex      string
	Count    int64
}

// School is a school location from the school register.
type School struct {
	Name  string
	Point orb.Point
}

// NormalizeAreaID zero-pads small-area ids to four digits so geometry ids
// and population ids join cleanly.
func NormalizeAreaID(id string) string {
	id = strings.TrimSpace(id)
	for len(id) < 4 {
		id = "0" + id
	}
	return id
}
