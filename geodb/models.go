package geodb

// SmallArea is a statistical small area ("smásvæði") row. Geometry is the
// WGS84 GeoJSON encoding of the area polygon.
type SmallArea struct {
	ID       string
	Label    string
	Geometry string
	AreaKm2  float64
}

// PopulationRow is one population count: area x census year x age group x sex.
type PopulationRow struct {
	AreaID   string
	Year     int
	AgeGroup string
	Sex      string
	Count    int64
}

// School is a school location.
type School struct {
	ID   int64
	Name string
	Lat  float64
	Lon  float64
}

// Station is a proposed cityline station in one scenario year. Lines holds
// the slash-separated line colors serving the station, e.g. "red/blue".
type Station struct {
	Year  string
	Name  string
	Lines string
	Lat   float64
	Lon   float64
}

// AgeGroupCount pairs an age group label with a population count.
type AgeGroupCount struct {
	AgeGroup string
	Count    int64
}

// AreaPopulation pairs a small-area id with its total population.
type AreaPopulation struct {
	AreaID string
	Count  int64
}
