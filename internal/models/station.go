package models

// StationModel is one cityline station in an API response.
type StationModel struct {
	Name  string   `json:"name"`
	Lines []string `json:"lines"`
	Lat   float64  `json:"lat"`
	Lon   float64  `json:"lon"`
}

// NewStationModel creates a StationModel.
func NewStationModel(name string, lines []string, lat, lon float64) StationModel {
	if lines == nil {
		lines = []string{}
	}
	return StationModel{
		Name:  name,
		Lines: lines,
		Lat:   lat,
		Lon:   lon,
	}
}

// BusConnectionModel is one Stræto stop reachable on foot from a cityline
// station. Direction is the 8-point compass heading from the station to
// the stop. Rank and passengers are zero when the stop has no ridership
// figures.
type BusConnectionModel struct {
	Name           string  `json:"name"`
	DistanceMeters float64 `json:"distanceMeters"`
	Direction      string  `json:"direction"`
	Rank           int     `json:"rank,omitempty"`
	Passengers     int64   `json:"passengers,omitempty"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
}

// StationReferenceFrom converts a station model to its reference form.
func StationReferenceFrom(station StationModel) StationReference {
	return StationReference{
		Name:  station.Name,
		Lines: station.Lines,
		Lat:   station.Lat,
		Lon:   station.Lon,
	}
}
