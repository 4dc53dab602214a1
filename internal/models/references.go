package models

// ReferencesModel References model for related data
type ReferencesModel struct {
	Areas    []AreaReference    `json:"areas"`
	Lines    []LineReference    `json:"lines"`
	Stations []StationReference `json:"stations"`
}

// AreaReference is the compact small-area record carried in references.
type AreaReference struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// LineReference is the compact cityline record carried in references.
type LineReference struct {
	Color string `json:"color"`
	Hex   string `json:"hex"`
	Year  string `json:"year"`
}

// StationReference is the compact station record carried in references.
type StationReference struct {
	Name  string   `json:"name"`
	Lines []string `json:"lines"`
	Lat   float64  `json:"lat"`
	Lon   float64  `json:"lon"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Areas:    []AreaReference{},
		Lines:    []LineReference{},
		Stations: []StationReference{},
	}
}
