// Package config holds the cityline scenario configuration: which lines
// exist in each planning year and the station sequence of every line.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// LineConfig describes one cityline in one scenario year.
type LineConfig struct {
	Color    string   `yaml:"color" validate:"required,oneof=red blue green orange purple"`
	Stations []string `yaml:"stations" validate:"required,min=2"`
}

// ScenarioConfig lists the lines of a single planning year.
type ScenarioConfig struct {
	Year  string       `yaml:"year" validate:"required,len=4,numeric"`
	Lines []LineConfig `yaml:"lines" validate:"required,min=1,dive"`
}

// LinesConfig is the full cityline scenario catalog.
type LinesConfig struct {
	DefaultYear string           `yaml:"defaultYear" validate:"required,len=4,numeric"`
	Scenarios   []ScenarioConfig `yaml:"scenarios" validate:"required,min=1,dive"`
}

// LineColorHex maps the configured line colors onto their map hex values.
var LineColorHex = map[string]string{
	"red":    "#ff0000",
	"blue":   "#0000ff",
	"green":  "#008000",
	"orange": "#ffa500",
	"purple": "#800080",
}

// Load reads and validates a lines config from a YAML file. An empty path
// yields the built-in default scenarios.
func Load(path string) (*LinesConfig, error) {
	if path == "" {
		return DefaultLines(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lines config: %w", err)
	}

	var cfg LinesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing lines config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid lines config: %w", err)
	}

	return &cfg, nil
}

// Years returns the configured scenario years in file order.
func (c *LinesConfig) Years() []string {
	years := make([]string, 0, len(c.Scenarios))
	for _, s := range c.Scenarios {
		years = append(years, s.Year)
	}
	return years
}

// HasYear reports whether year is a configured scenario.
func (c *LinesConfig) HasYear(year string) bool {
	for _, s := range c.Scenarios {
		if s.Year == year {
			return true
		}
	}
	return false
}

// Scenario returns the line set for the given year, falling back to the
// default year when the requested year is not configured.
func (c *LinesConfig) Scenario(year string) ScenarioConfig {
	var fallback ScenarioConfig
	for _, s := range c.Scenarios {
		if s.Year == year {
			return s
		}
		if s.Year == c.DefaultYear {
			fallback = s
		}
	}
	return fallback
}

// Line returns the line with the given color in a year's scenario.
func (c *LinesConfig) Line(year, color string) (LineConfig, bool) {
	for _, line := range c.Scenario(year).Lines {
		if line.Color == color {
			return line, true
		}
	}
	return LineConfig{}, false
}

// DefaultLines returns the Borgarlína construction phases as proposed:
// two lines opening in 2025, four by 2029 and the full five-line network
// in 2030.
func DefaultLines() *LinesConfig {
	redLine := LineConfig{
		Color: "red",
		Stations: []string{
			"Vatnsendi", "Salir", "Lindir", "Smáralind", "Hamraborg",
			"Sundlaug Kópavogs", "Bakkabraut", "HR", "Landspítalinn",
			"BSÍ", "HÍ", "Lækjartorg",
		},
	}
	blueLine2025 := LineConfig{
		Color: "blue",
		Stations: []string{
			"Egilshöll", "Spöngin", "Krossmýrartorg", "Vogabyggð",
			"Laugardalur", "Hátún", "Hlemmur",
		},
	}
	blueLine := LineConfig{
		Color: "blue",
		Stations: []string{
			"Egilshöll", "Spöngin", "Krossmýrartorg", "Vogabyggð",
			"Laugardalur", "Hátún", "Hlemmur", "HÍ", "BSÍ", "Lækjartorg",
		},
	}
	greenLine := LineConfig{
		Color: "green",
		Stations: []string{
			"Salir", "Fell", "Mjódd", "Vogabyggð", "Kringlan",
			"Landspítalinn", "BSÍ", "HÍ", "Eiðistorg",
		},
	}
	orangeLine := LineConfig{
		Color: "orange",
		Stations: []string{
			"Norðlingaholt", "Árbær", "Kringlan", "Landspítalinn",
			"BSÍ", "HÍ", "Lækjartorg", "Grandi",
		},
	}
	purpleLine := LineConfig{
		Color: "purple",
		Stations: []string{
			"Vellir", "Fjörður", "Garðabær", "Hamraborg", "Kringlan",
			"Hátún", "Hlemmur", "BSÍ", "HÍ", "Lækjartorg",
		},
	}

	return &LinesConfig{
		DefaultYear: "2025",
		Scenarios: []ScenarioConfig{
			{Year: "2025", Lines: []LineConfig{redLine, blueLine2025}},
			{Year: "2029", Lines: []LineConfig{redLine, blueLine, greenLine, orangeLine}},
			{Year: "2030", Lines: []LineConfig{redLine, blueLine, greenLine, orangeLine, purpleLine}},
		},
	}
}
