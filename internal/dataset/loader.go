package dataset

import (
	"fmt"
	"path/filepath"
	"sync"

	"borgarlina.gagnavist.is/internal/geo"

	"github.com/paulmach/orb"
)

// affectedAreasCacheLimit bounds the radius-query cache; when it fills up
// the oldest half of the entries is dropped.
const affectedAreasCacheLimit = 100

// Loader reads the datasets from a data directory and caches them in
// memory. The directory follows the datathon layout:
//
//	<dataDir>/smasvaedi_2021.json                     raw small areas, EPSG:3057
//	<dataDir>/processed/cityline_<year>_4326.geojson  station layouts, WGS84
//	<dataDir>/processed/habitants/habitant_2024.csv   population by area and age
//	<dataDir>/raw/geo/schools.csv                     school register, Latin-1
type Loader struct {
	dataDir string

	mu            sync.RWMutex
	smallAreas    []SmallArea
	population    []PopulationRecord
	schools       []School
	citylines     map[string][]Station
	affectedCache map[string][]SmallArea
	affectedOrder []string
}

func NewLoader(dataDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		citylines:     make(map[string][]Station),
		affectedCache: make(map[string][]SmallArea),
	}
}

// SmallAreas returns the small areas, loading and reprojecting them on
// first use.
func (l *Loader) SmallAreas() ([]SmallArea, error) {
	l.mu.RLock()
	cached := l.smallAreas
	l.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	areas, err := ParseSmallAreas(filepath.Join(l.dataDir, "smasvaedi_2021.json"), 3057)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.smallAreas = areas
	l.mu.Unlock()
	return areas, nil
}

// Cityline returns the station layout for a scenario year.
func (l *Loader) Cityline(year string) ([]Station, error) {
	l.mu.RLock()
	cached, ok := l.citylines[year]
	l.mu.RUnlock()
	if ok {
		return cached, nil
	}

	stations, err := ParseCityline(filepath.Join(l.dataDir, "processed"), year)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.citylines[year] = stations
	l.mu.Unlock()
	return stations, nil
}

// Population returns the population records.
func (l *Loader) Population() ([]PopulationRecord, error) {
	l.mu.RLock()
	cached := l.population
	l.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	records, err := ParsePopulation(filepath.Join(l.dataDir, "processed", "habitants", "habitant_2024.csv"))
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.population = records
	l.mu.Unlock()
	return records, nil
}

// Schools returns the school register.
func (l *Loader) Schools() ([]School, error) {
	l.mu.RLock()
	cached := l.schools
	l.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	schools, err := ParseSchools(filepath.Join(l.dataDir, "raw", "geo", "schools.csv"))
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.schools = schools
	l.mu.Unlock()
	return schools, nil
}

// AreasWithinRadius returns the small areas whose geometry overlaps a
// circular buffer of radiusMeters around point. Results are cached per
// point and radius.
func (l *Loader) AreasWithinRadius(point orb.Point, radiusMeters float64) ([]SmallArea, error) {
	key := affectedCacheKey(point, radiusMeters)

	l.mu.RLock()
	cached, ok := l.affectedCache[key]
	l.mu.RUnlock()
	if ok {
		return cached, nil
	}

	areas, err := l.SmallAreas()
	if err != nil {
		return nil, err
	}

	buffer := geo.Buffer(point, radiusMeters)
	var affected []SmallArea
	for _, area := range areas {
		if geo.Intersects(area.Geometry, buffer) {
			affected = append(affected, area)
		}
	}

	l.mu.Lock()
	if len(l.affectedCache) >= affectedAreasCacheLimit {
		drop := l.affectedOrder[:affectedAreasCacheLimit/2]
		for _, k := range drop {
			delete(l.affectedCache, k)
		}
		l.affectedOrder = append([]string(nil), l.affectedOrder[affectedAreasCacheLimit/2:]...)
	}
	l.affectedCache[key] = affected
	l.affectedOrder = append(l.affectedOrder, key)
	l.mu.Unlock()

	return affected, nil
}

// ClearCaches drops all cached datasets, forcing reloads from disk.
func (l *Loader) ClearCaches() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.smallAreas = nil
	l.population = nil
	l.schools = nil
	l.citylines = make(map[string][]Station)
	l.affectedCache = make(map[string][]SmallArea)
	l.affectedOrder = nil
}

func affectedCacheKey(point orb.Point, radius float64) string {
	return fmt.Sprintf("%.7f,%.7f:%.1f", point.Lon(), point.Lat(), radius)
}
