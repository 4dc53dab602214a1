// Package transit manages the Stræto bus network data: the public GTFS
// feed and the passenger-flow figures used to rank the busiest stops.
package transit

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"borgarlina.gagnavist.is/internal/geo"

	"github.com/jamespfennell/gtfs"
	"github.com/paulmach/orb"
)

// Manager holds the parsed Stræto data and refreshes URL-backed feeds in
// the background.
type Manager struct {
	gtfsSource  string
	isLocalFile bool
	config      Config

	mu          sync.RWMutex
	gtfsData    *gtfs.Static
	lastUpdated time.Time
	ridership   []RidershipStop
	rankByName  map[string]RidershipStop

	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// InitManager loads the GTFS feed and ridership figures from the
// configured sources. URL sources are refreshed every 24 hours until
// Shutdown is called.
func InitManager(config Config) (*Manager, error) {
	isLocalFile := !strings.HasPrefix(config.GtfsSource, "http://") && !strings.HasPrefix(config.GtfsSource, "https://")

	staticData, err := loadStaticFeed(config.GtfsSource, isLocalFile)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		gtfsSource:   config.GtfsSource,
		isLocalFile:  isLocalFile,
		config:       config,
		shutdownChan: make(chan struct{}),
	}
	manager.setStaticFeed(staticData)

	if config.RidershipPath != "" {
		ridership, err := ParseRidership(config.RidershipPath)
		if err != nil {
			return nil, fmt.Errorf("error loading ridership data: %w", err)
		}
		manager.setRidership(ridership)
	}

	if !isLocalFile {
		manager.wg.Add(1)
		go manager.refreshStaticFeed()
	}

	return manager, nil
}

// Shutdown stops the background refresh and waits for it to finish.
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
	})
}

func (manager *Manager) setStaticFeed(staticData *gtfs.Static) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.gtfsData = staticData
	manager.lastUpdated = time.Now()

	if manager.config.Verbose {
		slog.Info("straeto feed updated", "source", manager.gtfsSource, "stops", len(staticData.Stops))
	}
}

func (manager *Manager) setRidership(stops []RidershipStop) {
	byName := make(map[string]RidershipStop, len(stops))
	for _, stop := range stops {
		byName[stop.Name] = stop
	}

	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.ridership = stops
	manager.rankByName = byName
}

func (manager *Manager) staticFeed() *gtfs.Static {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.gtfsData
}

func (manager *Manager) GetStops() []gtfs.Stop {
	return manager.staticFeed().Stops
}

func (manager *Manager) GetRoutes() []gtfs.Route {
	return manager.staticFeed().Routes
}

func (manager *Manager) GetAgencies() []gtfs.Agency {
	return manager.staticFeed().Agencies
}

func (manager *Manager) GetShapes() []gtfs.Shape {
	return manager.staticFeed().Shapes
}

func (manager *Manager) LastUpdated() time.Time {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.lastUpdated
}

// Ridership returns the ranked busiest stops, best rank first.
func (manager *Manager) Ridership() []RidershipStop {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.ridership
}

// RidershipRank looks up a stop's ridership rank by name. The second
// return value reports whether the stop appears in the ranking at all.
func (manager *Manager) RidershipRank(stopName string) (RidershipStop, bool) {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	stop, ok := manager.rankByName[stopName]
	return stop, ok
}

type stopWithDistance struct {
	stop     *gtfs.Stop
	distance float64
}

// StopsNear returns the stops within radiusMeters of the point, closest
// first, at most maxCount of them.
func (manager *Manager) StopsNear(point orb.Point, radiusMeters float64, maxCount int) []*gtfs.Stop {
	feed := manager.staticFeed()

	var candidates []stopWithDistance
	for i := range feed.Stops {
		stop := &feed.Stops[i]
		if stop.Latitude == nil || stop.Longitude == nil {
			continue
		}
		distance := geo.Distance(point, orb.Point{*stop.Longitude, *stop.Latitude})
		if distance <= radiusMeters {
			candidates = append(candidates, stopWithDistance{stop, distance})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	stops := make([]*gtfs.Stop, 0, maxCount)
	for i := 0; i < len(candidates) && i < maxCount; i++ {
		stops = append(stops, candidates[i].stop)
	}
	return stops
}

// RegionBounds returns the center and span of the network's shapes, or of
// its stops when the feed carries no shapes.
func (manager *Manager) RegionBounds() (lat, lon, latSpan, lonSpan float64) {
	feed := manager.staticFeed()

	var minLat, maxLat, minLon, maxLon float64
	first := true
	extend := func(pLat, pLon float64) {
		if first {
			minLat, maxLat = pLat, pLat
			minLon, maxLon = pLon, pLon
			first = false
			return
		}
		if pLat < minLat {
			minLat = pLat
		}
		if pLat > maxLat {
			maxLat = pLat
		}
		if pLon < minLon {
			minLon = pLon
		}
		if pLon > maxLon {
			maxLon = pLon
		}
	}

	for _, shape := range feed.Shapes {
		for _, point := range shape.Points {
			extend(point.Latitude, point.Longitude)
		}
	}
	if first {
		for _, stop := range feed.Stops {
			if stop.Latitude != nil && stop.Longitude != nil {
				extend(*stop.Latitude, *stop.Longitude)
			}
		}
	}

	lat = (minLat + maxLat) / 2
	lon = (minLon + maxLon) / 2
	latSpan = maxLat - minLat
	lonSpan = maxLon - minLon
	return lat, lon, latSpan, lonSpan
}
