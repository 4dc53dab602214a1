package restapi

import (
	"net/http"

	"borgarlina.gagnavist.is/internal/dataset"
	"borgarlina.gagnavist.is/internal/geo"
	"borgarlina.gagnavist.is/internal/models"
	"borgarlina.gagnavist.is/internal/utils"

	"github.com/paulmach/orb"
)

// connectionsMaxStops caps how many nearby bus stops one response lists.
const connectionsMaxStops = 10

// stationConnectionsHandler lists the Stræto stops within walking distance
// of a cityline station, with distance, compass direction and ridership
// figures where available. Requires a configured GTFS feed.
func (api *RestAPI) stationConnectionsHandler(w http.ResponseWriter, r *http.Request) {
	if api.Transit == nil {
		api.sendNotFound(w, r)
		return
	}

	year, fieldErrors := api.resolveYear(r)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	radius, fieldErrors := api.parseRadius(r)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	name, err := utils.ValidateAndSanitizeQuery(r.URL.Query().Get("station"))
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"station": {err.Error()}})
		return
	}
	if name == "" {
		api.validationErrorResponse(w, r, map[string][]string{"station": {"station is required"}})
		return
	}

	stations, err := api.Loader.Cityline(year)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	var station *dataset.Station
	for i := range stations {
		if stations[i].Name == name {
			station = &stations[i]
			break
		}
	}
	if station == nil {
		api.sendNotFound(w, r)
		return
	}

	stops := api.Transit.StopsNear(station.Point, radius, connectionsMaxStops)

	connections := make([]models.BusConnectionModel, 0, len(stops))
	for _, stop := range stops {
		stopPoint := orb.Point{*stop.Longitude, *stop.Latitude}
		connection := models.BusConnectionModel{
			Name:           stop.Name,
			DistanceMeters: geo.Distance(station.Point, stopPoint),
			Direction:      geo.CompassDirection(station.Point, stopPoint),
			Lat:            stopPoint.Lat(),
			Lon:            stopPoint.Lon(),
		}
		if ridership, ok := api.Transit.RidershipRank(stop.Name); ok {
			connection.Rank = ridership.Rank
			connection.Passengers = ridership.Passengers
		}
		connections = append(connections, connection)
	}

	references := models.NewEmptyReferences()
	references.Stations = append(references.Stations, models.StationReference{
		Name:  station.Name,
		Lines: station.LineColors(),
		Lat:   station.Point.Lat(),
		Lon:   station.Point.Lon(),
	})

	api.sendResponse(w, r, models.NewListResponse(connections, references))
}
