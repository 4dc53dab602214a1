package transit

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// RidershipStop is one row of the passenger-flow ranking.
type RidershipStop struct {
	Name       string
	Passengers int64
	Rank       int
}

// ParseRidership reads the passenger-flow CSV. The file carries a header
// with "stop_name", a yearly passenger-flow column and a popularity
// rating (1 = busiest).
func ParseRidership(path string) ([]RidershipStop, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening ridership file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading ridership file: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("ridership file %s has no data rows", path)
	}

	header := records[0]
	nameCol := ridershipColumn(header, "stop_name")
	flowCol := ridershipColumn(header, "passenger flow")
	rankCol := ridershipColumn(header, "popularity rating")
	if nameCol < 0 || flowCol < 0 || rankCol < 0 {
		return nil, fmt.Errorf("ridership file %s is missing expected columns", path)
	}

	var stops []RidershipStop
	for _, row := range records[1:] {
		if len(row) <= nameCol || len(row) <= flowCol || len(row) <= rankCol {
			continue
		}

		passengers, err := strconv.ParseInt(strings.TrimSpace(row[flowCol]), 10, 64)
		if err != nil {
			continue
		}
		rank, err := strconv.Atoi(strings.TrimSpace(row[rankCol]))
		if err != nil {
			continue
		}

		stops = append(stops, RidershipStop{
			Name:       strings.TrimSpace(row[nameCol]),
			Passengers: passengers,
			Rank:       rank,
		})
	}

	sort.Slice(stops, func(i, j int) bool { return stops[i].Rank < stops[j].Rank })
	return stops, nil
}

// ridershipColumn finds a header column whose name contains the wanted
// fragment, case-insensitively.
func ridershipColumn(header []string, fragment string) int {
	for i, name := range header {
		if strings.Contains(strings.ToLower(strings.TrimSpace(name)), fragment) {
			return i
		}
	}
	return -1
}
