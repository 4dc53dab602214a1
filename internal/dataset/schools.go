package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"golang.org/x/text/encoding/charmap"
)

// ParseSchools reads the school register CSV. The source file is encoded
// in Latin-1 to carry Icelandic characters, so it is decoded through
// ISO 8859-1 before parsing.
func ParseSchools(path string) ([]School, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading schools file: %w", err)
	}
	defer f.Close() // nolint:errcheck

	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(f))
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading schools header: %w", err)
	}

	nameCol := columnIndex(header, "Name")
	latCol := columnIndex(header, "Location Lat")
	lonCol := columnIndex(header, "Location Lng")
	if nameCol < 0 || latCol < 0 || lonCol < 0 {
		return nil, fmt.Errorf("schools file %s is missing required columns (have %v)", path, header)
	}

	var schools []School
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading schools row: %w", err)
		}

		lat, latErr := strconv.ParseFloat(strings.TrimSpace(row[latCol]), 64)
		lon, lonErr := strconv.ParseFloat(strings.TrimSpace(row[lonCol]), 64)
		if latErr != nil || lonErr != nil {
			// Rows without usable coordinates cannot be mapped.
			continue
		}

		schools = append(schools, School{
			Name:  strings.TrimSpace(row[nameCol]),
			Point: orb.Point{lon, lat},
		})
	}

	return schools, nil
}
