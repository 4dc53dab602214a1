package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParsePopulation reads a Statistics Iceland population CSV. The file
// carries one row per small area, age group and sex with the column names
// smasvaedi, aldursflokkur, kyn and fjoldi; kyn is optional.
func ParsePopulation(path string) ([]PopulationRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading population file: %w", err)
	}
	defer f.Close() // nolint:errcheck

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading population header: %w", err)
	}

	areaCol := columnIndex(header, "smasvaedi")
	ageCol := columnIndex(header, "aldursflokkur")
	countCol := columnIndex(header, "fjoldi")
	sexCol := columnIndex(header, "kyn")

	if areaCol < 0 || ageCol < 0 || countCol < 0 {
		return nil, fmt.Errorf("population file %s is missing required columns (have %v)", path, header)
	}

	var records []PopulationRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading population row: %w", err)
		}

		count, err := strconv.ParseInt(strings.TrimSpace(row[countCol]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("population file %s line %d: bad count %q", path, line, row[countCol])
		}

		record := PopulationRecord{
			AreaID:   NormalizeAreaID(row[areaCol]),
			AgeGroup: strings.TrimSpace(row[ageCol]),
			Count:    count,
		}
		if sexCol >= 0 {
			record.Sex = strings.TrimSpace(row[sexCol])
		}
		records = append(records, record)
	}

	return records, nil
}

// columnIndex finds a header column by case-insensitive name.
func columnIndex(header []string, name string) int {
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return i
		}
	}
	return -1
}
