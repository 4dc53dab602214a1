package main

import (
	"fmt"
	"log/slog"
	"os"

	"borgarlina.gagnavist.is/geodb"
	"borgarlina.gagnavist.is/internal/appconf"
	"borgarlina.gagnavist.is/internal/config"
	"borgarlina.gagnavist.is/internal/dataset"
	"borgarlina.gagnavist.is/internal/logging"

	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import the datasets into a SQLite store",
	Long: `Loads the small areas, population figures, school register and
station layouts from the data directory and writes them to a SQLite
database for downstream analysis.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().String("db", "borgarlina.db", "path of the SQLite database to write")
	importCmd.Flags().Int("census-year", 2024, "census year of the population figures")
	importCmd.Flags().String("lines-config", "", "line scenarios config file (built-in scenarios when empty)")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dbPath, err := cmd.Flags().GetString("db")
	if err != nil {
		return err
	}
	censusYear, err := cmd.Flags().GetInt("census-year")
	if err != nil {
		return err
	}
	linesPath, err := cmd.Flags().GetString("lines-config")
	if err != nil {
		return err
	}

	verbose := viper.GetBool("verbose")
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewStructuredLogger(os.Stderr, level)

	lines, err := config.Load(linesPath)
	if err != nil {
		return err
	}

	client, err := geodb.NewClient(geodb.NewConfig(dbPath, appconf.Development, verbose))
	if err != nil {
		return err
	}
	defer logging.SafeCloseWithLogging(client, logger, "dataset database")

	loader := dataset.NewLoader(viper.GetString("data-dir"))

	areas, err := loader.SmallAreas()
	if err != nil {
		return err
	}
	for _, area := range areas {
		encoded, err := geojson.NewGeometry(area.Geometry).MarshalJSON()
		if err != nil {
			return fmt.Errorf("encoding area %s: %w", area.ID, err)
		}
		row := geodb.SmallArea{
			ID:       area.ID,
			Label:    area.Label,
			Geometry: string(encoded),
			AreaKm2:  area.AreaKm2,
		}
		if err := client.Queries.UpsertSmallArea(ctx, row); err != nil {
			return fmt.Errorf("importing area %s: %w", area.ID, err)
		}
	}
	logger.Info("imported small areas", "count", len(areas))

	records, err := loader.Population()
	if err != nil {
		return err
	}
	rows := make([]geodb.PopulationRow, len(records))
	for i, record := range records {
		rows[i] = geodb.PopulationRow{
			AreaID:   record.AreaID,
			Year:     censusYear,
			AgeGroup: record.AgeGroup,
			Sex:      record.Sex,
			Count:    record.Count,
		}
	}
	if err := client.Queries.InsertPopulation(ctx, rows); err != nil {
		return fmt.Errorf("importing population: %w", err)
	}
	logger.Info("imported population rows", "count", len(rows), "census_year", censusYear)

	schools, err := loader.Schools()
	if err != nil {
		return err
	}
	for _, school := range schools {
		row := geodb.School{
			Name: school.Name,
			Lat:  school.Point.Lat(),
			Lon:  school.Point.Lon(),
		}
		if err := client.Queries.InsertSchool(ctx, row); err != nil {
			return fmt.Errorf("importing school %s: %w", school.Name, err)
		}
	}
	logger.Info("imported schools", "count", len(schools))

	for _, year := range lines.Years() {
		stations, err := loader.Cityline(year)
		if err != nil {
			return fmt.Errorf("loading stations for %s: %w", year, err)
		}
		for _, station := range stations {
			row := geodb.Station{
				Year:  year,
				Name:  station.Name,
				Lines: station.Lines,
				Lat:   station.Point.Lat(),
				Lon:   station.Point.Lon(),
			}
			if err := client.Queries.UpsertStation(ctx, row); err != nil {
				return fmt.Errorf("importing station %s: %w", station.Name, err)
			}
		}
		logger.Info("imported stations", "year", year, "count", len(stations))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "import complete: %s\n", dbPath)
	return nil
}
