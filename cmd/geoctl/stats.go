package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"borgarlina.gagnavist.is/internal/config"
	"borgarlina.gagnavist.is/internal/coverage"
	"borgarlina.gagnavist.is/internal/dataset"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print a coverage summary for a scenario year",
	Long: `Computes and prints the population coverage of a scenario year's
station network: per-station catchment populations, the share of small
areas reached and the population density distribution.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().String("year", "", "scenario year (default year when empty)")
	statsCmd.Flags().Float64("radius", 400, "walking distance radius in meters")
	statsCmd.Flags().String("lines-config", "", "line scenarios config file (built-in scenarios when empty)")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	yearFlag, err := cmd.Flags().GetString("year")
	if err != nil {
		return err
	}
	radius, err := cmd.Flags().GetFloat64("radius")
	if err != nil {
		return err
	}
	linesPath, err := cmd.Flags().GetString("lines-config")
	if err != nil {
		return err
	}

	lines, err := config.Load(linesPath)
	if err != nil {
		return err
	}
	scenario := lines.Scenario(yearFlag)

	loader := dataset.NewLoader(viper.GetString("data-dir"))
	engine := coverage.NewEngine(loader, loader)

	stations, err := loader.Cityline(scenario.Year)
	if err != nil {
		return err
	}

	points := make([]orb.Point, len(stations))
	for i, station := range stations {
		points[i] = station.Point
	}

	network, err := engine.NetworkCoverage(points, radius)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scenario: %s (%d lines, %d stations)\n", scenario.Year, len(scenario.Lines), len(stations))
	fmt.Fprintf(out, "Radius: %.0f m\n", radius)
	fmt.Fprintf(out, "Small areas reached: %d of %d (%.2f%%)\n\n",
		network.CoveredAreas, network.TotalAreas, network.CoveragePercentage)

	type stationRow struct {
		name  string
		stats coverage.StationStats
	}
	rows := make([]stationRow, 0, len(stations))
	for _, station := range stations {
		stats, err := engine.StationStatistics(station.Point, radius)
		if err != nil {
			return err
		}
		rows = append(rows, stationRow{name: station.Name, stats: stats})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].stats.TotalPopulation > rows[j].stats.TotalPopulation
	})

	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "STATION\tPOPULATION\tAREAS\tDENSITY")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.1f\n",
			row.name, row.stats.TotalPopulation, row.stats.AffectedAreas, row.stats.PopulationDensity)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, summary, err := engine.AreaDensities()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nArea density (per km2): mean %.1f, stddev %.1f, min %.1f, max %.1f\n",
		summary.Mean, summary.StdDev, summary.Min, summary.Max)

	return nil
}
