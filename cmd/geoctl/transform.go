package main

import (
	"fmt"
	"os"
	"path/filepath"

	"borgarlina.gagnavist.is/internal/geo"

	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"
)

var transformCmd = &cobra.Command{
	Use:   "transform <input.geojson> <output.geojson>",
	Short: "Reproject a GeoJSON file to WGS84",
	Long: `Reprojects every feature of a GeoJSON file from a source coordinate
reference system to WGS84 (EPSG:4326). The station layouts and small-area
polygons are published in the Icelandic ISN93 grid (EPSG:3057), which web
map clients cannot consume directly.`,
	Args: cobra.ExactArgs(2),
	RunE: runTransform,
}

func init() {
	transformCmd.Flags().Int("source-epsg", geo.EPSGISN93, "EPSG code of the input file's coordinate reference system")
	rootCmd.AddCommand(transformCmd)
}

func runTransform(cmd *cobra.Command, args []string) error {
	inPath, outPath := args[0], args[1]

	sourceEPSG, err := cmd.Flags().GetInt("source-epsg")
	if err != nil {
		return err
	}

	projection, err := geo.ProjectionForEPSG(sourceEPSG)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", inPath, err)
	}

	reprojected := geo.ReprojectCollection(fc, projection)

	encoded, err := reprojected.MarshalJSON()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(outPath, encoded, 0o644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d features to %s\n", len(reprojected.Features), outPath)
	return nil
}
