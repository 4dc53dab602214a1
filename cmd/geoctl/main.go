// geoctl prepares and inspects the datasets behind the coverage API. It
// reprojects the published GeoJSON sources to WGS84, imports the datasets
// into a SQLite store and prints coverage summaries.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "geoctl",
	Short: "Dataset tooling for the Borgarlína coverage analysis",
	Long: `geoctl prepares the datasets served by the coverage API.

The published sources arrive in mixed shapes: small-area polygons in the
Icelandic ISN93 grid (EPSG:3057), station layouts as GeoJSON, population
figures and school registers as CSV. geoctl reprojects, imports and
summarizes them.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default geoctl.yaml in the working directory)")
	rootCmd.PersistentFlags().String("data-dir", "data", "directory holding the published datasets")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose logging")

	for _, flag := range []string{"data-dir", "verbose"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("failed to bind %s flag: %v", flag, err))
		}
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("geoctl")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("GEOCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; flags and env carry the defaults.
	_ = viper.ReadInConfig()
}
