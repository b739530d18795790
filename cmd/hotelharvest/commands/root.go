// Package commands implements the CLI commands for hotelharvest.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "hotelharvest",
	Short: "Multi-platform hotel listing collector",
	Long: `Hotelharvest collects hotel listings for a worldwide city catalog
from multiple sources: Booking.com, Agoda, Hotels.com and the free
OpenStreetMap Overpass API.

Runs are incremental and resumable: results are persisted after every
city, and a restarted run skips cities that already have data on disk.

Examples:
  # Collect every catalog city from OpenStreetMap (free, no key)
  hotelharvest scrape --all

  # One region, browser platforms included
  HOTELHARVEST_ENABLE_BOOKING=true hotelharvest scrape --region europe

  # Specific cities only
  hotelharvest scrape --cities "Lisbon,Porto"

  # Inspect collected data and remaining work
  hotelharvest report`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.hotelharvest.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".hotelharvest")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("HOTELHARVEST")
	viper.AutomaticEnv()

	// Legacy environment names kept for existing deployments.
	_ = viper.BindEnv("enable_booking", "HOTELHARVEST_ENABLE_BOOKING", "ENABLE_BOOKING")
	_ = viper.BindEnv("enable_agoda", "HOTELHARVEST_ENABLE_AGODA", "ENABLE_AGODA")
	_ = viper.BindEnv("enable_hotelscom", "HOTELHARVEST_ENABLE_HOTELSCOM", "ENABLE_HOTELS")
	_ = viper.BindEnv("enable_osm", "HOTELHARVEST_ENABLE_OSM", "ENABLE_OSM")
	_ = viper.BindEnv("min_hotels_per_city", "HOTELHARVEST_MIN_HOTELS_PER_CITY", "MIN_HOTELS_PER_CITY")
	_ = viper.BindEnv("max_retries", "HOTELHARVEST_MAX_RETRIES", "MAX_RETRIES")
	_ = viper.BindEnv("output_dir", "HOTELHARVEST_OUTPUT_DIR", "OUTPUT_DIR")
	_ = viper.BindEnv("headless", "HOTELHARVEST_HEADLESS", "HEADLESS")
	_ = viper.BindEnv("resume", "HOTELHARVEST_RESUME", "SKIP_SCRAPED_CITIES")
	_ = viper.BindEnv("city_delay_min", "HOTELHARVEST_CITY_DELAY_MIN", "CITY_DELAY_MIN")
	_ = viper.BindEnv("city_delay_max", "HOTELHARVEST_CITY_DELAY_MAX", "CITY_DELAY_MAX")
	_ = viper.BindEnv("platform_delay_min", "HOTELHARVEST_PLATFORM_DELAY_MIN", "DELAY_MIN")
	_ = viper.BindEnv("platform_delay_max", "HOTELHARVEST_PLATFORM_DELAY_MAX", "DELAY_MAX")

	// Defaults: OSM on (free), browser platforms opt-in, resume on.
	viper.SetDefault("enable_osm", true)
	viper.SetDefault("resume", true)
	viper.SetDefault("headless", true)
	viper.SetDefault("output_dir", "output")
	viper.SetDefault("min_hotels_per_city", 1)
	viper.SetDefault("max_retries", 3)

	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
