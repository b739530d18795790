package commands

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hotelharvest/hotelharvest/internal/catalog"
	"github.com/hotelharvest/hotelharvest/internal/dedupe"
	"github.com/hotelharvest/hotelharvest/internal/export"
	"github.com/hotelharvest/hotelharvest/internal/fetch"
	"github.com/hotelharvest/hotelharvest/internal/logger"
	"github.com/hotelharvest/hotelharvest/internal/orchestrator"
	"github.com/hotelharvest/hotelharvest/internal/platform"
	"github.com/hotelharvest/hotelharvest/internal/platform/agoda"
	"github.com/hotelharvest/hotelharvest/internal/platform/booking"
	"github.com/hotelharvest/hotelharvest/internal/platform/hotelscom"
	"github.com/hotelharvest/hotelharvest/internal/platform/osm"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Collect hotel listings for catalog cities",
	Long: `Scrape hotel listings from the enabled platforms.

Cities come from the built-in worldwide catalog, optionally filtered by
region or an explicit city list. Progress persists after every city;
rerunning the same command resumes where the previous run stopped.

Examples:
  # Everything, all enabled platforms
  hotelharvest scrape --all

  # One region
  hotelharvest scrape --region asia

  # Specific cities, threshold raised
  hotelharvest scrape --cities "Tokyo,Osaka" --min-hotels 5

  # Priority-1 cities only
  hotelharvest scrape --all --high-priority`,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	flags := scrapeCmd.Flags()

	flags.Bool("all", false, "scrape every catalog city")
	flags.StringP("region", "r", "", "scrape one region (europe, asia, north-america, ...)")
	flags.String("cities", "", "comma-separated city names to scrape")
	flags.String("catalog", "", "YAML file overriding the built-in city catalog")
	flags.Bool("high-priority", false, "restrict to priority-1 cities")

	flags.StringP("output", "o", "", "output directory (default from config)")
	flags.Int("min-hotels", 0, "per-city acceptance threshold")
	flags.Int("max-retries", 0, "retry attempts per platform per city")
	flags.Bool("no-resume", false, "re-scrape cities that already have data")
	flags.Duration("timeout", 60*time.Second, "per-page navigation timeout")

	flags.Bool("booking", false, "enable the Booking.com platform")
	flags.Bool("agoda", false, "enable the Agoda platform")
	flags.Bool("hotelscom", false, "enable the Hotels.com platform")
	flags.Bool("osm", true, "enable the OpenStreetMap platform")
}

func runScrape(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cities, err := selectCities(cmd)
	if err != nil {
		logError("%v", err)
		return err
	}
	if len(cities) == 0 {
		return cmd.Help()
	}
	logger.Info("cities selected", "count", len(cities))

	registry := buildRegistry(cmd)

	outputDir := viper.GetString("output_dir")
	if flagDir, _ := cmd.Flags().GetString("output"); flagDir != "" {
		outputDir = flagDir
	}
	sink, err := export.NewSink(outputDir)
	if err != nil {
		logError("%v", err)
		return err
	}

	cfg := orchestrator.Config{
		MinHotelsPerCity: viper.GetInt("min_hotels_per_city"),
		MaxAttempts:      viper.GetInt("max_retries"),
		PlatformDelayMin: viper.GetDuration("platform_delay_min"),
		PlatformDelayMax: viper.GetDuration("platform_delay_max"),
		CityDelayMin:     viper.GetDuration("city_delay_min"),
		CityDelayMax:     viper.GetDuration("city_delay_max"),
		Resume:           viper.GetBool("resume"),
	}
	if v, _ := cmd.Flags().GetInt("min-hotels"); v > 0 {
		cfg.MinHotelsPerCity = v
	}
	if v, _ := cmd.Flags().GetInt("max-retries"); v > 0 {
		cfg.MaxAttempts = v
	}
	if noResume, _ := cmd.Flags().GetBool("no-resume"); noResume {
		cfg.Resume = false
	}

	o := orchestrator.New(cfg, registry, sink, dedupe.NewStore())
	defer func() {
		if err := o.CloseAll(); err != nil {
			logger.Warn("adapter shutdown", "error", err)
		}
	}()

	if err := o.Initialize(ctx); err != nil {
		logError("%v", err)
		return err
	}

	runErr := o.ScrapeCities(ctx, cities)
	printSummary(o.Summary())

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			logger.Info("run interrupted, progress saved")
			return nil
		}
		logError("%v", runErr)
		return runErr
	}
	return nil
}

// selectCities resolves the --all / --region / --cities flags against the
// catalog. The flags are mutually exclusive in spirit; the most specific
// one wins.
func selectCities(cmd *cobra.Command) ([]catalog.City, error) {
	if path, _ := cmd.Flags().GetString("catalog"); path != "" {
		cities, err := catalog.LoadFile(path)
		if err != nil {
			return nil, err
		}
		return cities, nil
	}

	if names, _ := cmd.Flags().GetString("cities"); names != "" {
		return catalog.ByNames(strings.Split(names, ",")), nil
	}

	if regionStr, _ := cmd.Flags().GetString("region"); regionStr != "" {
		region, err := catalog.ParseRegion(regionStr)
		if err != nil {
			return nil, err
		}
		return catalog.ByRegion(region), nil
	}

	if all, _ := cmd.Flags().GetBool("all"); all {
		if high, _ := cmd.Flags().GetBool("high-priority"); high {
			return catalog.HighPriority(), nil
		}
		return catalog.All(), nil
	}

	return nil, nil
}

// buildRegistry wires the enabled platform adapters in a fixed order:
// browser platforms first (they carry prices), OSM last as the free
// baseline.
func buildRegistry(cmd *cobra.Command) *platform.Registry {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	fetchCfg := fetch.Config{
		Timeout:  timeout,
		Headless: viper.GetBool("headless"),
	}

	enabled := func(flag, key string) bool {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetBool(flag)
			return v
		}
		return viper.GetBool(key)
	}

	registry := platform.NewRegistry()
	if enabled("booking", "enable_booking") {
		registry.Register(booking.New(fetchCfg))
	}
	if enabled("agoda", "enable_agoda") {
		registry.Register(agoda.New(fetchCfg))
	}
	if enabled("hotelscom", "enable_hotelscom") {
		registry.Register(hotelscom.New(fetchCfg))
	}
	if enabled("osm", "enable_osm") {
		registry.Register(osm.New(timeout))
	}
	return registry
}

func printSummary(sum orchestrator.Summary) {
	fmt.Println()
	fmt.Println("Run summary")
	fmt.Printf("  Hotels collected: %d\n", sum.TotalHotels)
	for name, count := range sum.TotalByPlatform {
		fmt.Printf("    %-10s %d\n", name, count)
	}
	fmt.Printf("  Cities: %d ok, %d failed, %d skipped\n",
		len(sum.SuccessfulCities), len(sum.FailedCities), len(sum.SkippedCities))
	if len(sum.FailedCities) > 0 {
		fmt.Printf("  Failed: %s\n", strings.Join(sum.FailedCities, ", "))
	}
}
