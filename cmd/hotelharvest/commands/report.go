package commands

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hotelharvest/hotelharvest/internal/catalog"
	"github.com/hotelharvest/hotelharvest/internal/logger"
	"github.com/hotelharvest/hotelharvest/internal/progress"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show collection status and remaining work",
	Long: `Report summarizes the output directory: how many hotels are on
disk per region, which catalog cities are done versus remaining, and a
projection of the final dataset size based on the average yield so far.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringP("output", "o", "", "output directory (default from config)")
	reportCmd.Flags().Bool("remaining", false, "list every remaining city")
	reportCmd.Flags().Bool("countries", false, "break down coverage per country")
	reportCmd.Flags().Int("top", 0, "show the N best-yielding cities")
}

func runReport(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: true,
	})

	outputDir := viper.GetString("output_dir")
	if flagDir, _ := cmd.Flags().GetString("output"); flagDir != "" {
		outputDir = flagDir
	}

	tracker := progress.NewTracker(outputDir)
	cities := catalog.All()

	scraped := tracker.ScrapedCities()
	total := tracker.TotalHotels()
	var completed, remaining []catalog.City
	for _, c := range cities {
		if scraped[c.Key()] {
			completed = append(completed, c)
		} else {
			remaining = append(remaining, c)
		}
	}

	header := color.New(color.Bold, color.FgCyan)
	ok := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)

	header.Println("Collection status")
	fmt.Printf("  Output dir:    %s\n", outputDir)
	fmt.Printf("  Hotels:        %s\n", humanize.Comma(int64(total)))
	ok.Printf("  Completed:     %d/%d cities (%d%%)\n",
		len(completed), len(cities), percent(len(completed), len(cities)))
	warn.Printf("  Remaining:     %d/%d cities\n", len(remaining), len(cities))

	regionCounts := tracker.RegionCounts()
	if len(regionCounts) > 0 {
		fmt.Println()
		header.Println("By region")
		regions := make([]catalog.Region, 0, len(regionCounts))
		for r := range regionCounts {
			regions = append(regions, r)
		}
		sort.Slice(regions, func(i, j int) bool { return regions[i] < regions[j] })
		for _, r := range regions {
			fmt.Printf("  %-16s %s\n", r, humanize.Comma(int64(regionCounts[r])))
		}
	}

	if len(completed) > 0 && len(remaining) > 0 {
		avg := float64(total) / float64(len(completed))
		projected := total + int(avg*float64(len(remaining)))
		fmt.Println()
		header.Println("Projection")
		fmt.Printf("  Average yield: %.1f hotels/city\n", avg)
		fmt.Printf("  Projected final size: ~%s hotels\n", humanize.Comma(int64(projected)))
	}

	if topN, _ := cmd.Flags().GetInt("top"); topN > 0 {
		counts := tracker.CityCounts()
		type cityCount struct {
			key   string
			count int
		}
		ranked := make([]cityCount, 0, len(counts))
		for k, n := range counts {
			ranked = append(ranked, cityCount{k, n})
		}
		sort.Slice(ranked, func(i, j int) bool {
			if ranked[i].count != ranked[j].count {
				return ranked[i].count > ranked[j].count
			}
			return ranked[i].key < ranked[j].key
		})
		if topN > len(ranked) {
			topN = len(ranked)
		}
		fmt.Println()
		header.Printf("Top %d cities\n", topN)
		for _, cc := range ranked[:topN] {
			fmt.Printf("  %-32s %s\n", cc.key, humanize.Comma(int64(cc.count)))
		}
	}

	if byCountry, _ := cmd.Flags().GetBool("countries"); byCountry {
		type countryStat struct {
			cities    int
			completed int
		}
		stats := make(map[string]*countryStat)
		for _, c := range cities {
			st := stats[c.Country]
			if st == nil {
				st = &countryStat{}
				stats[c.Country] = st
			}
			st.cities++
			if scraped[c.Key()] {
				st.completed++
			}
		}
		hotelCounts := tracker.CountryCounts()

		names := make([]string, 0, len(stats))
		for name := range stats {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Println()
		header.Printf("By country (%d countries)\n", len(names))
		for _, name := range names {
			st := stats[name]
			fmt.Printf("  %-24s %2d/%-2d cities  %s hotels\n",
				name, st.completed, st.cities, humanize.Comma(int64(hotelCounts[name])))
		}
	}

	if list, _ := cmd.Flags().GetBool("remaining"); list && len(remaining) > 0 {
		fmt.Println()
		header.Println("Remaining cities")
		sort.Slice(remaining, func(i, j int) bool {
			if remaining[i].Priority != remaining[j].Priority {
				return remaining[i].Priority < remaining[j].Priority
			}
			return remaining[i].Name < remaining[j].Name
		})
		for _, c := range remaining {
			fmt.Printf("  [P%d] %s, %s (%s)\n", c.Priority, c.Name, c.Country, c.Region)
		}
	}

	return nil
}

func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return part * 100 / whole
}
