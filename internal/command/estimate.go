package command

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fathomhq/fathom/internal/estimate"
	"github.com/fathomhq/fathom/internal/format"
	"github.com/fathomhq/fathom/internal/model"
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate <feature>...",
	Short: "Compute a project estimate",
	Long: `Compute a project estimate for the given features. Names are
resolved against the catalog including synonyms; unresolved names become
new-feature line items with the default seed estimate.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("level")
		defaultSeed, _ := cmd.Flags().GetFloat64("default-seed")
		asJSON, _ := cmd.Flags().GetBool("json")

		service, cleanup, err := newService()
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := service.Estimate(estimate.Request{
			FeatureNames:     args,
			Level:            model.ExperienceLevel(level),
			DefaultSeedHours: defaultSeed,
		})
		if err != nil {
			return err
		}

		if asJSON {
			cfg, err := getStore().LoadConfig()
			if err != nil {
				return err
			}
			output, err := format.NewJSONFormatter(cfg).FormatEstimate(result)
			if err != nil {
				return err
			}
			fmt.Println(output)
			return nil
		}

		printEstimate(result)
		return nil
	},
}

func printEstimate(result *model.ProjectEstimate) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	fmt.Printf("%s\n\n", cyan("Project Estimate"))
	for _, line := range result.LineItems {
		marker := ""
		if line.IsNewFeature {
			marker = yellow(" (new)")
		}
		fmt.Printf("  %-30s %-8s %8.1fh  %-14s %s%s\n",
			line.FeatureName, line.Team, line.EstimatedHours, line.Basis, line.Confidence, marker)
	}

	fmt.Println()
	fmt.Printf("  Frontend: %8.1fh\n", result.FrontendTotalHours)
	fmt.Printf("  Backend:  %8.1fh\n", result.BackendTotalHours)
	fmt.Printf("  %s %8.1fh\n", green("Total:   "), result.GrandTotalHours)
	if result.BufferHours > 0 {
		fmt.Printf("  Buffer:   %8.1fh (not included in total)\n", result.BufferHours)
	}

	for _, warning := range result.Warnings {
		fmt.Printf("\n%s features %s share keyword '%s': %s\n",
			yellow("overlap:"), strings.Join(warning.Features, " and "), warning.Keyword, warning.Suggestion)
	}
}

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats <feature>",
	Short: "Show per-feature statistics",
	Long: `Show the statistics bundle for one catalog feature: sample count,
mean, median, target percentile, standard deviation, outlier flags and
robust statistics.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, cleanup, err := newService()
		if err != nil {
			return err
		}
		defer cleanup()

		stats, err := service.StatisticsFor(args[0])
		if err != nil {
			return err
		}

		cfg, err := getStore().LoadConfig()
		if err != nil {
			return err
		}
		output, err := format.NewJSONFormatter(cfg).FormatStatistics(stats)
		if err != nil {
			return err
		}
		fmt.Println(output)
		return nil
	},
}

func init() {
	estimateCmd.Flags().StringP("level", "l", "", "experience level (junior, mid or senior)")
	estimateCmd.Flags().Float64("default-seed", 0, "seed hours for features not in the catalog")
	estimateCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(statsCmd)
}
