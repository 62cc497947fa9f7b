package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fathomhq/fathom/internal/catalog"
	"github.com/fathomhq/fathom/internal/model"
)

// featureCmd represents the feature command
var featureCmd = &cobra.Command{
	Use:   "feature",
	Short: "Feature catalog commands",
	Long:  `Manage the feature catalog and its seed estimates.`,
}

// featureAddCmd represents the feature add command
var featureAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a feature to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		team, _ := cmd.Flags().GetString("team")
		seed, _ := cmd.Flags().GetFloat64("seed")
		category, _ := cmd.Flags().GetString("category")
		synonyms, _ := cmd.Flags().GetStringSlice("synonym")
		notes, _ := cmd.Flags().GetString("notes")

		feature, err := cat.AddFeature(catalog.FeatureInput{
			Name:          args[0],
			Team:          model.Team(team),
			Category:      category,
			SeedTimeHours: seed,
			Synonyms:      synonyms,
			Notes:         notes,
		})
		if err != nil {
			return err
		}

		if err := saveCatalog(cat); err != nil {
			return err
		}

		fmt.Printf("Feature '%s' added with ID %s\n", feature.Name, feature.ID)
		return nil
	},
}

// featureListCmd represents the feature list command
var featureListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog features",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		features := cat.List()
		if len(features) == 0 {
			fmt.Println("No features in the catalog.")
			return nil
		}

		for _, f := range features {
			line := fmt.Sprintf("%s  %-30s %-8s %6.1fh", f.ID, f.Name, f.Team, f.SeedTimeHours)
			if len(f.Synonyms) > 0 {
				line += "  (" + strings.Join(f.Synonyms, ", ") + ")"
			}
			fmt.Println(line)
		}
		return nil
	},
}

// featureSearchCmd represents the feature search command
var featureSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search features by name or synonym",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		matches := cat.Search(args[0])
		if len(matches) == 0 {
			fmt.Printf("No features match '%s'\n", args[0])
			return nil
		}
		for _, f := range matches {
			fmt.Printf("%s  %s (%s)\n", f.ID, f.Name, f.Team)
		}
		return nil
	},
}

// featureSetSeedCmd represents the feature set-seed command
var featureSetSeedCmd = &cobra.Command{
	Use:   "set-seed <id> <hours>",
	Short: "Update a feature's seed time",
	Long:  `Update a feature's seed time. The previous value is kept in the feature's history.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		hours, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid hours value '%s'", args[1])
		}

		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		if err := cat.UpdateSeedTime(model.FeatureID(args[0]), hours); err != nil {
			return err
		}
		if err := saveCatalog(cat); err != nil {
			return err
		}

		fmt.Printf("Seed time for %s set to %.1fh\n", args[0], hours)
		return nil
	},
}

// featureRemoveCmd represents the feature remove command
var featureRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a feature from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		if err := cat.Remove(model.FeatureID(args[0])); err != nil {
			return err
		}
		if err := saveCatalog(cat); err != nil {
			return err
		}

		fmt.Printf("Feature %s removed\n", args[0])
		return nil
	},
}

func init() {
	featureAddCmd.Flags().StringP("team", "t", "", "team affinity (frontend, backend or both)")
	featureAddCmd.Flags().Float64P("seed", "s", 0, "seed time in hours")
	featureAddCmd.Flags().String("category", "", "category tag")
	featureAddCmd.Flags().StringSlice("synonym", nil, "synonym (repeatable)")
	featureAddCmd.Flags().String("notes", "", "free-text notes")

	featureCmd.AddCommand(featureAddCmd)
	featureCmd.AddCommand(featureListCmd)
	featureCmd.AddCommand(featureSearchCmd)
	featureCmd.AddCommand(featureSetSeedCmd)
	featureCmd.AddCommand(featureRemoveCmd)
	rootCmd.AddCommand(featureCmd)
}
