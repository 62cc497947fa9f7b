package command

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fathomhq/fathom/internal/model"
	"github.com/fathomhq/fathom/internal/store"
)

// trackCmd represents the track command
var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Tracked-time commands",
	Long:  `Record and import tracked time entries.`,
}

// trackAddCmd represents the track add command
var trackAddCmd = &cobra.Command{
	Use:   "add <feature> <hours>",
	Short: "Record a tracked-time entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		hours, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid hours value '%s'", args[1])
		}

		team, _ := cmd.Flags().GetString("team")
		member, _ := cmd.Flags().GetString("member")
		category, _ := cmd.Flags().GetString("category")
		date, _ := cmd.Flags().GetString("date")

		entry := model.NewTrackedTimeEntry(model.Team(team), member, args[0], hours)
		entry.Category = category
		if date != "" {
			parsed, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("invalid date '%s', expected YYYY-MM-DD", date)
			}
			entry.Date = parsed
		}

		entries, err := openEntries()
		if err != nil {
			return err
		}
		defer entries.Close()

		if err := entries.Insert(*entry); err != nil {
			return err
		}

		fmt.Printf("Recorded %.1fh on '%s' for %s\n", hours, args[0], member)
		return nil
	},
}

// trackImportCmd represents the track import command
var trackImportCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import tracked-time entries from CSV",
	Long: `Import tracked-time entries from a CSV file with columns
team, member, feature, hours and optionally category and date.
Invalid rows are reported and skipped; valid rows are imported.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open '%s': %w", args[0], err)
		}
		defer file.Close()

		parsed, rowErrs, err := store.ImportCSV(file)
		if err != nil {
			return err
		}

		yellow := color.New(color.FgYellow).SprintFunc()
		for _, rowErr := range rowErrs {
			fmt.Printf("%s %s\n", yellow("skipped:"), rowErr.Error())
		}

		if len(parsed) == 0 {
			fmt.Println("No valid rows to import.")
			return nil
		}

		entries, err := openEntries()
		if err != nil {
			return err
		}
		defer entries.Close()

		inserted, err := entries.InsertBatch(parsed)
		if err != nil {
			return fmt.Errorf("failed to import entries: %w", err)
		}

		fmt.Printf("Imported %d entries (%d rows skipped)\n", inserted, len(rowErrs))
		return nil
	},
}

// trackListCmd represents the track list command
var trackListCmd = &cobra.Command{
	Use:   "list [feature]",
	Short: "List tracked-time entries",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := openEntries()
		if err != nil {
			return err
		}
		defer entries.Close()

		var list []model.TrackedTimeEntry
		if len(args) == 1 {
			list, err = entries.ListByFeature(args[0])
		} else {
			list, err = entries.ListEntries()
		}
		if err != nil {
			return err
		}

		if len(list) == 0 {
			fmt.Println("No tracked entries.")
			return nil
		}
		for _, entry := range list {
			date := ""
			if !entry.Date.IsZero() {
				date = entry.Date.Format("2006-01-02")
			}
			fmt.Printf("%s  %-8s %-12s %-30s %6.1fh  %s\n",
				entry.ID, entry.Team, entry.Member, entry.FeatureLabel, entry.Hours, date)
		}
		return nil
	},
}

func init() {
	trackAddCmd.Flags().StringP("team", "t", "", "team (frontend, backend or both)")
	trackAddCmd.Flags().StringP("member", "m", "", "team member name")
	trackAddCmd.Flags().String("category", "", "category tag")
	trackAddCmd.Flags().String("date", "", "entry date (YYYY-MM-DD)")

	trackCmd.AddCommand(trackAddCmd)
	trackCmd.AddCommand(trackImportCmd)
	trackCmd.AddCommand(trackListCmd)
	rootCmd.AddCommand(trackCmd)
}
