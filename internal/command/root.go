package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fathomhq/fathom/internal/catalog"
	"github.com/fathomhq/fathom/internal/estimate"
	"github.com/fathomhq/fathom/internal/model"
	"github.com/fathomhq/fathom/internal/store"
)

var (
	configFile  string
	catalogFile string
	dbFile      string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fathom",
	Short: "Effort estimation from tracked time",
	Long: `Fathom estimates software-project effort by combining a seeded
feature catalog with empirically tracked time data.

It allows you to:
- Maintain a feature catalog with seed estimates and synonyms
- Record and import tracked time entries
- Inspect per-feature statistics with outlier and robustness analysis
- Compute project estimates with confidence and overlap warnings

Use "fathom [command] --help" for more information about a command.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "configuration file path")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "fathom.catalog.yml", "feature catalog file path")
	rootCmd.PersistentFlags().StringVar(&dbFile, "db", "fathom.db", "tracked-time database path")
}

// getStore creates a YAML store with the configured file
func getStore() *store.YAMLStore {
	return store.NewYAMLStore(configFile)
}

// loadCatalog loads the feature catalog from disk
func loadCatalog() (*catalog.Catalog, error) {
	features, err := getStore().LoadCatalog(catalogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	cat := catalog.New()
	if err := cat.Load(features); err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}

// saveCatalog persists the catalog back to disk
func saveCatalog(cat *catalog.Catalog) error {
	if err := getStore().SaveCatalog(catalogFile, cat.List()); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	return nil
}

// loadConfigStore loads the configuration into a versioned store
func loadConfigStore() (*model.ConfigStore, error) {
	cfg, err := getStore().LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfgStore, err := model.NewConfigStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfgStore, nil
}

// openEntries opens the tracked-time database
func openEntries() (*store.TrackedTimeStore, error) {
	entries, err := store.OpenTrackedTimeStore(dbFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open tracked-time database: %w", err)
	}
	return entries, nil
}

// newService wires a full estimation service from the configured files.
// The returned cleanup closes the tracked-time database.
func newService() (*estimate.Service, func(), error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, nil, err
	}
	cfgStore, err := loadConfigStore()
	if err != nil {
		return nil, nil, err
	}
	entries, err := openEntries()
	if err != nil {
		return nil, nil, err
	}
	service := estimate.NewService(cat, cfgStore, entries)
	return service, func() { entries.Close() }, nil
}
