package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fathomhq/fathom/internal/model"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration commands",
	Long:  `Inspect and change the estimation configuration.`,
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getStore().LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

// configSetCmd represents the config set command
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a configuration value",
	Long: `Change a configuration value and save it. Keys:
  style                  mean, median or p80
  buffer                 buffer percentage (>= 0)
  working-hours          working hours per day
  outlier-threshold      outlier threshold multiplier
  multipliers            junior,mid,senior (e.g. 1.5,1.0,0.8)
  overlap-keywords       comma-separated keyword vocabulary`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := getStore()
		cfg, err := s.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		cfgStore, err := model.NewConfigStore(cfg)
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		key, value := args[0], args[1]
		switch key {
		case "style":
			err = cfgStore.SetEstimationStyle(model.EstimationStyle(value))
		case "buffer":
			var pct float64
			if pct, err = strconv.ParseFloat(value, 64); err != nil {
				return fmt.Errorf("invalid buffer value '%s'", value)
			}
			err = cfgStore.SetBufferPercentage(pct)
		case "working-hours":
			var hours float64
			if hours, err = strconv.ParseFloat(value, 64); err != nil {
				return fmt.Errorf("invalid working-hours value '%s'", value)
			}
			err = cfgStore.SetWorkingHoursPerDay(hours)
		case "outlier-threshold":
			var mult float64
			if mult, err = strconv.ParseFloat(value, 64); err != nil {
				return fmt.Errorf("invalid outlier-threshold value '%s'", value)
			}
			err = cfgStore.SetOutlierThresholdMultiplier(mult)
		case "multipliers":
			parts := strings.Split(value, ",")
			if len(parts) != 3 {
				return fmt.Errorf("multipliers must be three comma-separated values (junior,mid,senior)")
			}
			var m model.ExperienceMultipliers
			if m.Junior, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
				return fmt.Errorf("invalid junior multiplier '%s'", parts[0])
			}
			if m.Mid, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
				return fmt.Errorf("invalid mid multiplier '%s'", parts[1])
			}
			if m.Senior, err = strconv.ParseFloat(strings.TrimSpace(parts[2]), 64); err != nil {
				return fmt.Errorf("invalid senior multiplier '%s'", parts[2])
			}
			err = cfgStore.SetExperienceMultipliers(m)
		case "overlap-keywords":
			var keywords []string
			for _, kw := range strings.Split(value, ",") {
				if kw = strings.TrimSpace(kw); kw != "" {
					keywords = append(keywords, kw)
				}
			}
			err = cfgStore.SetOverlapKeywords(keywords)
		default:
			return fmt.Errorf("unknown configuration key '%s'", key)
		}
		if err != nil {
			return err
		}

		if err := s.SaveConfig(cfgStore.Snapshot().EstimationConfig); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}

		fmt.Printf("Set %s to %s\n", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
