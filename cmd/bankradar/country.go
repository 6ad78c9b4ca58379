package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amishk599/bankradar/internal/config"
)

var (
	citiesFile   string
	citiesMinPop int
)

var countryCmd = &cobra.Command{
	Use:   "country <location>",
	Short: "Resolve a location to a country",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCountry,
}

func init() {
	countryCmd.Flags().StringVar(&citiesFile, "cities", "", "city CSV to enable the city lookup (default: cities.file from config)")
	countryCmd.Flags().IntVar(&citiesMinPop, "min-population", 0, "skip cities below this population")
	rootCmd.AddCommand(countryCmd)
}

func runCountry(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg := &config.Config{Cities: config.CitiesConfig{File: citiesFile, MinPopulation: citiesMinPop}}
	if citiesFile == "" {
		// The config is optional here; without it only the built-in tables apply.
		if loaded, err := loadConfig(cfgPath); err == nil {
			cfg = loaded
		}
	}
	n := loadCountries(cfg, logger)

	location := strings.Join(args, " ")
	m := n.Normalize(location)
	if m == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\tno country\n", location)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", location, m.Code, m.Name, m.Confidence)
	return nil
}
