package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/geo"
	"trip-planner-service/internal/planner"
)

var (
	inputArg  string
	configArg string
	startArg  string
	prettyArg bool
)

// planctl runs the planning pipeline offline over a JSON file, without a
// database or HTTP server. Useful for tuning planner configs.
var rootCmd = &cobra.Command{
	Use:   "planctl",
	Short: "Plan a trip from a JSON input file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configArg)
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(inputArg)
		if err != nil {
			return fmt.Errorf("read input %q: %w", inputArg, err)
		}

		var req dto.PlanRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return fmt.Errorf("parse input %q: %w", inputArg, err)
		}

		cities := make([]domain.City, 0, len(req.Cities))
		for _, c := range req.Cities {
			cities = append(cities, c.ToDomainCity())
		}

		start := startArg
		if start == "" {
			start = req.StartCityID
		}

		plan, err := planner.PlanTrip(
			cities,
			req.Trip.ToDomainParams(),
			cfg,
			geo.NewKeywordIslandClassifier(),
			planner.RoutingOptions{StartCityID: start},
		)
		if err != nil {
			return err
		}

		tripID := req.TripID
		if tripID == "" {
			tripID = uuid.NewString()
		}
		res := dto.FromTripPlan(uuid.NewString(), tripID, plan)

		enc := json.NewEncoder(os.Stdout)
		if prettyArg {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(res)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&inputArg, "input", "i", "", "Path to JSON file with cities and trip parameters")
	rootCmd.Flags().StringVarP(&configArg, "config", "c", "", "Optional planner config YAML")
	rootCmd.Flags().StringVarP(&startArg, "start", "s", "", "Start city id for the route")
	rootCmd.Flags().BoolVarP(&prettyArg, "pretty", "p", false, "Indent the JSON output")
	_ = rootCmd.MarkFlagRequired("input")
}
