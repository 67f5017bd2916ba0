// Package cli implements the eles command-line interface using Cobra.
// Each subcommand maps to one capability of the simulation pipeline
// (simulate, run, compare, assess, serve).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "eles",
	Short: "E.L.E.S. — Extinction-Level Event Simulator",
	Long: `E.L.E.S. simulates extinction-level events and assesses their aftermath.

Six hazard models (asteroid, supervolcano, pandemic, climate_collapse,
gamma_ray_burst, ai_extinction) share one pipeline: severity on a 1-6
scale, casualty and economic estimates, and survival / risk / recovery
assessment models.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
