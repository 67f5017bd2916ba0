package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eles-sim/eles/internal/daemon"
	"github.com/eles-sim/eles/internal/scenario"
	"github.com/eles-sim/eles/internal/sim"
)

func init() {
	runCmd.Flags().StringVar(&runFormat, "format", "text", "Output format: text or json")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "Write the JSON result to a file")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Show the raw simulation metrics")
	rootCmd.AddCommand(runCmd)
}

var (
	runFormat  string
	runOutput  string
	runVerbose bool
)

// defaultScenario is what `eles run` without arguments simulates.
const defaultScenario = "chicxulub"

var runCmd = &cobra.Command{
	Use:   "run [SCENARIO]",
	Short: "Run a named scenario",
	Long: `Run a built-in scenario or a YAML scenario from the configured
directory. Without an argument the Chicxulub impact is simulated.
Use 'eles scenarios' to list what is available.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	name := defaultScenario
	if len(args) > 0 {
		name = args[0]
	}

	cfg, err := daemon.LoadConfig()
	if err != nil {
		return err
	}

	sc, err := scenario.Find(name, cfg.Scenarios.Dir)
	if err != nil {
		return err
	}

	engine := sim.NewEngine(cfg.Constants())
	result, err := engine.RunScenario(sc)
	if err != nil {
		return err
	}

	if runOutput == "" && runFormat != "json" {
		fmt.Printf("Scenario: %s\n", sc.Name)
		if sc.Description != "" {
			fmt.Println(sc.Description)
		}
		fmt.Println()
	}
	return emitResult(result, runFormat, runOutput, runVerbose)
}
