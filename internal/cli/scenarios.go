package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eles-sim/eles/internal/daemon"
	"github.com/eles-sim/eles/internal/scenario"
)

func init() {
	rootCmd.AddCommand(scenariosCmd)
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List built-in and configured scenarios",
	RunE:  runScenarios,
}

func runScenarios(cmd *cobra.Command, args []string) error {
	cfg, err := daemon.LoadConfig()
	if err != nil {
		return err
	}

	scenarios, err := scenario.All(cfg.Scenarios.Dir)
	if err != nil {
		return fmt.Errorf("load scenarios: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEVENT\tDESCRIPTION")
	for _, sc := range scenarios {
		fmt.Fprintf(w, "%s\t%s\t%s\n", sc.Name, sc.EventType, sc.Description)
	}
	return w.Flush()
}
