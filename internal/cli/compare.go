package cli

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eles-sim/eles/internal/daemon"
	"github.com/eles-sim/eles/internal/domain"
	"github.com/eles-sim/eles/internal/sim"
)

func init() {
	rootCmd.AddCommand(compareCmd)
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Simulate every event type at its defaults and compare the outcomes",
	RunE:  runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := daemon.LoadConfig()
	if err != nil {
		return err
	}
	engine := sim.NewEngine(cfg.Constants())

	results := make([]*domain.ExtinctionResult, 0, len(domain.AllEventTypes()))
	for _, t := range domain.AllEventTypes() {
		result, err := engine.RunSimulation(string(t), nil)
		if err != nil {
			return fmt.Errorf("simulate %s: %w", t, err)
		}
		results = append(results, result)
	}

	// Worst outcomes first.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Severity != results[j].Severity {
			return results[i].Severity > results[j].Severity
		}
		return results[i].EstimatedCasualties > results[j].EstimatedCasualties
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EVENT\tSEVERITY\tCASUALTIES\tECONOMIC IMPACT\tRECOVERY")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.EventType,
			r.Severity,
			formatLargeNumber(float64(r.EstimatedCasualties)),
			"$"+formatLargeNumber(r.EconomicImpactBillionUSD*1e9),
			r.RecoveryTimeEstimate(),
		)
	}
	return w.Flush()
}
