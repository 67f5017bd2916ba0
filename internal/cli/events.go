package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eles-sim/eles/internal/domain"
	"github.com/eles-sim/eles/internal/sim"
)

func init() {
	rootCmd.AddCommand(eventsCmd)
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the supported event types and their default parameters",
	RunE:  runEvents,
}

func runEvents(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tLABEL\tDEFAULTS")
	for _, t := range domain.AllEventTypes() {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			t,
			t.Label(),
			formatParams(sim.DefaultParameters(t)),
		)
	}
	return w.Flush()
}
