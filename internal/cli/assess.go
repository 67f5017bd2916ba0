package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/eles-sim/eles/internal/assess"
)

func init() {
	assessCmd.PersistentFlags().StringVarP(&assessOutput, "output", "o", "", "Write the assessment to a file instead of stdout")
	assessCmd.AddCommand(assessSurvivalCmd)
	assessCmd.AddCommand(assessRiskCmd)
	assessCmd.AddCommand(assessRecoveryCmd)
	rootCmd.AddCommand(assessCmd)
}

var assessOutput string

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run an assessment model on a context file",
	Long: `Run one of the assessment models on a YAML (or JSON) context file
and print the result as JSON.

Example context for 'assess survival':
  event_type: pandemic
  severity: 4
  population_in_area: 50000000
  infrastructure_damage: 0.4`,
}

var assessSurvivalCmd = &cobra.Command{
	Use:   "survival CONTEXT_FILE",
	Short: "Predict survival rates and survivor counts",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssessSurvival,
}

var assessRiskCmd = &cobra.Command{
	Use:   "risk CONTEXT_FILE",
	Short: "Score a risk profile against reference hazards",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssessRisk,
}

var assessRecoveryCmd = &cobra.Command{
	Use:   "recovery CONTEXT_FILE",
	Short: "Estimate per-system recovery timelines",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssessRecovery,
}

func runAssessSurvival(cmd *cobra.Command, args []string) error {
	var sc assess.SurvivalContext
	if err := decodeContext(args[0], &sc); err != nil {
		return err
	}
	return emitAssessment(assess.NewSurvivalPredictor().Predict(sc))
}

func runAssessRisk(cmd *cobra.Command, args []string) error {
	var profile assess.RiskProfile
	if err := decodeContext(args[0], &profile); err != nil {
		return err
	}
	return emitAssessment(assess.NewRiskScoreCalculator().Compute(profile))
}

func runAssessRecovery(cmd *cobra.Command, args []string) error {
	var rc assess.RecoveryContext
	if err := decodeContext(args[0], &rc); err != nil {
		return err
	}
	return emitAssessment(assess.NewRegenTimeEstimator().Estimate(rc))
}

// decodeContext reads a YAML context file into the given struct. JSON
// files work too since YAML is a superset.
func decodeContext(path string, into any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read context: %w", err)
	}
	if err := yaml.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("parse context %s: %w", path, err)
	}
	return nil
}

func emitAssessment(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	if assessOutput != "" {
		if err := os.WriteFile(assessOutput, data, 0644); err != nil {
			return fmt.Errorf("write assessment: %w", err)
		}
		fmt.Printf("Wrote assessment to %s\n", assessOutput)
		return nil
	}

	fmt.Println(string(data))
	return nil
}
