package cli

import (
	"github.com/spf13/cobra"

	"github.com/eles-sim/eles/internal/daemon"
	"github.com/eles-sim/eles/internal/domain"
	"github.com/eles-sim/eles/internal/sim"
)

func init() {
	f := simulateCmd.Flags()
	f.Float64Var(&simDiameter, "diameter", 0, "Impactor diameter in km (asteroid)")
	f.Float64Var(&simDensity, "density", 0, "Impactor density in kg/m³ (asteroid)")
	f.Float64Var(&simVelocity, "velocity", 0, "Impact velocity in km/s (asteroid)")
	f.StringVar(&simTarget, "target", "", "Impact target, land or ocean (asteroid)")
	f.StringVar(&simName, "name", "", "Volcano name (supervolcano)")
	f.Float64Var(&simVEI, "vei", 0, "Volcanic explosivity index 1-8 (supervolcano)")
	f.Float64Var(&simR0, "r0", 0, "Basic reproduction number (pandemic)")
	f.Float64Var(&simMortality, "mortality", 0, "Infection mortality rate 0-1 (pandemic)")
	f.Float64Var(&simPopulation, "population", 0, "Exposed population (pandemic)")
	f.Float64Var(&simDistance, "distance", 0, "Burst distance in light-years (gamma_ray_burst)")
	f.Float64Var(&simTemperature, "temperature", 0, "Temperature shift in °C (climate_collapse)")
	f.Float64Var(&simAILevel, "ai-level", 0, "Capability level 1-10 (ai_extinction)")

	f.StringVar(&simFormat, "format", "text", "Output format: text or json")
	f.StringVarP(&simOutput, "output", "o", "", "Write the JSON result to a file")
	f.BoolVarP(&simVerbose, "verbose", "v", false, "Show the raw simulation metrics")
	f.BoolVarP(&simInteractive, "interactive", "i", false, "Prompt for each parameter")

	rootCmd.AddCommand(simulateCmd)
}

var (
	simDiameter    float64
	simDensity     float64
	simVelocity    float64
	simTarget      string
	simName        string
	simVEI         float64
	simR0          float64
	simMortality   float64
	simPopulation  float64
	simDistance    float64
	simTemperature float64
	simAILevel     float64

	simFormat      string
	simOutput      string
	simVerbose     bool
	simInteractive bool
)

// simFloatFlags maps numeric flags to the parameter keys the models read.
// Only flags the user actually set are forwarded; everything else falls
// through to the engine defaults.
var simFloatFlags = []struct {
	flag string
	key  string
	dest *float64
}{
	{"diameter", "diameter_km", &simDiameter},
	{"density", "density_kg_m3", &simDensity},
	{"velocity", "velocity_km_s", &simVelocity},
	{"vei", "vei", &simVEI},
	{"r0", "r0", &simR0},
	{"mortality", "mortality_rate", &simMortality},
	{"population", "population", &simPopulation},
	{"distance", "distance_ly", &simDistance},
	{"temperature", "temperature_change_c", &simTemperature},
	{"ai-level", "ai_level", &simAILevel},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate EVENT_TYPE",
	Short: "Simulate a single extinction-level event",
	Long: `Simulate one event and print its severity, impact figures and
global effects. Parameters not given as flags use the event defaults;
--interactive prompts for each one instead.

Examples:
  eles simulate asteroid --diameter 10
  eles simulate pandemic --r0 5 --mortality 0.3
  eles simulate supervolcano --interactive`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func runSimulate(cmd *cobra.Command, args []string) error {
	eventType := domain.EventType(args[0])
	params := paramsFromFlags(cmd)

	if simInteractive {
		answered, err := promptParameters(eventType, sim.DefaultParameters(eventType).Merge(params))
		if err != nil {
			return err
		}
		params = answered
	}

	cfg, err := daemon.LoadConfig()
	if err != nil {
		return err
	}

	engine := sim.NewEngine(cfg.Constants())
	result, err := engine.RunSimulation(string(eventType), params)
	if err != nil {
		return err
	}

	return emitResult(result, simFormat, simOutput, simVerbose)
}

func paramsFromFlags(cmd *cobra.Command) domain.Parameters {
	params := domain.Parameters{}
	flags := cmd.Flags()
	for _, ff := range simFloatFlags {
		if flags.Changed(ff.flag) {
			params[ff.key] = *ff.dest
		}
	}
	if flags.Changed("target") {
		params["target_type"] = simTarget
	}
	if flags.Changed("name") {
		params["name"] = simName
	}
	return params
}
