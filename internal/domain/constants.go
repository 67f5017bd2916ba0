package domain

// Constants bundles the physical and demographic figures the models scale
// against. Callers construct one set (usually DefaultConstants, optionally
// adjusted from configuration) and pass it down; nothing in the pipeline
// reads package-level state.
type Constants struct {
	EarthRadiusKm      float64
	EarthMassKg        float64
	EarthSurfaceKm2    float64
	EarthLandAreaKm2   float64
	GravitationalConst float64

	WorldPopulation float64
	HospitalBeds    float64
	GlobalGDPUSD    float64

	CraterScalingFactor float64
	DefaultVelocityKms  float64
	DefaultImpactAngle  float64
	SecondsPerYear      float64
}

// DefaultConstants returns the reference figures used throughout the
// pipeline unless configuration overrides them.
func DefaultConstants() Constants {
	return Constants{
		EarthRadiusKm:      6371,
		EarthMassKg:        5.972e24,
		EarthSurfaceKm2:    5.10e8,
		EarthLandAreaKm2:   1.489e8,
		GravitationalConst: 6.674e-11,

		WorldPopulation: 8e9,
		HospitalBeds:    1.5e7,
		GlobalGDPUSD:    100e12,

		CraterScalingFactor: 1.8,
		DefaultVelocityKms:  20.0,
		DefaultImpactAngle:  45.0,
		SecondsPerYear:      31536000,
	}
}
