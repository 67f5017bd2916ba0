package domain

import "fmt"

// Severity grades an event outcome on the ordinal 1..6 scale.
type Severity int

const (
	SeverityMinimal     Severity = 1 // localized damage, no lasting effects
	SeverityLocal       Severity = 2
	SeverityRegional    Severity = 3
	SeverityContinental Severity = 4
	SeverityGlobal      Severity = 5
	SeverityExtinction  Severity = 6 // civilization-threatening
)

// MinSeverity and MaxSeverity bound the scale.
const (
	MinSeverity = SeverityMinimal
	MaxSeverity = SeverityExtinction
)

// IsValid reports whether s is on the 1..6 scale.
func (s Severity) IsValid() bool { return s >= MinSeverity && s <= MaxSeverity }

// Clamp returns s forced onto the 1..6 scale.
func (s Severity) Clamp() Severity {
	if s < MinSeverity {
		return MinSeverity
	}
	if s > MaxSeverity {
		return MaxSeverity
	}
	return s
}

// Label returns the scale description for s, or "Unknown" off-scale.
func (s Severity) Label() string {
	switch s {
	case SeverityMinimal:
		return "Minimal Impact"
	case SeverityLocal:
		return "Local Catastrophe"
	case SeverityRegional:
		return "Regional Disaster"
	case SeverityContinental:
		return "Continental Crisis"
	case SeverityGlobal:
		return "Global Catastrophe"
	case SeverityExtinction:
		return "Extinction Level Event"
	}
	return "Unknown"
}

// Color returns the display color hex code for s, black off-scale.
func (s Severity) Color() string {
	switch s {
	case SeverityMinimal:
		return "#00ff00"
	case SeverityLocal:
		return "#ffff00"
	case SeverityRegional:
		return "#ff8000"
	case SeverityContinental:
		return "#ff0000"
	case SeverityGlobal:
		return "#800080"
	}
	return "#000000"
}

func (s Severity) String() string { return fmt.Sprintf("%d/6", int(s)) }
