package domain

import "testing"

func TestSeverity_Label(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityMinimal, "Minimal Impact"},
		{SeverityLocal, "Local Catastrophe"},
		{SeverityRegional, "Regional Disaster"},
		{SeverityContinental, "Continental Crisis"},
		{SeverityGlobal, "Global Catastrophe"},
		{SeverityExtinction, "Extinction Level Event"},
		{Severity(0), "Unknown"},
		{Severity(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.severity.Label(); got != tt.want {
			t.Errorf("Severity(%d).Label() = %q, want %q", tt.severity, got, tt.want)
		}
	}
}

func TestSeverity_Clamp(t *testing.T) {
	tests := []struct {
		in   Severity
		want Severity
	}{
		{Severity(-3), SeverityMinimal},
		{Severity(0), SeverityMinimal},
		{SeverityRegional, SeverityRegional},
		{SeverityExtinction, SeverityExtinction},
		{Severity(7), SeverityExtinction},
	}
	for _, tt := range tests {
		if got := tt.in.Clamp(); got != tt.want {
			t.Errorf("Severity(%d).Clamp() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSeverity_ColorCoversScale(t *testing.T) {
	seen := make(map[string]bool)
	for s := MinSeverity; s <= MaxSeverity; s++ {
		color := s.Color()
		if len(color) != 7 || color[0] != '#' {
			t.Errorf("Severity(%d).Color() = %q, want hex code", s, color)
		}
		if seen[color] {
			t.Errorf("Severity(%d).Color() = %q reused", s, color)
		}
		seen[color] = true
	}
}

func TestEventType_IsValid(t *testing.T) {
	for _, et := range AllEventTypes() {
		if !et.IsValid() {
			t.Errorf("%s.IsValid() = false, want true", et)
		}
	}
	for _, et := range []EventType{EventNuclearWar, EventCosmic, "zombie_outbreak", ""} {
		if et.IsValid() {
			t.Errorf("%s.IsValid() = true, want false", et)
		}
	}
}

func TestAllEventTypes_CountAndOrder(t *testing.T) {
	all := AllEventTypes()
	if len(all) != 6 {
		t.Fatalf("AllEventTypes() returned %d types, want 6", len(all))
	}
	if all[0] != EventAsteroid || all[5] != EventAIExtinction {
		t.Errorf("AllEventTypes() order = %v", all)
	}
}
