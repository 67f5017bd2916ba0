package cli

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/eles-sim/eles/internal/domain"
)

// formatLargeNumber renders big magnitudes with K/M/B/T suffixes:
// 1234 → "1.2K", 7.9e9 → "7.9B".
func formatLargeNumber(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e12:
		return fmt.Sprintf("%.1fT", v/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("%.1fB", v/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// formatParamValue renders one parameter or metric value for the console.
// Floats drop to %g so 3000.0 prints as 3000, not 3000.000000.
func formatParamValue(v any) string {
	switch x := v.(type) {
	case float64:
		return fmt.Sprintf("%g", x)
	case float32:
		return fmt.Sprintf("%g", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// formatParams renders a parameter map as "key=value, key=value" with
// sorted keys.
func formatParams(params domain.Parameters) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, formatParamValue(params[k])))
	}
	return strings.Join(parts, ", ")
}
