package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/eles-sim/eles/internal/domain"
)

// ─── Result Rendering ───────────────────────────────────────────────────────
// Console output for a simulation run. Shows a severity banner followed by
// tree-formatted sections:
//
//   ════════════════════════════════════════════════════
//     ASTEROID IMPACT — Severity 6/6 (Extinction Level Event)
//   ════════════════════════════════════════════════════
//
//   Impact
//   ├─ Impacted area    3.1M km²
//   ├─ Casualties       7.9B
//   ├─ Economic impact  $98.2T
//   └─ Recovery         May never recover

const bannerWidth = 52

// emitResult routes a result to the requested sink: a JSON file, JSON on
// stdout, or the console view.
func emitResult(result *domain.ExtinctionResult, format, outputPath string, verbose bool) error {
	switch {
	case outputPath != "":
		data, err := result.ToJSON()
		if err != nil {
			return err
		}
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		fmt.Printf("Wrote result to %s\n", outputPath)
		return nil
	case format == "json":
		data, err := result.ToJSON()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	case format == "text" || format == "":
		renderResult(os.Stdout, result, verbose)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}
}

// renderResult writes the full console view of one simulation run.
// verbose adds the raw per-model metrics as a final tree.
func renderResult(w io.Writer, result *domain.ExtinctionResult, verbose bool) {
	renderBanner(w, result)

	renderTree(w, "Parameters", paramRows(result.Parameters))

	renderTree(w, "Impact", []treeRow{
		{"Impacted area", formatLargeNumber(result.ImpactedAreaKm2) + " km²"},
		{"Casualties", formatLargeNumber(float64(result.EstimatedCasualties))},
		{"Economic impact", "$" + formatLargeNumber(result.EconomicImpactBillionUSD*1e9)},
		{"Recovery", result.RecoveryTimeEstimate()},
	})

	if effects := result.GlobalEffects; len(effects) > 0 {
		rows := make([]treeRow, 0, len(effects))
		keys := make([]string, 0, len(effects))
		for k := range effects {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			rows = append(rows, treeRow{k, effects[k]})
		}
		renderTree(w, "Global effects", rows)
	}

	if factors := result.RiskFactors(); len(factors) > 0 {
		rows := make([]treeRow, 0, len(factors))
		for _, f := range factors {
			rows = append(rows, treeRow{f, ""})
		}
		renderTree(w, "Risk factors", rows)
	}

	if verbose {
		renderTree(w, "Simulation data", dataRows(result.SimulationData))
	}
}

func renderBanner(w io.Writer, result *domain.ExtinctionResult) {
	rule := strings.Repeat("═", bannerWidth)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  %s — Severity %s (%s)\n",
		strings.ToUpper(result.EventType.Label()),
		result.Severity,
		result.Severity.Label(),
	)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}

// treeRow is one "├─ label  value" line.
type treeRow struct {
	label string
	value string
}

// renderTree prints a titled section with box-drawing connectors. The
// value column is aligned across the section.
func renderTree(w io.Writer, title string, rows []treeRow) {
	if len(rows) == 0 {
		return
	}

	width := 0
	for _, r := range rows {
		if r.value != "" && len(r.label) > width {
			width = len(r.label)
		}
	}

	fmt.Fprintln(w, title)
	for i, r := range rows {
		connector := "├─"
		if i == len(rows)-1 {
			connector = "└─"
		}
		if r.value == "" {
			fmt.Fprintf(w, "%s %s\n", connector, r.label)
			continue
		}
		fmt.Fprintf(w, "%s %-*s  %s\n", connector, width, r.label, r.value)
	}
	fmt.Fprintln(w)
}

func paramRows(params domain.Parameters) []treeRow {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]treeRow, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, treeRow{k, formatParamValue(params[k])})
	}
	return rows
}

func dataRows(data domain.SimulationData) []treeRow {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]treeRow, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, treeRow{k, formatParamValue(data[k])})
	}
	return rows
}
