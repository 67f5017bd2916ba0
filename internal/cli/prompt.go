package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eles-sim/eles/internal/domain"
)

// ─── Interactive Prompt ─────────────────────────────────────────────────────
// Asks for each simulation parameter in turn. Enter on an empty input
// accepts the shown default; esc cancels the run.

// paramLabels are the prompt labels for the parameter keys the models read.
var paramLabels = map[string]string{
	"diameter_km":          "Impactor diameter (km)",
	"density_kg_m3":        "Impactor density (kg/m³)",
	"velocity_km_s":        "Impact velocity (km/s)",
	"target_type":          "Target (land/ocean)",
	"name":                 "Volcano name",
	"vei":                  "Volcanic explosivity index (1-8)",
	"r0":                   "Basic reproduction number",
	"mortality_rate":       "Mortality rate (0-1)",
	"population":           "Exposed population",
	"distance_ly":          "Distance (light-years)",
	"temperature_change_c": "Temperature change (°C)",
	"ai_level":             "AI capability level (1-10)",
}

type promptField struct {
	key   string
	label string
	def   any
}

// promptModel asks one field at a time, iguana-style: a textinput per
// field, advanced by enter.
type promptModel struct {
	eventType domain.EventType
	fields    []promptField
	idx       int
	inputs    []textinput.Model
	done      bool
}

func newPromptModel(eventType domain.EventType, fields []promptField) promptModel {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = formatParamValue(f.def)
		ti.CharLimit = 64
		inputs[i] = ti
	}
	m := promptModel{
		eventType: eventType,
		fields:    fields,
		inputs:    inputs,
	}
	if len(inputs) > 0 {
		m.inputs[0].Focus()
	}
	return m
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.idx < len(m.inputs)-1 {
				m.inputs[m.idx].Blur()
				m.idx++
				m.inputs[m.idx].Focus()
				return m, textinput.Blink
			}
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.inputs[m.idx], cmd = m.inputs[m.idx].Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || len(m.fields) == 0 {
		return ""
	}
	f := m.fields[m.idx]
	return fmt.Sprintf("Configure %s simulation (%d/%d, enter accepts the default)\n\n%s: %s\n",
		m.eventType, m.idx+1, len(m.fields), f.label, m.inputs[m.idx].View())
}

// promptParameters asks for every parameter of the event type and returns
// the full set. defaults carries the event defaults overlaid with any
// flag values, which become the accept-on-enter answers.
func promptParameters(eventType domain.EventType, defaults domain.Parameters) (domain.Parameters, error) {
	fields := promptFields(defaults)
	if len(fields) == 0 {
		return defaults, nil
	}

	p := tea.NewProgram(newPromptModel(eventType, fields))
	result, err := p.Run()
	if err != nil {
		return nil, err
	}
	final, ok := result.(promptModel)
	if !ok || !final.done {
		return nil, fmt.Errorf("prompt cancelled")
	}

	params := make(domain.Parameters, len(fields))
	for i, f := range fields {
		raw := final.inputs[i].Value()
		if raw == "" {
			params[f.key] = f.def
			continue
		}
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			params[f.key] = v
		} else {
			params[f.key] = raw
		}
	}
	return params, nil
}

func promptFields(defaults domain.Parameters) []promptField {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]promptField, 0, len(keys))
	for _, k := range keys {
		label := paramLabels[k]
		if label == "" {
			label = k
		}
		fields = append(fields, promptField{key: k, label: label, def: defaults[k]})
	}
	return fields
}
