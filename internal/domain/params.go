package domain

// Parameters carries the named inputs of a simulation. Values arrive from
// CLI flags, YAML scenarios, or JSON request bodies, so numeric entries may
// be float64, int, or int64 depending on the decoder.
type Parameters map[string]any

// SimulationData carries the named outputs of a simulation. Values are
// float64, int64, bool, string, []string, or map[string]string.
type SimulationData map[string]any

// Float returns the value under key coerced to float64, or def when the
// key is absent or not numeric.
func (p Parameters) Float(key string, def float64) float64 {
	v, ok := toFloat(p[key])
	if !ok {
		return def
	}
	return v
}

// Int returns the value under key coerced to int, or def.
func (p Parameters) Int(key string, def int) int {
	v, ok := toFloat(p[key])
	if !ok {
		return def
	}
	return int(v)
}

// Str returns the string under key, or def.
func (p Parameters) Str(key, def string) string {
	if s, ok := p[key].(string); ok {
		return s
	}
	return def
}

// Merge returns a copy of p overlaid with every entry of over.
// Neither input is modified.
func (p Parameters) Merge(over Parameters) Parameters {
	out := make(Parameters, len(p)+len(over))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// Clone returns a shallow copy of p.
func (p Parameters) Clone() Parameters {
	out := make(Parameters, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Float returns the metric under key coerced to float64, or def.
func (d SimulationData) Float(key string, def float64) float64 {
	v, ok := toFloat(d[key])
	if !ok {
		return def
	}
	return v
}

// FloatOK returns the metric under key and whether it was present
// and numeric.
func (d SimulationData) FloatOK(key string) (float64, bool) {
	return toFloat(d[key])
}

// Int returns the metric under key coerced to int64, or def.
func (d SimulationData) Int(key string, def int64) int64 {
	v, ok := toFloat(d[key])
	if !ok {
		return def
	}
	return int64(v)
}

// Bool returns the metric under key, or def.
func (d SimulationData) Bool(key string, def bool) bool {
	if b, ok := d[key].(bool); ok {
		return b
	}
	return def
}

// Str returns the metric under key, or def.
func (d SimulationData) Str(key, def string) string {
	if s, ok := d[key].(string); ok {
		return s
	}
	return def
}

// Strings returns the string slice under key, or nil.
func (d SimulationData) Strings(key string) []string {
	if s, ok := d[key].([]string); ok {
		return s
	}
	return nil
}

// StrMap returns the string map under key, or nil.
func (d SimulationData) StrMap(key string) map[string]string {
	if m, ok := d[key].(map[string]string); ok {
		return m
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
