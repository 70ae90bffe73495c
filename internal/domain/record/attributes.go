package record

import (
	"fmt"
	"sort"
)

// Attributes is an immutable bag of numeric, boolean and text values.
type Attributes struct {
	numbers map[string]float64
	flags   map[string]bool
	texts   map[string]string
}

// NewAttributes copies raw values into typed maps.
// Integers are widened to float64; other value types are rejected.
func NewAttributes(raw map[string]any) (Attributes, error) {
	a := Attributes{
		numbers: make(map[string]float64),
		flags:   make(map[string]bool),
		texts:   make(map[string]string),
	}
	for k, v := range raw {
		switch val := v.(type) {
		case float64:
			a.numbers[k] = val
		case float32:
			a.numbers[k] = float64(val)
		case int:
			a.numbers[k] = float64(val)
		case int64:
			a.numbers[k] = float64(val)
		case uint64:
			a.numbers[k] = float64(val)
		case bool:
			a.flags[k] = val
		case string:
			a.texts[k] = val
		default:
			return Attributes{}, fmt.Errorf("attribute %q: unsupported type %T", k, v)
		}
	}
	return a, nil
}

// Number returns a numeric attribute.
func (a Attributes) Number(key string) (float64, bool) {
	v, ok := a.numbers[key]
	return v, ok
}

// NumberOr returns a numeric attribute or def when missing.
func (a Attributes) NumberOr(key string, def float64) float64 {
	if v, ok := a.numbers[key]; ok {
		return v
	}
	return def
}

// Flag returns a boolean attribute; missing means false.
func (a Attributes) Flag(key string) bool { return a.flags[key] }

// Text returns a text attribute.
func (a Attributes) Text(key string) (string, bool) {
	v, ok := a.texts[key]
	return v, ok
}

// Keys returns all attribute names, sorted.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a.numbers)+len(a.flags)+len(a.texts))
	for k := range a.numbers {
		keys = append(keys, k)
	}
	for k := range a.flags {
		keys = append(keys, k)
	}
	for k := range a.texts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a fresh copy of all values.
func (a Attributes) Map() map[string]any {
	out := make(map[string]any, len(a.numbers)+len(a.flags)+len(a.texts))
	for k, v := range a.numbers {
		out[k] = v
	}
	for k, v := range a.flags {
		out[k] = v
	}
	for k, v := range a.texts {
		out[k] = v
	}
	return out
}
