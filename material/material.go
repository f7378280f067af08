package material

import (
	"fmt"
	"sort"

	"tw/model"
)

// Custom is the preset name that carries no properties of its own; the caller
// must supply both the modulus and the density explicitly.
const Custom = "Custom (enter below)"

// Preset library. Values are nominal room-temperature properties; notes are
// surfaced verbatim in the GUI material panel.
var library = map[string]model.Material{
	Custom: {
		Preset: Custom,
		Notes:  "Enter E and density manually",
	},
	"Stainless Steel (SS304)": {
		Preset:         "Stainless Steel (SS304)",
		ElasticModulus: 193e9,
		Density:        7930.0,
		Notes:          "Typical austenitic stainless steel",
	},
	"Stainless Steel (SS316 / SS316L)": {
		Preset:         "Stainless Steel (SS316 / SS316L)",
		ElasticModulus: 193e9,
		Density:        8000.0,
		Notes:          "Marine-grade stainless; use 316L for low-C variations",
	},
	"Carbon Steel (approx. A36)": {
		Preset:         "Carbon Steel (approx. A36)",
		ElasticModulus: 200e9,
		Density:        7850.0,
		Notes:          "Typical structural steel",
	},
	"Inconel (nickel alloy, e.g. 625)": {
		Preset:         "Inconel (nickel alloy, e.g. 625)",
		ElasticModulus: 207e9,
		Density:        8440.0,
		Notes:          "High-nickel alloy, approximate values",
	},
	"Monel (e.g. Monel 400)": {
		Preset:         "Monel (e.g. Monel 400)",
		ElasticModulus: 190e9,
		Density:        8830.0,
		Notes:          "Nickel-copper alloy; approximate",
	},
	"Titanium (Grade 2)": {
		Preset:         "Titanium (Grade 2)",
		ElasticModulus: 105e9,
		Density:        4500.0,
		Notes:          "Commercially pure titanium",
	},
	"Aluminum (6061-T6)": {
		Preset:         "Aluminum (6061-T6)",
		ElasticModulus: 69e9,
		Density:        2700.0,
		Notes:          "Common aluminum alloy",
	},
}

// List returns the preset library sorted by name, for the GUI selector.
func List() []model.Material {
	out := make([]model.Material, 0, len(library))
	for _, m := range library {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Preset < out[j].Preset })
	return out
}

// Resolve determines the elastic modulus and density to use for a
// computation. Explicit overrides win over preset values; an unknown or empty
// preset name falls back to Custom and then requires both overrides.
func Resolve(preset string, modulus, density *float64) (model.Material, error) {
	if preset == "" {
		preset = Custom
	}
	m, ok := library[preset]
	if !ok {
		m = library[Custom]
		m.Preset = preset
	}

	overridden := preset == Custom
	if modulus != nil {
		m.ElasticModulus = *modulus
		overridden = true
	}
	if density != nil {
		m.Density = *density
		overridden = true
	}
	m.Overridden = overridden

	if m.ElasticModulus <= 0 || m.Density <= 0 {
		return model.Material{}, fmt.Errorf("material %q is incomplete: elastic modulus and density must be set and positive", preset)
	}
	return m, nil
}
