package fractal

import (
	"slices"
	"strings"
)

// Preset is a named landmark of the Mandelbrot set.
type Preset struct {
	Name             string
	CenterX, CenterY float64
	ExtentX, ExtentY float64
}

// presetRegion builds a preset from plane bounds.
func presetRegion(name string, xmin, xmax, ymin, ymax float64) Preset {
	return Preset{
		Name:    name,
		CenterX: (xmin + xmax) / 2,
		CenterY: (ymin + ymax) / 2,
		ExtentX: xmax - xmin,
		ExtentY: ymax - ymin,
	}
}

// Presets lists the built-in landmarks.
var Presets = []Preset{
	{Name: "overview", CenterX: DefaultCenterX, CenterY: DefaultCenterY, ExtentX: DefaultExtent, ExtentY: DefaultExtent},
	// dense filaments and repeating curls
	presetRegion("seahorse-valley", -0.8, -0.7, 0.05, 0.15),
	// large bulb with trunk-like tendrils
	presetRegion("elephant-valley", -1.85, -1.75, -0.10, -0.02),
	// small copy with tight spiral arms
	presetRegion("spiral-minibrot", -0.7435, -0.7420, 0.1310, 0.1325),
	// threefold spiral
	presetRegion("triple-spiral", -0.7480, -0.7450, 0.0950, 0.0980),
	presetRegion("dragon-valley", -0.7400, -0.7350, 0.1800, 0.1850),
	presetRegion("mini-spiral-minibrot", -1.7390, -1.7375, -0.0235, -0.0220),
}

// LookupPreset finds a preset by name, ignoring case.
func LookupPreset(name string) (Preset, bool) {
	i := slices.IndexFunc(Presets, func(p Preset) bool {
		return strings.EqualFold(p.Name, name)
	})
	if i < 0 {
		return Preset{}, false
	}
	return Presets[i], true
}

// PresetNames returns the names of all presets in declaration order.
func PresetNames() []string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = p.Name
	}
	return names
}
