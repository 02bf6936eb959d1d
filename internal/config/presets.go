package config

import "sort"

// Presets are named canvas sizes. Only the dimensions are taken from a
// preset; everything else stays as configured.
var Presets = map[string]struct{ Width, Height int }{
	"small":  {Width: 80, Height: 40},
	"medium": {Width: 160, Height: 80},
	"large":  {Width: 240, Height: 120},
	"wide":   {Width: 320, Height: 80},
}

// ApplyPreset sets the canvas size from a named preset. It reports false if
// the preset does not exist.
func (c *Config) ApplyPreset(name string) bool {
	p, ok := Presets[name]
	if !ok {
		return false
	}
	c.Width, c.Height = p.Width, p.Height
	return true
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
