// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"

	"go-modular-circle/internal/config"
	"go-modular-circle/internal/geometry"
)

// MaxPresets is how many presets fit on the number keys.
const MaxPresets = 9

// LoadPresets reads a JSON array of presets. Values are clamped into the
// allowed parameter ranges; entries past MaxPresets are ignored.
func LoadPresets(path string) ([]Preset, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}
	return ParsePresets(file)
}

// ParsePresets decodes presets from JSON data.
func ParsePresets(data []byte) ([]Preset, error) {
	var presets []Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal presets: %w", err)
	}
	if len(presets) == 0 {
		return nil, fmt.Errorf("presets file holds no entries")
	}
	if len(presets) > MaxPresets {
		presets = presets[:MaxPresets]
	}
	for i := range presets {
		p := &presets[i]
		p.Points = geometry.Clamp(p.Points, config.PointsMin, config.PointsMax)
		p.Multiplier = geometry.Clamp(p.Multiplier, config.MultiplierMin, config.MultiplierMax)
		if p.Name == "" {
			p.Name = fmt.Sprintf("preset-%d", i+1)
		}
	}
	return presets, nil
}
