// internal/defs/presets.go
package defs

// Preset is a named parameter pair.
type Preset struct {
	Name       string `json:"name"`
	Points     int    `json:"points"`
	Multiplier int    `json:"multiplier"`
}

// BuiltinPresets are bound to keys 1-9 unless a preset file replaces them.
var BuiltinPresets = []Preset{
	{Name: "cardioid", Points: 200, Multiplier: 2},
	{Name: "nephroid", Points: 200, Multiplier: 3},
	{Name: "epicycloid-3", Points: 200, Multiplier: 4},
	{Name: "epicycloid-4", Points: 200, Multiplier: 5},
	{Name: "star", Points: 360, Multiplier: 21},
	{Name: "flower", Points: 300, Multiplier: 51},
	{Name: "mandala", Points: 500, Multiplier: 99},
	{Name: "weave", Points: 1000, Multiplier: 167},
	{Name: "sparse", Points: 12, Multiplier: 5},
}
