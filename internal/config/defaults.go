package config

import (
	_ "embed"
)

//go:embed defaults/tagsim.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used when the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Sim: SimConfig{
			Players: 5,
			Steps:   100,
		},
		Field: FieldConfig{
			Width:  40,
			Height: 20,
		},
		Viewer: ViewerConfig{
			TickRate: 10,
		},
	}
}
