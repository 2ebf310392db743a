// Package config provides YAML-based configuration loading for the tag
// simulation: field size, player and step defaults, and viewer pacing.
package config

// Config is the full configuration for a run.
type Config struct {
	Sim    SimConfig    `yaml:"sim"`
	Field  FieldConfig  `yaml:"field"`
	Viewer ViewerConfig `yaml:"viewer"`
}

// SimConfig holds the two core simulation inputs. Values of zero are
// replaced with the defaults (5 players, 100 steps) by Normalize; negative
// values are left for the simulation to reject.
type SimConfig struct {
	Players int `yaml:"players"`
	Steps   int `yaml:"steps"`
}

// FieldConfig defines the playing area dimensions.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ViewerConfig defines live-viewer pacing.
type ViewerConfig struct {
	TickRate int `yaml:"tick_rate"` // steps per second in the TUI
}

// Normalize fills unset (zero) fields with defaults.
func (c *Config) Normalize() {
	def := Default()
	if c.Sim.Players == 0 {
		c.Sim.Players = def.Sim.Players
	}
	if c.Sim.Steps == 0 {
		c.Sim.Steps = def.Sim.Steps
	}
	if c.Field.Width == 0 {
		c.Field.Width = def.Field.Width
	}
	if c.Field.Height == 0 {
		c.Field.Height = def.Field.Height
	}
	if c.Viewer.TickRate == 0 {
		c.Viewer.TickRate = def.Viewer.TickRate
	}
}
