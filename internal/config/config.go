// Package config loads and stores the user's effects configuration from
// ~/.gnuradio/grc_effects.json, with safe defaults for anything missing or
// malformed.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512

	// TicksPerSecond is the animation frame rate the effects are tuned
	// for (one tick every ~33ms).
	TicksPerSecond = 30

	GridSpacing   = 50
	GridLineWidth = 0.5
	GridAlpha     = 0.05
)

const (
	configDirName  = ".gnuradio"
	configFileName = "grc_effects.json"
)

// Config is the persisted effects configuration.
type Config struct {
	DropShadows        bool   `json:"drop_shadows"`
	GridOverlay        bool   `json:"grid_overlay"`
	PortHoverGlow      bool   `json:"port_hover_glow"`
	DataFlowParticles  bool   `json:"data_flow_particles"`
	ConnectionGradient bool   `json:"connection_gradient"`
	BlockEntranceAnim  bool   `json:"block_entrance_anim"`
	AmbientParticles   string `json:"ambient_particles"`
	ClickSound         string `json:"click_sound"`
	ClickRipple        bool   `json:"click_ripple"`
	ToolbarCSS         bool   `json:"toolbar_css"`
}

// Default returns the out-of-the-box configuration.
func Default() Config {
	return Config{
		DropShadows:        true,
		GridOverlay:        false,
		PortHoverGlow:      true,
		DataFlowParticles:  false,
		ConnectionGradient: true,
		BlockEntranceAnim:  true,
		AmbientParticles:   "off",
		ClickSound:         "off",
		ClickRipple:        true,
		ToolbarCSS:         true,
	}
}

// ValidSounds are the accepted click_sound values.
var ValidSounds = []string{"off", "sonar", "click", "coin", "laser", "blip"}

// ValidAmbient are the accepted ambient_particles values.
var ValidAmbient = []string{
	"off", "matrix_rain", "bubbles", "snow", "confetti", "sparks", "dust",
	"fire", "fireflies", "lightning", "starfield", "scanline", "glitch",
}

// Path returns the config file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Load reads the config file, merging recognized fields over the defaults.
// A missing or unreadable file yields the defaults without error; only a
// home-directory lookup failure is reported.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path), nil
}

// LoadFile reads the config at an explicit path, merging over defaults.
// Unknown or wrongly typed fields are ignored.
func LoadFile(path string) Config {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	// Decode into a loose map first so one bad field cannot poison the
	// rest, and so the legacy boolean ambient_particles still works.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return cfg
	}
	mergeBool(raw, "drop_shadows", &cfg.DropShadows)
	mergeBool(raw, "grid_overlay", &cfg.GridOverlay)
	mergeBool(raw, "port_hover_glow", &cfg.PortHoverGlow)
	mergeBool(raw, "data_flow_particles", &cfg.DataFlowParticles)
	mergeBool(raw, "connection_gradient", &cfg.ConnectionGradient)
	mergeBool(raw, "block_entrance_anim", &cfg.BlockEntranceAnim)
	mergeBool(raw, "click_ripple", &cfg.ClickRipple)
	mergeBool(raw, "toolbar_css", &cfg.ToolbarCSS)
	mergeString(raw, "ambient_particles", &cfg.AmbientParticles)
	mergeString(raw, "click_sound", &cfg.ClickSound)

	// Backward compat: ambient_particles used to be a plain boolean.
	if msg, ok := raw["ambient_particles"]; ok {
		var b bool
		if err := json.Unmarshal(msg, &b); err == nil && b {
			cfg.AmbientParticles = "bubbles"
		}
	}
	return cfg
}

// Save writes the config, creating the directory if needed.
func (c Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

// SaveFile writes the config to an explicit path.
func (c Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// AmbientMode returns the validated ambient particle style, falling back
// to "off" for unrecognized values.
func (c Config) AmbientMode() string {
	for _, v := range ValidAmbient {
		if c.AmbientParticles == v {
			return v
		}
	}
	return "off"
}

// ClickSoundKind returns the validated click sound, falling back to "off".
func (c Config) ClickSoundKind() string {
	for _, v := range ValidSounds {
		if c.ClickSound == v {
			return v
		}
	}
	return "off"
}

func mergeBool(raw map[string]json.RawMessage, key string, dst *bool) {
	msg, ok := raw[key]
	if !ok {
		return
	}
	var v bool
	if err := json.Unmarshal(msg, &v); err == nil {
		*dst = v
	}
}

func mergeString(raw map[string]json.RawMessage, key string, dst *string) {
	msg, ok := raw[key]
	if !ok {
		return
	}
	var v string
	if err := json.Unmarshal(msg, &v); err == nil {
		*dst = v
	}
}
