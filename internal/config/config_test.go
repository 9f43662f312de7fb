package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grc_effects.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileMissingGivesDefaults(t *testing.T) {
	cfg := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	if cfg != Default() {
		t.Errorf("missing file config = %+v, want defaults", cfg)
	}
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"grid_overlay": true,
		"ambient_particles": "fire",
		"click_sound": "sonar"
	}`)
	cfg := LoadFile(path)

	if !cfg.GridOverlay {
		t.Error("grid_overlay not merged")
	}
	if cfg.AmbientParticles != "fire" {
		t.Errorf("ambient_particles = %q, want fire", cfg.AmbientParticles)
	}
	if cfg.ClickSound != "sonar" {
		t.Errorf("click_sound = %q, want sonar", cfg.ClickSound)
	}
	// Untouched fields keep their defaults.
	if !cfg.DropShadows || !cfg.ClickRipple {
		t.Error("defaults lost during merge")
	}
}

func TestLoadFileIgnoresWrongTypes(t *testing.T) {
	path := writeConfig(t, `{
		"drop_shadows": "yes please",
		"click_sound": 7
	}`)
	cfg := LoadFile(path)
	if cfg != Default() {
		t.Errorf("wrongly typed fields changed config: %+v", cfg)
	}
}

func TestLoadFileGarbageGivesDefaults(t *testing.T) {
	path := writeConfig(t, `{not json at all`)
	if cfg := LoadFile(path); cfg != Default() {
		t.Errorf("garbage file config = %+v, want defaults", cfg)
	}
}

func TestLegacyBooleanAmbient(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"true becomes bubbles", `{"ambient_particles": true}`, "bubbles"},
		{"false stays off", `{"ambient_particles": false}`, "off"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LoadFile(writeConfig(t, tt.json))
			if cfg.AmbientParticles != tt.want {
				t.Errorf("ambient_particles = %q, want %q", cfg.AmbientParticles, tt.want)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "grc_effects.json")

	cfg := Default()
	cfg.AmbientParticles = "starfield"
	cfg.GridOverlay = true
	if err := cfg.SaveFile(path); err != nil {
		t.Fatal(err)
	}

	if got := LoadFile(path); got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestValidatedAccessors(t *testing.T) {
	cfg := Default()

	cfg.AmbientParticles = "fire"
	if got := cfg.AmbientMode(); got != "fire" {
		t.Errorf("AmbientMode = %q, want fire", got)
	}
	cfg.AmbientParticles = "volcano"
	if got := cfg.AmbientMode(); got != "off" {
		t.Errorf("AmbientMode for unknown value = %q, want off", got)
	}

	cfg.ClickSound = "laser"
	if got := cfg.ClickSoundKind(); got != "laser" {
		t.Errorf("ClickSoundKind = %q, want laser", got)
	}
	cfg.ClickSound = "airhorn"
	if got := cfg.ClickSoundKind(); got != "off" {
		t.Errorf("ClickSoundKind for unknown value = %q, want off", got)
	}
}
