package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultInvadersConfig()
	if err := decode(DefaultYAML(), FormatYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Errorf("embedded YAML differs from DefaultInvadersConfig():\n%+v\n%+v", cfg, DefaultInvadersConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadCustomYAMLOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "custom.yaml", `
screen:
  width: 800
projectile:
  cap: 5
  pierce: true
`)

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Screen.Width != 800 {
		t.Errorf("Screen.Width = %v, expected 800", cfg.Screen.Width)
	}
	if cfg.Screen.Height != 800 {
		t.Errorf("Screen.Height should keep default 800, got %v", cfg.Screen.Height)
	}
	if cfg.Projectile.Cap != 5 || !cfg.Projectile.Pierce {
		t.Errorf("Projectile = %+v, expected cap 5 and pierce", cfg.Projectile)
	}
	if cfg.Enemy.Width != 44 {
		t.Errorf("Enemy.Width should keep default 44, got %v", cfg.Enemy.Width)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := writeFile(t, "custom.toml", `
[speeds]
enemy = 200.0

[gameplay]
speedup_ratio = 1.3

[difficulty.hard]
ship_limit = 1
`)

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Speeds.Enemy != 200 {
		t.Errorf("Speeds.Enemy = %v, expected 200", cfg.Speeds.Enemy)
	}
	if cfg.Gameplay.SpeedupRatio != 1.3 {
		t.Errorf("Gameplay.SpeedupRatio = %v, expected 1.3", cfg.Gameplay.SpeedupRatio)
	}
	if cfg.Difficulty.Hard.ShipLimit != 1 {
		t.Errorf("Difficulty.Hard.ShipLimit = %d, expected 1", cfg.Difficulty.Hard.ShipLimit)
	}
	if cfg.Speeds.Ship != 480 {
		t.Errorf("Speeds.Ship should keep default 480, got %v", cfg.Speeds.Ship)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	path := writeFile(t, "bad.yaml", `
screen:
  width: -5
gameplay:
  speedup_ratio: 0.5
`)

	_, _, err := Load(path)
	if err == nil {
		t.Fatal("Load() should reject invalid values")
	}
	msg := err.Error()
	if !strings.Contains(msg, "screen.width") || !strings.Contains(msg, "speedup_ratio") {
		t.Errorf("error should name every invalid field, got %q", msg)
	}
}

func TestValidateRejectsScreenWithoutFleetRoom(t *testing.T) {
	tests := []struct {
		name string
		edit func(*InvadersConfig)
	}{
		{"no columns", func(c *InvadersConfig) { c.Screen.Width = 100 }},
		{"no rows", func(c *InvadersConfig) { c.Screen.Height = 150 }},
		{"huge enemies", func(c *InvadersConfig) { c.Enemy.Width, c.Enemy.Height = 700, 700 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tt.edit(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should reject a screen with no room for the fleet")
			}
			if !strings.Contains(err.Error(), "fleet") {
				t.Errorf("error should mention the fleet, got %q", err)
			}
		})
	}
}

func TestLoadReportsSkippedImplicitFiles(t *testing.T) {
	broken := writeFile(t, "invaders.yaml", "screen: [1, 2\n")
	invalid := writeFile(t, "invaders.toml", "[screen]\nwidth = -1\n")
	good := writeFile(t, "invaders.yaml", "ship:\n  limit: 9\n")
	missing := filepath.Join(t.TempDir(), "invaders.yaml")

	orig := searchPaths
	t.Cleanup(func() { searchPaths = orig })
	searchPaths = func() []string { return []string{missing, broken, invalid, good} }

	cfg, skipped, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Ship.Limit != 9 {
		t.Errorf("Ship.Limit = %d, expected 9 from the first usable file", cfg.Ship.Limit)
	}
	if len(skipped) != 2 {
		t.Fatalf("skipped %d files, expected 2: %v", len(skipped), skipped)
	}
	for i, want := range []string{broken, invalid} {
		if skipped[i].Path != want {
			t.Errorf("skipped[%d].Path = %q, expected %q", i, skipped[i].Path, want)
		}
		if !strings.Contains(skipped[i].Error(), want) {
			t.Errorf("skipped[%d] message %q should name the file", i, skipped[i].Error())
		}
	}
}

func TestLoadFallsBackToEmbeddedDefaults(t *testing.T) {
	orig := searchPaths
	t.Cleanup(func() { searchPaths = orig })
	searchPaths = func() []string { return []string{writeFile(t, "invaders.yaml", "speeds: nope\n")} }

	cfg, skipped, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(skipped) != 1 {
		t.Errorf("skipped %d files, expected 1", len(skipped))
	}
	if cfg != DefaultInvadersConfig() {
		t.Error("Load() should fall back to the defaults")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeFile(t, "broken.yaml", "screen: [1, 2\n")
	if _, _, err := Load(path); err == nil {
		t.Fatal("Load() should fail for malformed YAML")
	}
}

func TestEncodeRoundTripsThroughBothFormats(t *testing.T) {
	want := DefaultInvadersConfig()
	want.Projectile.Pierce = true

	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(want, format)
			if err != nil {
				t.Fatalf("Encode() failed: %v", err)
			}
			var got InvadersConfig
			if err := decode(data, format, &got); err != nil {
				t.Fatalf("decode() failed: %v", err)
			}
			if got != want {
				t.Errorf("decoded config differs:\n%+v\n%+v", got, want)
			}
		})
	}
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]Format{
		"a.yaml":     FormatYAML,
		"a.yml":      FormatYAML,
		"a.toml":     FormatTOML,
		"A.TOML":     FormatTOML,
		"noext":      FormatYAML,
		"dir/x.toml": FormatTOML,
	}
	for path, want := range tests {
		if got := FormatForPath(path); got != want {
			t.Errorf("FormatForPath(%q) = %q, expected %q", path, got, want)
		}
	}
}
