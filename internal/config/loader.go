package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the decoder from the file extension.
// Anything that is not .toml is treated as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// SkippedFile is an implicit config file that exists but could not be used.
type SkippedFile struct {
	Path string
	Err  error
}

func (s SkippedFile) Error() string { return fmt.Sprintf("config: skipped %s: %v", s.Path, s.Err) }
func (s SkippedFile) Unwrap() error { return s.Err }

// Load loads the game configuration.
// Search order: customPath -> ~/.invaders/configs/invaders.{yaml,toml} ->
// ./configs/invaders.{yaml,toml} -> embedded default.
// Values missing from a file keep their defaults.
//
// A broken custom path is an error. Broken implicit files are passed over
// and reported in skipped so the caller can warn about them.
func Load(customPath string) (cfg InvadersConfig, skipped []SkippedFile, err error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, nil, err
		}
		return cfg, nil, cfg.Validate()
	}

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := loadFile(path)
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			skipped = append(skipped, SkippedFile{Path: path, Err: err})
			continue
		}
		return cfg, skipped, nil
	}

	// Use embedded default YAML
	cfg = DefaultInvadersConfig()
	if err := decode(defaultInvadersYAML, FormatYAML, &cfg); err != nil {
		return DefaultInvadersConfig(), skipped, nil // Fallback to hardcoded if embed fails
	}
	return cfg, skipped, nil
}

// loadFile reads and decodes a single config file on top of the defaults.
func loadFile(path string) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := decode(data, FormatForPath(path), &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// decode unmarshals data in the given format into cfg.
func decode(data []byte, format Format, cfg *InvadersConfig) error {
	switch format {
	case FormatTOML:
		_, err := toml.Decode(string(data), cfg)
		return err
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// Encode serializes a configuration in the given format.
func Encode(cfg InvadersConfig, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: cannot encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
		}
		return data, nil
	}
}

// searchPaths lists the implicit config locations in priority order.
var searchPaths = defaultSearchPaths

func defaultSearchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".invaders", "configs")
		paths = append(paths,
			filepath.Join(dir, "invaders.yaml"),
			filepath.Join(dir, "invaders.toml"),
		)
	}
	paths = append(paths,
		filepath.Join("configs", "invaders.yaml"),
		filepath.Join("configs", "invaders.toml"),
	)
	return paths
}
