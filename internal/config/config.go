// Package config loads and saves the skillnet settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds skillnet configuration.
type Config struct {
	Canvas  CanvasConfig  `toml:"canvas"`
	Render  RenderConfig  `toml:"render"`
	Viewer  ViewerConfig  `toml:"viewer"`
	Contact ContactConfig `toml:"contact"`
}

// CanvasConfig sets the logical drawing size. Zero width or height means
// "derive from the viewport".
type CanvasConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	DPR    float64 `toml:"dpr"`
}

// RenderConfig controls the render command.
type RenderConfig struct {
	Format     string `toml:"format"` // "png", "svg", "ops"
	Background string `toml:"background"`
	OutputDir  string `toml:"output_dir"`
}

// ViewerConfig controls the terminal viewer.
type ViewerConfig struct {
	EaseMS        int    `toml:"ease_ms"`
	Boot          bool   `toml:"boot"`
	Watch         bool   `toml:"watch"`
	Graph         string `toml:"graph"` // graph file, empty for the built-in one
	Constellation bool   `toml:"constellation"`
}

// ContactConfig holds the EmailJS credentials and the recipient.
type ContactConfig struct {
	Endpoint   string `toml:"endpoint"`
	ServiceID  string `toml:"service_id"`
	TemplateID string `toml:"template_id"`
	PublicKey  string `toml:"public_key"`
	ToEmail    string `toml:"to_email"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{Width: 550, Height: 550, DPR: 1},
		Render: RenderConfig{Format: "png", Background: "#0a0a0f", OutputDir: "."},
		Viewer: ViewerConfig{EaseMS: 250, Boot: true, Watch: true, Constellation: true},
		Contact: ContactConfig{
			Endpoint: "https://api.emailjs.com/api/v1.0/email/send",
			ToEmail:  "khashrul.cse@gmail.com",
		},
	}
}

// Dir returns the skillnet config directory path.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "skillnet")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file. A missing or unreadable file yields the
// defaults; keys absent from the file keep their default values.
func Load() *Config {
	cfg, _ := LoadFile(Path())
	return cfg
}

// LoadFile reads path over the defaults. It always returns a usable
// config; the error reports why the file was not (fully) applied.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg *Config) error {
	return SaveFile(Path(), cfg)
}

// SaveFile writes cfg to path, creating the directory as needed.
func SaveFile(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// EnsureExists creates the config file with defaults if it doesn't exist.
func EnsureExists() error {
	if _, err := os.Stat(Path()); err == nil {
		return nil
	}
	return Save(Default())
}

// Ease returns the viewer tween duration in milliseconds, never negative.
func (v ViewerConfig) Ease() int {
	if v.EaseMS < 0 {
		return 0
	}
	return v.EaseMS
}
