// Package config holds the playground settings. Values come from Default,
// are overridden by an optional JSON file and finally by command line flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/soypat/glcube/camera"
)

// Config is the complete set of playground settings.
type Config struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	// VSync blocks buffer swaps on the display refresh.
	VSync bool `json:"vsync"`
	// Seed seeds the color generator. Zero picks a time based seed.
	Seed   int64 `json:"seed,omitempty"`
	LogFPS bool  `json:"log_fps"`
	// ClearColor is the RGBA background.
	ClearColor [4]float32    `json:"clear_color"`
	Camera     camera.Camera `json:"camera"`

	// VertexShader and FragmentShader name shader files on disk. Both or
	// neither must be set. CombinedShader names a single file with both
	// stages. When all are empty the embedded shaders are used.
	VertexShader   string `json:"vertex_shader,omitempty"`
	FragmentShader string `json:"fragment_shader,omitempty"`
	CombinedShader string `json:"combined_shader,omitempty"`
}

// Default returns the built-in settings: a 1280x720 window
// titled "Playground" with a dark background.
func Default() Config {
	return Config{
		Width:  1280,
		Height: 720,
		Title:  "Playground",
		VSync:  true,
		Camera: camera.Default(),
	}
}

// Load reads settings from a JSON file on top of Default. A missing file is
// not an error, the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as indented JSON.
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the settings can be used to open a window and render.
func (cfg Config) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if (cfg.VertexShader == "") != (cfg.FragmentShader == "") {
		return errors.New("vertex and fragment shader files must be set together")
	}
	if cfg.CombinedShader != "" && cfg.VertexShader != "" {
		return errors.New("combined shader file conflicts with separate shader files")
	}
	for _, c := range cfg.ClearColor {
		if c < 0 || c > 1 {
			return fmt.Errorf("clear color component %g out of [0,1]", c)
		}
	}
	if err := cfg.Camera.Validate(); err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	return nil
}
