package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 1280 || cfg.Height != 720 {
		t.Errorf("unexpected default size %dx%d", cfg.Width, cfg.Height)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "engine.json"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("missing file did not yield defaults: %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playground.json")
	err := os.WriteFile(path, []byte(`{"width": 640, "title": "small", "camera": {"fovy": 60}}`), 0644)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 640 || cfg.Title != "small" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Height != 720 {
		t.Errorf("height default lost: %d", cfg.Height)
	}
	if cfg.Camera.FovY != 60 || cfg.Camera.Far != Default().Camera.Far {
		t.Errorf("camera not merged: %+v", cfg.Camera)
	}
	if err := cfg.Validate(); err != nil {
		t.Error(err)
	}
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"width": "wide"`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.json")
	want := Default()
	want.Seed = 7
	want.LogFPS = true
	want.ClearColor = [4]float32{0, 0, 0.4, 0}
	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestValidate(t *testing.T) {
	for _, test := range []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"lone vertex shader", func(c *Config) { c.VertexShader = "a.vert" }},
		{"lone fragment shader", func(c *Config) { c.FragmentShader = "a.frag" }},
		{"combined and separate", func(c *Config) {
			c.VertexShader, c.FragmentShader, c.CombinedShader = "a.vert", "a.frag", "a.glsl"
		}},
		{"clear color", func(c *Config) { c.ClearColor[2] = 2 }},
		{"camera", func(c *Config) { c.Camera.Near = 0 }},
	} {
		cfg := Default()
		test.modify(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected error", test.name)
		}
	}
}
