package app

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(c *Config){
		"grid":     func(c *Config) { c.GridWidth = 0 },
		"screen":   func(c *Config) { c.ScreenHeight = -1 },
		"zoom":     func(c *Config) { c.ZoomMin = 0 },
		"order":    func(c *Config) { c.ZoomMin, c.ZoomMax = 300, 10 },
		"interval": func(c *Config) { c.Interval = 0 },
		"density":  func(c *Config) { c.Density = 1.5 },
	}
	for name, mutate := range cases {
		c := NewConfig()
		mutate(c)
		if err := c.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "life.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveFileThenFlags(t *testing.T) {
	path := writeConfig(t, `{"grid_width": 64, "grid_height": 48, "interval": 0.25, "zoom": 12}`)

	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-config", path, "-zoom", "30"}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Resolve(fs); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.GridWidth != 64 || cfg.GridHeight != 48 || cfg.Interval != 0.25 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Zoom != 30 {
		t.Fatalf("zoom = %v, explicit flag should win over file", cfg.Zoom)
	}
	if cfg.ScreenWidth != 1100 {
		t.Fatalf("screen width = %d, untouched defaults should survive", cfg.ScreenWidth)
	}
	if cfg.ConfigPath != path {
		t.Fatalf("config path = %q", cfg.ConfigPath)
	}
}

func TestLoadFileErrors(t *testing.T) {
	cfg := NewConfig()
	err := cfg.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil || !strings.Contains(err.Error(), "failed to read file") {
		t.Fatalf("missing file error = %v", err)
	}
	err = cfg.LoadFile(writeConfig(t, "{not json"))
	if err == nil || !strings.Contains(err.Error(), "failed to unmarshal") {
		t.Fatalf("bad json error = %v", err)
	}
}

func TestResolveRejectsInvalidFile(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-config", writeConfig(t, `{"zoom_min": 50, "zoom_max": 5}`)}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Resolve(fs); err == nil {
		t.Fatal("expected inverted zoom bounds to be rejected")
	}
}

func TestGridFlagsLeaveHelpAlone(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if fs.Lookup("h") != nil || fs.Lookup("w") != nil {
		t.Fatal("single-letter grid flags shadow -h help")
	}
	if err := fs.Parse([]string{"-grid-w", "32", "-grid-h", "24"}); err != nil {
		t.Fatal(err)
	}
	if cfg.GridWidth != 32 || cfg.GridHeight != 24 {
		t.Fatalf("grid = %dx%d, want 32x24", cfg.GridWidth, cfg.GridHeight)
	}
}
