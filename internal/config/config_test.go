package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedMatchesBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	def := DefaultSnakeConfig()
	if cfg.Grid != def.Grid {
		t.Errorf("grid = %+v, expected %+v", cfg.Grid, def.Grid)
	}
	if cfg.Rules != def.Rules {
		t.Errorf("rules = %+v, expected %+v", cfg.Rules, def.Rules)
	}
	if cfg.Timing.InitialIntervalMs != def.Timing.InitialIntervalMs || cfg.Timing.FloorMs != def.Timing.FloorMs {
		t.Errorf("timing = %+v, expected %+v", cfg.Timing, def.Timing)
	}
	if len(cfg.Timing.Steps) != len(def.Timing.Steps) {
		t.Fatalf("steps = %d, expected %d", len(cfg.Timing.Steps), len(def.Timing.Steps))
	}
	for i := range def.Timing.Steps {
		if cfg.Timing.Steps[i] != def.Timing.Steps[i] {
			t.Errorf("step %d = %+v, expected %+v", i, cfg.Timing.Steps[i], def.Timing.Steps[i])
		}
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("grid:\n  size: 30\n  start_x: 15\n  start_y: 15\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Grid.Size != 30 {
		t.Errorf("grid.size = %d, expected 30", cfg.Grid.Size)
	}
	if cfg.Timing.InitialIntervalMs != 200 {
		t.Errorf("timing should keep defaults, got %+v", cfg.Timing)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SnakeConfig)
		wantErr string
	}{
		{"default is valid", func(*SnakeConfig) {}, ""},
		{"grid too small", func(c *SnakeConfig) { c.Grid.Size = 2 }, "grid.size"},
		{"start outside grid", func(c *SnakeConfig) { c.Grid.StartX = 21 }, "grid start"},
		{"negative retries", func(c *SnakeConfig) { c.Rules.FoodRetries = -1 }, "food_retries"},
		{"zero floor", func(c *SnakeConfig) { c.Timing.FloorMs = 0 }, "floor_ms"},
		{"initial below floor", func(c *SnakeConfig) { c.Timing.InitialIntervalMs = 10 }, "below floor"},
		{"negative decrement", func(c *SnakeConfig) { c.Timing.Steps[1].DecrementMs = -3 }, "decrement_ms"},
		{"unordered steps", func(c *SnakeConfig) { c.Timing.Steps[2].AboveMs = 400 }, "previous step"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestResolveSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, work)

	// Nothing on disk: embedded default
	cfg, source, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if source != SourceEmbedded || cfg.Grid.Size != 20 {
		t.Errorf("expected embedded default, got source %q size %d", source, cfg.Grid.Size)
	}

	// Local file wins over embedded
	writeFile(t, filepath.Join(work, LocalConfigPath), "grid: {size: 25, start_x: 5, start_y: 5}\n")
	cfg, source, err = Resolve("")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if source != LocalConfigPath || cfg.Grid.Size != 25 {
		t.Errorf("expected local config, got source %q size %d", source, cfg.Grid.Size)
	}

	// User file wins over local
	userPath := filepath.Join(home, ".gridsnake", "config.yaml")
	writeFile(t, userPath, "grid: {size: 30, start_x: 5, start_y: 5}\n")
	cfg, source, err = Resolve("")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if source != userPath || cfg.Grid.Size != 30 {
		t.Errorf("expected user config, got source %q size %d", source, cfg.Grid.Size)
	}

	// Custom path wins over everything
	custom := filepath.Join(work, "custom.yaml")
	writeFile(t, custom, "grid: {size: 12, start_x: 6, start_y: 6}\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Size != 12 {
		t.Errorf("expected custom config, got size %d", cfg.Grid.Size)
	}
}

func TestResolveSkipsInvalidUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	writeFile(t, filepath.Join(home, ".gridsnake", "config.yaml"), "grid: {size: 1}\n")

	_, source, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("invalid user config should fall through, got source %q", source)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "grid: [not, a, map]\n")
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "initial_interval_ms: 200") {
		t.Errorf("marshalled config missing timing:\n%s", data)
	}
	if _, err := Parse(data); err != nil {
		t.Errorf("marshalled config should parse: %v", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
