package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nicobailon/kecap/internal/grid"
	"github.com/spf13/pflag"
)

func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	return tmp
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.File != "" {
		t.Fatalf("expected no config file, got %s", cfg.File)
	}
	opts, err := cfg.GridOptions()
	if err != nil {
		t.Fatalf("grid options: %v", err)
	}
	if opts != grid.DefaultOptions() {
		t.Fatalf("defaults mismatch: %+v", opts)
	}
	if cfg.CellWidth != 12 || cfg.CellHeight != 3 || cfg.SelectedClass != "select" {
		t.Fatalf("cell defaults mismatch: %+v", cfg)
	}
}

func TestLoadYAMLConfig(t *testing.T) {
	tmp := isolate(t)
	cfgPath := filepath.Join(tmp, "kecap", "config.yaml")
	writeFile(t, cfgPath, `preload: 2
item_rows: 10
item_cols: 8
viewport_rows: 4
viewport_cols: 2
gap: 1
strategy: deferred
selected_class: accent`)

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.File != cfgPath {
		t.Fatalf("file mismatch: %s", cfg.File)
	}
	if cfg.Preload != 2 || cfg.ItemRows != 10 || cfg.ItemCols != 8 {
		t.Fatalf("grid size mismatch: %+v", cfg)
	}
	if cfg.ViewportRows != 4 || cfg.ViewportCols != 2 || cfg.Gap != 1 {
		t.Fatalf("viewport mismatch: %+v", cfg)
	}
	if cfg.Strategy != "deferred" {
		t.Fatalf("strategy mismatch: %s", cfg.Strategy)
	}
	if cfg.SelectedClass != "accent" {
		t.Fatalf("selected_class mismatch: %s", cfg.SelectedClass)
	}
	if cfg.CellWidth != 12 {
		t.Fatalf("unset key should keep default, got cell_width %d", cfg.CellWidth)
	}
}

func TestLoadExplicitTOML(t *testing.T) {
	tmp := isolate(t)
	cfgPath := filepath.Join(tmp, "grid.toml")
	writeFile(t, cfgPath, "item_rows = 7\nstrategy = \"b\"\n")

	cfg, err := Load(cfgPath, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ItemRows != 7 {
		t.Fatalf("item_rows mismatch: %d", cfg.ItemRows)
	}
	opts, err := cfg.GridOptions()
	if err != nil {
		t.Fatalf("grid options: %v", err)
	}
	if opts.Strategy != grid.Deferred {
		t.Fatalf("strategy mismatch: %s", opts.Strategy)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	tmp := isolate(t)
	if _, err := Load(filepath.Join(tmp, "nope.yaml"), nil); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestPrecedence(t *testing.T) {
	tmp := isolate(t)
	writeFile(t, filepath.Join(tmp, "kecap", "config.yaml"), "item_rows: 10\nitem_cols: 10\ngap: 3\n")
	t.Setenv("KECAP_ITEM_ROWS", "20")
	t.Setenv("KECAP_ITEM_COLS", "30")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.Int("item-rows", 5, "")
	fs.Int("gap", 0, "")
	if err := fs.Parse([]string{"--item-rows=40"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load("", fs)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ItemRows != 40 {
		t.Fatalf("flag should win, got item_rows %d", cfg.ItemRows)
	}
	if cfg.ItemCols != 30 {
		t.Fatalf("env should beat file, got item_cols %d", cfg.ItemCols)
	}
	if cfg.Gap != 3 {
		t.Fatalf("unchanged flag should not override file, got gap %d", cfg.Gap)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"viewport too large", func(c *Config) { c.ViewportRows = 9 }, grid.ErrViewportTooLarge},
		{"bad strategy", func(c *Config) { c.Strategy = "lazy" }, grid.ErrUnknownStrategy},
		{"zero rows", func(c *Config) { c.ItemRows = 0 }, grid.ErrInvalidSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	cfg := defaultConfig()
	cfg.CellWidth = 2
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for tiny cells")
	}
	if err := defaultConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}
