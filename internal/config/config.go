package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nicobailon/kecap/internal/grid"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultStrategy      = "eager"
	defaultCellWidth     = 12
	defaultCellHeight    = 3
	defaultSelectedClass = "select"
	envPrefix            = "KECAP"
)

type Config struct {
	Preload       int    `mapstructure:"preload"`
	ItemRows      int    `mapstructure:"item_rows"`
	ItemCols      int    `mapstructure:"item_cols"`
	ViewportRows  int    `mapstructure:"viewport_rows"`
	ViewportCols  int    `mapstructure:"viewport_cols"`
	Gap           int    `mapstructure:"gap"`
	Strategy      string `mapstructure:"strategy"`
	CellWidth     int    `mapstructure:"cell_width"`
	CellHeight    int    `mapstructure:"cell_height"`
	SelectedClass string `mapstructure:"selected_class"`
	DebugLog      string `mapstructure:"debug_log"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

func defaultConfig() *Config {
	return &Config{
		Preload:       grid.DefaultPreload,
		ItemRows:      grid.DefaultItemRows,
		ItemCols:      grid.DefaultItemCols,
		ViewportRows:  grid.DefaultViewportRows,
		ViewportCols:  grid.DefaultViewportCols,
		Strategy:      defaultStrategy,
		CellWidth:     defaultCellWidth,
		CellHeight:    defaultCellHeight,
		SelectedClass: defaultSelectedClass,
	}
}

func setDefaults(v *viper.Viper) {
	d := defaultConfig()
	v.SetDefault("preload", d.Preload)
	v.SetDefault("item_rows", d.ItemRows)
	v.SetDefault("item_cols", d.ItemCols)
	v.SetDefault("viewport_rows", d.ViewportRows)
	v.SetDefault("viewport_cols", d.ViewportCols)
	v.SetDefault("gap", d.Gap)
	v.SetDefault("strategy", d.Strategy)
	v.SetDefault("cell_width", d.CellWidth)
	v.SetDefault("cell_height", d.CellHeight)
	v.SetDefault("selected_class", d.SelectedClass)
	v.SetDefault("debug_log", "")
}

func configDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "kecap"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "kecap"))
	}
	return dirs
}

// Load reads the config file (yaml or toml), KECAP_* environment
// variables and any changed flags in fs. Flags win over the environment,
// which wins over the file. path, when set, names the file explicitly.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, err
		}
	}

	if err := readConfigFile(v, path); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.File = v.ConfigFileUsed()
	return cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("config")
	for _, dir := range configDirs() {
		v.AddConfigPath(dir)
	}

	// the parser follows the extension: config.yaml, config.yml or config.toml
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return err
	}
	return nil
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf)
}

// bindFlags maps dashed flag names onto config keys (item-rows -> item_rows).
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Name == "config" {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		err = v.BindPFlag(key, f)
	})
	return err
}

// GridOptions converts the config into validated manager options.
func (c *Config) GridOptions() (grid.Options, error) {
	strategy, err := grid.ParseStrategy(c.Strategy)
	if err != nil {
		return grid.Options{}, err
	}
	opts := grid.Options{
		Preload:      c.Preload,
		ItemRows:     c.ItemRows,
		ItemCols:     c.ItemCols,
		ViewportRows: c.ViewportRows,
		ViewportCols: c.ViewportCols,
		Gap:          c.Gap,
		Strategy:     strategy,
	}
	if err := opts.Validate(); err != nil {
		return grid.Options{}, err
	}
	return opts, nil
}

// Cell sizes must leave room for a border and one line of label.
func (c *Config) validateCells() error {
	if c.CellWidth < 4 || c.CellHeight < 3 {
		return fmt.Errorf("cell size %dx%d too small (min 4x3)", c.CellWidth, c.CellHeight)
	}
	return nil
}

// Validate checks everything the grid and the terminal renderer need.
func (c *Config) Validate() error {
	if _, err := c.GridOptions(); err != nil {
		return err
	}
	return c.validateCells()
}
