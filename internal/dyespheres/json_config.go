package dyespheres

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type InputCfg struct {
	JSON       string `mapstructure:"json"`
	SQLite     string `mapstructure:"sqlite"`
	Query      string `mapstructure:"query"`
	IDField    string `mapstructure:"id_field"`
	ColorField string `mapstructure:"color_field"`
}

type OutputCfg struct {
	Dir   string `mapstructure:"dir"`
	Ext   string `mapstructure:"ext"`
	Sizes []int  `mapstructure:"sizes"`
}

// RenderCfg holds the configurable geometry. Light and material stay fixed.
type RenderCfg struct {
	Size   int     `mapstructure:"size"`
	Radius float64 `mapstructure:"radius"`
	Center float64 `mapstructure:"center"`
}

type Config struct {
	Input         InputCfg  `mapstructure:"input"`
	Output        OutputCfg `mapstructure:"output"`
	Render        RenderCfg `mapstructure:"render"`
	Workers       int       `mapstructure:"workers"`
	ProgressEvery int       `mapstructure:"progress_every"`
	LogLevel      string    `mapstructure:"log_level"`
}

// SetDefaults registers every key so env vars and flags bound to v resolve
// even without a config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input.json", InputJSON)
	v.SetDefault("input.sqlite", "")
	v.SetDefault("input.query", SQLiteQuery)
	v.SetDefault("input.id_field", IDField)
	v.SetDefault("input.color_field", ColorField)
	v.SetDefault("output.dir", OutputDir)
	v.SetDefault("output.ext", OutputExt)
	v.SetDefault("output.sizes", []int{})
	v.SetDefault("render.size", ImageSize)
	v.SetDefault("render.radius", Radius)
	v.SetDefault("render.center", Center)
	v.SetDefault("workers", 0)
	v.SetDefault("progress_every", ProgressEvery)
	v.SetDefault("log_level", LogLevel)
}

// LoadConfig reads path (if non-empty) into v on top of the defaults and
// DYESPHERES_* environment variables, then validates the result.
func LoadConfig(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration and normalizes the output extension.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if strings.TrimSpace(c.Input.JSON) == "" && strings.TrimSpace(c.Input.SQLite) == "" {
		return errors.New("either input.json or input.sqlite must be set")
	}
	if c.Input.SQLite == "" {
		if c.Input.IDField == "" || c.Input.ColorField == "" {
			return errors.New("input.id_field and input.color_field cannot be empty")
		}
	} else if strings.TrimSpace(c.Input.Query) == "" {
		return errors.New("input.query cannot be empty")
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		return errors.New("output.dir cannot be empty")
	}
	if c.Output.Ext != "" && !strings.HasPrefix(c.Output.Ext, ".") {
		c.Output.Ext = "." + c.Output.Ext
	}
	if _, err := iconFormat(c.Output.Ext); err != nil {
		return err
	}
	for _, n := range c.Output.Sizes {
		if n <= 0 {
			return fmt.Errorf("output.sizes must be > 0, got %d", n)
		}
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("invalid render settings: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.ProgressEvery <= 0 {
		c.ProgressEvery = ProgressEvery
	}
	c.Output.Dir = filepath.Clean(c.Output.Dir)
	return nil
}

// Params builds kernel parameters from the render section.
func (c *Config) Params() Params {
	return DefaultParams().WithGeometry(c.Render.Size, c.Render.Radius, c.Render.Center)
}

// DefaultConfig mirrors the registered defaults.
func DefaultConfig() *Config {
	return &Config{
		Input: InputCfg{
			JSON:       InputJSON,
			Query:      SQLiteQuery,
			IDField:    IDField,
			ColorField: ColorField,
		},
		Output:        OutputCfg{Dir: OutputDir, Ext: OutputExt},
		Render:        RenderCfg{Size: ImageSize, Radius: Radius, Center: Center},
		ProgressEvery: ProgressEvery,
		LogLevel:      LogLevel,
	}
}
