// Package config loads synless-go's editor-level settings -- the ones
// that live outside the core document/layout model and are read once by
// cmd/synless at startup (SPEC_FULL.md's Ambient Stack: "Global state is
// explicit", spec.md §9). Grounded on Sumatoshi-tech-codefang's
// internal/config package: a viper.Viper with defaults set before any
// config file or environment variable is read, unmarshalled into a single
// typed Config struct, then validated.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/synless-editor/synless/internal/style"
)

const (
	configName = ".synless"
	configType = "yaml"
	envPrefix  = "SYNLESS"
	envKeySeparator = "_"
)

const (
	DefaultPaneWidth      = 80
	DefaultTabSize        = 4
	DefaultThemeName      = "dark"
	DefaultUseDisplayWidth = true
)

// Config is synless-go's full set of editor-level settings.
type Config struct {
	PaneWidth       int    `mapstructure:"pane_width"`
	TabSize         int    `mapstructure:"tab_size"`
	Theme           string `mapstructure:"theme"`
	UseDisplayWidth bool   `mapstructure:"use_display_width"`
}

var (
	ErrInvalidPaneWidth = errors.New("config: pane_width must be positive")
	ErrInvalidTabSize   = errors.New("config: tab_size must be positive")
	ErrUnknownTheme     = errors.New("config: unknown theme name")
)

// Validate checks the fields of cfg for internal consistency, the same
// role Sumatoshi-tech-codefang's Config.Validate plays after unmarshalling.
func (c *Config) Validate() error {
	if c.PaneWidth <= 0 {
		return ErrInvalidPaneWidth
	}
	if c.TabSize <= 0 {
		return ErrInvalidTabSize
	}
	if _, ok := style.ThemeByName(c.Theme); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, c.Theme)
	}
	return nil
}

// ResolveTheme looks up the ColorTheme named by c.Theme. Callers should
// only reach this after a successful Validate, which already confirmed
// the name resolves.
func (c *Config) ResolveTheme() *style.ColorTheme {
	theme, ok := style.ThemeByName(c.Theme)
	if !ok {
		theme, _ = style.ThemeByName(DefaultThemeName)
	}
	return theme
}

// Load loads configuration from an explicit file (if configPath is
// non-empty), otherwise searches the current directory and $HOME for a
// ".synless.yaml". Environment variables prefixed SYNLESS_ override
// values from the file, and the defaults above fill in anything neither
// sets. A missing config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("pane_width", DefaultPaneWidth)
	v.SetDefault("tab_size", DefaultTabSize)
	v.SetDefault("theme", DefaultThemeName)
	v.SetDefault("use_display_width", DefaultUseDisplayWidth)
}
