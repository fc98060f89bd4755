package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the resolved application configuration.
type Config struct {
	// ShowHiddenFiles lists dotfiles on startup. The runtime toggle starts
	// from this value and lives in the navigator, never here.
	ShowHiddenFiles bool `mapstructure:"show_hidden_files"`
	// Editor to open files with (falls back to $EDITOR, then "zed").
	Editor string `mapstructure:"editor"`
	// Theme name: "dark" (default) or "light".
	Theme string `mapstructure:"theme"`
}

// Load reads configuration from ~/.config/zdv/config.yaml (or TOML/JSON).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	configDir := configDirectory()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("ZDV")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is fine — use defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("show_hidden_files", false)
	v.SetDefault("editor", "")
	v.SetDefault("theme", "dark")
}

func configDirectory() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "zdv")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "zdv")
}

// ResolveEditor picks the editor command: config value, then $EDITOR, then
// the Zed CLI as a last resort since zdv normally runs inside Zed.
func (c *Config) ResolveEditor() string {
	if c.Editor != "" {
		return c.Editor
	}
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	return "zed"
}
