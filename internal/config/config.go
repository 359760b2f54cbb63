package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Gen GenConfig
	Log LogConfig
}

// GenConfig holds generation-capability settings.
type GenConfig struct {
	APIKeyEnv  string `mapstructure:"api_key_env"`
	APIKey     string `mapstructure:"api_key"`
	TextModel  string `mapstructure:"text_model"`
	ImageModel string `mapstructure:"image_model"`
}

// LogConfig holds diagnostic logging settings. The TUI owns stdout, so logs
// go to a file.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix APPCANVAS_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("gen.api_key_env", "GEMINI_API_KEY")
	v.SetDefault("gen.api_key", "")
	v.SetDefault("gen.text_model", "gemini-3-flash-preview")
	v.SetDefault("gen.image_model", "gemini-2.5-flash-image")
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "appcanvas", "appcanvas.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("APPCANVAS_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "appcanvas"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("APPCANVAS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. The API key belongs in the secret store or an env var; it is only
// written here when the user explicitly set it in the config file before.
func Save(cfg Config) error {
	path := os.Getenv("APPCANVAS_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "appcanvas", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("gen.api_key_env", cfg.Gen.APIKeyEnv)
	v.Set("gen.api_key", cfg.Gen.APIKey)
	v.Set("gen.text_model", cfg.Gen.TextModel)
	v.Set("gen.image_model", cfg.Gen.ImageModel)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
