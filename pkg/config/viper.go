package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/venxlabs/venx/pkg/dotdir"
)

// InitViper creates and returns a configured *viper.Viper.
// It sets defaults from NewDefaultConfig(), reads the config.toml file
// (if found via dotdir resolution), and binds environment variables
// with the VENX_ prefix.
//
// Config precedence (highest to lowest):
//  1. CLI flags (once bound via BindRegisteredFlags)
//  2. Environment variables (VENX_VENICE_MODEL, VENX_CHAT_PROVIDERS_PATH, etc.)
//  3. config.toml file values
//  4. Defaults from NewDefaultConfig()
func InitViper(configDir string) (*viper.Viper, error) {
	v := viper.New()

	// 1. Register all defaults from NewDefaultConfig().
	setViperDefaults(v)

	// 2. Config file discovery via dotdir resolution.
	v.SetConfigName("config")
	v.SetConfigType("toml")

	ddm := dotdir.NewManager()
	target, err := ddm.Target(configDir)
	if err != nil {
		return nil, fmt.Errorf("resolving config dir: %w", err)
	}

	if target != "" {
		v.AddConfigPath(target)
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file not found errors are fine, defaults will apply.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	// 3. Environment variables: VENX_VENICE_MODEL, VENX_VENICE_OUTPUT_DIR, etc.
	v.SetEnvPrefix("VENX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}

// setViperDefaults registers defaults from NewDefaultConfig() into viper
// using dotted-key notation. This keeps defaults.go as the single source of truth.
func setViperDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	v.SetDefault("version", d.Version)

	// Venice
	v.SetDefault("venice.base_url", d.Venice.BaseURL)
	v.SetDefault("venice.model", d.Venice.Model)
	v.SetDefault("venice.aspect_ratio", d.Venice.AspectRatio)
	v.SetDefault("venice.steps", d.Venice.Steps)
	v.SetDefault("venice.cfg_scale", d.Venice.CfgScale)
	v.SetDefault("venice.format", d.Venice.Format)
	v.SetDefault("venice.output_dir", d.Venice.OutputDir)
	v.SetDefault("venice.safe_mode", d.Venice.SafeMode)
	v.SetDefault("venice.auto_upscale", d.Venice.AutoUpscale)

	// Chat
	v.SetDefault("chat.providers_path", d.Chat.ProvidersPath)
	v.SetDefault("chat.temperature", d.Chat.Temperature)
	v.SetDefault("chat.timeout_seconds", d.Chat.TimeoutSeconds)

	// Gk
	v.SetDefault("gk.timeout_seconds", d.Gk.TimeoutSeconds)
}
