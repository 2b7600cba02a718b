package config

import (
	"fmt"
	"strconv"
)

// Config is the persistent venx configuration stored as config.toml in the
// .venx/ directory. The TOML layout uses sections for logical grouping.
type Config struct {
	Version int          `toml:"version"`
	Venice  VeniceConfig `toml:"venice"`
	Chat    ChatConfig   `toml:"chat"`
	Gk      GkConfig     `toml:"gk"`
}

// VeniceConfig holds image generation settings.
type VeniceConfig struct {
	BaseURL     string  `toml:"base_url,omitempty"`
	Model       string  `toml:"model,omitempty"`
	AspectRatio string  `toml:"aspect_ratio,omitempty"`
	Steps       uint    `toml:"steps,omitempty"`
	CfgScale    float64 `toml:"cfg_scale,omitempty"`
	Format      string  `toml:"format,omitempty"`
	OutputDir   string  `toml:"output_dir,omitempty"`
	SafeMode    bool    `toml:"safe_mode,omitempty"`
	AutoUpscale bool    `toml:"auto_upscale,omitempty"`
}

// ChatConfig holds chat dispatch settings.
type ChatConfig struct {
	ProvidersPath  string  `toml:"providers_path,omitempty"`
	Temperature    float64 `toml:"temperature,omitempty"`
	TimeoutSeconds uint    `toml:"timeout_seconds,omitempty"`
}

// GkConfig holds GitKraken CLI settings.
type GkConfig struct {
	TimeoutSeconds uint `toml:"timeout_seconds,omitempty"`
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"venice.base_url": {
		get: func(c *Config) string { return c.Venice.BaseURL },
		set: func(c *Config, v string) error { c.Venice.BaseURL = v; return nil },
	},
	"venice.model": {
		get: func(c *Config) string { return c.Venice.Model },
		set: func(c *Config, v string) error { c.Venice.Model = v; return nil },
	},
	"venice.aspect_ratio": {
		get: func(c *Config) string { return c.Venice.AspectRatio },
		set: func(c *Config, v string) error { c.Venice.AspectRatio = v; return nil },
	},
	"venice.steps": {
		get: func(c *Config) string {
			if c.Venice.Steps == 0 {
				return ""
			}
			return strconv.FormatUint(uint64(c.Venice.Steps), 10)
		},
		set: func(c *Config, v string) error {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value for venice.steps: %w", err)
			}
			c.Venice.Steps = uint(n)
			return nil
		},
	},
	"venice.cfg_scale": {
		get: func(c *Config) string {
			if c.Venice.CfgScale == 0 {
				return ""
			}
			return strconv.FormatFloat(c.Venice.CfgScale, 'f', -1, 64)
		},
		set: func(c *Config, v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("invalid value for venice.cfg_scale: %w", err)
			}
			c.Venice.CfgScale = f
			return nil
		},
	},
	"venice.format": {
		get: func(c *Config) string { return c.Venice.Format },
		set: func(c *Config, v string) error { c.Venice.Format = v; return nil },
	},
	"venice.output_dir": {
		get: func(c *Config) string { return c.Venice.OutputDir },
		set: func(c *Config, v string) error { c.Venice.OutputDir = v; return nil },
	},
	"venice.safe_mode": {
		get: func(c *Config) string { return strconv.FormatBool(c.Venice.SafeMode) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid value for venice.safe_mode: %w", err)
			}
			c.Venice.SafeMode = b
			return nil
		},
	},
	"venice.auto_upscale": {
		get: func(c *Config) string { return strconv.FormatBool(c.Venice.AutoUpscale) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid value for venice.auto_upscale: %w", err)
			}
			c.Venice.AutoUpscale = b
			return nil
		},
	},
	"chat.providers_path": {
		get: func(c *Config) string { return c.Chat.ProvidersPath },
		set: func(c *Config, v string) error { c.Chat.ProvidersPath = v; return nil },
	},
	"chat.temperature": {
		get: func(c *Config) string {
			if c.Chat.Temperature == 0 {
				return ""
			}
			return strconv.FormatFloat(c.Chat.Temperature, 'f', -1, 64)
		},
		set: func(c *Config, v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("invalid value for chat.temperature: %w", err)
			}
			c.Chat.Temperature = f
			return nil
		},
	},
	"chat.timeout_seconds": {
		get: func(c *Config) string {
			if c.Chat.TimeoutSeconds == 0 {
				return ""
			}
			return strconv.FormatUint(uint64(c.Chat.TimeoutSeconds), 10)
		},
		set: func(c *Config, v string) error {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value for chat.timeout_seconds: %w", err)
			}
			c.Chat.TimeoutSeconds = uint(n)
			return nil
		},
	},
	"gk.timeout_seconds": {
		get: func(c *Config) string {
			if c.Gk.TimeoutSeconds == 0 {
				return ""
			}
			return strconv.FormatUint(uint64(c.Gk.TimeoutSeconds), 10)
		},
		set: func(c *Config, v string) error {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value for gk.timeout_seconds: %w", err)
			}
			c.Gk.TimeoutSeconds = uint(n)
			return nil
		},
	},
}
