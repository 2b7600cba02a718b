package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	"github.com/venxlabs/venx/pkg/config"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

var _ = Describe("Configer config", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "config-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	Describe("LoadConfig", func() {
		It("returns default config when no config file exists", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).NotTo(BeNil())

			defaults := config.NewDefaultConfig()
			Expect(cfg.Version).To(Equal(defaults.Version))
			Expect(cfg.Venice.BaseURL).To(Equal(defaults.Venice.BaseURL))
			Expect(cfg.Venice.Model).To(Equal(defaults.Venice.Model))
			Expect(cfg.Venice.AspectRatio).To(Equal(defaults.Venice.AspectRatio))
			Expect(cfg.Venice.Steps).To(Equal(defaults.Venice.Steps))
			Expect(cfg.Venice.CfgScale).To(Equal(defaults.Venice.CfgScale))
			Expect(cfg.Venice.Format).To(Equal(defaults.Venice.Format))
			Expect(cfg.Venice.OutputDir).To(Equal(defaults.Venice.OutputDir))
			Expect(cfg.Chat.Temperature).To(Equal(defaults.Chat.Temperature))
			Expect(cfg.Chat.TimeoutSeconds).To(Equal(defaults.Chat.TimeoutSeconds))
			Expect(cfg.Gk.TimeoutSeconds).To(Equal(defaults.Gk.TimeoutSeconds))
		})

		It("loads a valid config file", func() {
			data := `version = 0

[venice]
model = "lustify-sdxl"
steps = 50

[chat]
providers_path = "/tmp/providers.yaml"
`
			err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
			Expect(err).NotTo(HaveOccurred())

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).NotTo(BeNil())
			Expect(cfg.Version).To(Equal(0))
			Expect(cfg.Venice.Model).To(Equal("lustify-sdxl"))
			Expect(cfg.Venice.Steps).To(Equal(uint(50)))
			Expect(cfg.Chat.ProvidersPath).To(Equal("/tmp/providers.yaml"))
		})

		It("returns error for malformed TOML", func() {
			err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not valid toml [[["), 0o600)
			Expect(err).NotTo(HaveOccurred())

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).To(HaveOccurred())
			Expect(cfg).To(BeNil())
		})

		It("returns error for unsupported config version", func() {
			data := `version = 99
`
			err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
			Expect(err).NotTo(HaveOccurred())

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unsupported config version"))
			Expect(cfg).To(BeNil())
		})

		It("accepts config with version 0 (omitted)", func() {
			data := `[venice]
model = "flux-dev"
`
			err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
			Expect(err).NotTo(HaveOccurred())

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Venice.Model).To(Equal("flux-dev"))
		})

		It("fills in defaults for unset fields in a partial config", func() {
			data := `version = 0

[venice]
model = "lustify-sdxl"
`
			err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
			Expect(err).NotTo(HaveOccurred())

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())

			// Explicitly set value should be preserved.
			Expect(cfg.Venice.Model).To(Equal("lustify-sdxl"))

			// Unset fields should get defaults.
			defaults := config.NewDefaultConfig()
			Expect(cfg.Venice.BaseURL).To(Equal(defaults.Venice.BaseURL))
			Expect(cfg.Venice.Steps).To(Equal(defaults.Venice.Steps))
			Expect(cfg.Venice.CfgScale).To(Equal(defaults.Venice.CfgScale))
			Expect(cfg.Chat.Temperature).To(Equal(defaults.Chat.Temperature))
			Expect(cfg.Gk.TimeoutSeconds).To(Equal(defaults.Gk.TimeoutSeconds))
		})
	})

	Describe("SaveConfig", func() {
		It("persists config to disk", func() {
			cfg := &config.Config{
				Version: config.CurrentV,
				Venice: config.VeniceConfig{
					Model: "lustify-sdxl",
					Steps: 40,
				},
			}

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SaveConfig(cfg)
			Expect(err).NotTo(HaveOccurred())

			// Verify the file exists
			_, err = os.Stat(filepath.Join(tmpDir, "config.toml"))
			Expect(err).NotTo(HaveOccurred())

			// Load it back and verify
			loaded, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Venice.Model).To(Equal("lustify-sdxl"))
			Expect(loaded.Venice.Steps).To(Equal(uint(40)))
		})

		It("returns error for nil config", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SaveConfig(nil)
			Expect(err).To(HaveOccurred())
		})

		It("overwrites existing config", func() {
			first := &config.Config{
				Version: config.CurrentV,
				Venice:  config.VeniceConfig{Model: "flux-dev"},
			}
			second := &config.Config{
				Version: config.CurrentV,
				Venice:  config.VeniceConfig{Model: "lustify-sdxl"},
			}

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SaveConfig(first)
			Expect(err).NotTo(HaveOccurred())

			err = c.SaveConfig(second)
			Expect(err).NotTo(HaveOccurred())

			loaded, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Venice.Model).To(Equal("lustify-sdxl"))
		})
	})

	Describe("SetConfigValue", func() {
		It("sets a string config key", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SetConfigValue("venice.model", "lustify-sdxl")
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Venice.Model).To(Equal("lustify-sdxl"))
		})

		It("sets a uint config key", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SetConfigValue("venice.steps", "45")
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Venice.Steps).To(Equal(uint(45)))
		})

		It("sets a float config key", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SetConfigValue("venice.cfg_scale", "7.5")
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Venice.CfgScale).To(Equal(7.5))
		})

		It("sets a bool config key", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SetConfigValue("venice.auto_upscale", "true")
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Venice.AutoUpscale).To(BeTrue())
		})

		It("returns error for unknown key", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SetConfigValue("nonexistent_key", "value")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unknown config key"))
		})

		It("returns error for invalid uint value", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SetConfigValue("venice.steps", "not-a-number")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("invalid value"))
		})

		It("preserves existing values when setting a new key", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SetConfigValue("venice.model", "lustify-sdxl")
			Expect(err).NotTo(HaveOccurred())

			err = c.SetConfigValue("chat.providers_path", "/tmp/providers.yaml")
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Venice.Model).To(Equal("lustify-sdxl"))
			Expect(cfg.Chat.ProvidersPath).To(Equal("/tmp/providers.yaml"))
		})
	})

	Describe("GetConfigValue", func() {
		It("gets a set config value", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SetConfigValue("venice.model", "lustify-sdxl")
			Expect(err).NotTo(HaveOccurred())

			val, err := c.GetConfigValue("venice.model")
			Expect(err).NotTo(HaveOccurred())
			Expect(val).To(Equal("lustify-sdxl"))
		})

		It("returns default value when no config file exists", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			val, err := c.GetConfigValue("venice.model")
			Expect(err).NotTo(HaveOccurred())
			Expect(val).To(Equal(config.NewDefaultConfig().Venice.Model))
		})

		It("returns empty string for key with no default", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			val, err := c.GetConfigValue("chat.providers_path")
			Expect(err).NotTo(HaveOccurred())
			Expect(val).To(BeEmpty())
		})

		It("returns error for unknown key", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			_, err = c.GetConfigValue("nonexistent_key")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unknown config key"))
		})

		It("gets a uint config value as string", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SetConfigValue("venice.steps", "45")
			Expect(err).NotTo(HaveOccurred())

			val, err := c.GetConfigValue("venice.steps")
			Expect(err).NotTo(HaveOccurred())
			Expect(val).To(Equal("45"))
		})
	})

	Describe("ValidConfigKeys", func() {
		It("returns all expected keys", func() {
			keys := config.ValidConfigKeys()
			Expect(keys).To(ContainElements(
				"venice.base_url",
				"venice.model",
				"venice.aspect_ratio",
				"venice.steps",
				"venice.cfg_scale",
				"venice.format",
				"venice.output_dir",
				"venice.safe_mode",
				"venice.auto_upscale",
				"chat.providers_path",
				"chat.temperature",
				"chat.timeout_seconds",
				"gk.timeout_seconds",
			))
		})

		It("returns keys in stable order", func() {
			keys1 := config.ValidConfigKeys()
			keys2 := config.ValidConfigKeys()
			Expect(keys1).To(Equal(keys2))
		})
	})

	Describe("IsValidConfigKey", func() {
		It("returns true for valid keys", func() {
			Expect(config.IsValidConfigKey("venice.model")).To(BeTrue())
			Expect(config.IsValidConfigKey("venice.steps")).To(BeTrue())
			Expect(config.IsValidConfigKey("chat.providers_path")).To(BeTrue())
			Expect(config.IsValidConfigKey("gk.timeout_seconds")).To(BeTrue())
		})

		It("returns false for invalid keys", func() {
			Expect(config.IsValidConfigKey("nonexistent")).To(BeFalse())
			Expect(config.IsValidConfigKey("")).To(BeFalse())
		})

		It("returns false for old flat key names", func() {
			Expect(config.IsValidConfigKey("model")).To(BeFalse())
			Expect(config.IsValidConfigKey("steps")).To(BeFalse())
			Expect(config.IsValidConfigKey("venice_model")).To(BeFalse())
		})
	})
})

var _ = Describe("PresetConfig", func() {
	It("returns the default preset unchanged", func() {
		cfg, err := config.PresetConfig("default")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(config.NewDefaultConfig()))
	})

	It("returns the fast preset with reduced steps", func() {
		cfg, err := config.PresetConfig("fast")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Venice.Steps).To(Equal(uint(15)))
		Expect(cfg.Venice.CfgScale).To(Equal(4.0))
	})

	It("returns the quality preset with upscaling enabled", func() {
		cfg, err := config.PresetConfig("quality")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Venice.Steps).To(Equal(uint(50)))
		Expect(cfg.Venice.CfgScale).To(Equal(7.5))
		Expect(cfg.Venice.AutoUpscale).To(BeTrue())
	})

	It("is case-insensitive", func() {
		cfg, err := config.PresetConfig("Quality")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Venice.Steps).To(Equal(uint(50)))
	})

	It("returns error for unknown preset", func() {
		cfg, err := config.PresetConfig("nonexistent")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("unknown preset"))
		Expect(cfg).To(BeNil())
	})
})

var _ = Describe("ValidPresetNames", func() {
	It("returns the expected preset names", func() {
		names := config.ValidPresetNames()
		Expect(names).To(ConsistOf("default", "fast", "quality"))
	})
})

var _ = Describe("ParseConfigTOML", func() {
	It("parses valid TOML into a Config", func() {
		data := []byte(`version = 0

[venice]
model = "lustify-sdxl"
steps = 50
cfg_scale = 7.5
`)
		cfg, err := config.ParseConfigTOML(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Version).To(Equal(0))
		Expect(cfg.Venice.Model).To(Equal("lustify-sdxl"))
		Expect(cfg.Venice.Steps).To(Equal(uint(50)))
		Expect(cfg.Venice.CfgScale).To(Equal(7.5))
	})

	It("returns error for invalid TOML", func() {
		cfg, err := config.ParseConfigTOML([]byte("not valid [[["))
		Expect(err).To(HaveOccurred())
		Expect(cfg).To(BeNil())
	})

	It("returns empty config for empty input", func() {
		cfg, err := config.ParseConfigTOML([]byte(""))
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).NotTo(BeNil())
		Expect(cfg.Venice.Model).To(BeEmpty())
	})

	It("rejects unsupported config version", func() {
		data := []byte(`version = 2
`)
		cfg, err := config.ParseConfigTOML(data)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("unsupported config version"))
		Expect(cfg).To(BeNil())
	})
})

var _ = Describe("NewDefaultConfig", func() {
	It("returns fully-populated defaults", func() {
		cfg := config.NewDefaultConfig()
		Expect(cfg.Version).To(Equal(config.CurrentV))
		Expect(cfg.Venice.BaseURL).To(Equal("https://api.venice.ai/api/v1"))
		Expect(cfg.Venice.Model).To(Equal("flux-dev-uncensored"))
		Expect(cfg.Venice.AspectRatio).To(Equal("tall"))
		Expect(cfg.Venice.Steps).To(Equal(uint(30)))
		Expect(cfg.Venice.CfgScale).To(Equal(5.0))
		Expect(cfg.Venice.Format).To(Equal("png"))
		Expect(cfg.Venice.OutputDir).To(Equal("generated"))
		Expect(cfg.Venice.SafeMode).To(BeFalse())
		Expect(cfg.Chat.Temperature).To(Equal(0.7))
		Expect(cfg.Chat.TimeoutSeconds).To(Equal(uint(30)))
		Expect(cfg.Gk.TimeoutSeconds).To(Equal(uint(30)))
	})
})

var _ = Describe("InitViper", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "viper-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	It("returns viper with defaults when no config file exists", func() {
		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).NotTo(BeNil())

		defaults := config.NewDefaultConfig()
		Expect(v.GetString("venice.base_url")).To(Equal(defaults.Venice.BaseURL))
		Expect(v.GetString("venice.model")).To(Equal(defaults.Venice.Model))
		Expect(v.GetUint("venice.steps")).To(Equal(defaults.Venice.Steps))
		Expect(v.GetFloat64("chat.temperature")).To(Equal(defaults.Chat.Temperature))
	})

	It("reads config file values over defaults", func() {
		data := `[venice]
model = "lustify-sdxl"
steps = 50
`
		err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
		Expect(err).NotTo(HaveOccurred())

		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		Expect(v.GetString("venice.model")).To(Equal("lustify-sdxl"))
		Expect(v.GetUint("venice.steps")).To(Equal(uint(50)))
		// Unset fields should still get defaults
		defaults := config.NewDefaultConfig()
		Expect(v.GetString("venice.format")).To(Equal(defaults.Venice.Format))
	})

	It("respects environment variables with VENX_ prefix", func() {
		os.Setenv("VENX_VENICE_MODEL", "flux-dev")
		defer os.Unsetenv("VENX_VENICE_MODEL")

		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		Expect(v.GetString("venice.model")).To(Equal("flux-dev"))
	})

	It("env vars take precedence over config file values", func() {
		data := `[venice]
model = "lustify-sdxl"
`
		err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
		Expect(err).NotTo(HaveOccurred())

		os.Setenv("VENX_VENICE_MODEL", "flux-dev")
		defer os.Unsetenv("VENX_VENICE_MODEL")

		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		Expect(v.GetString("venice.model")).To(Equal("flux-dev"))
	})
})

var _ = Describe("BindFlags", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "bindflag-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	It("binds cobra flags to viper keys via registry", func() {
		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		fs := config.FlagSet{
			config.FlagVeniceModel: {Name: "model", Shorthand: "m", ViperKey: "venice.model", Description: "Image model to use"},
		}

		cmd := &cobra.Command{Use: "test"}
		var model string
		config.AddStringFlag(cmd, fs, config.FlagVeniceModel, &model)

		// Simulate flag being set by user
		err = cmd.Flags().Set("model", "lustify-sdxl")
		Expect(err).NotTo(HaveOccurred())

		config.BindRegisteredFlags(v, cmd, fs, []string{config.FlagVeniceModel})

		Expect(v.GetString("venice.model")).To(Equal("lustify-sdxl"))
	})

	It("falls through to config when flag not set", func() {
		data := `[venice]
model = "flux-dev"
`
		err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
		Expect(err).NotTo(HaveOccurred())

		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		fs := config.FlagSet{
			config.FlagVeniceModel: {Name: "model", Shorthand: "m", ViperKey: "venice.model", Description: "Image model to use"},
		}

		cmd := &cobra.Command{Use: "test"}
		var model string
		config.AddStringFlag(cmd, fs, config.FlagVeniceModel, &model)

		// Do NOT set the flag -- should fall through to config file value
		config.BindRegisteredFlags(v, cmd, fs, []string{config.FlagVeniceModel})

		Expect(v.GetString("venice.model")).To(Equal("flux-dev"))
	})

	It("skips bindings for nonexistent registry keys", func() {
		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		fs := config.FlagSet{}

		cmd := &cobra.Command{Use: "test"}

		// "nonexistent" is not in the FlagSet -- should be safely skipped
		config.BindRegisteredFlags(v, cmd, fs, []string{"nonexistent"})

		defaults := config.NewDefaultConfig()
		Expect(v.GetString("venice.model")).To(Equal(defaults.Venice.Model))
	})

	It("AddStringFlag pulls name, shorthand, and description from FlagSet", func() {
		fs := config.FlagSet{
			config.FlagOutputDir: {Name: "output-dir", Shorthand: "o", ViperKey: "venice.output_dir", Description: "Directory for generated images"},
		}

		cmd := &cobra.Command{Use: "test"}
		var dir string
		config.AddStringFlag(cmd, fs, config.FlagOutputDir, &dir)

		f := cmd.Flags().Lookup("output-dir")
		Expect(f).NotTo(BeNil())
		Expect(f.Shorthand).To(Equal("o"))
		Expect(f.Usage).To(Equal("Directory for generated images"))

		defaults := config.NewDefaultConfig()
		Expect(f.DefValue).To(Equal(defaults.Venice.OutputDir))
	})

	It("AddUintFlag works for steps", func() {
		fs := config.FlagSet{
			config.FlagSteps: {Name: "steps", ViperKey: "venice.steps", Description: "Inference steps"},
		}

		cmd := &cobra.Command{Use: "test"}
		var steps uint
		config.AddUintFlag(cmd, fs, config.FlagSteps, &steps)

		f := cmd.Flags().Lookup("steps")
		Expect(f).NotTo(BeNil())
		Expect(f.Usage).To(Equal("Inference steps"))
	})

	It("AddFloat64Flag works for cfg-scale", func() {
		fs := config.FlagSet{
			config.FlagCfgScale: {Name: "cfg-scale", ViperKey: "venice.cfg_scale", Description: "Prompt adherence strength"},
		}

		cmd := &cobra.Command{Use: "test"}
		var scale float64
		config.AddFloat64Flag(cmd, fs, config.FlagCfgScale, &scale)

		f := cmd.Flags().Lookup("cfg-scale")
		Expect(f).NotTo(BeNil())
		Expect(f.DefValue).To(Equal("5"))
	})

	It("AddBoolFlag works for safe-mode", func() {
		fs := config.FlagSet{
			config.FlagSafeMode: {Name: "safe-mode", ViperKey: "venice.safe_mode", Description: "Blur adult content"},
		}

		cmd := &cobra.Command{Use: "test"}
		var safe bool
		config.AddBoolFlag(cmd, fs, config.FlagSafeMode, &safe)

		f := cmd.Flags().Lookup("safe-mode")
		Expect(f).NotTo(BeNil())
		Expect(f.DefValue).To(Equal("false"))
	})
})
