package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flag is the single source of truth for a CLI flag.
// Commands reference flags by registry key rather than hard-coding names,
// shorthands, defaults, and descriptions inline. This prevents flag drift
// when the same logical flag appears on multiple commands (e.g., --model
// on both "venx image generate" and "venx chat").
type Flag struct {
	// Name is the long flag name (e.g. "model").
	Name string

	// Shorthand is the one-letter short flag (e.g. "m"). Empty for no shorthand.
	Shorthand string

	// ViperKey is the dotted config key this flag maps to (e.g. "venice.model").
	ViperKey string

	// Description is the help text shown in --help output.
	Description string
}

// FlagSet is a mapping of flag names to Flag structs that hold their name,
// shorthand, viper key, etc.
type FlagSet map[string]Flag

// Flag registry keys.
// Use these constants when calling AddStringFlag, AddUintFlag, and
// BindRegisteredFlags to avoid typos or drift from one command to another.
const (
	FlagVeniceBaseURL = "venice-base-url"
	FlagVeniceModel   = "venice-model"
	FlagAspectRatio   = "aspect-ratio"
	FlagSteps         = "steps"
	FlagCfgScale      = "cfg-scale"
	FlagFormat        = "format"
	FlagOutputDir     = "output-dir"
	FlagSafeMode      = "safe-mode"
	FlagAutoUpscale   = "auto-upscale"

	FlagProvidersPath = "providers-path"
	FlagTemperature   = "temperature"
	FlagChatTimeout   = "chat-timeout"

	FlagGkTimeout = "gk-timeout"
)

// GenerateFlags declares the image-generation flags that mirror [venice]
// config keys. Commands register them via the Add*Flag helpers and bind them
// with BindRegisteredFlags so a flag falls through to VENX_* environment
// variables and config.toml when unset.
func GenerateFlags() FlagSet {
	return FlagSet{
		FlagVeniceModel: {Name: "model", Shorthand: "m", ViperKey: "venice.model",
			Description: "Image model to use"},
		FlagAspectRatio: {Name: "aspect-ratio", ViperKey: "venice.aspect_ratio",
			Description: "Aspect ratio: square, tall, wide"},
		FlagSteps: {Name: "steps", ViperKey: "venice.steps",
			Description: "Inference steps"},
		FlagCfgScale: {Name: "cfg-scale", ViperKey: "venice.cfg_scale",
			Description: "Prompt adherence strength"},
		FlagFormat: {Name: "format", ViperKey: "venice.format",
			Description: "Output image format"},
		FlagOutputDir: {Name: "output-dir", Shorthand: "o", ViperKey: "venice.output_dir",
			Description: "Directory for generated images"},
		FlagSafeMode: {Name: "safe-mode", ViperKey: "venice.safe_mode",
			Description: "Blur adult content"},
		FlagAutoUpscale: {Name: "upscale", ViperKey: "venice.auto_upscale",
			Description: "Upscale the result after generation"},
	}
}

// GenerateFlagKeys returns the registry keys of GenerateFlags, for
// BindRegisteredFlags.
func GenerateFlagKeys() []string {
	return []string{
		FlagVeniceModel, FlagAspectRatio, FlagSteps, FlagCfgScale,
		FlagFormat, FlagOutputDir, FlagSafeMode, FlagAutoUpscale,
	}
}

// ChatFlags declares the chat flags that mirror [chat] config keys.
func ChatFlags() FlagSet {
	return FlagSet{
		FlagProvidersPath: {Name: "providers-path", ViperKey: "chat.providers_path",
			Description: "Path to the Raycast providers.yaml"},
		FlagTemperature: {Name: "temperature", Shorthand: "t", ViperKey: "chat.temperature",
			Description: "Sampling temperature"},
	}
}

// AddStringFlag registers a string flag on cmd from the given FlagSet.
// The flag's name, shorthand, default, and description all come from the
// FlagSet entry so they cannot drift across commands.
func AddStringFlag(cmd *cobra.Command, fs FlagSet, key string, target *string) {
	def, ok := fs[key]
	if !ok {
		return
	}

	defaultVal := defaultString(def.ViperKey)
	if def.Shorthand != "" {
		cmd.Flags().StringVarP(target, def.Name, def.Shorthand, defaultVal, def.Description)
	} else {
		cmd.Flags().StringVar(target, def.Name, defaultVal, def.Description)
	}
}

// AddUintFlag registers a uint flag on cmd from the given FlagSet.
func AddUintFlag(cmd *cobra.Command, fs FlagSet, registryKey string, target *uint) {
	def, ok := fs[registryKey]
	if !ok {
		return
	}

	defaultVal := defaultUint(def.ViperKey)
	if def.Shorthand != "" {
		cmd.Flags().UintVarP(target, def.Name, def.Shorthand, defaultVal, def.Description)
	} else {
		cmd.Flags().UintVar(target, def.Name, defaultVal, def.Description)
	}
}

// AddFloat64Flag registers a float64 flag on cmd from the given FlagSet.
func AddFloat64Flag(cmd *cobra.Command, fs FlagSet, registryKey string, target *float64) {
	def, ok := fs[registryKey]
	if !ok {
		return
	}

	defaultVal := defaultFloat64(def.ViperKey)
	if def.Shorthand != "" {
		cmd.Flags().Float64VarP(target, def.Name, def.Shorthand, defaultVal, def.Description)
	} else {
		cmd.Flags().Float64Var(target, def.Name, defaultVal, def.Description)
	}
}

// AddBoolFlag registers a bool flag on cmd from the given FlagSet.
func AddBoolFlag(cmd *cobra.Command, fs FlagSet, registryKey string, target *bool) {
	def, ok := fs[registryKey]
	if !ok {
		return
	}

	defaultVal := defaultBool(def.ViperKey)
	if def.Shorthand != "" {
		cmd.Flags().BoolVarP(target, def.Name, def.Shorthand, defaultVal, def.Description)
	} else {
		cmd.Flags().BoolVar(target, def.Name, defaultVal, def.Description)
	}
}

// BindRegisteredFlags binds already-registered flags to viper using definitions
// from the given FlagSet. Call this in PreRunE after InitViper to connect flags
// to the viper precedence chain (flag > env > config file > default).
func BindRegisteredFlags(v *viper.Viper, cmd *cobra.Command, fs FlagSet, registryKeys []string) {
	for _, registryKey := range registryKeys {
		def, ok := fs[registryKey]
		if !ok {
			continue
		}

		f := cmd.Flags().Lookup(def.Name)
		if f == nil {
			continue
		}

		_ = v.BindPFlag(def.ViperKey, f)
	}
}

// defaultString returns the default string value for a viper key from NewDefaultConfig.
func defaultString(viperKey string) string {
	v := viper.New()
	setViperDefaults(v)
	return v.GetString(viperKey)
}

// defaultUint returns the default uint value for a viper key from NewDefaultConfig.
func defaultUint(viperKey string) uint {
	v := viper.New()
	setViperDefaults(v)
	return v.GetUint(viperKey)
}

// defaultFloat64 returns the default float64 value for a viper key from NewDefaultConfig.
func defaultFloat64(viperKey string) float64 {
	v := viper.New()
	setViperDefaults(v)
	return v.GetFloat64(viperKey)
}

// defaultBool returns the default bool value for a viper key from NewDefaultConfig.
func defaultBool(viperKey string) bool {
	v := viper.New()
	setViperDefaults(v)
	return v.GetBool(viperKey)
}
