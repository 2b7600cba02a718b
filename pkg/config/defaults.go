package config

const (
	defaultVeniceBaseURL     = "https://api.venice.ai/api/v1"
	defaultVeniceModel       = "flux-dev-uncensored"
	defaultVeniceAspectRatio = "tall"
	defaultVeniceSteps       = 30
	defaultVeniceCfgScale    = 5.0
	defaultVeniceFormat      = "png"
	defaultVeniceOutputDir   = "generated"

	defaultChatTemperature    = 0.7
	defaultChatTimeoutSeconds = 30

	defaultGkTimeoutSeconds = 30
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		Venice: VeniceConfig{
			BaseURL:     defaultVeniceBaseURL,
			Model:       defaultVeniceModel,
			AspectRatio: defaultVeniceAspectRatio,
			Steps:       defaultVeniceSteps,
			CfgScale:    defaultVeniceCfgScale,
			Format:      defaultVeniceFormat,
			OutputDir:   defaultVeniceOutputDir,
		},
		Chat: ChatConfig{
			Temperature:    defaultChatTemperature,
			TimeoutSeconds: defaultChatTimeoutSeconds,
		},
		Gk: GkConfig{
			TimeoutSeconds: defaultGkTimeoutSeconds,
		},
	}
}
