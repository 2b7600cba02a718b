// Package configcmder provides the config command for managing persistent
// venx configuration stored in the .venx/ directory.
package configcmder

import (
	"github.com/spf13/cobra"
)

const configLongDesc string = `Manage persistent venx configuration.

Configuration is stored as config.toml in the .venx/ directory and provides
default values for command flags. CLI flags always take precedence over
config file values.

Keys use dotted notation matching the TOML section structure:
  venice.base_url, venice.model, venice.aspect_ratio, venice.steps,
  venice.cfg_scale, venice.format, venice.output_dir, venice.safe_mode,
  venice.auto_upscale,
  chat.providers_path, chat.temperature, chat.timeout_seconds,
  gk.timeout_seconds

Use subcommands to get, set, or list configuration values:
  venx config set <key> <value>    Set a configuration value
  venx config get <key>            Get a configuration value
  venx config list                 List all configuration values
  venx config preset <name>        Apply a generation preset

Examples:
  venx config set venice.model lustify-sdxl
  venx config set venice.steps 50
  venx config get venice.model
  venx config preset quality
  venx config list`

const configShortDesc string = "Manage persistent venx configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newPresetCmd())

	return cmd
}
