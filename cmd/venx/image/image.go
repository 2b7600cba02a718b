// Package imagecmder provides the image commands for Venice AI generation
// and upscaling.
package imagecmder

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/venxlabs/venx/pkg/config"
	"github.com/venxlabs/venx/pkg/logger"
	"github.com/venxlabs/venx/pkg/venice"
)

const imageLongDesc string = `Generate and upscale images with the Venice AI API.

The API key is read from the --api-key flag or the VENICE_API_KEY
environment variable. Generated artifacts land in the output directory next
to an upscaled/ directory and a metadata/ directory of JSON sidecars.

Use subcommands to generate, upscale, or list models:
  venx image generate <prompt>     Generate an image
  venx image upscale <file>        Upscale an existing image
  venx image models                List available image models

Examples:
  venx image generate "a fox in a snowy forest"
  venx image upscale generated/venice_image_rnd_20260825_120000_1.png
  venx image models --uncensored`

const imageShortDesc string = "Generate and upscale images with Venice AI"

func NewImageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "image",
		Short: imageShortDesc,
		Long:  imageLongDesc,
	}

	cmd.PersistentFlags().String("api-key", "", "Venice API key (defaults to $"+venice.EnvAPIKey+")")

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newUpscaleCmd())
	cmd.AddCommand(newModelsCmd())

	return cmd
}

// newClient builds a Venice client from the command's flags, VENX_*
// environment variables, and the persisted config.
func newClient(cmd *cobra.Command) (*venice.Client, error) {
	configDir, _ := cmd.Flags().GetString("config-dir")
	v, err := config.InitViper(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	apiKey, _ := cmd.Flags().GetString("api-key")
	if apiKey == "" {
		apiKey = os.Getenv(venice.EnvAPIKey)
	}

	return venice.NewClient(apiKey,
		venice.WithBaseURL(v.GetString("venice.base_url")),
		venice.WithLogger(newLogger(cmd)),
	)
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	return logger.New(logger.WithPretty(true), logger.WithDebug(debug))
}
