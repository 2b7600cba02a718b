// Package venxcmder
package venxcmder

import (
	"github.com/spf13/cobra"

	chatcmder "github.com/venxlabs/venx/cmd/venx/chat"
	configcmder "github.com/venxlabs/venx/cmd/venx/config"
	gkcmder "github.com/venxlabs/venx/cmd/venx/gk"
	imagecmder "github.com/venxlabs/venx/cmd/venx/image"
	providerscmder "github.com/venxlabs/venx/cmd/venx/providers"
	synccmder "github.com/venxlabs/venx/cmd/venx/sync"
	verifycmder "github.com/venxlabs/venx/cmd/venx/verify"
	versioncmder "github.com/venxlabs/venx/cmd/venx/version"
)

const venxLongDesc string = `Venx is a unified CLI for Venice AI image generation, OpenAI-compatible
chat providers, and the GitKraken CLI.

Common operations:
  venx image generate    Generate an image with Venice AI
  venx chat              Send a chat completion to a configured provider
  venx providers list    List providers from the Raycast config
  venx gk                Run GitKraken CLI workflows
  venx verify            Verify the Venice API key
  venx sync              Sync Venice models into the Raycast provider config`

const venxShortDesc string = "Venx - Venice AI, chat providers, and GitKraken workflows"

func NewVenxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "venx",
		Short: venxShortDesc,
		Long:  venxLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().Bool("json", false, "Emit machine-readable JSON output")
	cmd.PersistentFlags().String("config-dir", "", "Override the .venx/ config directory")

	// Add subcommands
	cmd.AddCommand(imagecmder.NewImageCmd())
	cmd.AddCommand(chatcmder.NewChatCmd())
	cmd.AddCommand(providerscmder.NewProvidersCmd())
	cmd.AddCommand(gkcmder.NewGkCmd())
	cmd.AddCommand(verifycmder.NewVerifyCmd())
	cmd.AddCommand(synccmder.NewSyncCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
