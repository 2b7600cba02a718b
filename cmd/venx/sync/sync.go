// Package synccmder provides the sync command that regenerates the Raycast
// provider config from the live Venice model catalog.
package synccmder

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/venxlabs/venx/pkg/cliui"
	"github.com/venxlabs/venx/pkg/config"
	"github.com/venxlabs/venx/pkg/logger"
	"github.com/venxlabs/venx/pkg/venice"
)

const syncLongDesc string = `Sync Venice models into the Raycast provider config.

Fetches the Venice model catalog and writes a providers.yaml exposing the
models through the OpenAI-compatible endpoint. The API key is written as the
${VENICE_API_KEY} placeholder, never the literal secret, so Raycast resolves
it from the environment at use time.

By default only uncensored text models are included; pass --all for the full
text catalog. The file is written to the default Raycast location unless
--output is given.

Examples:
  venx sync
  venx sync --all --output ./providers.yaml`

const syncShortDesc string = "Sync Venice models into the Raycast provider config"

func NewSyncCmd() *cobra.Command {
	var (
		output string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: syncShortDesc,
		Long:  syncLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSync(cmd, output, all)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Path for the providers config (default: Raycast location)")
	cmd.Flags().BoolVar(&all, "all", false, "Include all text models, not only uncensored ones")
	cmd.Flags().String("api-key", "", "Venice API key (defaults to $"+venice.EnvAPIKey+")")

	return cmd
}

func runSync(cmd *cobra.Command, output string, all bool) error {
	configDir, _ := cmd.Flags().GetString("config-dir")
	v, err := config.InitViper(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	apiKey, _ := cmd.Flags().GetString("api-key")
	if apiKey == "" {
		apiKey = os.Getenv(venice.EnvAPIKey)
	}

	debug, _ := cmd.Flags().GetBool("debug")
	log := logger.New(logger.WithPretty(true), logger.WithDebug(debug))

	client, err := venice.NewClient(apiKey,
		venice.WithBaseURL(v.GetString("venice.base_url")),
		venice.WithLogger(log),
	)
	if err != nil {
		return err
	}

	var models []venice.CatalogModel
	err = cliui.Step(os.Stderr, "Fetching Venice model catalog", func() error {
		var fetchErr error
		if all {
			models, fetchErr = client.Models(cmd.Context(), "text")
		} else {
			models, fetchErr = client.UncensoredModels(cmd.Context(), "text")
		}
		return fetchErr
	})
	if err != nil {
		return err
	}

	path, count, err := venice.WriteRaycastConfig(output, models)
	if err != nil {
		return err
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	if jsonOut {
		return cliui.PrintJSON(os.Stdout, map[string]any{
			"success": true,
			"path":    path,
			"models":  count,
		})
	}

	fmt.Printf("\n  %s Wrote %s %s\n\n",
		cliui.SuccessMark,
		cliui.ValueStyle.Render(path),
		cliui.DimStyle.Render(fmt.Sprintf("(%d models)", count)),
	)
	return nil
}
