// Package providerscmder provides commands for inspecting the Raycast
// provider configuration.
package providerscmder

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/venxlabs/venx/pkg/config"
	"github.com/venxlabs/venx/pkg/logger"
	"github.com/venxlabs/venx/pkg/providers"
)

const providersLongDesc string = `Inspect the Raycast provider configuration.

The providers.yaml file declares OpenAI-compatible chat providers and the
models each one exposes. By default it is read from
~/.config/raycast/ai/providers.yaml (or .yml).

Use subcommands to list providers or their models:
  venx providers list              List configured provider ids
  venx providers models <id>       List models declared by a provider

Examples:
  venx providers list
  venx providers models venice`

const providersShortDesc string = "Inspect the Raycast provider configuration"

func NewProvidersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "providers",
		Short: providersShortDesc,
		Long:  providersLongDesc,
	}

	cmd.PersistentFlags().String("providers-path", "", "Path to the Raycast providers.yaml")

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newModelsCmd())

	return cmd
}

// loadStore loads the provider store from the flagged path, the configured
// path, or the default Raycast locations, in that order.
func loadStore(cmd *cobra.Command) (*providers.Store, *slog.Logger, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	log := logger.New(logger.WithPretty(true), logger.WithDebug(debug))

	path, _ := cmd.Flags().GetString("providers-path")
	if path == "" {
		configDir, _ := cmd.Flags().GetString("config-dir")
		v, err := config.InitViper(configDir)
		if err != nil {
			return nil, nil, fmt.Errorf("loading config: %w", err)
		}
		path = v.GetString("chat.providers_path")
	}

	store := providers.NewStore(log)

	paths := []string{path}
	if path == "" {
		paths = providers.DefaultSearchPaths()
	}

	var lastErr error
	for _, candidate := range paths {
		if candidate == "" {
			continue
		}
		if err := store.Load(candidate); err != nil {
			lastErr = err
			continue
		}
		return store, log, nil
	}

	if lastErr != nil {
		return nil, nil, fmt.Errorf("loading providers config: %w", lastErr)
	}
	return store, log, nil
}
