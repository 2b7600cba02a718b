package providerscmder

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/venxlabs/venx/pkg/cliui"
)

const modelsLongDesc string = `List models declared by a provider.

Prints each model id with its display name and context window, in file order.
Without a provider id, lists models across every configured provider.

Examples:
  venx providers models venice
  venx providers models --json`

const modelsShortDesc string = "List models declared by a provider"

func newModelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models [provider-id]",
		Short: modelsShortDesc,
		Long:  modelsLongDesc,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			providerID := ""
			if len(args) == 1 {
				providerID = args[0]
			}
			return runModels(cmd, providerID)
		},
	}

	return cmd
}

func runModels(cmd *cobra.Command, providerID string) error {
	store, _, err := loadStore(cmd)
	if err != nil {
		return err
	}

	ids := store.ProviderIDs()
	if providerID != "" {
		if _, ok := store.Provider(providerID); !ok {
			return fmt.Errorf("provider %q is not in the loaded configuration (available: %v)",
				providerID, ids)
		}
		ids = []string{providerID}
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	if jsonOut {
		type record struct {
			Provider string `json:"provider"`
			ID       string `json:"id"`
			Name     string `json:"name,omitempty"`
			Context  int    `json:"context,omitempty"`
		}

		var records []record
		for _, id := range ids {
			models, _ := store.Models(id)
			for _, m := range models {
				records = append(records, record{
					Provider: id,
					ID:       m.ID,
					Name:     m.Name,
					Context:  m.Context,
				})
			}
		}
		return cliui.PrintJSON(os.Stdout, records)
	}

	fmt.Println()
	for _, id := range ids {
		models, _ := store.Models(id)
		fmt.Printf("  %s %s\n",
			cliui.KeyStyle.Render(id),
			cliui.DimStyle.Render(fmt.Sprintf("(%d models)", len(models))),
		)

		for _, m := range models {
			line := "    " + cliui.NameStyle.Render(m.ID)
			if m.Name != "" && m.Name != m.ID {
				line += "  " + cliui.ValueStyle.Render(m.Name)
			}
			if m.Context > 0 {
				line += "  " + cliui.DimStyle.Render(fmt.Sprintf("%d tokens", m.Context))
			}
			fmt.Println(line)
		}
		fmt.Println()
	}

	return nil
}
