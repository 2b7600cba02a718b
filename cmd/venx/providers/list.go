package providerscmder

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/venxlabs/venx/pkg/cliui"
)

const listLongDesc string = `List configured provider ids.

Reads the Raycast providers.yaml and prints each provider with its base URL
and model count, in file order.

Examples:
  venx providers list
  venx providers list --json`

const listShortDesc string = "List configured provider ids"

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: listShortDesc,
		Long:  listLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}

	return cmd
}

func runList(cmd *cobra.Command) error {
	store, _, err := loadStore(cmd)
	if err != nil {
		return err
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	ids := store.ProviderIDs()

	if jsonOut {
		type record struct {
			ID      string `json:"id"`
			Name    string `json:"name,omitempty"`
			BaseURL string `json:"base_url,omitempty"`
			Models  int    `json:"models"`
		}

		records := make([]record, 0, len(ids))
		for _, id := range ids {
			p, _ := store.Provider(id)
			records = append(records, record{
				ID:      p.ID,
				Name:    p.Name,
				BaseURL: p.BaseURL,
				Models:  len(p.Models),
			})
		}
		return cliui.PrintJSON(os.Stdout, records)
	}

	if len(ids) == 0 {
		fmt.Printf("\n  %s\n\n", cliui.DimStyle.Render("No providers configured."))
		return nil
	}

	fmt.Printf("\n  %s %s\n\n",
		cliui.KeyStyle.Render("Providers file:"),
		cliui.DimStyle.Render(store.Path()),
	)

	for _, id := range ids {
		p, _ := store.Provider(id)
		fmt.Printf("  %s  %s %s\n",
			cliui.NameStyle.Render(p.ID),
			cliui.ValueStyle.Render(p.BaseURL),
			cliui.DimStyle.Render(fmt.Sprintf("(%d models)", len(p.Models))),
		)
	}
	fmt.Println()

	return nil
}
