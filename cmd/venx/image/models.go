package imagecmder

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/venxlabs/venx/pkg/cliui"
	"github.com/venxlabs/venx/pkg/venice"
)

const modelsLongDesc string = `List available Venice models.

Fetches the model catalog from the API. With --uncensored, keeps only models
whose id or name marks them as uncensored. With --type, filters by model
type (text or image).

Examples:
  venx image models
  venx image models --type image
  venx image models --uncensored --json`

const modelsShortDesc string = "List available Venice models"

func newModelsCmd() *cobra.Command {
	var (
		modelType  string
		uncensored bool
	)

	cmd := &cobra.Command{
		Use:   "models",
		Short: modelsShortDesc,
		Long:  modelsLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runModels(cmd, modelType, uncensored)
		},
	}

	cmd.Flags().StringVar(&modelType, "type", "", "Filter by model type (text, image)")
	cmd.Flags().BoolVar(&uncensored, "uncensored", false, "Only show uncensored models")

	return cmd
}

func runModels(cmd *cobra.Command, modelType string, uncensored bool) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	models, err := client.Models(cmd.Context(), modelType)
	if err != nil {
		return err
	}
	if uncensored {
		models = venice.FilterUncensored(models)
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	if jsonOut {
		return cliui.PrintJSON(os.Stdout, models)
	}

	if len(models) == 0 {
		fmt.Printf("\n  %s\n\n", cliui.DimStyle.Render("No models matched."))
		return nil
	}

	fmt.Println()
	for _, model := range models {
		line := "  " + cliui.NameStyle.Render(model.ID)
		if model.Type != "" {
			line += "  " + cliui.DimStyle.Render(model.Type)
		}
		if model.Context > 0 {
			line += "  " + cliui.DimStyle.Render(fmt.Sprintf("%d tokens", model.Context))
		}
		fmt.Println(line)
	}
	fmt.Println()

	return nil
}
