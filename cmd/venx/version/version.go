// Package versioncmder provides the version command.
package versioncmder

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/venxlabs/venx/pkg/cliui"
	"github.com/venxlabs/venx/pkg/utils"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the venx version",
		Args:  cobra.NoArgs,
		RunE:  runVersion,
	}
}

// runVersion prints the build identity stamped in at link time.
func runVersion(cmd *cobra.Command, _ []string) error {
	jsonOut, _ := cmd.Flags().GetBool("json")
	if jsonOut {
		return cliui.PrintJSON(os.Stdout, map[string]string{
			"version":  utils.Version,
			"sha":      utils.Sha,
			"built_at": utils.Buildtime,
		})
	}

	fmt.Println()
	cliui.KV(os.Stdout, "Version", utils.Version)
	cliui.KV(os.Stdout, "Sha", utils.Sha)
	cliui.KV(os.Stdout, "Built at", utils.Buildtime)
	fmt.Println()
	return nil
}
