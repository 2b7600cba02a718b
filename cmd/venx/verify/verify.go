// Package verifycmder provides the verify command for checking the Venice
// API key.
package verifycmder

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/venxlabs/venx/pkg/cliui"
	"github.com/venxlabs/venx/pkg/config"
	"github.com/venxlabs/venx/pkg/logger"
	"github.com/venxlabs/venx/pkg/venice"
)

const verifyLongDesc string = `Verify the Venice API key.

Sends a minimal chat completion to the Venice API. A 200 or 400 response
proves the key authenticates; a 401 marks it invalid. The key is read from
the --api-key flag or the VENICE_API_KEY environment variable.

Examples:
  venx verify
  venx verify --api-key vk-...`

const verifyShortDesc string = "Verify the Venice API key"

func NewVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: verifyShortDesc,
		Long:  verifyLongDesc,
		Args:  cobra.NoArgs,
		RunE:  runVerify,
	}

	cmd.Flags().String("api-key", "", "Venice API key (defaults to $"+venice.EnvAPIKey+")")

	return cmd
}

func runVerify(cmd *cobra.Command, _ []string) error {
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

	var result venice.VerifyResult
	_ = cliui.Step(os.Stderr, "Verifying API key", func() error {
		result = client.Verify(cmd.Context())
		if !result.Success {
			return fmt.Errorf("%s", result.Message)
		}
		return nil
	})

	jsonOut, _ := cmd.Flags().GetBool("json")
	if jsonOut {
		return cliui.PrintJSON(os.Stdout, result)
	}

	fmt.Println()
	cliui.KV(os.Stdout, "Status", result.Message)
	if result.StatusCode != 0 {
		cliui.KV(os.Stdout, "HTTP", fmt.Sprintf("%d", result.StatusCode))
	}
	if result.RequestID != "" {
		cliui.KV(os.Stdout, "Request ID", result.RequestID)
	}
	fmt.Println()

	if !result.Success {
		return fmt.Errorf("API key verification failed")
	}
	return nil
}
