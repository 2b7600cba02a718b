package imagecmder

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/venxlabs/venx/pkg/cliui"
	"github.com/venxlabs/venx/pkg/venice"
)

const upscaleLongDesc string = `Upscale an existing image file.

The upscaled artifact is written to --output, or into an upscaled/ directory
next to the input when no output path is given, with a JSON metadata sidecar.

Examples:
  venx image upscale generated/fox.png
  venx image upscale fox.png --output fox_4x.png --creativity 0.3`

const upscaleShortDesc string = "Upscale an existing image"

type upscaleCommander struct {
	output      string
	scale       int
	enhance     bool
	creativity  float64
	replication float64
	prompt      string
}

func newUpscaleCmd() *cobra.Command {
	cmder := &upscaleCommander{}

	cmd := &cobra.Command{
		Use:   "upscale <file>",
		Short: upscaleShortDesc,
		Long:  upscaleLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd, args[0])
		},
	}

	defaults := venice.DefaultUpscaleOptions()
	cmd.Flags().StringVarP(&cmder.output, "output", "o", "", "Output path for the upscaled image")
	cmd.Flags().IntVar(&cmder.scale, "scale", defaults.Scale, "Upscale factor")
	cmd.Flags().BoolVar(&cmder.enhance, "enhance", defaults.Enhance, "Run the enhancement pass")
	cmd.Flags().Float64Var(&cmder.creativity, "creativity", defaults.Creativity, "Enhancement creativity")
	cmd.Flags().Float64Var(&cmder.replication, "replication", defaults.Replication, "Source fidelity")
	cmd.Flags().StringVar(&cmder.prompt, "prompt", "", "Optional prompt steering the enhancement")

	return cmd
}

func (u *upscaleCommander) run(cmd *cobra.Command, inputPath string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	opts := venice.UpscaleOptions{
		Scale:       u.scale,
		Enhance:     u.enhance,
		Creativity:  u.creativity,
		Replication: u.replication,
		Prompt:      u.prompt,
	}

	var result *venice.UpscaleResult
	err = cliui.Step(os.Stderr, fmt.Sprintf("Upscaling %s", inputPath), func() error {
		var upErr error
		result, upErr = client.UpscaleFile(cmd.Context(), inputPath, u.output, opts)
		return upErr
	})
	if err != nil {
		return err
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	if jsonOut {
		return cliui.PrintJSON(os.Stdout, result)
	}

	fmt.Println()
	cliui.KV(os.Stdout, "Upscaled", result.OutputPath)
	cliui.KV(os.Stdout, "Metadata", result.MetadataPath)
	cliui.KV(os.Stdout, "SHA-256", result.SHA256)
	fmt.Println()

	return nil
}
