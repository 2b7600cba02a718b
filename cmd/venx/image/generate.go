package imagecmder

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/venxlabs/venx/pkg/cliui"
	"github.com/venxlabs/venx/pkg/config"
	"github.com/venxlabs/venx/pkg/venice"
)

const generateLongDesc string = `Generate an image from a text prompt.

Dimensions come from --aspect-ratio (square, tall, wide) unless both --width
and --height are given. The artifact is written atomically to the output
directory alongside a JSON metadata sidecar recording the resolved request
parameters and the image checksum.

With --upscale, a 4x upscale pass runs after generation; an upscale failure
never discards the generated image.

Examples:
  venx image generate "a fox in a snowy forest"
  venx image generate -m lustify-sdxl --aspect-ratio wide "a beach at dusk"
  venx image generate --seed 1234 --steps 50 --upscale "portrait photo"`

const generateShortDesc string = "Generate an image"

type generateCommander struct {
	model       string
	aspectRatio string
	width       int
	height      int
	steps       uint
	cfgScale    float64
	negative    string
	seed        int64
	format      string
	stylePreset string
	safeMode    bool
	noWatermark bool
	embedEXIF   bool
	upscale     bool
	outputDir   string
	outputName  string
}

func newGenerateCmd() *cobra.Command {
	cmder := &generateCommander{}

	cmd := &cobra.Command{
		Use:   "generate <prompt>",
		Short: generateShortDesc,
		Long:  generateLongDesc,
		Args:  cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			// Flags fall through to VENX_* env vars, then config.toml,
			// then defaults.
			configDir, _ := cmd.Flags().GetString("config-dir")
			v, err := config.InitViper(configDir)
			if err != nil {
				return err
			}
			config.BindRegisteredFlags(v, cmd, config.GenerateFlags(), config.GenerateFlagKeys())

			cmder.model = v.GetString("venice.model")
			cmder.aspectRatio = v.GetString("venice.aspect_ratio")
			cmder.steps = v.GetUint("venice.steps")
			cmder.cfgScale = v.GetFloat64("venice.cfg_scale")
			cmder.format = v.GetString("venice.format")
			cmder.outputDir = v.GetString("venice.output_dir")
			cmder.safeMode = v.GetBool("venice.safe_mode")
			cmder.upscale = v.GetBool("venice.auto_upscale")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd, strings.Join(args, " "))
		},
	}

	fs := config.GenerateFlags()
	config.AddStringFlag(cmd, fs, config.FlagVeniceModel, &cmder.model)
	config.AddStringFlag(cmd, fs, config.FlagAspectRatio, &cmder.aspectRatio)
	config.AddUintFlag(cmd, fs, config.FlagSteps, &cmder.steps)
	config.AddFloat64Flag(cmd, fs, config.FlagCfgScale, &cmder.cfgScale)
	config.AddStringFlag(cmd, fs, config.FlagFormat, &cmder.format)
	config.AddStringFlag(cmd, fs, config.FlagOutputDir, &cmder.outputDir)
	config.AddBoolFlag(cmd, fs, config.FlagSafeMode, &cmder.safeMode)
	config.AddBoolFlag(cmd, fs, config.FlagAutoUpscale, &cmder.upscale)

	cmd.Flags().IntVar(&cmder.width, "width", 0, "Explicit width in pixels (overrides aspect ratio with --height)")
	cmd.Flags().IntVar(&cmder.height, "height", 0, "Explicit height in pixels (overrides aspect ratio with --width)")
	cmd.Flags().StringVar(&cmder.negative, "negative", "", "Negative prompt")
	cmd.Flags().Int64Var(&cmder.seed, "seed", 0, "Generation seed (0 = random)")
	cmd.Flags().StringVar(&cmder.stylePreset, "style", "", "Style preset name")
	cmd.Flags().BoolVar(&cmder.noWatermark, "no-watermark", true, "Hide the Venice watermark")
	cmd.Flags().BoolVar(&cmder.embedEXIF, "embed-exif", false, "Embed generation parameters as EXIF metadata")
	cmd.Flags().StringVar(&cmder.outputName, "name", "", "Filename stem for the artifact")

	return cmd
}

func (g *generateCommander) run(cmd *cobra.Command, prompt string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	opts := venice.GenerateOptions{
		Model:          g.model,
		AspectRatio:    g.aspectRatio,
		Width:          g.width,
		Height:         g.height,
		Steps:          int(g.steps),
		CfgScale:       g.cfgScale,
		NegativePrompt: g.negative,
		Format:         g.format,
		StylePreset:    g.stylePreset,
		HideWatermark:  g.noWatermark,
		EmbedEXIF:      g.embedEXIF,
		SafeMode:       g.safeMode,
		AutoUpscale:    g.upscale,
		Upscale:        venice.DefaultUpscaleOptions(),
		OutputDir:      g.outputDir,
		OutputName:     g.outputName,
	}
	if g.seed != 0 {
		seed := g.seed
		opts.Seed = &seed
	}

	var result *venice.GenerateResult
	err = cliui.Step(os.Stderr, fmt.Sprintf("Generating with %s", g.model), func() error {
		var genErr error
		result, genErr = client.Generate(cmd.Context(), prompt, opts)
		return genErr
	})
	if err != nil {
		return err
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	if jsonOut {
		return cliui.PrintJSON(os.Stdout, result)
	}

	fmt.Println()
	cliui.KV(os.Stdout, "Image", result.ImagePath)
	cliui.KV(os.Stdout, "Metadata", result.MetadataPath)
	cliui.KV(os.Stdout, "SHA-256", result.SHA256)
	if result.RequestID != "" {
		cliui.KV(os.Stdout, "Request ID", result.RequestID)
	}
	if result.UpscaledImagePath != "" {
		cliui.KV(os.Stdout, "Upscaled", result.UpscaledImagePath)
	}
	if result.UpscaleError != "" {
		fmt.Printf("  %s %s\n", cliui.FailMark,
			cliui.DimStyle.Render("upscale failed: "+result.UpscaleError))
	}
	fmt.Println()

	return nil
}
