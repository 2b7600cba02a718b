package configcmder

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/venxlabs/venx/pkg/cliui"
	"github.com/venxlabs/venx/pkg/config"
)

const presetLongDesc string = `Apply a generation preset.

Overwrites the config.toml in the .venx/ directory with the named preset's
settings. Presets tune the image generation tradeoff between speed and
quality:
  default    Standard settings (30 steps)
  fast       Fewer steps for quick drafts (15 steps)
  quality    More steps plus automatic upscaling (50 steps)

Examples:
  venx config preset quality`

const presetShortDesc string = "Apply a generation preset"

func newPresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset <name>",
		Short: presetShortDesc,
		Long:  presetLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			return runPreset(args[0], configDir)
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return config.ValidPresetNames(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	return cmd
}

func runPreset(name, configDir string) error {
	cfg, err := config.PresetConfig(name)
	if err != nil {
		return err
	}

	cfger, err := config.NewConfiger(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfger.SaveConfig(cfg); err != nil {
		return err
	}

	fmt.Printf("\n  %s Applied preset %s %s\n\n",
		cliui.SuccessMark,
		cliui.KeyStyle.Render(strings.ToLower(name)),
		cliui.DimStyle.Render(fmt.Sprintf("(steps=%d, cfg_scale=%g)", cfg.Venice.Steps, cfg.Venice.CfgScale)),
	)
	return nil
}
