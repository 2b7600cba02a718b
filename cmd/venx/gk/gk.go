// Package gkcmder provides the gk command group wrapping the GitKraken CLI.
package gkcmder

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/venxlabs/venx/pkg/cliui"
	"github.com/venxlabs/venx/pkg/config"
	"github.com/venxlabs/venx/pkg/gk"
	"github.com/venxlabs/venx/pkg/logger"
)

const gkLongDesc string = `Run GitKraken CLI workflows.

Requires the gk binary on PATH or in a standard install location. Every
invocation is bounded by a timeout and reported as a structured result;
a missing binary or a non-zero exit is data, not a crash.

AI subcommands:
  venx gk commit            Generate a commit message for staged changes
  venx gk changelog         Generate a changelog
  venx gk explain [branch]  Explain a branch (current branch by default)
  venx gk explain-commit    Explain a commit
  venx gk pr                Open an AI-drafted pull request
  venx gk resolve           Resolve merge conflicts
  venx gk tokens            Show remaining AI token quota
  venx gk version           Show the gk version
  venx gk run -- <args>     Run an arbitrary gk command

Examples:
  venx gk commit
  venx gk explain feature/login
  venx gk run -- work list`

const gkShortDesc string = "Run GitKraken CLI workflows"

func NewGkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gk",
		Short: gkShortDesc,
		Long:  gkLongDesc,
	}

	cmd.AddCommand(
		newAICmd("commit", "Generate a commit message for staged changes",
			func(r *gk.Runner, cmd *cobra.Command, _ []string) gk.Result {
				return r.CommitSuggest(cmd.Context())
			}, cobra.NoArgs),
		newAICmd("changelog", "Generate a changelog",
			func(r *gk.Runner, cmd *cobra.Command, _ []string) gk.Result {
				return r.Changelog(cmd.Context())
			}, cobra.NoArgs),
		newAICmd("explain [branch]", "Explain a branch",
			func(r *gk.Runner, cmd *cobra.Command, args []string) gk.Result {
				branch := ""
				if len(args) == 1 {
					branch = args[0]
				}
				return r.ExplainBranch(cmd.Context(), branch)
			}, cobra.MaximumNArgs(1)),
		newAICmd("explain-commit <sha>", "Explain a commit",
			func(r *gk.Runner, cmd *cobra.Command, args []string) gk.Result {
				return r.ExplainCommit(cmd.Context(), args[0])
			}, cobra.ExactArgs(1)),
		newAICmd("pr", "Open an AI-drafted pull request",
			func(r *gk.Runner, cmd *cobra.Command, _ []string) gk.Result {
				return r.PRCreate(cmd.Context())
			}, cobra.NoArgs),
		newAICmd("resolve", "Resolve merge conflicts",
			func(r *gk.Runner, cmd *cobra.Command, _ []string) gk.Result {
				return r.Resolve(cmd.Context())
			}, cobra.NoArgs),
		newAICmd("tokens", "Show remaining AI token quota",
			func(r *gk.Runner, cmd *cobra.Command, _ []string) gk.Result {
				return r.Tokens(cmd.Context())
			}, cobra.NoArgs),
		newAICmd("version", "Show the gk version",
			func(r *gk.Runner, cmd *cobra.Command, _ []string) gk.Result {
				return r.Version(cmd.Context())
			}, cobra.NoArgs),
		newRunCmd(),
	)

	return cmd
}

// newAICmd builds one thin subcommand delegating to a named runner helper.
func newAICmd(use, short string, invoke func(*gk.Runner, *cobra.Command, []string) gk.Result,
	args cobra.PositionalArgs) *cobra.Command {

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			runner, err := newRunner(cmd)
			if err != nil {
				return err
			}
			return report(cmd, invoke(runner, cmd, cmdArgs))
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run -- <args>",
		Short: "Run an arbitrary gk command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := newRunner(cmd)
			if err != nil {
				return err
			}
			return report(cmd, runner.Run(cmd.Context(), args...))
		},
	}
}

// newRunner builds a Runner with the configured timeout. The timeout falls
// through from VENX_GK_TIMEOUT_SECONDS to config.toml to the default.
func newRunner(cmd *cobra.Command) (*gk.Runner, error) {
	configDir, _ := cmd.Flags().GetString("config-dir")
	v, err := config.InitViper(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	debug, _ := cmd.Flags().GetBool("debug")
	log := logger.New(logger.WithPretty(true), logger.WithDebug(debug))
	log.Debug("running gk workflow", "repo", gk.RepoName())

	return gk.NewRunner(
		gk.WithTimeout(time.Duration(v.GetUint("gk.timeout_seconds"))*time.Second),
		gk.WithLogger(log),
	), nil
}

// report renders a gk result. The process exit code mirrors the gk exit
// status through the returned error.
func report(cmd *cobra.Command, result gk.Result) error {
	jsonOut, _ := cmd.Flags().GetBool("json")
	if jsonOut {
		return cliui.PrintJSON(os.Stdout, result)
	}

	if result.Stdout != "" {
		fmt.Print(result.Stdout)
	}
	if result.Stderr != "" {
		fmt.Fprint(os.Stderr, result.Stderr)
	}

	if !result.Success {
		return fmt.Errorf("%s: %s", result.Command, result.Error)
	}
	return nil
}
