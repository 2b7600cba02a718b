package gk

import "context"

// Named wrappers for the gk subcommands the CLI surfaces. Each returns the
// same structured Result as Run.

// Version reports the installed gk version.
func (r *Runner) Version(ctx context.Context) Result {
	return r.Run(ctx, "version")
}

// CommitSuggest generates an AI commit message for the staged changes.
func (r *Runner) CommitSuggest(ctx context.Context) Result {
	return r.Run(ctx, "ai", "commit")
}

// Changelog generates an AI changelog for recent work.
func (r *Runner) Changelog(ctx context.Context) Result {
	return r.Run(ctx, "ai", "changelog")
}

// ExplainBranch explains the given branch, or the current one when empty.
func (r *Runner) ExplainBranch(ctx context.Context, branch string) Result {
	args := []string{"ai", "explain", "branch"}
	if branch != "" {
		args = append(args, branch)
	}
	return r.Run(ctx, args...)
}

// ExplainCommit explains the given commit.
func (r *Runner) ExplainCommit(ctx context.Context, sha string) Result {
	return r.Run(ctx, "ai", "explain", "commit", sha)
}

// PRCreate opens an AI-drafted pull request for the current branch.
func (r *Runner) PRCreate(ctx context.Context) Result {
	return r.Run(ctx, "ai", "pr", "create")
}

// Resolve runs the AI merge-conflict resolver.
func (r *Runner) Resolve(ctx context.Context) Result {
	return r.Run(ctx, "ai", "resolve")
}

// Tokens reports remaining AI token quota.
func (r *Runner) Tokens(ctx context.Context) Result {
	return r.Run(ctx, "ai", "tokens")
}
