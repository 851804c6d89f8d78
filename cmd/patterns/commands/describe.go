package commands

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/patternforge/patterns/cmd/patterns/opts"
	"github.com/patternforge/patterns/pkg/proxy"
)

// NewDescribeCmd creates a new describe command
func NewDescribeCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <owner/repo> [owner/repo...]",
		Short: "Fetch repository descriptions through the caching proxy",
		Long: `Describe runs the proxy pattern against the real world: repository
descriptions are fetched from the GitHub API through a caching proxy, so
asking for the same repository twice only hits the network once.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "describe").Logger().WithContext(ctx)

			fetcher, err := proxy.NewCachingFetcher(proxy.NewGitHubFetcher(nil), 32)
			if err != nil {
				return errors.Errorf("creating fetcher: %w", err)
			}

			opts.UserLogger.Header("describe")
			for _, arg := range args {
				owner, repo, ok := strings.Cut(arg, "/")
				if !ok || owner == "" || repo == "" {
					return errors.Errorf("invalid repository %q, want owner/repo", arg)
				}
				desc, err := fetcher.FetchDescription(ctx, owner, repo)
				if err != nil {
					return errors.Errorf("describing %s: %w", arg, err)
				}
				if desc == "" {
					desc = "(no description)"
				}
				opts.UserLogger.Step(arg, desc)
			}
			return nil
		},
	}

	return cmd
}
