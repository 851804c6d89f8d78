package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/patternforge/patterns/cmd/patterns/opts"
	"github.com/patternforge/patterns/pkg/config"
)

// NewFindCmd creates a new find command
func NewFindCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <pattern>",
		Short: "Find nodes in the scene's tree by glob pattern",
		Long: `Find builds the composite tree from the scene file and lists every
node whose path relative to the root matches the doublestar pattern, e.g.
"**/*.txt" or "sub/*".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "find").Logger().WithContext(ctx)

			scene, err := config.Load(ctx, opts.SceneFile)
			if err != nil {
				return errors.Errorf("loading scene: %w", err)
			}

			tree, root, err := config.BuildTree(ctx, scene)
			if err != nil {
				return errors.Errorf("building tree: %w", err)
			}

			matches, err := tree.Find(root, args[0])
			if err != nil {
				return errors.Errorf("finding nodes: %w", err)
			}

			opts.UserLogger.Header("find " + args[0])
			if len(matches) == 0 {
				opts.UserLogger.Warning("no matches")
				return nil
			}
			for _, id := range matches {
				result, err := tree.Evaluate(id)
				if err != nil {
					return errors.Errorf("evaluating match: %w", err)
				}
				opts.UserLogger.Step(tree.Path(id), result)
			}
			return nil
		},
	}

	return cmd
}
