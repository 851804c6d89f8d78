package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/patternforge/patterns/cmd/patterns/opts"
	"github.com/patternforge/patterns/pkg/config"
)

// NewEvalCmd creates a new eval command
func NewEvalCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate the composite tree described by the scene file",
		Long: `Eval loads the scene file, builds the composite tree and runs the
composite operation on it: every leaf reports "Leaf" and every folder wraps
its children's results in "Branch(...)".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "eval").Logger().WithContext(ctx)

			scene, err := config.Load(ctx, opts.SceneFile)
			if err != nil {
				return errors.Errorf("loading scene: %w", err)
			}

			tree, root, err := config.BuildTree(ctx, scene)
			if err != nil {
				return errors.Errorf("building tree: %w", err)
			}

			result, err := tree.Evaluate(root)
			if err != nil {
				return errors.Errorf("evaluating tree: %w", err)
			}

			opts.UserLogger.Header("composite evaluation")
			opts.UserLogger.Step(scene.Root.Name, result)
			return nil
		},
	}

	return cmd
}
