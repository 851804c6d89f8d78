package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/patternforge/patterns/cmd/patterns/opts"
	"github.com/patternforge/patterns/pkg/config"
)

// NewShowCmd creates a new show command
func NewShowCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the scene's composite tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "show").Logger().WithContext(ctx)

			scene, err := config.Load(ctx, opts.SceneFile)
			if err != nil {
				return errors.Errorf("loading scene: %w", err)
			}

			tree, root, err := config.BuildTree(ctx, scene)
			if err != nil {
				return errors.Errorf("building tree: %w", err)
			}

			opts.UserLogger.Header("scene " + scene.String())
			if err := opts.UserLogger.RenderTree(tree, root); err != nil {
				return errors.Errorf("rendering tree: %w", err)
			}
			return nil
		},
	}

	return cmd
}
