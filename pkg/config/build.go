package config

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/patternforge/patterns/pkg/composite"
)

// BuildTree constructs a composite tree from a validated scene. It returns
// the tree and the id of the root container.
func BuildTree(ctx context.Context, scene *Scene) (*composite.Tree, composite.NodeID, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("scene", scene.Root.Name).Msg("building tree")

	tree := composite.NewTree()
	root := tree.NewContainer(scene.Root.Name)
	if err := buildFolder(tree, root, &scene.Root); err != nil {
		return nil, composite.None, errors.Errorf("building tree: %w", err)
	}

	logger.Debug().Int("nodes", tree.Len()).Msg("tree built")
	return tree, root, nil
}

func buildFolder(tree *composite.Tree, parent composite.NodeID, spec *FolderSpec) error {
	for _, file := range spec.Files {
		leaf := tree.NewLeaf(file.Name, []byte(file.Content))
		if err := tree.AddChild(parent, leaf); err != nil {
			return err
		}
	}
	for i := range spec.Folders {
		sub := &spec.Folders[i]
		id := tree.NewContainer(sub.Name)
		if err := tree.AddChild(parent, id); err != nil {
			return err
		}
		if err := buildFolder(tree, id, sub); err != nil {
			return err
		}
	}
	return nil
}
