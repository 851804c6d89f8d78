package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternforge/patterns/pkg/composite"
)

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.Disabled)

	logger.Header("composite demo")
	logger.Step("evaluate", "Branch(Leaf)")
	logger.Success("done")
	logger.Warning("careful")
	logger.Error("boom")

	out := buf.String()
	assert.Contains(t, out, "patterns", "header should carry the tool name")
	assert.Contains(t, out, "composite demo")
	assert.Contains(t, out, "evaluate")
	assert.Contains(t, out, "Branch(Leaf)")
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "careful")
	assert.Contains(t, out, "boom")
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.Disabled)

	ctx := NewContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx), "context round-trip should return the same logger")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "missing logger should panic")
}

func TestRenderTree(t *testing.T) {
	tree := composite.NewTree()
	root := tree.NewContainer("root")
	sub := tree.NewContainer("sub")
	require.NoError(t, tree.AddChild(root, tree.NewLeaf("a.txt", nil)))
	require.NoError(t, tree.AddChild(root, sub))
	require.NoError(t, tree.AddChild(sub, tree.NewLeaf("b.txt", nil)))

	var buf bytes.Buffer
	logger := New(&buf, zerolog.Disabled)
	require.NoError(t, logger.RenderTree(tree, root))

	out := buf.String()
	assert.Contains(t, out, "root")
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "sub")
	assert.Contains(t, out, "b.txt")
}
