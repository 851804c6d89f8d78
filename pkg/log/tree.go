// Copyright 2025 patternforge LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"fmt"

	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"

	"github.com/patternforge/patterns/pkg/composite"
)

// 🌳 RenderTree prints the subtree rooted at id to the console
func (l *Logger) RenderTree(tree *composite.Tree, id composite.NodeID) error {
	rendered, err := pterm.DefaultTree.WithRoot(ptermNode(tree, id)).Srender()
	if err != nil {
		return errors.Errorf("rendering tree: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.console, rendered)
	l.zlog.Debug().Str("root", tree.Name(id)).Int("nodes", tree.Len()).Msg("rendered tree")
	return nil
}

func ptermNode(tree *composite.Tree, id composite.NodeID) pterm.TreeNode {
	text := tree.Name(id)
	if tree.IsContainer(id) {
		text = pterm.Cyan(text + "/")
	}
	node := pterm.TreeNode{Text: text}
	for _, child := range tree.Children(id) {
		node.Children = append(node.Children, ptermNode(tree, child))
	}
	return node
}
