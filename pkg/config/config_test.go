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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		scene       string
		wantErr     bool
		errContains string
		check       func(t *testing.T, scene *Scene)
	}{
		{
			name:     "valid_yaml",
			filename: "scene.yaml",
			scene: `
root:
  name: root
  files:
    - name: a.txt
      content: hi
  folders:
    - name: sub
      files:
        - name: b.txt
          content: x
`,
			check: func(t *testing.T, scene *Scene) {
				assert.Equal(t, "root", scene.Root.Name, "root name should match")
				require.Len(t, scene.Root.Files, 1, "should have 1 file")
				assert.Equal(t, "a.txt", scene.Root.Files[0].Name, "file name should match")
				assert.Equal(t, "hi", scene.Root.Files[0].Content, "file content should match")
				require.Len(t, scene.Root.Folders, 1, "should have 1 folder")
				assert.Equal(t, "sub", scene.Root.Folders[0].Name, "folder name should match")
				require.Len(t, scene.Root.Folders[0].Files, 1, "subfolder should have 1 file")
				assert.Equal(t, "b.txt", scene.Root.Folders[0].Files[0].Name, "nested file name should match")
			},
		},
		{
			name:     "valid_json",
			filename: "scene.json",
			scene:    `{"root": {"name": "root", "files": [{"name": "a.txt", "content": "hi"}]}}`,
			check: func(t *testing.T, scene *Scene) {
				assert.Equal(t, "root", scene.Root.Name, "root name should match")
				require.Len(t, scene.Root.Files, 1, "should have 1 file")
			},
		},
		{
			name:     "valid_hcl",
			filename: "scene.hcl",
			scene: `
root "root" {
  file "a.txt" {
    content = "hi"
  }
  folder "sub" {
    file "b.txt" {
      content = "x"
    }
  }
}
`,
			check: func(t *testing.T, scene *Scene) {
				assert.Equal(t, "root", scene.Root.Name, "root name should match")
				require.Len(t, scene.Root.Files, 1, "should have 1 file")
				assert.Equal(t, "a.txt", scene.Root.Files[0].Name, "file name should match")
				require.Len(t, scene.Root.Folders, 1, "should have 1 folder")
				assert.Equal(t, "sub", scene.Root.Folders[0].Name, "folder name should match")
			},
		},
		{
			name:     "unknown_yaml_field",
			filename: "scene.yaml",
			scene: `
root:
  name: root
  bogus: true
`,
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:        "missing_root_name",
			filename:    "scene.json",
			scene:       `{"root": {"files": [{"name": "a.txt"}]}}`,
			wantErr:     true,
			errContains: "root name is required",
		},
		{
			name:     "duplicate_sibling",
			filename: "scene.yaml",
			scene: `
root:
  name: root
  files:
    - name: a.txt
    - name: a.txt
`,
			wantErr:     true,
			errContains: "duplicate entry",
		},
		{
			name:        "unsupported_extension",
			filename:    "scene.toml",
			scene:       `root = "root"`,
			wantErr:     true,
			errContains: "unsupported file extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.scene), 0o644))

			scene, err := Load(context.Background(), path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.check(t, scene)
		})
	}
}

func TestHash(t *testing.T) {
	a := &Scene{Root: FolderSpec{Name: "root", Files: []FileSpec{{Name: "a.txt"}}}}
	b := &Scene{Root: FolderSpec{Name: "root", Files: []FileSpec{{Name: "b.txt"}}}}

	assert.Equal(t, a.Hash(), a.Hash(), "hash should be stable")
	assert.NotEqual(t, a.Hash(), b.Hash(), "different scenes should hash differently")
}

func TestBuildTree(t *testing.T) {
	scene := &Scene{
		Root: FolderSpec{
			Name:  "root",
			Files: []FileSpec{{Name: "a.txt", Content: "hi"}},
			Folders: []FolderSpec{
				{Name: "sub", Files: []FileSpec{{Name: "b.txt", Content: "x"}}},
			},
		},
	}
	require.NoError(t, scene.Validate())

	tree, root, err := BuildTree(context.Background(), scene)
	require.NoError(t, err)

	got, err := tree.Evaluate(root)
	require.NoError(t, err)
	assert.Equal(t, "Branch(Leaf+Branch(Leaf))", got, "built tree should evaluate per scene layout")

	found, err := tree.Find(root, "**/*.txt")
	require.NoError(t, err)
	require.Len(t, found, 2, "both files should be reachable by glob")
	assert.Equal(t, "a.txt", tree.Name(found[0]))
	assert.Equal(t, []byte("hi"), tree.Content(found[0]), "content should survive the build")
}
