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

// Package config loads declarative "scene" files that describe a composite
// tree to build. Scenes can be written in YAML, JSON or HCL.
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// 📄 FileSpec describes a leaf in the scene
type FileSpec struct {
	Name    string `json:"name" yaml:"name" hcl:"name,label"`
	Content string `json:"content,omitempty" yaml:"content,omitempty" hcl:"content,optional"`
}

// 📁 FolderSpec describes a container in the scene; folders nest arbitrarily
type FolderSpec struct {
	Name    string       `json:"name" yaml:"name" hcl:"name,label"`
	Files   []FileSpec   `json:"files,omitempty" yaml:"files,omitempty" hcl:"file,block"`
	Folders []FolderSpec `json:"folders,omitempty" yaml:"folders,omitempty" hcl:"folder,block"`
}

// 📚 Scene is the complete scene configuration
type Scene struct {
	Root FolderSpec `json:"root" yaml:"root" hcl:"root,block"`
}

// 🔍 Validate checks that every entry is named and sibling names are unique
func (s *Scene) Validate() error {
	if s.Root.Name == "" {
		return errors.Errorf("root name is required")
	}
	return validateFolder(&s.Root, s.Root.Name)
}

func validateFolder(f *FolderSpec, path string) error {
	seen := map[string]bool{}
	for _, file := range f.Files {
		if file.Name == "" {
			return errors.Errorf("%s: file name is required", path)
		}
		if seen[file.Name] {
			return errors.Errorf("%s: duplicate entry %q", path, file.Name)
		}
		seen[file.Name] = true
	}
	for i := range f.Folders {
		sub := &f.Folders[i]
		if sub.Name == "" {
			return errors.Errorf("%s: folder name is required", path)
		}
		if seen[sub.Name] {
			return errors.Errorf("%s: duplicate entry %q", path, sub.Name)
		}
		seen[sub.Name] = true
		if err := validateFolder(sub, path+"/"+sub.Name); err != nil {
			return err
		}
	}
	return nil
}

// 🔑 Hash fingerprints the scene for change detection
func (s *Scene) Hash() string {
	data, err := json.Marshal(s)
	if err != nil {
		// Scene is a plain value type; marshaling cannot fail.
		panic(err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// 📝 String returns a short description of the scene
func (s *Scene) String() string {
	return fmt.Sprintf("%s (%d files, %d folders)", s.Root.Name, countFiles(&s.Root), countFolders(&s.Root))
}

func countFiles(f *FolderSpec) int {
	n := len(f.Files)
	for i := range f.Folders {
		n += countFiles(&f.Folders[i])
	}
	return n
}

func countFolders(f *FolderSpec) int {
	n := len(f.Folders)
	for i := range f.Folders {
		n += countFolders(&f.Folders[i])
	}
	return n
}
