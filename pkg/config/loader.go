package config

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Load loads a scene file from the given path. The format is determined by
// the file extension:
// - .json for JSON
// - .yaml or .yml for YAML
// - .hcl for HCL
func Load(ctx context.Context, path string) (*Scene, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading scene")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading scene file: %w", err)
	}

	var scene *Scene
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		scene, err = loadJSON(data)
	case ".yaml", ".yml":
		scene, err = loadYAML(data)
	case ".hcl":
		scene, err = loadHCL(data, path)
	default:
		return nil, errors.Errorf("unsupported file extension %q", ext)
	}
	if err != nil {
		return nil, err
	}

	if err := scene.Validate(); err != nil {
		return nil, errors.Errorf("validating scene: %w", err)
	}

	return scene, nil
}

// loadJSON loads a scene from JSON data
func loadJSON(data []byte) (*Scene, error) {
	var scene Scene
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&scene); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	return &scene, nil
}

// loadYAML loads a scene from YAML data
func loadYAML(data []byte) (*Scene, error) {
	var scene Scene
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scene); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &scene, nil
}

// loadHCL loads a scene from HCL data
func loadHCL(data []byte, filename string) (*Scene, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var scene Scene
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &scene)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &scene, nil
}
