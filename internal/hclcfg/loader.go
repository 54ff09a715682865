// Package hclcfg loads user-defined launch configurations from HCL files,
// so new runs can be recorded declaratively without recompiling the tool.
package hclcfg

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/vqalaunch/internal/ctxlog"
	"github.com/vk/vqalaunch/internal/fsutil"
	"github.com/vk/vqalaunch/internal/runcfg"
)

// Extension is the file suffix recognized when a directory is searched.
const Extension = ".hcl"

// Loader parses HCL launch configuration files.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every configuration found under the given paths. Each path may
// be a single file or a directory searched recursively for *.hcl files.
// Configurations are returned in file-then-declaration order; name
// uniqueness is the registry's concern, not the loader's.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*runcfg.Config, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		found, err := fsutil.CollectFiles(path, Extension)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered configuration files.", "count", len(files))

	parser := hclparse.NewParser()
	var configs []*runcfg.Config

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", file, diags)
		}

		for _, block := range root.Configs {
			cfg, err := translate(block)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			configs = append(configs, cfg)
		}
		logger.Debug("Loaded configuration file.", "file", file, "configs", len(root.Configs))
	}

	return configs, nil
}

// translate converts a decoded config block into the runtime model.
func translate(block *ConfigBlock) (*runcfg.Config, error) {
	cfg := &runcfg.Config{
		Name:        block.Name,
		Description: block.Description,
		Dataset:     block.Dataset,
		Trainer:     block.Trainer,
		Flags:       make([]runcfg.Flag, 0, len(block.Flags)),
	}
	for _, fb := range block.Flags {
		value, err := flagValueString(fb.Value)
		if err != nil {
			return nil, fmt.Errorf("config %q, flag %q: %w", block.Name, fb.Name, err)
		}
		cfg.Flags = append(cfg.Flags, runcfg.Flag{
			Name:   fb.Name,
			Value:  value,
			Joined: fb.Joined,
		})
	}
	return cfg, nil
}

// flagValueString renders an HCL literal to the string the trainer will see.
func flagValueString(v cty.Value) (string, error) {
	if v.IsNull() {
		return "", fmt.Errorf("value must not be null")
	}
	converted, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", fmt.Errorf("value is not representable as a string: %w", err)
	}
	return converted.AsString(), nil
}
