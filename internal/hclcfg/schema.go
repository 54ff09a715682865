package hclcfg

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// FlagBlock represents one `flag "name" { ... }` block. Block order in the
// source file is authoring order and is preserved in the argument vector.
type FlagBlock struct {
	Name string `hcl:"name,label"`
	// Value accepts a string, number, or bool literal; it is rendered to its
	// string form when the vector is assembled.
	Value cty.Value `hcl:"value"`
	// Joined selects the single-token "--name=value" rendering.
	Joined bool `hcl:"joined,optional"`
}

// ConfigBlock represents a `config "name" { ... }` block defining one launch
// configuration.
type ConfigBlock struct {
	Name        string       `hcl:"name,label"`
	Description string       `hcl:"description,optional"`
	Dataset     string       `hcl:"dataset,optional"`
	Trainer     string       `hcl:"trainer,optional"`
	Flags       []*FlagBlock `hcl:"flag,block"`
}

// fileRoot decodes the top level of a configuration file.
type fileRoot struct {
	Configs []*ConfigBlock `hcl:"config,block"`
	Remain  hcl.Body       `hcl:",remain"`
}
