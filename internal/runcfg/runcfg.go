package runcfg

import (
	"fmt"
)

// Flag is one fixed hyperparameter of a launch configuration.
type Flag struct {
	// Name is the flag name without the leading dashes, e.g. "model_type".
	Name string
	// Value is the literal value fixed at authoring time.
	Value string
	// Joined renders the flag as a single "--name=value" token instead of
	// the two-token "--name value" form. The recorded launch scripts mix
	// both styles and the trainer accepts either, so the authored style is
	// preserved.
	Joined bool
}

// tokens renders the flag into its argument vector tokens.
func (f Flag) tokens() []string {
	if f.Joined {
		return []string{fmt.Sprintf("--%s=%s", f.Name, f.Value)}
	}
	return []string{"--" + f.Name, f.Value}
}

// Config is one recorded launch configuration: a named, ordered mapping from
// flag name to value for a single trainer invocation.
type Config struct {
	// Name identifies the configuration, e.g. "mac_flatqa".
	Name string
	// Description is a one-line summary shown by the list command.
	Description string
	// Dataset names the dataset this configuration trains on.
	Dataset string
	// Trainer optionally overrides the default trainer program path.
	// Relative paths resolve against the launcher executable's directory.
	Trainer string
	// Flags is the fixed hyperparameter list in authored order.
	Flags []Flag
}

// Argv assembles the full argument vector: the trainer path first, then
// every flag in authored order, then the caller-supplied extra arguments
// verbatim. The result is deterministic for identical inputs and is never
// deduplicated or validated here.
func (c *Config) Argv(trainer string, extra []string) []string {
	argv := make([]string, 0, 1+2*len(c.Flags)+len(extra))
	argv = append(argv, trainer)
	for _, f := range c.Flags {
		argv = append(argv, f.tokens()...)
	}
	argv = append(argv, extra...)
	return argv
}

// Validate checks the authoring-time invariants of a configuration: a
// non-empty name and flag names that are unique within the configuration.
// Values are deliberately not checked; invalid hyperparameters are the
// trainer's to reject.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("launch configuration has no name")
	}
	seen := make(map[string]struct{}, len(c.Flags))
	for _, f := range c.Flags {
		if f.Name == "" {
			return fmt.Errorf("configuration %q has a flag with no name", c.Name)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("configuration %q sets flag --%s more than once", c.Name, f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}
