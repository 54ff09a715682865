package registry

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/vqalaunch/internal/ctxlog"
	"github.com/vk/vqalaunch/internal/runcfg"
)

// Registry is the set of known launch configurations, keyed by name.
type Registry struct {
	configs map[string]*runcfg.Config
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{configs: make(map[string]*runcfg.Config)}
}

// Add validates a configuration and registers it. Registering a name twice
// is an authoring error and is rejected.
func (r *Registry) Add(cfg *runcfg.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, exists := r.configs[cfg.Name]; exists {
		return fmt.Errorf("launch configuration %q is defined more than once", cfg.Name)
	}
	r.configs[cfg.Name] = cfg
	return nil
}

// AddAll registers every configuration, stopping at the first error.
func (r *Registry) AddAll(ctx context.Context, cfgs []*runcfg.Config) error {
	logger := ctxlog.FromContext(ctx)
	for _, cfg := range cfgs {
		if err := r.Add(cfg); err != nil {
			return err
		}
		logger.Debug("Registered launch configuration.", "name", cfg.Name, "flags", len(cfg.Flags))
	}
	return nil
}

// Lookup returns the configuration with the given name.
func (r *Registry) Lookup(name string) (*runcfg.Config, error) {
	cfg, ok := r.configs[name]
	if !ok {
		return nil, fmt.Errorf("unknown launch configuration %q (use --list to see available ones)", name)
	}
	return cfg, nil
}

// Configs returns all registered configurations sorted by name, so listings
// are deterministic.
func (r *Registry) Configs() []*runcfg.Config {
	out := make([]*runcfg.Config, 0, len(r.configs))
	for _, cfg := range r.configs {
		out = append(out, cfg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len reports how many configurations are registered.
func (r *Registry) Len() int {
	return len(r.configs)
}
