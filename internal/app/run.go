package app

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/vk/vqalaunch/internal/ctxlog"
	"github.com/vk/vqalaunch/internal/launcher"
)

// Run executes the requested operation: listing configurations, printing an
// argument vector, or launching the trainer.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.List {
		return a.list()
	}

	cfg, err := a.registry.Lookup(a.config.ConfigName)
	if err != nil {
		return err
	}

	l, err := launcher.New()
	if err != nil {
		return err
	}

	trainer := l.ResolveTrainer(cfg, a.config.Trainer)
	argv := cfg.Argv(trainer, a.config.Passthrough)

	if a.config.PrintOnly {
		for _, token := range argv {
			fmt.Fprintln(a.outW, token)
		}
		return nil
	}

	a.logger.Info("Launching trainer.",
		"config", cfg.Name,
		"dataset", cfg.Dataset,
		"trainer", trainer,
		"fixed_flags", len(cfg.Flags),
		"passthrough", len(a.config.Passthrough),
	)
	if err := l.Launch(ctx, argv); err != nil {
		return err
	}
	a.logger.Info("Trainer finished.", "config", cfg.Name)
	return nil
}

// list writes the known configurations to the output writer, one per line.
func (a *App) list() error {
	w := tabwriter.NewWriter(a.outW, 0, 4, 2, ' ', 0)
	for _, cfg := range a.registry.Configs() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", cfg.Name, cfg.Dataset, cfg.Description)
	}
	return w.Flush()
}
