package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/vqalaunch/internal/app"
	"github.com/vk/vqalaunch/internal/cli"
	"github.com/vk/vqalaunch/internal/hclcfg"
	"github.com/vk/vqalaunch/internal/launcher"
)

// main is the entrypoint for the vqalaunch tool.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var cliErr *cli.ExitError
		if errors.As(err, &cliErr) {
			fmt.Fprintln(os.Stderr, cliErr.Message)
			os.Exit(cliErr.Code)
		}
		var trainerErr *launcher.ExitError
		if errors.As(err, &trainerErr) {
			// The trainer's own exit status propagates unchanged.
			if trainerErr.Err != nil {
				fmt.Fprintln(os.Stderr, trainerErr.Err)
			}
			os.Exit(trainerErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical config errors, so we recover here to provide
	// a clean exit message to the user.
	var runErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				runErr = fmt.Errorf("a critical startup error occurred: %v", r)
			}
		}()
		loader := hclcfg.NewLoader()
		launchApp := app.NewApp(outW, os.Stderr, appConfig, loader)
		runErr = launchApp.Run(context.Background())
	}()
	return runErr
}
