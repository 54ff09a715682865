// Package launcher spawns the external trainer process with an assembled
// argument vector. It owns exactly one side effect per invocation: starting
// the child and waiting for it. There are no retries, no timeouts, and no
// argument validation at this layer; whatever the trainer reports is
// surfaced as-is.
package launcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vk/vqalaunch/internal/ctxlog"
	"github.com/vk/vqalaunch/internal/runcfg"
)

// DefaultTrainer is the trainer entry point used when neither the
// configuration nor the caller names one. It resolves relative to the
// launcher executable's directory.
const DefaultTrainer = "scripts/train_model.py"

// ExitError reports the trainer's exit status. Err is non-nil only when the
// trainer could not be started at all.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("trainer exited with status %d", e.Code)
}

// Unwrap exposes the start failure, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Launcher resolves the trainer path and spawns trainer processes.
type Launcher struct {
	baseDir string

	// Stdin and Stdout attach to the child process. They default to the
	// launcher's own standard streams.
	Stdin  io.Reader
	Stdout io.Writer
}

// New creates a launcher whose relative trainer paths resolve against the
// directory of the running executable, the equivalent of a launch script
// locating the trainer next to itself.
func New() (*Launcher, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("cannot determine launcher location: %w", err)
	}
	return NewAt(filepath.Dir(exe)), nil
}

// NewAt creates a launcher anchored at an explicit base directory.
func NewAt(baseDir string) *Launcher {
	return &Launcher{
		baseDir: baseDir,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
	}
}

// ResolveTrainer picks the trainer program path for a configuration. The
// caller's override wins, then the configuration's own trainer attribute,
// then DefaultTrainer. Relative paths are anchored at the launcher's base
// directory; absolute paths pass through untouched.
func (l *Launcher) ResolveTrainer(cfg *runcfg.Config, override string) string {
	path := DefaultTrainer
	if cfg != nil && cfg.Trainer != "" {
		path = cfg.Trainer
	}
	if override != "" {
		path = override
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.baseDir, path)
}

// Launch starts the trainer with the given vector and blocks until it
// exits. The child's stdout flows to the launcher's stdout; stderr is
// streamed line by line through the logger so training diagnostics stay
// visible in the launcher's log. A non-zero exit or a failure to start is
// returned as *ExitError.
func (l *Launcher) Launch(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return errors.New("empty argument vector")
	}
	logger := ctxlog.FromContext(ctx)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = l.Stdin

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("cannot attach trainer stdout: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("cannot attach trainer stderr: %w", err)
	}

	if err := cmd.Start(); err != nil {
		// Missing program mirrors the shell's command-not-found status.
		return &ExitError{
			Code: 127,
			Err:  fmt.Errorf("failed to start trainer %s: %w", argv[0], err),
		}
	}
	logger.Info("Trainer started.", "trainer", argv[0], "pid", cmd.Process.Pid, "args", len(argv)-1)

	name := filepath.Base(argv[0])
	g := new(errgroup.Group)
	g.Go(func() error {
		_, err := io.Copy(l.Stdout, stdout)
		return err
	})
	g.Go(func() error {
		streamLines(logger, name, stderr)
		return nil
	})

	// Drain both pipes before Wait closes them.
	copyErr := g.Wait()
	err = cmd.Wait()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Code: exitErr.ExitCode()}
	}
	if err != nil {
		return fmt.Errorf("trainer did not run to completion: %w", err)
	}
	if copyErr != nil {
		return fmt.Errorf("lost trainer output: %w", copyErr)
	}
	return nil
}

// streamLines forwards each stderr line from the trainer to the logger.
func streamLines(logger *slog.Logger, name string, r io.Reader) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		logger.Info(line, "source", name)
	}
}
