// Package testutil holds shared helpers for the package tests: a
// thread-safe log buffer, HCL fixture writing, and a fake trainer script
// that records the argument vector it receives.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteConfigFiles writes the given relative-path -> HCL content map under a
// fresh temp dir and returns the dir.
func WriteConfigFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

// FakeTrainer is a stand-in trainer process created for a single test.
type FakeTrainer struct {
	// Path is the executable script standing in for the trainer.
	Path string

	argvFile string
}

// NewFakeTrainer writes an executable shell script that records every
// argument it receives, emits one marker line on each output stream, and
// exits with the given code. Launch tests assert against the recorded
// vector to verify verbatim delivery.
func NewFakeTrainer(t *testing.T, exitCode int) *FakeTrainer {
	t.Helper()
	dir := t.TempDir()
	argvFile := filepath.Join(dir, "argv.txt")
	script := filepath.Join(dir, "train_model.sh")

	body := fmt.Sprintf(`#!/bin/sh
: > %[1]q
for arg in "$@"; do
  printf '%%s\n' "$arg" >> %[1]q
done
echo "fake trainer stdout"
echo "fake trainer stderr" >&2
exit %[2]d
`, argvFile, exitCode)

	require.NoError(t, os.WriteFile(script, []byte(body), 0o755))
	return &FakeTrainer{Path: script, argvFile: argvFile}
}

// ReceivedArgs returns the argument vector the fake trainer was invoked
// with, one token per recorded line.
func (f *FakeTrainer) ReceivedArgs(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(f.argvFile)
	require.NoError(t, err)
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
