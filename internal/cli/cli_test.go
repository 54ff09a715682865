package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_ConfigAndPassthrough(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"mac_flatqa", "--", "--foo", "bar"}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "mac_flatqa", cfg.ConfigName)
	require.Equal(t, []string{"--foo", "bar"}, cfg.Passthrough)
}

func TestParse_PassthroughWithoutSeparator(t *testing.T) {
	t.Parallel()

	// Everything after the configuration name is forwarded, matching the
	// $@ forwarding of the original launch scripts.
	out := &bytes.Buffer{}
	cfg, _, err := Parse([]string{"ee_clevr", "--batch_size", "32"}, out)

	require.NoError(t, err)
	require.Equal(t, "ee_clevr", cfg.ConfigName)
	require.Equal(t, []string{"--batch_size", "32"}, cfg.Passthrough)
}

func TestParse_Options(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, _, err := Parse([]string{
		"-c", "configs",
		"--configs", "extra.hcl",
		"--trainer", "/data/train.py",
		"--print",
		"--log-level", "debug",
		"--log-format", "json",
		"ee_clevr",
	}, out)

	require.NoError(t, err)
	require.Equal(t, []string{"configs", "extra.hcl"}, cfg.ConfigPaths)
	require.Equal(t, "/data/train.py", cfg.Trainer)
	require.True(t, cfg.PrintOnly)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
}

func TestParse_ListNeedsNoConfigName(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"--list"}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.True(t, cfg.List)
	require.Empty(t, cfg.ConfigName)
}

func TestParse_NoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_UnknownFlag(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, _, err := Parse([]string{"--definitely-not-a-flag"}, out)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestParse_InvalidLogSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad level", []string{"--log-level", "loud", "ee_clevr"}, "invalid log-level"},
		{"bad format", []string{"--log-format", "xml", "ee_clevr"}, "invalid log-format"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := &bytes.Buffer{}
			_, _, err := Parse(tt.args, out)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code)
			require.Contains(t, exitErr.Message, tt.want)
		})
	}
}
