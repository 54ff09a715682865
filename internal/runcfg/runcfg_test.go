package runcfg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArgv_OrderAndStyles(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	cfg := &Config{
		Name: "ee_small",
		Flags: []Flag{
			{Name: "model_type", Value: "EE"},
			{Name: "feature_dim", Value: "3,64,64", Joined: true},
			{Name: "optimizer", Value: "Adam"},
			{Name: "learning_rate", Value: "1e-4"},
		},
	}

	// --- Act ---
	argv := cfg.Argv("scripts/train_model.py", nil)

	// --- Assert ---
	require.Equal(t, []string{
		"scripts/train_model.py",
		"--model_type", "EE",
		"--feature_dim=3,64,64",
		"--optimizer", "Adam",
		"--learning_rate", "1e-4",
	}, argv)
}

func TestArgv_PassthroughIsAppendedVerbatim(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Name:  "mac",
		Flags: []Flag{{Name: "model_type", Value: "MAC"}},
	}

	argv := cfg.Argv("train.py", []string{"--foo", "bar", "--model_type", "EE"})

	// Passthrough tokens land at the tail, unmodified and undeduplicated,
	// even when they conflict with the fixed flags.
	require.Equal(t, []string{
		"train.py",
		"--model_type", "MAC",
		"--foo", "bar",
		"--model_type", "EE",
	}, argv)
}

func TestArgv_Idempotent(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Name: "film",
		Flags: []Flag{
			{Name: "model_type", Value: "FiLM"},
			{Name: "num_modules", Value: "4"},
		},
	}
	extra := []string{"--batch_size", "32"}

	first := cfg.Argv("train.py", extra)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, cfg.Argv("train.py", extra))
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid",
			cfg: Config{
				Name:  "ok",
				Flags: []Flag{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}},
			},
		},
		{
			name:    "missing config name",
			cfg:     Config{Flags: []Flag{{Name: "a", Value: "1"}}},
			wantErr: "no name",
		},
		{
			name: "duplicate flag",
			cfg: Config{
				Name:  "dup",
				Flags: []Flag{{Name: "a", Value: "1"}, {Name: "a", Value: "2"}},
			},
			wantErr: "more than once",
		},
		{
			name:    "unnamed flag",
			cfg:     Config{Name: "bad", Flags: []Flag{{Value: "1"}}},
			wantErr: "flag with no name",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
