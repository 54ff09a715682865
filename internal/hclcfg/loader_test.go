package hclcfg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/vqalaunch/internal/runcfg"
)

// writeFile drops HCL content into a temp dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_SingleConfig(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	content := `
config "mac_clevr_small" {
  description = "MAC on CLEVR, reduced iteration budget"
  dataset     = "clevr"
  trainer     = "scripts/train_model.py"

  flag "model_type"     { value = "MAC" }
  flag "feature_dim"    { value = "3,64,64"  joined = true }
  flag "num_iterations" { value = 20000 }
  flag "mac_use_self_attention" { value = true }
}
`
	path := writeFile(t, t.TempDir(), "mac.hcl", content)

	// --- Act ---
	configs, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, configs, 1)

	cfg := configs[0]
	require.Equal(t, "mac_clevr_small", cfg.Name)
	require.Equal(t, "MAC on CLEVR, reduced iteration budget", cfg.Description)
	require.Equal(t, "clevr", cfg.Dataset)
	require.Equal(t, "scripts/train_model.py", cfg.Trainer)
	require.Equal(t, []runcfg.Flag{
		{Name: "model_type", Value: "MAC"},
		{Name: "feature_dim", Value: "3,64,64", Joined: true},
		{Name: "num_iterations", Value: "20000"},
		{Name: "mac_use_self_attention", Value: "true"},
	}, cfg.Flags)
}

func TestLoad_PreservesDeclarationOrder(t *testing.T) {
	t.Parallel()

	content := `
config "ordered" {
  flag "z" { value = "1" }
  flag "a" { value = "2" }
  flag "m" { value = "3" }
}
`
	path := writeFile(t, t.TempDir(), "ordered.hcl", content)

	configs, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, configs, 1)

	var names []string
	for _, f := range configs[0].Flags {
		names = append(names, f.Name)
	}
	require.Equal(t, []string{"z", "a", "m"}, names)
}

func TestLoad_DirectoryIsSearchedRecursively(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "one.hcl", `config "one" { flag "model_type" { value = "EE" } }`)
	writeFile(t, dir, filepath.Join("sub", "two.hcl"), `config "two" { flag "model_type" { value = "MAC" } }`)
	writeFile(t, dir, "notes.txt", "not a config")

	configs, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, configs, 2)
}

func TestLoad_InvalidSyntaxIsRejected(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "bad.hcl", `config "broken" { flag "x" {`)

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_NullValueIsRejected(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "null.hcl", `
config "nullval" {
  flag "model_type" { value = null }
}
`)

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "must not be null")
}

func TestLoad_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot access")
}
