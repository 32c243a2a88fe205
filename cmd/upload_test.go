package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCommand(t *testing.T, name string) *cobra.Command {
	t.Helper()
	for _, c := range rootCmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	t.Fatalf("command %q not registered", name)
	return nil
}

func TestRunUploadBrokenConfigReturnsError(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", tmp)

	cfgDir := filepath.Join(tmp, "postup", "configs")
	require.NoError(t, os.MkdirAll(cfgDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "Default.yaml"), []byte("batch_size: [unclosed"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "postup", "current_config"), []byte("Default"), 0644))

	uploadCmd := findCommand(t, "upload")
	require.NoError(t, uploadCmd.Flags().Set("batch-size", "10"))

	// a broken active config must surface as an error, not a panic,
	// even when flag overrides are pending
	err := runUpload(uploadCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestSplitExt(t *testing.T) {
	assert.Equal(t, []string{"avif", "jpg", "png"}, splitExt("avif|JPG, png"))
	assert.Empty(t, splitExt(" | , "))
}
