package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	// Verify root command is properly configured
	assert.Equal(t, "dqview [report-file]", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.NotNil(t, rootCmd.Run)
}

func TestCheckCmd(t *testing.T) {
	// Verify check command is properly configured
	assert.Equal(t, "check [patterns...]", checkCmd.Use)
	assert.NotEmpty(t, checkCmd.Short)
	assert.NotEmpty(t, checkCmd.Long)
	assert.NotNil(t, checkCmd.Run)
}

func TestWatchCmd(t *testing.T) {
	// Verify watch command is properly configured
	assert.Equal(t, "watch <report-file>", watchCmd.Use)
	assert.NotEmpty(t, watchCmd.Short)
	assert.NotEmpty(t, watchCmd.Long)
	assert.NotNil(t, watchCmd.Run)
}

func TestSubcommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["check"], "check command not registered")
	assert.True(t, names["watch"], "watch command not registered")
}

func TestPersistentFlags(t *testing.T) {
	for _, flag := range []string{"root", "quiet", "verbose", "format", "output", "no-color"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), "missing persistent flag %q", flag)
	}
	assert.NotNil(t, rootCmd.Flags().Lookup("details"), "missing details flag")
}

func TestRunShow(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	path := filepath.Join(dir, "sales.quality.json")
	content := `{"metrics": {"completeness": 0.95, "accuracy": 0.9, "consistency": 0.85,
		"confidence_level": 0.88, "total_fields_checked": 40, "valid_fields": 38}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	assert.NoError(t, runShow(path))
}

func TestRunShowRejectsBadReport(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.quality.json")
	content := `{"metrics": {"completeness": 2, "accuracy": 0.9, "consistency": 0.85,
		"confidence_level": 0.88, "total_fields_checked": 40, "valid_fields": 38}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	assert.Error(t, runShow(path))
}
