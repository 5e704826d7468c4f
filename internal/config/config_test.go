// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig sets BKCTL_CFG_FILE to point to a test config file and
// resets the global Config.
func setupTestConfig(t *testing.T, testdataFile string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("BKCTL_CFG_FILE", absPath)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })
}

// withConfig sets up a test config, loads it and executes fn.
func withConfig(t *testing.T, testFile string, fn func(t *testing.T)) {
	t.Helper()
	setupTestConfig(t, testFile)
	_, err := Load()
	require.NoError(t, err)
	fn(t)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		wantErr   bool
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple string values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, "us-east-1", cfg.Data["region"])
				assert.Equal(t, "backup-admin", cfg.Data["profile"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				colors, ok := cfg.Data["colors"].(map[string]interface{})
				require.True(t, ok, "colors should be a map")
				assert.Equal(t, "#ff0000", colors["title"])
			},
		},
		{
			name:     "mixed types",
			testFile: "mixed-types.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.Equal(t, 1, cfg.Data["version"])
				assert.Equal(t, true, cfg.Data["enabled"])
				assert.Equal(t, 30.5, cfg.Data["timeout"])
			},
		},
		{
			name:     "invalid yaml",
			testFile: "invalid.yaml",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)
			cfg, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("BKCTL_CFG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	assert.ErrorContains(t, err, "config file not found")
	assert.Empty(t, Path())
}

func TestLoad_CfgFileIsDirectory(t *testing.T) {
	t.Setenv("BKCTL_CFG_FILE", t.TempDir())
	_, err := Load()
	assert.ErrorContains(t, err, "points to a directory")
}

func TestLoad_PreservesNamespace(t *testing.T) {
	setupTestConfig(t, "nested.yaml")
	Config.Namespace = "list-backup-jobs"
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "list-backup-jobs", cfg.Namespace)
}

func TestGetString(t *testing.T) {
	withConfig(t, "nested.yaml", func(t *testing.T) {
		v, err := GetString("region")
		require.NoError(t, err)
		assert.Equal(t, "eu-west-1", v)

		v, err = GetString("colors.title")
		require.NoError(t, err)
		assert.Equal(t, "#ff0000", v)

		v, err = GetString("colors.odd", "#00c8f0")
		require.NoError(t, err)
		assert.Equal(t, "#00c8f0", v)

		_, err = GetString("colors.missing")
		assert.Error(t, err)

		_, err = GetString("cache.clean")
		assert.ErrorContains(t, err, "not a string")
	})
}

func TestGetString_Namespace(t *testing.T) {
	withConfig(t, "nested.yaml", func(t *testing.T) {
		Config.Namespace = "list-backup-jobs"
		v, err := GetString("output")
		require.NoError(t, err)
		assert.Equal(t, "yaml", v)

		// Falls back to the unnamespaced key.
		v, err = GetString("region")
		require.NoError(t, err)
		assert.Equal(t, "eu-west-1", v)
	})
}

func TestGetInt(t *testing.T) {
	withConfig(t, "nested.yaml", func(t *testing.T) {
		v, err := GetInt("cache.clean")
		require.NoError(t, err)
		assert.Equal(t, 24, v)

		v, err = GetInt("cache.missing", 7)
		require.NoError(t, err)
		assert.Equal(t, 7, v)

		_, err = GetInt("region")
		assert.ErrorContains(t, err, "not an int")
	})

	withConfig(t, "mixed-types.yaml", func(t *testing.T) {
		v, err := GetInt("timeout")
		require.NoError(t, err)
		assert.Equal(t, 30, v)
	})
}

func TestGetBool(t *testing.T) {
	withConfig(t, "mixed-types.yaml", func(t *testing.T) {
		v, err := GetBool("enabled")
		require.NoError(t, err)
		assert.True(t, v)

		v, err = GetBool("absent", true)
		require.NoError(t, err)
		assert.True(t, v)

		_, err = GetBool("name")
		assert.ErrorContains(t, err, "not a bool")

		_, err = GetBool("tags")
		assert.Error(t, err)
	})

	withConfig(t, "nested.yaml", func(t *testing.T) {
		Config.Namespace = "list-backup-jobs"
		v, err := GetBool("enabled")
		require.NoError(t, err)
		assert.True(t, v)

		Config.Namespace = "describe-backup-vault"
		v, err = GetBool("verbose")
		require.NoError(t, err)
		assert.True(t, v)
	})
}

func TestGetStringSlice(t *testing.T) {
	withConfig(t, "mixed-types.yaml", func(t *testing.T) {
		v, err := GetStringSlice("tags")
		require.NoError(t, err)
		assert.Equal(t, []string{"prod", "backup"}, v)

		v, err = GetStringSlice("single")
		require.NoError(t, err)
		assert.Equal(t, []string{"lonely"}, v)

		_, err = GetStringSlice("numbers")
		assert.ErrorContains(t, err, "not a string")

		_, err = GetStringSlice("version")
		assert.ErrorContains(t, err, "not a slice")

		v, err = GetStringSlice("missing", []string{"a"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, v)
	})

	withConfig(t, "nested.yaml", func(t *testing.T) {
		v, err := GetStringSlice("list-backup-jobs.failed")
		require.NoError(t, err)
		assert.Equal(t, []string{"--by-state FAILED", "--max-results 50"}, v)
	})
}
