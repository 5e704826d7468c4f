// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cacheutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T, maxAge time.Duration) *Cache {
	t.Helper()
	t.Setenv("BKCTL_CACHE", "")
	t.Setenv("BKCTL_CACHE_DIR", filepath.Join(t.TempDir(), "cache"))
	c, err := Open(maxAge)
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func age(t *testing.T, path string, d time.Duration) {
	t.Helper()
	old := time.Now().Add(-d)
	require.NoError(t, os.Chtimes(path, old, old))
}

func TestDir(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("BKCTL_CACHE_DIR", custom)
	dir, ok := Dir()
	assert.True(t, ok)
	assert.Equal(t, custom, dir)

	t.Setenv("BKCTL_CACHE_DIR", "")
	dir, ok = Dir()
	if ok {
		assert.True(t, filepath.IsAbs(dir))
		assert.Equal(t, "bkctl", filepath.Base(dir))
	}
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"1", true},
		{"true", true},
		{"yes", true},
		{"0", false},
		{"false", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("BKCTL_CACHE", tt.value)
			assert.Equal(t, tt.want, Enabled())
		})
	}
}

func TestOpen(t *testing.T) {
	c := openTemp(t, time.Hour)
	info, err := os.Stat(c.Base)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, time.Hour, c.MaxAge)

	t.Setenv("BKCTL_CACHE", "false")
	c, err = Open(0)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestOpen_Unwritable(t *testing.T) {
	t.Setenv("BKCTL_CACHE", "")
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	t.Setenv("BKCTL_CACHE_DIR", filepath.Join(file, "sub"))

	_, err := Open(0)
	assert.ErrorContains(t, err, "failed to create cache base directory")
}

func TestNilCache(t *testing.T) {
	var c *Cache
	assert.Empty(t, c.Path(Reports, "k"))
	_, ok := c.Get(Reports, "k")
	assert.False(t, ok)
	assert.NoError(t, c.Put(Reports, "k", []byte("x")))
	n, err := c.Purge(time.Hour)
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestPutGet(t *testing.T) {
	c := openTemp(t, 0)
	key := "s3://reports/Backup/job.csv@etag-1"
	data := []byte("  id,state\n1,COMPLETED\n")

	_, ok := c.Get(Reports, key)
	assert.False(t, ok)

	require.NoError(t, c.Put(Reports, key, data))
	entry, ok := c.Get(Reports, key)
	require.True(t, ok)
	assert.Equal(t, data, entry.Data)
	assert.Equal(t, key, entry.Key)
	assert.Equal(t, filepath.Join(c.Base, Reports, encodeKey(key)), entry.Path)

	// Kinds are separate namespaces.
	_, ok = c.Get(Plans, key)
	assert.False(t, ok)

	require.NoError(t, c.Put(Reports, key, []byte("new")))
	entry, ok = c.Get(Reports, key)
	require.True(t, ok)
	assert.Equal(t, "new", string(entry.Data))

	// No temporary files are left behind.
	files, err := os.ReadDir(filepath.Join(c.Base, Reports))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestGet_Expired(t *testing.T) {
	c := openTemp(t, time.Hour)
	require.NoError(t, c.Put(Plans, "plan-1@v1", []byte("{}")))
	age(t, c.Path(Plans, "plan-1@v1"), 2*time.Hour)

	_, ok := c.Get(Plans, "plan-1@v1")
	assert.False(t, ok)
}

func TestPurge(t *testing.T) {
	c := openTemp(t, 0)
	for _, k := range []string{"old-1", "old-2", "new"} {
		require.NoError(t, c.Put(Reports, k, []byte(k)))
	}
	require.NoError(t, c.Put(Plans, "old-3", []byte("x")))
	age(t, c.Path(Reports, "old-1"), 48*time.Hour)
	age(t, c.Path(Reports, "old-2"), 48*time.Hour)
	age(t, c.Path(Plans, "old-3"), 48*time.Hour)

	n, err := c.Purge(0)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = c.Purge(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, ok := c.Get(Reports, "new")
	assert.True(t, ok)
	_, ok = c.Get(Reports, "old-1")
	assert.False(t, ok)
}

func TestEncodeKey(t *testing.T) {
	a := encodeKey("s3://bucket/key")
	assert.Equal(t, a, encodeKey("s3://bucket/key"))
	assert.NotEqual(t, a, encodeKey("s3://bucket/key2"))
	assert.Len(t, a, 64)
	assert.Regexp(t, "^[0-9a-f]+$", a)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", encodeKey(""))
}
