// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/tfctl/bkctl/internal/log"
)

// Kinds of cached artifacts. Each lives in its own subdirectory.
const (
	// Reports are report job objects downloaded from S3.
	Reports = "reports"
	// Plans are immutable backup plan versions used by plan-diff.
	Plans = "plans"
)

// Entry is a cached artifact read back from disk.
type Entry struct {
	Key     string
	Path    string
	Data    []byte
	ModTime time.Time
}

// Cache is a directory of artifacts addressed by clear-text keys. A nil
// Cache is valid and caches nothing.
type Cache struct {
	Base string
	// MaxAge expires entries on read. Zero keeps entries forever.
	MaxAge time.Duration
}

// Dir resolves the base cache directory.
// Precedence:
//  1. BKCTL_CACHE_DIR, if set and non-empty
//  2. os.UserCacheDir()/bkctl
//
// Returns ("", false) if a base cannot be resolved (treat as disabled).
func Dir() (string, bool) {
	if c, ok := os.LookupEnv("BKCTL_CACHE_DIR"); ok && c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "bkctl"), true
	}
	return "", false
}

// Enabled returns true unless BKCTL_CACHE explicitly disables it ("0"/"false").
func Enabled() bool {
	enabled, _ := os.LookupEnv("BKCTL_CACHE")
	return enabled == "" || (enabled != "0" && enabled != "false")
}

// Open returns the cache for this process, creating its base directory. It
// returns a nil Cache when caching is disabled or no base can be resolved.
func Open(maxAge time.Duration) (*Cache, error) {
	if !Enabled() {
		log.Debug("cache disabled")
		return nil, nil
	}

	base, ok := Dir()
	if !ok {
		return nil, nil
	}

	if err := os.MkdirAll(base, 0o755); err != nil { //nolint:mnd
		return nil, fmt.Errorf("failed to create cache base directory: %w", err)
	}
	log.Debugf("cache dir: path=%s, maxAge=%s", base, maxAge)
	return &Cache{Base: base, MaxAge: maxAge}, nil
}

// Path returns where the entry for key of the given kind lives.
func (c *Cache) Path(kind, key string) string {
	if c == nil {
		return ""
	}
	return filepath.Join(c.Base, kind, encodeKey(key))
}

// Get reads an entry. Missing, unreadable and expired entries are misses.
func (c *Cache) Get(kind, key string) (*Entry, bool) {
	if c == nil {
		return nil, false
	}

	p := c.Path(kind, key)
	info, err := os.Stat(p)
	if err != nil {
		return nil, false
	}
	if c.MaxAge > 0 && time.Since(info.ModTime()) > c.MaxAge {
		log.Debugf("cache expired: key=%s", key)
		return nil, false
	}

	b, err := os.ReadFile(p)
	if err != nil {
		return nil, false
	}
	log.Debugf("cache hit: key=%s", key)
	return &Entry{Key: key, Path: p, Data: b, ModTime: info.ModTime()}, true
}

// Put stores data for key. The file is written under a temporary name and
// renamed so readers never see a partial entry.
func (c *Cache) Put(kind, key string, data []byte) error {
	if c == nil {
		return nil
	}

	p := c.Path(kind, key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(p), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	log.Debugf("cache write: key=%s, bytes=%d", key, len(data))
	return nil
}

// Purge removes files older than maxAge and returns how many were removed.
// If maxAge <= 0 it is a no-op.
func (c *Cache) Purge(maxAge time.Duration) (int, error) {
	if c == nil || maxAge <= 0 {
		log.Debug("cache cleaning disabled")
		return 0, nil
	}

	removed := 0
	err := filepath.WalkDir(c.Base, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrNotExist) {
				return nil
			}
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err == nil {
				removed++
				log.Debugf("removed cache file %s", path)
			} else {
				log.WithError(err).Warnf("failed to remove cache file %s", path)
			}
		}
		return nil
	})
	if err != nil {
		return removed, fmt.Errorf("failed to purge cache: %w", err)
	}
	return removed, nil
}

// encodeKey returns the hex sha256 of the key, used as the file name.
func encodeKey(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}
