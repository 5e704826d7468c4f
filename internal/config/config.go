// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// FileEnv names the environment variable that overrides the config file path.
const FileEnv = "BKCTL_CFG_FILE"

// Type is a loaded configuration file. Namespace is the running subcommand;
// keys are looked up under it first, so "list-backup-jobs.output" wins over
// "output" when list-backup-jobs runs.
type Type struct {
	Source    string
	Namespace string
	Data      map[string]interface{}
}

// Config is the process wide configuration.
var Config Type

func init() {
	_, _ = Load()
}

var (
	errNotBool   = errors.New("value is not a bool")
	errNotInt    = errors.New("value is not an int")
	errNotString = errors.New("value is not a string")
	errNotSlice  = errors.New("value is not a slice")
)

// lookup resolves key and converts the raw YAML value. A missing key yields
// the single default when one is given.
func lookup[T any](key string, convert func(any) (T, error), defaultValue []T) (T, error) {
	if len(Config.Data) == 0 {
		_, _ = Load()
	}

	var zero T
	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return zero, err
	}
	return convert(val)
}

// GetBool accepts YAML booleans and the strings yes/no, on/off, y/n and
// anything strconv.ParseBool understands.
func GetBool(key string, defaultValue ...bool) (bool, error) {
	return lookup(key, toBool, defaultValue)
}

// GetInt accepts whole YAML numbers. Floats are truncated.
func GetInt(key string, defaultValue ...int) (int, error) {
	return lookup(key, toInt, defaultValue)
}

func GetString(key string, defaultValue ...string) (string, error) {
	return lookup(key, toString, defaultValue)
}

// GetStringSlice accepts a list of strings or a lone string.
func GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	return lookup(key, toStringSlice, defaultValue)
}

func toBool(val any) (bool, error) {
	switch v := val.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(v) {
		case "yes", "y", "on":
			return true, nil
		case "no", "n", "off":
			return false, nil
		}
		if b, err := strconv.ParseBool(v); err == nil {
			return b, nil
		}
	}
	return false, errNotBool
}

func toInt(val any) (int, error) {
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	}
	return 0, errNotInt
}

func toString(val any) (string, error) {
	if s, ok := val.(string); ok {
		return s, nil
	}
	return "", errNotString
}

func toStringSlice(val any) ([]string, error) {
	switch v := val.(type) {
	case []string:
		return v, nil
	case string:
		return []string{v}, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.New("slice element is not a string")
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, errNotSlice
}

// Load reads the config file into Config, keeping the current Namespace.
func Load() (Type, error) {
	path, err := getConfigFile()
	if err != nil {
		return Type{}, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	Config = Type{Source: path, Namespace: Config.Namespace, Data: data}
	return Config, nil
}

// candidates lists the keys tried for kspec, namespaced first.
func (cfg *Type) candidates(kspec string) []string {
	if cfg.Namespace == "" {
		return []string{kspec}
	}
	return []string{cfg.Namespace + "." + kspec, kspec}
}

// get walks the YAML tree along a dotted key such as "colors.title".
func (cfg *Type) get(kspec string) (any, error) {
	keys := cfg.candidates(kspec)
	for _, key := range keys {
		if v, ok := walk(cfg.Data, strings.Split(key, ".")); ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("no valid path found among: %v", keys)
}

func walk(node any, path []string) (any, bool) {
	for _, k := range path {
		m, ok := node.(map[string]interface{})
		if !ok {
			return nil, false
		}
		if node, ok = m[k]; !ok {
			return nil, false
		}
	}
	return node, true
}

// getConfigFile returns the config file named by BKCTL_CFG_FILE, or
// bkctl.yaml in os.UserConfigDir.
func getConfigFile() (string, error) {
	if path := os.Getenv(FileEnv); path != "" {
		info, err := os.Stat(path)
		switch {
		case err != nil:
			return "", fmt.Errorf("config file not found at %s path: %s", FileEnv, path)
		case info.IsDir():
			return "", fmt.Errorf("%s points to a directory: %s", FileEnv, path)
		}
		log.Debugf("using config file from %s: %s", FileEnv, path)
		return path, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, "bkctl.yaml")
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		log.Debugf("using config file: %s", path)
		return path, nil
	}
	return "", errors.New("no config file found in standard locations")
}

// Path returns the config file flag value sources read, or "" when there is
// none.
func Path() string {
	path, err := getConfigFile()
	if err != nil {
		return ""
	}
	return path
}
