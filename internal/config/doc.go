// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for bkctl's user
// configuration. The configuration is a YAML document located by
// BKCTL_CFG_FILE or in the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/bkctl.yaml or $HOME/.config/bkctl.yaml
//   - macOS: $HOME/Library/Application Support/bkctl.yaml
//   - Windows: %APPDATA%/bkctl.yaml
//
// Keys may be namespaced by command name. With Namespace set to
// "list-backup-jobs", a lookup of "output" tries "list-backup-jobs.output"
// first and then "output".
package config
