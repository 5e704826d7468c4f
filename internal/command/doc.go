// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for bkctl. Every catalog
// operation becomes a subcommand with generated parameter flags; plan-diff,
// report-fetch and completion are hand written. It wires flags, validators,
// actions and shell completion for subcommands.
package command
