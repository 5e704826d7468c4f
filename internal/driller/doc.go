// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller navigates AWS Backup response documents with the dot paths
// used by --attrs, --filter and --sort.
package driller
