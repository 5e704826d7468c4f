// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders operation results as text tables, JSON, YAML or
// raw JSON, applying --attrs, --filter and --sort on the way.
package output
