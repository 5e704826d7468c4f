// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package paramfile reads the --input parameter files of operation commands.
// Files are JSON, YAML or HCL objects whose keys are parameter names or
// their flag spellings.
package paramfile
