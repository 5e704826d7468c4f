// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ diffs two backup plan versions. Versions are chosen with a
// terminal picker or resolved from specs such as ~1 or an ID prefix.
package differ
