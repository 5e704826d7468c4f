// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other bkctl packages to avoid import cycles.

package version

import (
	"runtime/debug"
	"strings"
)

var Version = func() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "(devel)" && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}()

// AppID is the application identifier sent with every AWS request. AWS caps
// the value at 50 characters and allows no spaces.
func AppID() string {
	id := "bkctl/" + strings.TrimPrefix(Version, "v")
	id = strings.ReplaceAll(id, " ", "_")
	if len(id) > 50 {
		id = id[:50]
	}
	return id
}
