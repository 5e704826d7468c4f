// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// NeedsVersions reports whether any spec can only be resolved against the
// version list of the plan.
func NeedsVersions(specs ...string) bool {
	for _, spec := range specs {
		if isRelative(spec) || isNumeric(spec) {
			return true
		}
	}
	return false
}

// Resolve maps version specs to versions. versions is newest first, as the
// service lists them. A spec can be
//
//	~N     - the Nth version back from the newest (~0 is the newest)
//	-N, 0  - same as ~N
//	file   - a plan document on disk
//	id     - a version ID; a unique prefix when versions are known
//
// An empty spec resolves to the newest version.
func Resolve(versions []Version, specs ...string) ([]Version, error) {
	result := make([]Version, 0, len(specs))
	for _, spec := range specs {
		v, err := resolveSpec(spec, versions)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func resolveSpec(spec string, versions []Version) (Version, error) {
	spec = strings.TrimSpace(spec)
	switch {
	case spec == "":
		return resolveIndex(0, versions)

	case isRelative(spec):
		index, err := strconv.Atoi(spec[1:])
		if err != nil {
			return Version{}, fmt.Errorf("invalid relative version: %s", spec)
		}
		return resolveIndex(index, versions)

	case isNumeric(spec):
		i, _ := strconv.Atoi(spec)
		if i > 0 {
			return Version{}, fmt.Errorf("invalid relative version %s: use 0 or a negative offset", spec)
		}
		return resolveIndex(-i, versions)

	case isFilePath(spec):
		return Version{ID: spec, Name: spec, File: spec}, nil

	default:
		return resolveID(spec, versions)
	}
}

func resolveIndex(index int, versions []Version) (Version, error) {
	if index < 0 || index > len(versions)-1 {
		return Version{}, fmt.Errorf("index %d out of range for %d plan versions", index, len(versions))
	}
	return versions[index], nil
}

// resolveID matches an ID exactly, then as a unique prefix. Without a version
// list the spec is taken as a literal ID.
func resolveID(spec string, versions []Version) (Version, error) {
	if len(versions) == 0 {
		return Version{ID: spec}, nil
	}

	var matches []Version
	for _, v := range versions {
		if v.ID == spec {
			return v, nil
		}
		if strings.HasPrefix(v.ID, spec) {
			matches = append(matches, v)
		}
	}

	switch len(matches) {
	case 0:
		return Version{}, fmt.Errorf("no plan version matches %s", spec)
	case 1:
		return matches[0], nil
	}
	return Version{}, fmt.Errorf("version prefix %s is ambiguous (%d matches)", spec, len(matches))
}

func isRelative(s string) bool {
	return strings.HasPrefix(s, "~")
}

func isNumeric(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

func isFilePath(s string) bool {
	info, err := os.Stat(s)
	return err == nil && !info.IsDir()
}
