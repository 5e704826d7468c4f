// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// segmentRegex matches one path segment: a member name with an optional
// index suffix. "Rules", "Rules[2]", "Rules[*]" and "Rules[]" are valid.
var segmentRegex = regexp.MustCompile(`^([A-Za-z0-9_-]+)(\[(\d+|\*)?\])?$`)

// Driller walks a response document along a dot path. A segment naming an
// array selects the element at its index, the single element of a one-item
// array, or the whole array for "[*]" and for arrays longer than one.
func Driller(jsonData string, path string) gjson.Result {
	current := gjson.Parse(jsonData)
	if path == "" {
		return current
	}

	for _, p := range strings.Split(path, ".") {
		matches := segmentRegex.FindStringSubmatch(p)
		if matches == nil {
			return gjson.Result{}
		}

		val := current.Get(matches[1])
		if !val.IsArray() {
			current = val
			continue
		}

		arr := val.Array()
		switch idx := matches[3]; idx {
		case "*":
		case "":
			if len(arr) == 1 {
				val = arr[0]
			}
		default:
			i, err := strconv.Atoi(idx)
			if err != nil || i >= len(arr) {
				return gjson.Result{}
			}
			val = arr[i]
		}

		current = val
	}

	return current
}

// Columns returns the member names of an object in sorted order, keeping
// only those whose values render on one line. It is used to pick table
// columns when nothing else names them.
func Columns(row gjson.Result) []string {
	if !row.IsObject() {
		return nil
	}

	var cols []string
	row.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() && !value.IsArray() {
			cols = append(cols, key.String())
		}
		return true
	})
	sort.Strings(cols)
	return cols
}

// Paths lists every leaf path of a document in driller notation, with array
// elements collapsed to "[]".
func Paths(doc gjson.Result) []string {
	seen := map[string]bool{}
	walk(doc, "", seen)

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func walk(v gjson.Result, prefix string, seen map[string]bool) {
	switch {
	case v.IsObject():
		v.ForEach(func(key, value gjson.Result) bool {
			p := key.String()
			if prefix != "" {
				p = prefix + "." + p
			}
			walk(value, p, seen)
			return true
		})
	case v.IsArray():
		arr := v.Array()
		if len(arr) == 0 && prefix != "" {
			seen[prefix+"[]"] = true
		}
		for _, e := range arr {
			walk(e, prefix+"[]", seen)
		}
	case prefix != "":
		seen[prefix] = true
	}
}
