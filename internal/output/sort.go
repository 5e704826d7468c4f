// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/tfctl/bkctl/internal/attrs"
	"github.com/tfctl/bkctl/internal/driller"
)

// SortRows sorts rows in place by a comma separated list of keys. A leading -
// sorts a key descending and a leading ! compares it case sensitively. Keys
// are attr output keys or paths. Numbers compare numerically, everything else
// as strings.
func SortRows(rows []gjson.Result, list attrs.AttrList, spec string) {
	if spec == "" {
		return
	}

	type key struct {
		path          string
		ascending     bool
		caseSensitive bool
	}

	var keys []key
	for _, field := range strings.Split(spec, ",") {
		field = strings.TrimSpace(field)
		k := key{ascending: true}
		if strings.HasPrefix(field, "-") {
			field = strings.TrimPrefix(field, "-")
			k.ascending = false
		}
		if strings.HasPrefix(field, "!") {
			field = strings.TrimPrefix(field, "!")
			k.caseSensitive = true
		}
		if field == "" {
			continue
		}
		k.path = list.Path(field)
		keys = append(keys, k)
	}

	sort.SliceStable(rows, func(one, two int) bool {
		for _, k := range keys {
			oneValue := driller.Driller(rows[one].Raw, k.path)
			twoValue := driller.Driller(rows[two].Raw, k.path)

			if oneValue.Type == gjson.Number && twoValue.Type == gjson.Number {
				if oneValue.Num != twoValue.Num {
					if k.ascending {
						return oneValue.Num < twoValue.Num
					}
					return oneValue.Num > twoValue.Num
				}
				continue
			}

			oneStr := InterfaceToString(oneValue.Value())
			twoStr := InterfaceToString(twoValue.Value())
			if !k.caseSensitive {
				oneStr = strings.ToLower(oneStr)
				twoStr = strings.ToLower(twoStr)
			}

			if oneStr != twoStr {
				if k.ascending {
					return oneStr < twoStr
				}
				return oneStr > twoStr
			}
		}
		return false
	})
}
