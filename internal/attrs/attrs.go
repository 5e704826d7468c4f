// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package attrs

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tfctl/bkctl/internal/log"
)

// lengthRegex finds the length part of a transform spec.
var lengthRegex = regexp.MustCompile(`-?\d+`)

// Attr is one column of output: a driller path into each result row, the
// name it is written under and how its value is transformed.
type Attr struct {
	// Path into the result row, e.g. BackupPlan.BackupPlanName.
	Key string `yaml:"key" json:"Key"`
	// Excluded attrs are still available to --filter and --sort.
	Include bool `yaml:"include" json:"Include"`
	// Output name and, for text output, the column title.
	OutputKey string `yaml:"outputKey" json:"OutputKey"`
	// Transform letters and length, see Transform.
	TransformSpec string `yaml:"transformSpec" json:"TransformSpec"`
}

// Transform applies the transform spec to a value.
//
//	t    timestamp in local time
//	T    timestamp as time ago
//	b    byte count as a human size
//	l u  lower or upper case, the last one wins
//	N    truncate to N characters
//	-N   elide the middle down to N characters
func (a *Attr) Transform(value interface{}) interface{} {
	if a.TransformSpec == "" {
		return value
	}

	if strings.Contains(a.TransformSpec, "b") {
		if n, ok := toUint64(value); ok {
			value = humanize.Bytes(n)
			log.Tracef("bytes: value=%v", value)
		}
	}

	result, ok := value.(string)
	if !ok {
		log.Tracef("non-string value: value=%v", value)
		return value
	}

	if strings.ContainsAny(a.TransformSpec, "tT") {
		result = transformTime(result, strings.Contains(a.TransformSpec, "T"))
	}

	// A global spec is prepended to each attr's own spec, so the last case
	// letter belongs to the more specific spec.
	lastL := strings.LastIndexAny(a.TransformSpec, "lL")
	lastU := strings.LastIndexAny(a.TransformSpec, "uU")
	if lastL > lastU {
		result = strings.ToLower(result)
	} else if lastU > lastL {
		result = strings.ToUpper(result)
	}

	match := lengthRegex.FindAllString(a.TransformSpec, -1)
	if len(match) == 0 {
		return result
	}

	l, _ := strconv.Atoi(match[len(match)-1])
	abs := int(math.Abs(float64(l)))
	if abs == 0 || len(result) <= abs {
		return result
	}

	if l < 0 {
		side := abs/2 - 1
		if side < 1 {
			side = 1
		}
		result = result[:side] + ".." + result[len(result)-side:]
		log.Tracef("length middle: result=%s", result)
	} else {
		result = result[:l]
		log.Tracef("length trunc: result=%s", result)
	}

	return result
}

// transformTime renders an RFC 3339 timestamp in the local zone or as a
// relative time. Anything that does not parse is returned unchanged.
func transformTime(s string, ago bool) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	local := t.In(time.Local)
	if ago {
		return humanize.Time(local)
	}
	return local.Format("2006-01-02T15:04:05MST")
}

func toUint64(v interface{}) (uint64, bool) {
	switch n := v.(type) {
	case float64:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int64:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	default:
		return 0, false
	}
}

// AttrList is the ordered set of output attrs.
type AttrList []Attr

// New builds an AttrList from default specs followed by user specs. Each
// entry may hold several comma separated specs.
func New(specs ...string) (AttrList, error) {
	var list AttrList
	for _, s := range specs {
		if err := list.Set(s); err != nil {
			return nil, err
		}
	}
	if err := list.SetGlobalTransformSpec(); err != nil {
		return nil, err
	}
	return list, nil
}

// Set parses a comma separated list of key:outputKey:transform specs. A
// leading ! excludes the attr from output and a key of * carries a global
// transform. Specs naming an existing attr by key or output key update it.
func (a *AttrList) Set(value string) error {
	if value == "" || value == "*" {
		return nil
	}

	const (
		keyIdx = iota
		outputIdx
		transformIdx
	)

specloop:
	for _, spec := range strings.Split(value, ",") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}

		fields := strings.Split(spec, ":")
		if len(fields) > transformIdx+1 {
			return fmt.Errorf("invalid attr spec %q: too many fields", spec)
		}

		attr := Attr{Include: true}
		attr.Key = strings.TrimPrefix(strings.TrimSpace(fields[keyIdx]), ".")
		if strings.HasPrefix(attr.Key, "!") {
			attr.Include = false
			attr.Key = attr.Key[1:]
		}
		if attr.Key == "" {
			return fmt.Errorf("invalid attr spec %q: empty key", spec)
		}
		if attr.Key == "*" {
			attr.Include = false
		}

		// The output key defaults to the last segment of the path, minus any
		// index suffix.
		if len(fields) > outputIdx && strings.TrimSpace(fields[outputIdx]) != "" {
			attr.OutputKey = strings.TrimSpace(fields[outputIdx])
		} else {
			segments := strings.Split(attr.Key, ".")
			attr.OutputKey = strings.SplitN(segments[len(segments)-1], "[", 2)[0]
		}

		if len(fields) > transformIdx {
			attr.TransformSpec = strings.TrimSpace(fields[transformIdx])
		}
		log.Tracef("attr parsed: key=%s, output=%s, spec=%s, include=%v",
			attr.Key, attr.OutputKey, attr.TransformSpec, attr.Include)

		for i := range *a {
			if (*a)[i].Key == attr.Key || (*a)[i].OutputKey == attr.Key {
				(*a)[i].Include = attr.Include
				if len(fields) > outputIdx {
					(*a)[i].OutputKey = attr.OutputKey
				}
				if len(fields) > transformIdx {
					(*a)[i].TransformSpec = attr.TransformSpec
				}
				continue specloop
			}
		}

		*a = append(*a, attr)
	}

	return nil
}

// SetGlobalTransformSpec prepends the spec of the * attr, if any, to every
// attr's spec.
func (a *AttrList) SetGlobalTransformSpec() error {
	spec := ""
	for i := range *a {
		if (*a)[i].Key == "*" {
			spec = (*a)[i].TransformSpec
			break
		}
	}
	if spec == "" {
		return nil
	}

	for i := range *a {
		if (*a)[i].Key == "*" {
			continue
		}
		(*a)[i].TransformSpec = spec + "," + (*a)[i].TransformSpec
	}
	log.Debugf("global spec applied: spec=%s", spec)

	return nil
}

// Included returns the attrs that are written to output.
func (a AttrList) Included() AttrList {
	var out AttrList
	for _, attr := range a {
		if attr.Include {
			out = append(out, attr)
		}
	}
	return out
}

// Find returns the attr whose output key or path is name.
func (a AttrList) Find(name string) (Attr, bool) {
	for _, attr := range a {
		if attr.OutputKey == name {
			return attr, true
		}
	}
	for _, attr := range a {
		if attr.Key == name {
			return attr, true
		}
	}
	return Attr{}, false
}

// Path returns the path of the attr whose output key is name, or name itself
// so that raw paths work where an attr name is expected.
func (a AttrList) Path(name string) string {
	for _, attr := range a {
		if attr.OutputKey == name {
			return attr.Key
		}
	}
	return name
}

// String renders the list in --attrs syntax.
func (a *AttrList) String() string {
	result := make([]string, 0, len(*a))
	for _, attr := range *a {
		key := attr.Key
		if !attr.Include && key != "*" {
			key = "!" + key
		}
		result = append(result, fmt.Sprintf("%s:%s:%s", key, attr.OutputKey, attr.TransformSpec))
	}
	return strings.Join(result, ",")
}

// Type returns the flag type name.
func (a *AttrList) Type() string { return "list" }
