// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package operation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Build maps a Parameter Set onto a new request for d. Only bound parameters
// reach the request. A required parameter that was never bound is a
// ValidationError; one bound to an explicit null is passed through as null
// and reported in the returned warnings.
func Build(d *Descriptor, set *Set) (any, []string, error) {
	verr := &ValidationError{Operation: d.Name}
	var warnings []string

	doc := make(map[string]any, set.Len())
	for _, p := range d.Params {
		v, ok := set.Lookup(p.Name)
		if !ok {
			if p.Required {
				verr.Missing = append(verr.Missing, p.Name)
			}
			continue
		}
		if v == nil {
			if p.Required {
				warnings = append(warnings, fmt.Sprintf("required parameter --%s is explicitly null; sending the request anyway", p.Flag()))
			}
			doc[p.Name] = nil
			continue
		}
		cv, err := p.Coerce(v)
		if err != nil {
			verr.Invalid = append(verr.Invalid, fmt.Sprintf("--%s: %v", p.Flag(), err))
			continue
		}
		doc[p.Name] = cv
	}

	for _, name := range set.Names() {
		if _, ok := d.Param(name); !ok {
			verr.Unknown = append(verr.Unknown, name)
		}
	}

	if !verr.empty() {
		return nil, warnings, verr
	}

	req := d.NewRequest()
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, warnings, &ValidationError{Operation: d.Name, Reason: err.Error()}
	}
	if err := json.Unmarshal(raw, req); err != nil {
		return nil, warnings, &ValidationError{Operation: d.Name, Reason: "parameters do not fit the request: " + err.Error()}
	}

	return req, warnings, nil
}

// Coerce converts a bound value to the shape the request expects. Values
// arrive either typed from flags or loosely typed from parameter files.
func (p Param) Coerce(v any) (any, error) {
	switch p.Kind {
	case String:
		return coerceString(v)
	case Int:
		return coerceInt(v)
	case Bool:
		return coerceBool(v)
	case Time:
		return coerceTime(v)
	case List:
		return coerceList(v)
	case Map:
		return coerceMap(v)
	case BoolMap:
		return coerceBoolMap(v)
	case Document:
		return coerceDocument(v)
	}
	return nil, fmt.Errorf("unsupported kind %s", p.Kind)
}

func coerceString(v any) (any, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case float64:
		// 'f' keeps account IDs and the like out of exponent form.
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case int, int32, int64, uint64, bool:
		return fmt.Sprint(t), nil
	}
	return nil, fmt.Errorf("expected a string, got %T", v)
}

// maxInt64Float is 2^63, the first float64 above the int64 range.
const maxInt64Float = float64(1 << 63)

func coerceInt(v any) (any, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint64:
		if t > math.MaxInt64 {
			return nil, fmt.Errorf("%d is out of range", t)
		}
		return int64(t), nil
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", t.String())
		}
		return coerceInt(f)
	case float64:
		if t != math.Trunc(t) {
			return nil, fmt.Errorf("%v is not a whole number", t)
		}
		if t >= maxInt64Float || t < -maxInt64Float {
			return nil, fmt.Errorf("%v is out of range", t)
		}
		return int64(t), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", t)
		}
		return n, nil
	}
	return nil, fmt.Errorf("expected an integer, got %T", v)
}

func coerceBool(v any) (any, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return nil, fmt.Errorf("%q is not a boolean", t)
		}
		return b, nil
	}
	return nil, fmt.Errorf("expected a boolean, got %T", v)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime accepts RFC3339 timestamps, naive date-times (UTC) and plain
// dates.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not a timestamp (want RFC3339 or YYYY-MM-DD)", s)
}

func coerceTime(v any) (any, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		return ParseTime(t)
	case int:
		return time.Unix(int64(t), 0).UTC(), nil
	case int64:
		return time.Unix(t, 0).UTC(), nil
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return time.Unix(n, 0).UTC(), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("%q is not a timestamp", t.String())
		}
		return coerceTime(f)
	case float64:
		sec, frac := math.Modf(t)
		return time.Unix(int64(sec), int64(frac*1e9)).UTC(), nil
	}
	return nil, fmt.Errorf("expected a timestamp, got %T", v)
}

func coerceList(v any) (any, error) {
	switch t := v.(type) {
	case []string:
		return t, nil
	case string:
		if t == "" {
			return []string{}, nil
		}
		parts := strings.Split(t, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, err := coerceString(item)
			if err != nil {
				return nil, fmt.Errorf("list element: %w", err)
			}
			out = append(out, s.(string))
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected a list, got %T", v)
}

func coerceMap(v any) (any, error) {
	switch t := v.(type) {
	case map[string]string:
		return t, nil
	case string:
		return parsePairs(t)
	case map[string]any:
		out := make(map[string]string, len(t))
		for k, item := range t {
			s, err := coerceString(item)
			if err != nil {
				return nil, fmt.Errorf("key %s: %w", k, err)
			}
			out[k] = s.(string)
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected a map, got %T", v)
}

func coerceBoolMap(v any) (any, error) {
	var raw map[string]string
	switch t := v.(type) {
	case map[string]bool:
		return t, nil
	case map[string]any:
		out := make(map[string]bool, len(t))
		for k, item := range t {
			b, err := coerceBool(item)
			if err != nil {
				return nil, fmt.Errorf("key %s: %w", k, err)
			}
			out[k] = b.(bool)
		}
		return out, nil
	case map[string]string:
		raw = t
	case string:
		m, err := parsePairs(t)
		if err != nil {
			return nil, err
		}
		raw = m
	default:
		return nil, fmt.Errorf("expected a map of booleans, got %T", v)
	}

	out := make(map[string]bool, len(raw))
	for k, s := range raw {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("key %s: %q is not a boolean", k, s)
		}
		out[k] = b
	}
	return out, nil
}

func coerceDocument(v any) (any, error) {
	switch t := v.(type) {
	case string:
		var doc any
		if err := yaml.Unmarshal([]byte(t), &doc); err != nil {
			return nil, fmt.Errorf("not valid JSON or YAML: %w", err)
		}
		return doc, nil
	case []byte:
		return coerceDocument(string(t))
	}
	return v, nil
}

// parsePairs parses "k1=v1,k2=v2".
func parsePairs(s string) (map[string]string, error) {
	out := map[string]string{}
	if strings.TrimSpace(s) == "" {
		return out, nil
	}
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("%q is not key=value", pair)
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out, nil
}
