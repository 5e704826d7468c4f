// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/tfctl/bkctl/internal/attrs"
	"github.com/tfctl/bkctl/internal/driller"
)

// filterRegex splits a filter expression into an optional leading underscore
// (a server side filter), a key, an optional operator with optional negation
// and a target. Operators are one of = ^ ~ < > @ or /, optionally prefixed
// with '!'. Examples: "State=COMPLETED", "Count>5", "_by-state=RUNNING".
var filterRegex = regexp.MustCompile(`^(_)?([^!=^~<>@/]*)(!?[=^~<>@/])?(.*)$`)

// Filter is a single parsed --filter expression.
type Filter struct {
	Key        string `yaml:"key" json:"Key"`
	Negate     bool   `yaml:"negate" json:"Negate"`
	Operand    string `yaml:"operand" json:"Operand"`
	ServerSide bool   `yaml:"serverSide" json:"ServerSide"`
	Value      string `yaml:"value" json:"Value"`
}

// String renders the filter in --filter syntax.
func (f Filter) String() string {
	var b strings.Builder
	if f.ServerSide {
		b.WriteString("_")
	}
	b.WriteString(f.Key)
	if f.Negate {
		b.WriteString("!")
	}
	b.WriteString(f.Operand)
	b.WriteString(f.Value)
	return b.String()
}

// delimiter splits a spec into expressions. BKCTL_FILTER_DELIM overrides the
// comma for values that contain one.
func delimiter() string {
	if d, ok := os.LookupEnv("BKCTL_FILTER_DELIM"); ok && d != "" {
		return d
	}
	return ","
}

// BuildFilters parses a filter spec. Malformed expressions are logged and
// skipped.
func BuildFilters(spec string) []Filter {
	//nolint:prealloc
	var filters []Filter

	if spec == "" {
		return filters
	}

	for _, expr := range strings.Split(spec, delimiter()) {
		expr = strings.TrimSpace(expr)
		if expr == "" {
			continue
		}

		parts := filterRegex.FindStringSubmatch(expr)
		if parts == nil {
			log.Error("invalid filter: " + expr)
			continue
		}

		key := strings.TrimSpace(parts[2])
		if key == "" {
			log.Error("invalid filter: empty key in " + expr)
			continue
		}

		operand := parts[3]
		negate := strings.HasPrefix(operand, "!")
		operand = strings.TrimPrefix(operand, "!")

		filters = append(filters, Filter{
			Key:        key,
			ServerSide: parts[1] == "_",
			Negate:     negate,
			Operand:    operand,
			Value:      parts[4],
		})
	}

	return filters
}

// ServerSide returns the request parameters named by server side filters.
// Only plain equality can be sent to the service.
func ServerSide(spec string) (map[string]string, error) {
	params := map[string]string{}
	for _, f := range BuildFilters(spec) {
		if !f.ServerSide {
			continue
		}
		if f.Operand != "=" || f.Negate {
			return nil, fmt.Errorf("server side filter %q must use =", f.String())
		}
		params[f.Key] = f.Value
	}
	return params, nil
}

// FilterDataset returns the rows of candidates that pass every client side
// filter in spec. A single object is treated as a one row dataset. Keys are
// matched against attr output keys first and used as paths otherwise. warn
// is called once per key that resolves in no row.
func FilterDataset(candidates gjson.Result, list attrs.AttrList, spec string, warn func(string)) []gjson.Result {
	rows := candidates.Array()
	filters := BuildFilters(spec)

	var kept []gjson.Result
	unresolved := map[string]bool{}
	for _, f := range filters {
		if !f.ServerSide {
			unresolved[f.Key] = true
		}
	}

	for _, row := range rows {
		for key := range unresolved {
			if driller.Driller(row.Raw, list.Path(key)).Exists() {
				delete(unresolved, key)
			}
		}
		if applyFilters(row, list, filters) {
			kept = append(kept, row)
		}
	}

	if len(rows) > 0 && warn != nil {
		for _, f := range filters {
			if unresolved[f.Key] {
				warn(fmt.Sprintf("filter key not found: %s", f.Key))
				delete(unresolved, f.Key)
			}
		}
	}

	return kept
}

// errNotComparable marks values an operator cannot apply to. Such rows fail
// the filter whatever its negation, without a log line.
var errNotComparable = errors.New("not comparable")

// applyFilters reports whether row passes every client side filter.
func applyFilters(row gjson.Result, list attrs.AttrList, filters []Filter) bool {
	for _, f := range filters {
		if f.ServerSide {
			continue
		}

		value := driller.Driller(row.Raw, list.Path(f.Key)).Value()
		if value == nil {
			return false
		}

		// A key with no operator only requires presence.
		if f.Operand != "" && !f.verdict(f.match(value)) {
			return false
		}
	}

	return true
}

// verdict applies negation to a match. Errors never pass.
func (f Filter) verdict(matched bool, err error) bool {
	if err != nil {
		if !errors.Is(err, errNotComparable) {
			log.Error(err.Error())
		}
		return false
	}
	return matched != f.Negate
}

// match dispatches on the JSON type of value.
func (f Filter) match(value interface{}) (bool, error) {
	switch v := value.(type) {
	case string:
		return f.matchString(v)
	case bool:
		return f.matchString(strconv.FormatBool(v))
	}
	if n, ok := toFloat64(value); ok {
		return f.matchNumber(n)
	}
	if f.Operand == "@" {
		return f.matchMember(value)
	}
	return false, errNotComparable
}

// matchMember tests membership in a list or key presence in a map.
func (f Filter) matchMember(value interface{}) (bool, error) {
	switch v := value.(type) {
	case []any:
		return slices.ContainsFunc(v, func(item any) bool {
			return fmt.Sprint(item) == f.Value
		}), nil
	case map[string]any:
		_, found := v[f.Value]
		return found, nil
	}
	return false, fmt.Errorf("unsupported type for contains filtering: %T", value)
}

// matchNumber compares numerically with =, > or <.
func (f Filter) matchNumber(n float64) (bool, error) {
	target, err := strconv.ParseFloat(strings.TrimSpace(f.Value), 64)
	if err != nil {
		return false, fmt.Errorf("invalid numeric value: %s", f.Value)
	}

	switch f.Operand {
	case "=":
		return n == target, nil
	case ">":
		return n > target, nil
	case "<":
		return n < target, nil
	}
	return false, fmt.Errorf("unsupported numeric operand: %s", f.Operand)
}

// matchString compares strings. ~ is case-insensitive equality, ^ a prefix,
// @ a substring and / a regular expression.
func (f Filter) matchString(s string) (bool, error) {
	switch f.Operand {
	case "=":
		return s == f.Value, nil
	case "~":
		return strings.EqualFold(s, f.Value), nil
	case "^":
		return strings.HasPrefix(s, f.Value), nil
	case ">":
		return s > f.Value, nil
	case "<":
		return s < f.Value, nil
	case "@":
		return strings.Contains(s, f.Value), nil
	case "/":
		re, err := regexp.Compile(f.Value)
		if err != nil {
			return false, fmt.Errorf("invalid regex: %s", f.Value)
		}
		return re.MatchString(s), nil
	}
	return false, fmt.Errorf("unsupported filtering operand: %s", f.Operand)
}

// toFloat64 normalizes the numeric types gjson and YAML produce.
func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
