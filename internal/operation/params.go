// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package operation

import (
	"maps"
	"slices"
)

// Set is a Parameter Set: the values a caller bound for one invocation,
// keyed by API member name. A name bound to nil is an explicit null and is
// distinct from a name that was never bound.
type Set struct {
	values map[string]any
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{values: map[string]any{}}
}

// Bind sets name to v. Passing nil binds an explicit null.
func (s *Set) Bind(name string, v any) {
	if s.values == nil {
		s.values = map[string]any{}
	}
	s.values[name] = v
}

// Lookup returns the bound value and whether name was bound at all.
func (s *Set) Lookup(name string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.values[name]
	return v, ok
}

// Bound reports whether name was bound, including to null.
func (s *Set) Bound(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Names returns the bound names in sorted order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.values))
}

// Len returns the number of bound names.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Clone returns a shallow copy. Bound values are shared.
func (s *Set) Clone() *Set {
	c := NewSet()
	if s != nil {
		maps.Copy(c.values, s.values)
	}
	return c
}
