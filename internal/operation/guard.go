// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package operation

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Prompt is what a Confirmer shows before a mutating operation runs.
type Prompt struct {
	Operation string
	Impact    Impact
	Target    string
}

func (p Prompt) String() string {
	if p.Target == "" {
		return fmt.Sprintf("Run %s (impact %s)?", p.Operation, p.Impact)
	}
	return fmt.Sprintf("Run %s on %s (impact %s)?", p.Operation, p.Target, p.Impact)
}

// Confirmer asks the user whether to proceed.
type Confirmer interface {
	Confirm(ctx context.Context, p Prompt) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, p Prompt) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, p Prompt) (bool, error) {
	return f(ctx, p)
}

// Guard decides whether a mutating operation may run. Operations whose
// Impact reaches Threshold need confirmation unless Force is set. A zero
// Threshold means ImpactMedium. Without a Confirmer, confirmation is denied.
type Guard struct {
	Confirmer Confirmer
	Threshold Impact
	Force     bool
}

// Allow reports whether the invocation may proceed.
func (g Guard) Allow(ctx context.Context, d *Descriptor, set *Set) (bool, error) {
	if !d.Mutating() || g.Force {
		return true, nil
	}
	threshold := g.Threshold
	if threshold == ImpactNone {
		threshold = ImpactMedium
	}
	if d.Impact < threshold {
		return true, nil
	}
	if g.Confirmer == nil {
		return false, nil
	}
	return g.Confirmer.Confirm(ctx, Prompt{Operation: d.Name, Impact: d.Impact, Target: target(d, set)})
}

func target(d *Descriptor, set *Set) string {
	var parts []string
	for _, name := range d.Target {
		v, ok := set.Lookup(name)
		if !ok {
			continue
		}
		switch v.(type) {
		case map[string]any, []any, map[string]string, []string:
			if b, err := json.Marshal(v); err == nil {
				parts = append(parts, fmt.Sprintf("%s=%s", name, b))
				continue
			}
		}
		parts = append(parts, fmt.Sprintf("%s=%v", name, v))
	}
	return strings.Join(parts, ", ")
}
