// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package operation

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/tfctl/bkctl/internal/log"
)

// Result is one emitted value. Page is 1-based for paged operations and 0
// otherwise. NextToken is set when auto continuation is off and the service
// has more results.
type Result struct {
	Operation string
	Page      int
	Value     gjson.Result
	NextToken string
}

// Sink receives results and warnings.
type Sink interface {
	Emit(ctx context.Context, r Result) error
	Warn(msg string)
}

// Augmenter adjusts the Parameter Set before each request is built.
type Augmenter func(ctx context.Context, set *Set) error

// Invocation is everything one execution needs besides the remote endpoint.
type Invocation struct {
	Descriptor *Descriptor
	Params     *Set
	Projection Projection
	Auto       bool
	Guard      Guard
	Augmenter  Augmenter
}

// NewInvocation returns an Invocation with the default projection and auto
// continuation on.
func NewInvocation(d *Descriptor, set *Set) *Invocation {
	if set == nil {
		set = NewSet()
	}
	return &Invocation{
		Descriptor: d,
		Params:     set,
		Projection: DefaultProjection(d),
		Auto:       true,
	}
}

// Execute validates, confirms and runs one invocation, sending results to
// sink. A declined confirmation returns nil without contacting the service.
func Execute(ctx context.Context, inv *Invocation, remote *Remote, sink Sink) error {
	d := inv.Descriptor
	if inv.Projection == nil {
		inv.Projection = DefaultProjection(d)
	}

	set := inv.Params.Clone()
	if inv.Augmenter != nil {
		if err := inv.Augmenter(ctx, set); err != nil {
			return err
		}
	}
	req, warnings, err := Build(d, set)
	if err != nil {
		return err
	}

	ok, err := inv.Guard.Allow(ctx, d, inv.Params)
	if err != nil {
		return err
	}
	if !ok {
		log.Infof("%s: not confirmed, nothing done", d.Name)
		return nil
	}

	if d.Paginated() {
		return NewPager(inv, remote).Run(ctx, sink)
	}

	for _, w := range warnings {
		sink.Warn(w)
	}

	resp, err := remote.Invoke(ctx, d, req)
	if err != nil {
		return err
	}

	var raw []byte
	if _, echo := inv.Projection.(EchoInput); !echo {
		if raw, err = EncodeResponse(resp); err != nil {
			return err
		}
	}
	value, err := Project(inv.Projection, raw, set)
	if err != nil {
		return err
	}
	if !value.Exists() {
		return nil
	}
	return sink.Emit(ctx, Result{Operation: d.Name, Value: value})
}
