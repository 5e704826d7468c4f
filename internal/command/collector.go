// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/bkctl/internal/catalog"
	"github.com/tfctl/bkctl/internal/meta"
	"github.com/tfctl/bkctl/internal/operation"
)

// collector is a Sink that keeps results for composite commands.
type collector struct {
	values []gjson.Result
	warn   func(string)
}

func (c *collector) Emit(_ context.Context, r operation.Result) error {
	if r.Value.Exists() {
		c.values = append(c.values, r.Value)
	}
	return nil
}

func (c *collector) Warn(msg string) {
	if c.warn != nil {
		c.warn(msg)
	}
}

// flatten returns the elements of every collected array, or the collected
// values themselves when they are not arrays.
func (c *collector) flatten() []gjson.Result {
	var out []gjson.Result
	for _, v := range c.values {
		if v.IsArray() {
			out = append(out, v.Array()...)
			continue
		}
		out = append(out, v)
	}
	return out
}

// call runs a read-only catalog operation on behalf of a composite command
// and returns what its projection emitted, all pages included.
func call(ctx context.Context, clients *meta.Clients, name string, projection operation.Projection, params map[string]any, warn func(string)) ([]gjson.Result, error) {
	d, ok := catalog.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown operation %s", name)
	}

	set := operation.NewSet()
	for k, v := range params {
		set.Bind(k, v)
	}

	inv := operation.NewInvocation(d, set)
	if projection != nil {
		inv.Projection = projection
	}

	sink := &collector{warn: warn}
	remote := &operation.Remote{Client: clients.Backup, Region: clients.Region, Endpoint: clients.Endpoint}
	if err := operation.Execute(ctx, inv, remote, sink); err != nil {
		return nil, err
	}
	return sink.flatten(), nil
}

// compositeFlags are the flags every composite command shares.
func compositeFlags(name string) []cli.Flag {
	flags := []cli.Flag{tldrFlag}
	flags = append(flags, NewSessionFlags(name)...)
	return flags
}
