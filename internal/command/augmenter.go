// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/tfctl/bkctl/internal/filters"
	"github.com/tfctl/bkctl/internal/log"
	"github.com/tfctl/bkctl/internal/operation"
)

// ServerSideFilterAugmenter returns an Augmenter that binds the _-prefixed
// filters of spec as request parameters before each page. Keys may be API
// member names or flag names. It returns nil when spec has no server side
// filters.
func ServerSideFilterAugmenter(d *operation.Descriptor, spec string) (operation.Augmenter, error) {
	params, err := filters.ServerSide(spec)
	if err != nil {
		return nil, err
	}
	if len(params) == 0 {
		return nil, nil
	}

	bound := make(map[string]string, len(params))
	for key, value := range params {
		p, ok := d.Param(key)
		if !ok {
			return nil, &operation.ValidationError{
				Operation: d.Name,
				Reason:    fmt.Sprintf("server side filter _%s: no such parameter", key),
			}
		}
		bound[p.Name] = value
	}

	return func(_ context.Context, set *operation.Set) error {
		for name, value := range bound {
			log.Tracef("augment: %s=%s", name, value)
			set.Bind(name, value)
		}
		return nil
	}, nil
}
