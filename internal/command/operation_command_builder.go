// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/bkctl/internal/meta"
	"github.com/tfctl/bkctl/internal/operation"
)

// OperationCommandBuilder constructs the cli.Command for one catalog
// operation. Every operation command follows the same pattern: parameter
// flags derived from the descriptor, invocation flags, session flags and
// output flags, with the OperationActionRunner as its action.
type OperationCommandBuilder struct {
	Descriptor *operation.Descriptor
	Category   string
	Meta       meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (ocb *OperationCommandBuilder) Build() *cli.Command {
	d := ocb.Descriptor
	name := d.CommandName()

	usageText := fmt.Sprintf("bkctl %s [options]", name)
	if p, ok := positionalParam(d); ok {
		usageText = fmt.Sprintf("bkctl %s <%s> [options]", name, p.Flag())
	}

	flags := NewParamFlags(name, d)
	flags = append(flags, NewInvocationFlags(d)...)
	flags = append(flags, tldrFlag, schemaFlag)
	flags = append(flags, NewSessionFlags(name)...)
	flags = append(flags, NewOutputFlags(name)...)

	validateArgs := ArgsValidator(d)

	return &cli.Command{
		Name:      name,
		Usage:     d.Usage,
		UsageText: usageText,
		Category:  ocb.Category,
		Metadata: map[string]any{
			"meta": ocb.Meta,
		},
		Flags: flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := validateArgs(ctx, c); err != nil {
				return ctx, err
			}
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: (&OperationActionRunner{Descriptor: d}).Run,
	}
}

// positionalParam returns the parameter bound by the command argument.
func positionalParam(d *operation.Descriptor) (operation.Param, bool) {
	for _, p := range d.Params {
		if p.Positional {
			return p, true
		}
	}
	return operation.Param{}, false
}
