// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/bkctl/internal/operation"
	"github.com/tfctl/bkctl/internal/output"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// GlobalFlagsValidator checks flag combinations that no single flag validator
// can see.
func GlobalFlagsValidator(_ context.Context, c *cli.Command) error {
	if c.Bool("no-auto-iteration") && c.String("sort") != "" {
		return fmt.Errorf("--sort needs every page and cannot be used with --no-auto-iteration")
	}
	return nil
}

// ArgsValidator returns a validator allowing at most one positional argument,
// and only for operations that take one.
func ArgsValidator(d *operation.Descriptor) func(context.Context, *cli.Command) error {
	return func(_ context.Context, c *cli.Command) error {
		_, ok := positionalParam(d)
		switch {
		case c.NArg() > 1:
			return fmt.Errorf("%s: too many arguments: %v", d.CommandName(), c.Args().Slice())
		case c.NArg() == 1 && !ok:
			return fmt.Errorf("%s: takes no arguments, got %q", d.CommandName(), c.Args().First())
		}
		return nil
	}
}

func OutputValidator(value any) error {
	if !slices.Contains(output.Formats, value.(string)) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

// EnumValidator accepts only the listed values.
func EnumValidator(values []string) FlagValidatorType {
	return func(value any) error {
		if !slices.Contains(values, value.(string)) {
			return fmt.Errorf("must be one of %v", values)
		}
		return nil
	}
}
