// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/bkctl/internal/config"
	"github.com/tfctl/bkctl/internal/meta"
	"github.com/tfctl/bkctl/internal/operation"
	"github.com/tfctl/bkctl/internal/paramfile"
)

// OperationActionRunner encapsulates the action shared by every operation
// command: short-circuit checks, parameter binding, projection, output,
// confirmation and execution.
type OperationActionRunner struct {
	Descriptor *operation.Descriptor
}

// Run executes the operation with the provided context and command.
func (oar *OperationActionRunner) Run(ctx context.Context, cmd *cli.Command) error {
	d := oar.Descriptor

	// Step 1: GetMeta + debug.
	m := GetMeta(cmd)
	log.Debugf("executing action: operation=%s, args=%v", d.Name, cmd.Args().Slice())

	// Step 2: Short-circuit checks.
	if ShortCircuitTLDR(ctx, cmd, d.CommandName()) {
		return nil
	}
	if done, err := DumpSchemaIfRequested(cmd, m, d.Response, d.Select); done {
		return err
	}

	// Step 3: Bind parameters and choose what to emit.
	set, err := BuildParamSet(cmd, d)
	if err != nil {
		return err
	}
	log.Debugf("params bound: %v", set.Names())

	projection, err := operation.ParseSelect(d, cmd.String("select"), cmd.Bool("pass-thru"))
	if err != nil {
		return err
	}
	log.Debugf("projection: %s", projection)

	emitter, err := BuildEmitter(cmd, m, d.Attrs...)
	if err != nil {
		return err
	}

	augmenter, err := ServerSideFilterAugmenter(d, cmd.String("filter"))
	if err != nil {
		return err
	}

	guard, err := BuildGuard(cmd, m, emitter.Warn)
	if err != nil {
		return err
	}

	// Step 4: Connect and execute.
	clients, err := Connect(ctx, cmd, m)
	if err != nil {
		return err
	}

	inv := operation.NewInvocation(d, set)
	inv.Projection = projection
	inv.Auto = !cmd.Bool("no-auto-iteration")
	inv.Guard = guard
	inv.Augmenter = augmenter

	remote := &operation.Remote{
		Client:   clients.Backup,
		Region:   clients.Region,
		Endpoint: clients.Endpoint,
	}
	if err := operation.Execute(ctx, inv, remote, emitter); err != nil {
		return err
	}

	// Step 5: Flush anything held back for sorting.
	return emitter.Flush()
}

// BuildParamSet binds the parameter file named by --input and then every
// parameter flag that was set. The positional argument, if any, binds last.
// Only parameters the user supplied end up in the set.
func BuildParamSet(cmd *cli.Command, d *operation.Descriptor) (*operation.Set, error) {
	set := operation.NewSet()

	if path := cmd.String("input"); path != "" {
		values, err := paramfile.Load(path)
		if err != nil {
			return nil, err
		}
		for _, key := range slices.Sorted(maps.Keys(values)) {
			// Unknown names are kept so validation can report them.
			name := key
			if p, ok := d.Param(key); ok {
				name = p.Name
			}
			if set.Bound(name) {
				return nil, &operation.ValidationError{
					Operation: d.Name,
					Reason:    fmt.Sprintf("%s sets %s more than once", path, name),
				}
			}
			set.Bind(name, values[key])
		}
		log.Debugf("params from %s: %d", path, len(values))
	}

	for _, p := range d.Params {
		flag := p.Flag()
		if !cmd.IsSet(flag) {
			continue
		}
		switch p.Kind {
		case operation.Int:
			set.Bind(p.Name, cmd.Int(flag))
		case operation.Bool:
			set.Bind(p.Name, cmd.Bool(flag))
		case operation.List:
			set.Bind(p.Name, cmd.StringSlice(flag))
		case operation.Document:
			doc, err := readDocument(cmd.String(flag))
			if err != nil {
				return nil, fmt.Errorf("--%s: %w", flag, err)
			}
			set.Bind(p.Name, doc)
		default:
			set.Bind(p.Name, cmd.String(flag))
		}
	}

	if p, ok := positionalParam(d); ok && cmd.NArg() > 0 {
		set.Bind(p.Name, cmd.Args().First())
	}

	return set, nil
}

// BuildGuard configures the Mutation Guard. confirm.threshold in the config
// file sets the lowest impact that prompts; none disables prompting.
func BuildGuard(cmd *cli.Command, m meta.Meta, warn func(string)) (operation.Guard, error) {
	spec, _ := config.GetString("confirm.threshold", "medium")
	if strings.EqualFold(strings.TrimSpace(spec), "none") {
		return operation.Guard{Force: true}, nil
	}

	threshold, err := operation.ParseImpact(spec)
	if err != nil {
		return operation.Guard{}, fmt.Errorf("config confirm.threshold: %w", err)
	}

	return operation.Guard{
		Confirmer: Confirmer(m, warn),
		Threshold: threshold,
		Force:     cmd.Bool("force"),
	}, nil
}
