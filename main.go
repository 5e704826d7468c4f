// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/bkctl/internal/command"
	"github.com/tfctl/bkctl/internal/config"
	"github.com/tfctl/bkctl/internal/log"
	"github.com/tfctl/bkctl/internal/version"
)

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(w io.Writer, args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Fprintln(w, version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	switch {
	case len(args) > 1 && args[1] == "completion":
		// Short-circuit completion: pass args directly.
		return args
	default:
		args = processSetOnly(args)
		log.Debugf("args after set processing: args=%v", args)
		return args
	}
}

// initAndRunApp initializes the app and runs it, returning the exit code.
// Errors are printed once, here.
func initAndRunApp(ctx context.Context, args []string, opts ...command.Option) int {
	app, err := command.InitApp(ctx, args, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if len(args) > 1 {
		args = deduplicateFlags(args, flagLookup(app, args[1]))
		log.Debugf("args after dedup: args=%v", args)
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(os.Stdout, args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(ctx, args)
}

// processSetOnly handles the @set logic for all commands, expanding set
// arguments at the @set position. Sets live in the config file under
// <command>.<set> as a list of argument strings.
func processSetOnly(args []string) []string {
	if len(args) < 3 { //nolint:mnd
		return args
	}

	// Look for an explicit @set argument starting from index 2.
	idx := 2
	removeIdx := -1
	set := ""
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") && len(a) > 1 {
			set = a[1:]
			removeIdx = idx + i
			break
		}
	}
	if removeIdx == -1 {
		return args
	}

	// Remove the @set argument.
	out := append([]string{}, args[:removeIdx]...)
	rest := append([]string{}, args[removeIdx+1:]...)

	// Expand the set arguments at the removeIdx position.
	setArgs, err := config.GetStringSlice(args[1] + "." + set)
	if err != nil {
		log.Warnf("argument set @%s not found for %s", set, args[1])
	}
	for _, arg := range setArgs {
		out = append(out, strings.Fields(arg)...)
	}
	return append(out, rest...)
}

// flagSpec describes how a flag consumes arguments.
type flagSpec struct {
	name       string
	takesValue bool
	repeatable bool
}

// flagLookup returns a lookup of the flags of the named subcommand, keyed by
// every name and alias. It returns nil for an unknown subcommand.
func flagLookup(app *cli.Command, name string) func(string) (flagSpec, bool) {
	var sub *cli.Command
	for _, c := range app.Commands {
		if c.Name == name {
			sub = c
			break
		}
	}
	if sub == nil {
		return nil
	}

	specs := map[string]flagSpec{}
	for _, f := range sub.Flags {
		spec := flagSpec{name: f.Names()[0], takesValue: true}
		switch f.(type) {
		case *cli.BoolFlag:
			spec.takesValue = false
		case *cli.StringSliceFlag:
			spec.repeatable = true
		}
		for _, n := range f.Names() {
			specs[n] = spec
		}
	}
	return func(n string) (flagSpec, bool) {
		s, ok := specs[n]
		return s, ok
	}
}

// deduplicateFlags keeps only the last occurrence of each flag after the
// subcommand, so explicit flags override those expanded from an @set. Flags
// the lookup does not know are assumed to take the next argument as a value
// unless it looks like a flag. Repeatable flags are left alone.
func deduplicateFlags(args []string, lookup func(string) (flagSpec, bool)) []string {
	if len(args) <= 2 { //nolint:mnd
		return args
	}

	type group struct {
		key   string
		parts []string
	}

	var groups []group
	for i := 2; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			groups = append(groups, group{parts: args[i:]})
			break
		}
		if !strings.HasPrefix(a, "-") || a == "-" {
			groups = append(groups, group{parts: []string{a}})
			continue
		}

		name, _, hasValue := strings.Cut(strings.TrimLeft(a, "-"), "=")
		spec, known := flagSpec{}, false
		if lookup != nil {
			spec, known = lookup(name)
		}

		key := name
		if known {
			key = spec.name
		}

		parts := []string{a}
		next := i+1 < len(args) && !strings.HasPrefix(args[i+1], "-")
		if !hasValue && ((known && spec.takesValue) || (!known && next)) && i+1 < len(args) {
			parts = append(parts, args[i+1])
			i++
		}
		if known && spec.repeatable {
			key = ""
		}
		groups = append(groups, group{key: key, parts: parts})
	}

	last := map[string]int{}
	for i, g := range groups {
		if g.key != "" {
			last[g.key] = i
		}
	}

	out := append([]string{}, args[:2]...)
	for i, g := range groups {
		if g.key != "" && last[g.key] != i {
			continue
		}
		out = append(out, g.parts...)
	}
	return out
}
