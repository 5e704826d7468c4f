// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/bkctl/internal/catalog"
	"github.com/tfctl/bkctl/internal/config"
	"github.com/tfctl/bkctl/internal/log"
	"github.com/tfctl/bkctl/internal/meta"
	"github.com/tfctl/bkctl/internal/operation"
)

// Option customizes the runtime seams of the app.
type Option func(*meta.Meta)

// WithConnector replaces the AWS session used by every command.
func WithConnector(c meta.Connector) Option {
	return func(m *meta.Meta) { m.Connect = c }
}

// WithConfirmer replaces the terminal confirmation prompt.
func WithConfirmer(c operation.Confirmer) Option {
	return func(m *meta.Meta) { m.Confirmer = c }
}

// WithPicker replaces the interactive plan version picker.
func WithPicker(p meta.Picker) Option {
	return func(m *meta.Meta) { m.Pick = p }
}

// WithWriters redirects command output and warnings.
func WithWriters(out, err io.Writer) Option {
	return func(m *meta.Meta) {
		m.Stdout = out
		m.Stderr = err
	}
}

func InitApp(ctx context.Context, args []string, opts ...Option) (*cli.Command, error) {
	// The arg[1] immediately following the binary (arg[0]) is the bkctl
	// subcommand and also represents the namespace key to be used when retrieving
	// config values. arg[1] could be -h/--help, so ignore it if it appears to be
	// a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	config.Config.Namespace = ns
	cfg, err := config.Load()
	if err != nil {
		// Running without a config file is normal.
		log.Debugf("config not loaded: %v", err)
		cfg = config.Config
	}

	m := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
	}
	for _, opt := range opts {
		opt(&m)
	}

	app := &cli.Command{
		Name:  "bkctl",
		Usage: "AWS Backup Control",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "bkctl version info",
				HideDefault: true,
			},
		},
		Writer:    stdout(m),
		ErrWriter: stderr(m),
	}

	for _, d := range catalog.All() {
		app.Commands = append(app.Commands, (&OperationCommandBuilder{
			Descriptor: d,
			Category:   catalog.FamilyOf(d),
			Meta:       m,
		}).Build())
	}

	app.Commands = append(app.Commands,
		planDiffCommandBuilder(m),
		reportFetchCommandBuilder(m),
		completionCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
