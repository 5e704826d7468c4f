// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"io"

	"github.com/tfctl/bkctl/internal/aws"
	"github.com/tfctl/bkctl/internal/catalog"
	"github.com/tfctl/bkctl/internal/config"
	"github.com/tfctl/bkctl/internal/differ"
	"github.com/tfctl/bkctl/internal/operation"
)

// Clients are the remote endpoints a command talks to. Region and Endpoint
// are what the session resolved to and only feed error messages.
type Clients struct {
	Backup   catalog.API
	S3       aws.ObjectGetter
	Region   string
	Endpoint string
}

// Connector opens Clients for the session flags of a command.
type Connector func(ctx context.Context, s aws.Settings) (*Clients, error)

// Picker chooses two plan versions to compare.
type Picker func(ctx context.Context, items []differ.Version) ([]differ.Version, error)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, context, and the seams commands use to reach the
// outside world. Nil seams fall back to the real AWS session, the terminal
// prompt and the interactive version picker.
type Meta struct {
	Args      []string
	Config    config.Type
	Context   context.Context
	Connect   Connector
	Confirmer operation.Confirmer
	Pick      Picker
	Stdout    io.Writer
	Stderr    io.Writer
}
