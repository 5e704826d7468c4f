// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"reflect"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/bkctl/internal/aws"
	"github.com/tfctl/bkctl/internal/cacheutil"
	"github.com/tfctl/bkctl/internal/config"
	"github.com/tfctl/bkctl/internal/differ"
	"github.com/tfctl/bkctl/internal/log"
	"github.com/tfctl/bkctl/internal/meta"
	"github.com/tfctl/bkctl/internal/operation"
	"github.com/tfctl/bkctl/internal/output"
	"github.com/tfctl/bkctl/internal/prompt"
	"github.com/tfctl/bkctl/internal/version"
)

// BuildEmitter constructs the output Emitter from the output flags. defaults
// are the operation's default attrs.
func BuildEmitter(cmd *cli.Command, m meta.Meta, defaults ...string) (*output.Emitter, error) {
	return output.NewEmitter(output.Options{
		Format:   cmd.String("output"),
		Attrs:    cmd.String("attrs"),
		Filter:   cmd.String("filter"),
		Sort:     cmd.String("sort"),
		Titles:   cmd.Bool("titles"),
		Color:    cmd.Bool("color"),
		Local:    cmd.Bool("local"),
		Padding:  cmd.Int("padding"),
		Defaults: defaults,
		Out:      stdout(m),
		Err:      stderr(m),
	})
}

// DumpSchemaIfRequested writes the attribute paths of the given response type
// when --schema is set, and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command, m meta.Meta, t reflect.Type, root string) (bool, error) {
	if !cmd.Bool("schema") {
		return false, nil
	}
	return true, output.DumpSchema(t, root, stdout(m))
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// SessionSettings collects the session flags of a command.
func SessionSettings(cmd *cli.Command) aws.Settings {
	return aws.Settings{
		Profile:     cmd.String("profile"),
		Region:      cmd.String("region"),
		Endpoint:    cmd.String("endpoint-url"),
		MaxAttempts: cmd.Int("max-attempts"),
		AppID:       version.AppID(),
	}
}

// Connect opens the remote clients for the command's session flags.
func Connect(ctx context.Context, cmd *cli.Command, m meta.Meta) (*meta.Clients, error) {
	connect := m.Connect
	if connect == nil {
		connect = awsConnector
	}

	settings := SessionSettings(cmd)
	log.Debugf("connecting: profile=%s, region=%s, endpoint=%s", settings.Profile, settings.Region, settings.Endpoint)
	clients, err := connect(ctx, settings)
	if err != nil {
		return nil, err
	}
	return clients, nil
}

// awsConnector is the Connector used outside of tests.
func awsConnector(ctx context.Context, s aws.Settings) (*meta.Clients, error) {
	sess, err := aws.Connect(ctx, s)
	if err != nil {
		return nil, err
	}
	return &meta.Clients{
		Backup:   sess.Backup,
		S3:       sess.S3,
		Region:   sess.Region(),
		Endpoint: sess.Endpoint,
	}, nil
}

// Confirmer returns the meta's Confirmer, or a terminal prompt reporting
// through warn.
func Confirmer(m meta.Meta, warn func(string)) operation.Confirmer {
	if m.Confirmer != nil {
		return m.Confirmer
	}
	return prompt.New(warn)
}

// Pick returns the meta's Picker, or the interactive version picker.
func Pick(m meta.Meta) meta.Picker {
	if m.Pick != nil {
		return m.Pick
	}
	return func(ctx context.Context, items []differ.Version) ([]differ.Version, error) {
		return differ.SelectVersions(ctx, items)
	}
}

// OpenCache opens the artifact cache. cache.ttl in the config file is the
// entry lifetime in hours and cache.clean purges older files on open. A cache
// that cannot be opened is logged and treated as disabled.
func OpenCache() *cacheutil.Cache {
	ttl, _ := config.GetInt("cache.ttl", 0)
	cache, err := cacheutil.Open(time.Duration(ttl) * time.Hour)
	if err != nil {
		log.WithError(err).Warn("cache disabled")
		return nil
	}

	if clean, _ := config.GetInt("cache.clean", 0); clean > 0 {
		if n, err := cache.Purge(time.Duration(clean) * time.Hour); err != nil {
			log.WithError(err).Warn("cache purge failed")
		} else if n > 0 {
			log.Debugf("cache purged: files=%d", n)
		}
	}
	return cache
}

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr bkctl <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "bkctl", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// readDocument resolves a file://path document value to the file contents.
func readDocument(value string) (string, error) {
	path, ok := strings.CutPrefix(value, "file://")
	if !ok {
		return value, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return string(b), nil
}

func stdout(m meta.Meta) io.Writer {
	if m.Stdout != nil {
		return m.Stdout
	}
	return os.Stdout
}

func stderr(m meta.Meta) io.Writer {
	if m.Stderr != nil {
		return m.Stderr
	}
	return os.Stderr
}
