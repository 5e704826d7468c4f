// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/bkctl/internal/cacheutil"
	"github.com/tfctl/bkctl/internal/differ"
	"github.com/tfctl/bkctl/internal/log"
	"github.com/tfctl/bkctl/internal/meta"
	"github.com/tfctl/bkctl/internal/operation"
)

// planDiffCommandAction compares two versions of a backup plan. Without
// --left or --right the versions are picked interactively.
func planDiffCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("executing action: plan-diff, args=%v", cmd.Args().Slice())

	if ShortCircuitTLDR(ctx, cmd, "plan-diff") {
		return nil
	}

	planID := cmd.Args().First()
	if planID == "" {
		return &operation.ValidationError{Operation: "plan-diff", Reason: "missing <backup-plan-id> argument"}
	}

	clients, err := Connect(ctx, cmd, m)
	if err != nil {
		return err
	}
	warn := func(msg string) { fmt.Fprintf(stderr(m), "warning: %s\n", msg) }

	left, right, err := pickVersions(ctx, cmd, m, clients, planID, warn)
	if err != nil {
		return err
	}
	log.Debugf("plan-diff: plan=%s, left=%s, right=%s", planID, left.ID, right.ID)

	cache := OpenCache()
	if cmd.Bool("no-cache") {
		cache = nil
	}

	lhs, err := planVersion(ctx, clients, cache, planID, left, warn)
	if err != nil {
		return err
	}
	rhs, err := planVersion(ctx, clients, cache, planID, right, warn)
	if err != nil {
		return err
	}

	ignore := differ.DefaultIgnore
	if cmd.IsSet("ignore") {
		ignore = cmd.StringSlice("ignore")
	}

	_, err = differ.Diff(stdout(m), lhs, rhs, differ.Options{
		Ignore: ignore,
		Delta:  cmd.Bool("delta"),
		Color:  cmd.Bool("color"),
	})
	return err
}

// pickVersions resolves --left and --right, or asks the picker when neither
// is given. A missing side defaults to the newest version.
func pickVersions(ctx context.Context, cmd *cli.Command, m meta.Meta, clients *meta.Clients, planID string, warn func(string)) (differ.Version, differ.Version, error) {
	left, right := cmd.String("left"), cmd.String("right")

	if left == "" && right == "" {
		versions, err := planVersions(ctx, clients, planID, warn)
		if err != nil {
			return differ.Version{}, differ.Version{}, err
		}
		if len(versions) < 2 { //nolint:mnd
			return differ.Version{}, differ.Version{}, fmt.Errorf("plan %s has %d version(s); nothing to compare", planID, len(versions))
		}
		picked, err := Pick(m)(ctx, versions)
		if err != nil {
			return differ.Version{}, differ.Version{}, err
		}
		return picked[0], picked[1], nil
	}

	if left == "" {
		left = "~0"
	}
	if right == "" {
		right = "~0"
	}

	var versions []differ.Version
	if differ.NeedsVersions(left, right) {
		var err error
		if versions, err = planVersions(ctx, clients, planID, warn); err != nil {
			return differ.Version{}, differ.Version{}, err
		}
	}

	resolved, err := differ.Resolve(versions, left, right)
	if err != nil {
		return differ.Version{}, differ.Version{}, &operation.ValidationError{Operation: "plan-diff", Reason: err.Error()}
	}
	return resolved[0], resolved[1], nil
}

// planVersions lists every version of a plan, newest first as the service
// returns them.
func planVersions(ctx context.Context, clients *meta.Clients, planID string, warn func(string)) ([]differ.Version, error) {
	rows, err := call(ctx, clients, "ListBackupPlanVersions", nil, map[string]any{"BackupPlanId": planID}, warn)
	if err != nil {
		return nil, err
	}

	versions := make([]differ.Version, 0, len(rows))
	for _, row := range rows {
		v := differ.Version{
			ID:   row.Get("VersionId").String(),
			Name: row.Get("BackupPlanName").String(),
		}
		if created, err := time.Parse(time.RFC3339Nano, row.Get("CreationDate").String()); err == nil {
			v.Created = created
		}
		versions = append(versions, v)
	}
	return versions, nil
}

// planVersion returns one plan version as JSON. Versions never change once
// created, so they are served from the cache when possible. A version backed
// by a file is read from disk.
func planVersion(ctx context.Context, clients *meta.Clients, cache *cacheutil.Cache, planID string, v differ.Version, warn func(string)) ([]byte, error) {
	if v.File != "" {
		data, err := os.ReadFile(v.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read plan document: %w", err)
		}
		return data, nil
	}

	versionID := v.ID
	key := planID + "@" + versionID
	if entry, ok := cache.Get(cacheutil.Plans, key); ok {
		return entry.Data, nil
	}

	rows, err := call(ctx, clients, "GetBackupPlan", operation.WholeResponse{}, map[string]any{
		"BackupPlanId": planID,
		"VersionId":    versionID,
	}, warn)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("plan %s version %s: empty response", planID, versionID)
	}

	data := []byte(rows[0].Raw)
	if err := cache.Put(cacheutil.Plans, key, data); err != nil {
		log.WithError(err).Warn("failed to cache plan version")
	}
	return data, nil
}

func planDiffCommandBuilder(meta meta.Meta) *cli.Command {
	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored diff output",
		},
		&cli.BoolFlag{
			Name:  "delta",
			Usage: "print the raw delta instead of the annotated plan",
		},
		&cli.StringSliceFlag{
			Name:  "ignore",
			Usage: "top level keys to leave out of the comparison (default: " + strings.Join(differ.DefaultIgnore, ",") + ")",
		},
		&cli.StringFlag{
			Name:  "left",
			Usage: "older version: an ID or prefix, ~N for N versions back, or a plan document file",
		},
		&cli.BoolFlag{
			Name:  "no-cache",
			Usage: "always fetch plan versions from the service",
		},
		&cli.StringFlag{
			Name:  "right",
			Usage: "newer version: an ID or prefix, ~N for N versions back, or a plan document file",
		},
	}

	return &cli.Command{
		Name:      "plan-diff",
		Usage:     "compare two versions of a backup plan",
		UsageText: "bkctl plan-diff <backup-plan-id> [--left VERSION] [--right VERSION] [options]",
		Category:  "plans",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  append(flags, compositeFlags("plan-diff")...),
		Action: planDiffCommandAction,
	}
}
