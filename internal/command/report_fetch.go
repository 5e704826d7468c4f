// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/bkctl/internal/aws"
	"github.com/tfctl/bkctl/internal/cacheutil"
	"github.com/tfctl/bkctl/internal/log"
	"github.com/tfctl/bkctl/internal/meta"
	"github.com/tfctl/bkctl/internal/operation"
)

var reportFetchAttrs = []string{"Key:key", "File:file", "Size:size:b", "Cached:cached"}

// reportObject is one downloaded report file.
type reportObject struct {
	Key    string
	File   string `json:",omitempty"`
	Size   int
	Cached bool
}

// reportFetchCommandAction downloads the report files of a completed report
// job from its S3 destination.
func reportFetchCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("executing action: report-fetch, args=%v", cmd.Args().Slice())

	if ShortCircuitTLDR(ctx, cmd, "report-fetch") {
		return nil
	}

	jobID := cmd.Args().First()
	if jobID == "" {
		return &operation.ValidationError{Operation: "report-fetch", Reason: "missing <report-job-id> argument"}
	}

	emitter, err := BuildEmitter(cmd, m, reportFetchAttrs...)
	if err != nil {
		return err
	}

	clients, err := Connect(ctx, cmd, m)
	if err != nil {
		return err
	}
	if clients.S3 == nil {
		return fmt.Errorf("report-fetch: no S3 client available")
	}

	rows, err := call(ctx, clients, "DescribeReportJob", nil, map[string]any{"ReportJobId": jobID}, emitter.Warn)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("report job %s: empty response", jobID)
	}
	job := rows[0]

	if status := job.Get("Status").String(); status != "COMPLETED" {
		return fmt.Errorf("report job %s is %s; reports can be fetched once it is COMPLETED", jobID, status)
	}
	bucket := job.Get("ReportDestination.S3BucketName").String()
	keys := job.Get("ReportDestination.S3Keys").Array()
	if bucket == "" || len(keys) == 0 {
		return fmt.Errorf("report job %s has no report destination", jobID)
	}

	cache := OpenCache()
	if cmd.Bool("no-cache") {
		cache = nil
	}

	toStdout := cmd.Bool("stdout")
	dir := cmd.String("dir")
	if !toStdout {
		if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	names := reportFileNames(keys)

	var fetched []reportObject
	for i, k := range keys {
		key := k.String()
		data, cached, err := fetchReportObject(ctx, clients.S3, cache, bucket, key)
		if err != nil {
			return err
		}

		obj := reportObject{Key: key, Size: len(data), Cached: cached}
		if toStdout {
			if _, err := stdout(m).Write(data); err != nil {
				return err
			}
			continue
		}

		obj.File = filepath.Join(dir, names[i])
		if err := os.MkdirAll(filepath.Dir(obj.File), 0o755); err != nil { //nolint:mnd
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(obj.File), err)
		}
		if err := os.WriteFile(obj.File, data, 0o644); err != nil { //nolint:mnd
			return fmt.Errorf("failed to write %s: %w", obj.File, err)
		}
		fetched = append(fetched, obj)
	}

	if toStdout {
		return nil
	}

	raw, err := json.Marshal(fetched)
	if err != nil {
		return err
	}
	if err := emitter.Emit(ctx, operation.Result{Operation: "report-fetch", Value: gjson.ParseBytes(raw)}); err != nil {
		return err
	}
	return emitter.Flush()
}

// reportFileNames maps report keys to paths under --dir. A key is written
// under its base name unless another key shares it, in which case the whole
// key is kept as a relative path.
func reportFileNames(keys []gjson.Result) []string {
	seen := map[string]int{}
	for _, k := range keys {
		seen[path.Base(k.String())]++
	}

	names := make([]string, len(keys))
	for i, k := range keys {
		key := k.String()
		if seen[path.Base(key)] == 1 {
			names[i] = path.Base(key)
			continue
		}
		// Rooting before Clean drops any .. that would leave --dir.
		names[i] = filepath.FromSlash(strings.TrimPrefix(path.Clean("/"+key), "/"))
	}
	return names
}

// fetchReportObject returns an object from the cache or downloads it. Report
// objects are written once, so a cached copy is always current.
func fetchReportObject(ctx context.Context, client aws.ObjectGetter, cache *cacheutil.Cache, bucket, key string) ([]byte, bool, error) {
	cacheKey := bucket + "/" + key
	if entry, ok := cache.Get(cacheutil.Reports, cacheKey); ok {
		return entry.Data, true, nil
	}

	data, err := aws.Download(ctx, client, bucket, key)
	if err != nil {
		return nil, false, err
	}
	if err := cache.Put(cacheutil.Reports, cacheKey, data); err != nil {
		log.WithError(err).Warn("failed to cache report object")
	}
	return data, false, nil
}

func reportFetchCommandBuilder(meta meta.Meta) *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:  "dir",
			Usage: "directory to write the report files to",
			Value: ".",
		},
		&cli.BoolFlag{
			Name:  "no-cache",
			Usage: "always download from S3",
		},
		&cli.BoolFlag{
			Name:  "stdout",
			Usage: "write the report contents to stdout instead of files",
		},
	}
	flags = append(flags, compositeFlags("report-fetch")...)
	flags = append(flags, NewOutputFlags("report-fetch")...)

	return &cli.Command{
		Name:      "report-fetch",
		Usage:     "download the report files of a completed report job",
		UsageText: "bkctl report-fetch <report-job-id> [options]",
		Category:  "audit",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  flags,
		Action: reportFetchCommandAction,
	}
}
