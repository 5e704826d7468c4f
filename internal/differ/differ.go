// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/goccy/go-json"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// DefaultIgnore are the top level keys that differ between any two plan
// versions and say nothing about the plan itself.
var DefaultIgnore = []string{"BackupPlanArn", "CreationDate", "CreatorRequestId", "DeletionDate", "LastExecutionDate", "VersionId"}

// Options shape a diff.
type Options struct {
	// Ignore lists top level keys removed from both sides before comparing.
	Ignore []string
	// Delta writes the jsondiffpatch delta instead of the annotated document.
	Delta bool
	Color bool
}

// Diff compares two JSON documents and writes the difference to w. It reports
// whether the documents differ.
func Diff(w io.Writer, left, right []byte, opts Options) (bool, error) {
	log.Debugf("diff: left=%d, right=%d", len(left), len(right))

	var l, r map[string]interface{}
	if err := json.Unmarshal(left, &l); err != nil {
		return false, fmt.Errorf("failed to decode left document: %w", err)
	}
	if err := json.Unmarshal(right, &r); err != nil {
		return false, fmt.Errorf("failed to decode right document: %w", err)
	}

	for _, key := range opts.Ignore {
		key = strings.TrimSpace(key)
		delete(l, key)
		delete(r, key)
	}

	delta := gojsondiff.New().CompareObjects(l, r)
	if !delta.Modified() {
		fmt.Fprintln(w, "The plan versions are identical.")
		return false, nil
	}

	var (
		out string
		err error
	)
	if opts.Delta {
		out, err = formatter.NewDeltaFormatter().Format(delta)
	} else {
		out, err = formatter.NewAsciiFormatter(l, formatter.AsciiFormatterConfig{
			ShowArrayIndex: true,
			Coloring:       opts.Color,
		}).Format(delta)
	}
	if err != nil {
		return true, fmt.Errorf("failed to format diff: %w", err)
	}

	fmt.Fprintln(w, strings.TrimRight(out, "\n"))
	return true, nil
}
