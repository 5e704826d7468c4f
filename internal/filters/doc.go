// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters implements --filter for command output.
//
// A filter spec is a comma separated (BKCTL_FILTER_DELIM overrides the comma)
// list of key-operator-value expressions. Every expression must hold for a
// row to be kept.
//
//   - = : equal (numeric when the value is a number)
//   - ~ : equal ignoring case
//   - ^ : prefix
//   - < > : less or greater, numeric or lexical
//   - @ : substring, list member or map key
//   - / : regular expression
//
// Any operator may be negated with a leading !, e.g. "State!=FAILED". A key
// with no operator keeps rows where the key is present.
//
// Keys are matched against the output keys of --attrs first and otherwise
// used as paths into the row, so "BackupPlan.BackupPlanName^prod" works with
// or without attrs.
//
// Keys prefixed with _ are server side filters. They are not applied here;
// ServerSide returns them so they can be bound as request parameters, e.g.
// "_by-state=RUNNING" on list-backup-jobs.
package filters
