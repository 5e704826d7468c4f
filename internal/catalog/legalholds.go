// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"github.com/tfctl/bkctl/internal/operation"
)

var legalHoldID = positional(str("LegalHoldId", "ID of the legal hold"))

var legalHolds = []*operation.Descriptor{
	{
		Name:  "CreateLegalHold",
		Usage: "place a legal hold on recovery points",
		Params: params(
			positional(str("Title", "title of the legal hold")),
			required(str("Description", "why the hold exists")),
			document("RecoveryPointSelection", "points to hold (JSON, YAML or file://path)"),
			strmap("Tags", "tags to assign (k=v,...)"),
			str("IdempotencyToken", "idempotency token"),
		),
		Select:   "LegalHoldId",
		Impact:   operation.ImpactMedium,
		Target:   []string{"Title"},
		PassThru: "Title",
		Binding:  operation.Bind(API.CreateLegalHold),
	},
	{
		Name:    "GetLegalHold",
		Usage:   "show a legal hold",
		Params:  params(legalHoldID),
		Select:  "*",
		Binding: operation.Bind(API.GetLegalHold),
	},
	{
		Name:  "CancelLegalHold",
		Usage: "release a legal hold",
		Params: params(
			legalHoldID,
			required(str("CancelDescription", "why the hold is released")),
			integer("RetainRecordInDays", "days to keep the canceled hold on record"),
		),
		Impact:   operation.ImpactHigh,
		Target:   []string{"LegalHoldId"},
		PassThru: "LegalHoldId",
		Binding:  operation.Bind(API.CancelLegalHold),
	},
	{
		Name:    "ListLegalHolds",
		Usage:   "list legal holds",
		Params:  paged(),
		Select:  "LegalHolds",
		Attrs:   []string{"LegalHoldId:id", "Title:title", "Status:status", "CreationDate:created:T"},
		Paging:  nextToken,
		Binding: operation.Bind(API.ListLegalHolds),
	},
	{
		Name:    "ListRecoveryPointsByLegalHold",
		Usage:   "list the recovery points under a legal hold",
		Params:  paged(legalHoldID),
		Select:  "RecoveryPoints",
		Attrs:   []string{"RecoveryPointArn:arn", "BackupVaultName:vault"},
		Paging:  nextToken,
		Binding: operation.Bind(API.ListRecoveryPointsByLegalHold),
	},
}
