// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"github.com/tfctl/bkctl/internal/operation"
)

var selectionID = required(str("SelectionId", "ID of the backup selection"))

var selections = []*operation.Descriptor{
	{
		Name:  "CreateBackupSelection",
		Usage: "assign resources to a backup plan",
		Params: params(
			planID,
			required(document("BackupSelection", "selection document (JSON, YAML or file://path)")),
			str("CreatorRequestId", "idempotency token"),
		),
		Select:   "SelectionId",
		Impact:   operation.ImpactMedium,
		Target:   []string{"BackupPlanId"},
		PassThru: "BackupPlanId",
		Binding:  operation.Bind(API.CreateBackupSelection),
	},
	{
		Name:    "GetBackupSelection",
		Usage:   "show a backup selection",
		Params:  params(planID, selectionID),
		Select:  "*",
		Binding: operation.Bind(API.GetBackupSelection),
	},
	{
		Name:     "DeleteBackupSelection",
		Usage:    "remove a resource assignment from a backup plan",
		Params:   params(planID, selectionID),
		Impact:   operation.ImpactHigh,
		Target:   []string{"BackupPlanId", "SelectionId"},
		PassThru: "SelectionId",
		Binding:  operation.Bind(API.DeleteBackupSelection),
	},
	{
		Name:    "ListBackupSelections",
		Usage:   "list the resource assignments of a backup plan",
		Params:  paged(planID),
		Select:  "BackupSelectionsList",
		Attrs:   []string{"SelectionId:id", "SelectionName:name", "IamRoleArn:role", "CreationDate:created:T"},
		Paging:  nextToken,
		Binding: operation.Bind(API.ListBackupSelections),
	},
}
