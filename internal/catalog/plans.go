// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"github.com/tfctl/bkctl/internal/operation"
)

var planID = positional(str("BackupPlanId", "ID of the backup plan"))

var plans = []*operation.Descriptor{
	{
		Name:  "CreateBackupPlan",
		Usage: "create a backup plan from a plan document",
		Params: params(
			required(document("BackupPlan", "plan document (JSON, YAML or file://path)")),
			strmap("BackupPlanTags", "tags to assign to the plan (k=v,...)"),
			str("CreatorRequestId", "idempotency token"),
		),
		Select:  "BackupPlanId",
		Impact:  operation.ImpactMedium,
		Target:  []string{"BackupPlan"},
		Binding: operation.Bind(API.CreateBackupPlan),
	},
	{
		Name:  "GetBackupPlan",
		Usage: "show a backup plan",
		Params: params(
			planID,
			str("VersionId", "plan version; latest when omitted"),
		),
		Select:  "*",
		Binding: operation.Bind(API.GetBackupPlan),
	},
	{
		Name:  "UpdateBackupPlan",
		Usage: "replace the body of a backup plan, creating a new version",
		Params: params(
			planID,
			required(document("BackupPlan", "plan document (JSON, YAML or file://path)")),
		),
		Select:   "VersionId",
		Impact:   operation.ImpactMedium,
		Target:   []string{"BackupPlanId"},
		PassThru: "BackupPlanId",
		Binding:  operation.Bind(API.UpdateBackupPlan),
	},
	{
		Name:     "DeleteBackupPlan",
		Usage:    "delete a backup plan with no selections",
		Params:   params(planID),
		Impact:   operation.ImpactHigh,
		Target:   []string{"BackupPlanId"},
		PassThru: "BackupPlanId",
		Binding:  operation.Bind(API.DeleteBackupPlan),
	},
	{
		Name:  "ListBackupPlans",
		Usage: "list backup plans",
		Params: paged(
			boolean("IncludeDeleted", "include deleted plans"),
		),
		Select:  "BackupPlansList",
		Attrs:   []string{"BackupPlanId:id", "BackupPlanName:name", "VersionId:version", "LastExecutionDate:last-run:T"},
		Paging:  nextToken,
		Binding: operation.Bind(API.ListBackupPlans),
	},
	{
		Name:    "ListBackupPlanVersions",
		Usage:   "list the versions of a backup plan",
		Params:  paged(planID),
		Select:  "BackupPlanVersionsList",
		Attrs:   []string{"VersionId:version", "BackupPlanName:name", "CreationDate:created:T"},
		Paging:  nextToken,
		Binding: operation.Bind(API.ListBackupPlanVersions),
	},
	{
		Name:    "ListBackupPlanTemplates",
		Usage:   "list the predefined backup plan templates",
		Params:  paged(),
		Select:  "BackupPlanTemplatesList",
		Attrs:   []string{"BackupPlanTemplateId:id", "BackupPlanTemplateName:name"},
		Paging:  nextToken,
		Binding: operation.Bind(API.ListBackupPlanTemplates),
	},
	{
		Name:    "GetBackupPlanFromTemplate",
		Usage:   "show the plan document of a template",
		Params:  params(positional(str("BackupPlanTemplateId", "ID of the template"))),
		Select:  "BackupPlanDocument",
		Binding: operation.Bind(API.GetBackupPlanFromTemplate),
	},
	{
		Name:    "GetBackupPlanFromJSON",
		Usage:   "validate a plan template and show the resulting plan",
		Params:  params(positional(str("BackupPlanTemplateJson", "template as a JSON string"))),
		Select:  "BackupPlan",
		Binding: operation.Bind(API.GetBackupPlanFromJSON),
	},
	{
		Name:    "ExportBackupPlanTemplate",
		Usage:   "export a backup plan as a template",
		Params:  params(planID),
		Select:  "BackupPlanTemplateJson",
		Binding: operation.Bind(API.ExportBackupPlanTemplate),
	},
}
