// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"github.com/tfctl/bkctl/internal/operation"
)

var (
	frameworkName  = positional(str("FrameworkName", "name of the audit framework"))
	reportPlanName = positional(str("ReportPlanName", "name of the report plan"))
)

var audit = []*operation.Descriptor{
	// Frameworks.
	{
		Name:  "CreateFramework",
		Usage: "create an audit framework",
		Params: params(
			frameworkName,
			required(document("FrameworkControls", "controls (JSON, YAML or file://path)")),
			str("FrameworkDescription", "description"),
			strmap("FrameworkTags", "tags to assign (k=v,...)"),
			str("IdempotencyToken", "idempotency token"),
		),
		Select:   "FrameworkArn",
		Impact:   operation.ImpactMedium,
		Target:   []string{"FrameworkName"},
		PassThru: "FrameworkName",
		Binding:  operation.Bind(API.CreateFramework),
	},
	{
		Name:    "DescribeFramework",
		Usage:   "show an audit framework",
		Params:  params(frameworkName),
		Select:  "*",
		Binding: operation.Bind(API.DescribeFramework),
	},
	{
		Name:  "UpdateFramework",
		Usage: "change an audit framework",
		Params: params(
			frameworkName,
			document("FrameworkControls", "controls (JSON, YAML or file://path)"),
			str("FrameworkDescription", "description"),
			str("IdempotencyToken", "idempotency token"),
		),
		Select:   "FrameworkArn",
		Impact:   operation.ImpactMedium,
		Target:   []string{"FrameworkName"},
		PassThru: "FrameworkName",
		Binding:  operation.Bind(API.UpdateFramework),
	},
	{
		Name:     "DeleteFramework",
		Usage:    "delete an audit framework",
		Params:   params(frameworkName),
		Impact:   operation.ImpactHigh,
		Target:   []string{"FrameworkName"},
		PassThru: "FrameworkName",
		Binding:  operation.Bind(API.DeleteFramework),
	},
	{
		Name:    "ListFrameworks",
		Usage:   "list audit frameworks",
		Params:  paged(),
		Select:  "Frameworks",
		Attrs:   []string{"FrameworkName:name", "NumberOfControls:controls", "DeploymentStatus:status", "CreationTime:created:T"},
		Paging:  nextToken,
		Binding: operation.Bind(API.ListFrameworks),
	},

	// Report plans and jobs.
	{
		Name:  "CreateReportPlan",
		Usage: "create a report plan",
		Params: params(
			reportPlanName,
			required(document("ReportDeliveryChannel", "S3 delivery channel (JSON, YAML or file://path)")),
			required(document("ReportSetting", "report template and scope (JSON, YAML or file://path)")),
			str("ReportPlanDescription", "description"),
			strmap("ReportPlanTags", "tags to assign (k=v,...)"),
			str("IdempotencyToken", "idempotency token"),
		),
		Select:   "ReportPlanArn",
		Impact:   operation.ImpactMedium,
		Target:   []string{"ReportPlanName"},
		PassThru: "ReportPlanName",
		Binding:  operation.Bind(API.CreateReportPlan),
	},
	{
		Name:    "DescribeReportPlan",
		Usage:   "show a report plan",
		Params:  params(reportPlanName),
		Select:  "ReportPlan",
		Binding: operation.Bind(API.DescribeReportPlan),
	},
	{
		Name:  "UpdateReportPlan",
		Usage: "change a report plan",
		Params: params(
			reportPlanName,
			document("ReportDeliveryChannel", "S3 delivery channel (JSON, YAML or file://path)"),
			document("ReportSetting", "report template and scope (JSON, YAML or file://path)"),
			str("ReportPlanDescription", "description"),
			str("IdempotencyToken", "idempotency token"),
		),
		Select:   "ReportPlanArn",
		Impact:   operation.ImpactMedium,
		Target:   []string{"ReportPlanName"},
		PassThru: "ReportPlanName",
		Binding:  operation.Bind(API.UpdateReportPlan),
	},
	{
		Name:     "DeleteReportPlan",
		Usage:    "delete a report plan",
		Params:   params(reportPlanName),
		Impact:   operation.ImpactHigh,
		Target:   []string{"ReportPlanName"},
		PassThru: "ReportPlanName",
		Binding:  operation.Bind(API.DeleteReportPlan),
	},
	{
		Name:    "ListReportPlans",
		Usage:   "list report plans",
		Params:  paged(),
		Select:  "ReportPlans",
		Attrs:   []string{"ReportPlanName:name", "ReportSetting.ReportTemplate:template", "DeploymentStatus:status", "LastSuccessfulExecutionTime:last-run:T"},
		Paging:  nextToken,
		Binding: operation.Bind(API.ListReportPlans),
	},
	{
		Name:  "StartReportJob",
		Usage: "run a report plan now",
		Params: params(
			reportPlanName,
			str("IdempotencyToken", "idempotency token"),
		),
		Select:   "ReportJobId",
		Impact:   operation.ImpactMedium,
		Target:   []string{"ReportPlanName"},
		PassThru: "ReportPlanName",
		Binding:  operation.Bind(API.StartReportJob),
	},
	{
		Name:    "DescribeReportJob",
		Usage:   "show a report job and where its report was written",
		Params:  params(positional(str("ReportJobId", "ID of the report job"))),
		Select:  "ReportJob",
		Binding: operation.Bind(API.DescribeReportJob),
	},
	{
		Name:  "ListReportJobs",
		Usage: "list report jobs",
		Params: paged(
			str("ByReportPlanName", "only jobs of this report plan"),
			timestamp("ByCreationAfter", "only jobs created after this time"),
			timestamp("ByCreationBefore", "only jobs created before this time"),
			enum(str("ByStatus", "only jobs with this status"), reportJobStatuses...),
		),
		Select:  "ReportJobs",
		Attrs:   []string{"ReportJobId:id", "ReportTemplate:template", "Status:status", "CreationTime:created:T"},
		Paging:  nextToken,
		Binding: operation.Bind(API.ListReportJobs),
	},
}
