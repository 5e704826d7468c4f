// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"github.com/tfctl/bkctl/internal/operation"
)

// jobFilters are the server-side filters shared by ListBackupJobs and
// ListCopyJobs.
func jobFilters() []operation.Param {
	return params(
		str("ByAccountId", "only jobs of this account"),
		timestamp("ByCreatedAfter", "only jobs created after this time"),
		timestamp("ByCreatedBefore", "only jobs created before this time"),
		timestamp("ByCompleteAfter", "only jobs completed after this time"),
		timestamp("ByCompleteBefore", "only jobs completed before this time"),
		str("ByMessageCategory", "only jobs with this status message category"),
		str("ByParentJobId", "only children of this composite job"),
		str("ByResourceArn", "only jobs for this resource"),
		str("ByResourceType", "only jobs for this resource type (EBS, RDS, ...)"),
	)
}

func summaryFilters(states []string) []operation.Param {
	return paged(
		str("AccountId", "only jobs of this account"),
		enum(str("AggregationPeriod", "period the summary covers"), summaryPeriods...),
		str("MessageCategory", "only jobs with this status message category"),
		str("ResourceType", "only jobs for this resource type"),
		enum(str("State", "only jobs in this state"), states...),
	)
}

var jobs = []*operation.Descriptor{
	// Backup jobs.
	{
		Name:  "StartBackupJob",
		Usage: "start an on-demand backup of a resource",
		Params: params(
			positional(str("ResourceArn", "resource to back up")),
			required(str("BackupVaultName", "vault receiving the recovery point")),
			required(str("IamRoleArn", "role assumed to create the backup")),
			strmap("BackupOptions", "backup options (WindowsVSS=enabled)"),
			integer("StartWindowMinutes", "minutes before the job is canceled if not started"),
			integer("CompleteWindowMinutes", "minutes before the job is canceled if not complete"),
			document("Lifecycle", "lifecycle of the recovery point"),
			strmap("RecoveryPointTags", "tags for the recovery point (k=v,...)"),
			str("IdempotencyToken", "idempotency token"),
		),
		Select:   "BackupJobId",
		Impact:   operation.ImpactMedium,
		Target:   []string{"ResourceArn", "BackupVaultName"},
		PassThru: "ResourceArn",
		Binding:  operation.Bind(API.StartBackupJob),
	},
	{
		Name:    "DescribeBackupJob",
		Usage:   "show a backup job",
		Params:  params(positional(str("BackupJobId", "ID of the backup job"))),
		Select:  "*",
		Binding: operation.Bind(API.DescribeBackupJob),
	},
	{
		Name:     "StopBackupJob",
		Usage:    "cancel a running backup job",
		Params:   params(positional(str("BackupJobId", "ID of the backup job"))),
		Impact:   operation.ImpactHigh,
		Target:   []string{"BackupJobId"},
		PassThru: "BackupJobId",
		Binding:  operation.Bind(API.StopBackupJob),
	},
	{
		Name:  "ListBackupJobs",
		Usage: "list backup jobs of the last 30 days",
		Params: paged(append(jobFilters(),
			str("ByBackupVaultName", "only jobs targeting this vault"),
			enum(str("ByState", "only jobs in this state"), backupJobStates...),
		)...),
		Select:  "BackupJobs",
		Attrs:   []string{"BackupJobId:id", "State:state", "ResourceType:type", "BackupVaultName:vault", "CreationDate:created:T"},
		Paging:  nextToken,
		Binding: operation.Bind(API.ListBackupJobs),
	},
	{
		Name:    "ListBackupJobSummaries",
		Usage:   "summarize backup jobs by state and resource type",
		Params:  summaryFilters(summaryJobStates),
		Select:  "BackupJobSummaries",
		Attrs:   []string{"Region:region", "AccountId:account", "State:state", "ResourceType:type", "Count:count"},
		Paging:  nextToken,
		Binding: operation.Bind(API.ListBackupJobSummaries),
	},

	// Copy jobs.
	{
		Name:  "StartCopyJob",
		Usage: "copy a recovery point to another vault",
		Params: params(
			positional(str("RecoveryPointArn", "recovery point to copy")),
			required(str("SourceBackupVaultName", "vault holding the recovery point")),
			required(str("DestinationBackupVaultArn", "vault receiving the copy")),
			required(str("IamRoleArn", "role assumed to copy")),
			document("Lifecycle", "lifecycle of the copy"),
			str("IdempotencyToken", "idempotency token"),
		),
		Select:   "CopyJobId",
		Impact:   operation.ImpactMedium,
		Target:   []string{"RecoveryPointArn", "DestinationBackupVaultArn"},
		PassThru: "RecoveryPointArn",
		Binding:  operation.Bind(API.StartCopyJob),
	},
	{
		Name:    "DescribeCopyJob",
		Usage:   "show a copy job",
		Params:  params(positional(str("CopyJobId", "ID of the copy job"))),
		Select:  "CopyJob",
		Binding: operation.Bind(API.DescribeCopyJob),
	},
	{
		Name:  "ListCopyJobs",
		Usage: "list copy jobs of the last 30 days",
		Params: paged(append(jobFilters(),
			str("ByDestinationVaultArn", "only jobs copying to this vault"),
			enum(str("ByState", "only jobs in this state"), copyJobStates...),
		)...),
		Select:  "CopyJobs",
		Attrs:   []string{"CopyJobId:id", "State:state", "ResourceType:type", "DestinationBackupVaultArn:destination", "CreationDate:created:T"},
		Paging:  nextToken,
		Binding: operation.Bind(API.ListCopyJobs),
	},
	{
		Name:    "ListCopyJobSummaries",
		Usage:   "summarize copy jobs by state and resource type",
		Params:  summaryFilters(summaryJobStates),
		Select:  "CopyJobSummaries",
		Attrs:   []string{"Region:region", "AccountId:account", "State:state", "ResourceType:type", "Count:count"},
		Paging:  nextToken,
		Binding: operation.Bind(API.ListCopyJobSummaries),
	},

	// Restore jobs.
	{
		Name:  "StartRestoreJob",
		Usage: "restore a recovery point",
		Params: params(
			positional(str("RecoveryPointArn", "recovery point to restore")),
			required(strmap("Metadata", "resource-specific restore metadata (k=v,...)")),
			str("IamRoleArn", "role assumed to restore"),
			str("ResourceType", "type of the resource to restore"),
			boolean("CopySourceTagsToRestoredResource", "copy tags of the source resource"),
			str("IdempotencyToken", "idempotency token"),
		),
		Select:   "RestoreJobId",
		Impact:   operation.ImpactMedium,
		Target:   []string{"RecoveryPointArn"},
		PassThru: "RecoveryPointArn",
		Binding:  operation.Bind(API.StartRestoreJob),
	},
	{
		Name:    "DescribeRestoreJob",
		Usage:   "show a restore job",
		Params:  params(positional(str("RestoreJobId", "ID of the restore job"))),
		Select:  "*",
		Binding: operation.Bind(API.DescribeRestoreJob),
	},
	{
		Name:  "ListRestoreJobs",
		Usage: "list restore jobs of the last 30 days",
		Params: paged(
			str("ByAccountId", "only jobs of this account"),
			timestamp("ByCreatedAfter", "only jobs created after this time"),
			timestamp("ByCreatedBefore", "only jobs created before this time"),
			timestamp("ByCompleteAfter", "only jobs completed after this time"),
			timestamp("ByCompleteBefore", "only jobs completed before this time"),
			str("ByResourceType", "only jobs for this resource type"),
			str("ByRestoreTestingPlanArn", "only jobs started by this restore testing plan"),
			enum(str("ByStatus", "only jobs with this status"), restoreJobStates...),
		),
		Select:  "RestoreJobs",
		Attrs:   []string{"RestoreJobId:id", "Status:status", "ResourceType:type", "CreationDate:created:T"},
		Paging:  nextToken,
		Binding: operation.Bind(API.ListRestoreJobs),
	},
	{
		Name:    "ListRestoreJobSummaries",
		Usage:   "summarize restore jobs by state and resource type",
		Params:  restoreSummaryFilters(),
		Select:  "RestoreJobSummaries",
		Attrs:   []string{"Region:region", "AccountId:account", "State:state", "ResourceType:type", "Count:count"},
		Paging:  nextToken,
		Binding: operation.Bind(API.ListRestoreJobSummaries),
	},
	{
		Name:    "GetRestoreJobMetadata",
		Usage:   "show the metadata a restore job was started with",
		Params:  params(positional(str("RestoreJobId", "ID of the restore job"))),
		Select:  "Metadata",
		Binding: operation.Bind(API.GetRestoreJobMetadata),
	},
}

// Restore summaries have no message category.
func restoreSummaryFilters() []operation.Param {
	return paged(
		str("AccountId", "only jobs of this account"),
		enum(str("AggregationPeriod", "period the summary covers"), summaryPeriods...),
		str("ResourceType", "only jobs for this resource type"),
		enum(str("State", "only jobs in this state"), "CREATED", "PENDING", "RUNNING", "ABORTED", "COMPLETED", "FAILED", "AGGREGATE_ALL", "ANY"),
	)
}
