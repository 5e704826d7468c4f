// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"github.com/tfctl/bkctl/internal/operation"
)

var recoveryPointArn = positional(str("RecoveryPointArn", "ARN of the recovery point"))

var recoveryPointAttrs = []string{"RecoveryPointArn:arn:-40", "ResourceType:type", "Status:status", "BackupSizeInBytes:size:b", "CreationDate:created:T"}

var recovery = []*operation.Descriptor{
	{
		Name:  "DescribeRecoveryPoint",
		Usage: "show a recovery point",
		Params: params(
			recoveryPointArn,
			required(str("BackupVaultName", "vault holding the recovery point")),
			str("BackupVaultAccountId", "account that owns the vault"),
		),
		Select:  "*",
		Binding: operation.Bind(API.DescribeRecoveryPoint),
	},
	{
		Name:  "DeleteRecoveryPoint",
		Usage: "delete a recovery point",
		Params: params(
			recoveryPointArn,
			required(str("BackupVaultName", "vault holding the recovery point")),
		),
		Impact:   operation.ImpactHigh,
		Target:   []string{"RecoveryPointArn", "BackupVaultName"},
		PassThru: "RecoveryPointArn",
		Binding:  operation.Bind(API.DeleteRecoveryPoint),
	},
	{
		Name:  "UpdateRecoveryPointLifecycle",
		Usage: "change when a recovery point transitions or expires",
		Params: params(
			recoveryPointArn,
			required(str("BackupVaultName", "vault holding the recovery point")),
			document("Lifecycle", "lifecycle (MoveToColdStorageAfterDays, DeleteAfterDays)"),
		),
		Select:   "CalculatedLifecycle",
		Impact:   operation.ImpactMedium,
		Target:   []string{"RecoveryPointArn"},
		PassThru: "RecoveryPointArn",
		Binding:  operation.Bind(API.UpdateRecoveryPointLifecycle),
	},
	{
		Name:  "DisassociateRecoveryPoint",
		Usage: "stop continuous backup for a recovery point",
		Params: params(
			recoveryPointArn,
			required(str("BackupVaultName", "vault holding the recovery point")),
		),
		Impact:   operation.ImpactHigh,
		Target:   []string{"RecoveryPointArn", "BackupVaultName"},
		PassThru: "RecoveryPointArn",
		Binding:  operation.Bind(API.DisassociateRecoveryPoint),
	},
	{
		Name:  "ListRecoveryPointsByBackupVault",
		Usage: "list the recovery points in a backup vault",
		Params: paged(
			positional(str("BackupVaultName", "name of the backup vault")),
			str("BackupVaultAccountId", "account that owns the vault"),
			str("ByBackupPlanId", "only points created by this plan"),
			timestamp("ByCreatedAfter", "only points created after this time"),
			timestamp("ByCreatedBefore", "only points created before this time"),
			str("ByParentRecoveryPointArn", "only children of this composite point"),
			str("ByResourceArn", "only points of this resource"),
			str("ByResourceType", "only points of this resource type"),
		),
		Select:  "RecoveryPoints",
		Attrs:   recoveryPointAttrs,
		Paging:  nextToken,
		Binding: operation.Bind(API.ListRecoveryPointsByBackupVault),
	},
	{
		Name:  "ListRecoveryPointsByResource",
		Usage: "list the recovery points of a resource",
		Params: paged(
			positional(str("ResourceArn", "ARN of the protected resource")),
			boolean("ManagedByAWSBackupOnly", "only points managed by AWS Backup"),
		),
		Select:  "RecoveryPoints",
		Attrs:   []string{"RecoveryPointArn:arn:-40", "BackupVaultName:vault", "Status:status", "BackupSizeBytes:size:b", "CreationDate:created:T"},
		Paging:  nextToken,
		Binding: operation.Bind(API.ListRecoveryPointsByResource),
	},
	{
		Name:  "GetRecoveryPointRestoreMetadata",
		Usage: "show the metadata needed to restore a recovery point",
		Params: params(
			recoveryPointArn,
			required(str("BackupVaultName", "vault holding the recovery point")),
			str("BackupVaultAccountId", "account that owns the vault"),
		),
		Select:  "RestoreMetadata",
		Binding: operation.Bind(API.GetRecoveryPointRestoreMetadata),
	},
	{
		Name:    "ListProtectedResources",
		Usage:   "list resources with at least one recovery point",
		Params:  paged(),
		Select:  "Results",
		Attrs:   []string{"ResourceArn:arn", "ResourceType:type", "ResourceName:name", "LastBackupTime:last-backup:T"},
		Paging:  nextToken,
		Binding: operation.Bind(API.ListProtectedResources),
	},
	{
		Name:    "DescribeProtectedResource",
		Usage:   "show a protected resource",
		Params:  params(positional(str("ResourceArn", "ARN of the protected resource"))),
		Select:  "*",
		Binding: operation.Bind(API.DescribeProtectedResource),
	},
}
