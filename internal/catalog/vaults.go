// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"github.com/tfctl/bkctl/internal/operation"
)

var vaultName = positional(str("BackupVaultName", "name of the backup vault"))

var vaults = []*operation.Descriptor{
	{
		Name:  "CreateBackupVault",
		Usage: "create a backup vault",
		Params: params(
			vaultName,
			strmap("BackupVaultTags", "tags to assign to the vault (k=v,...)"),
			str("EncryptionKeyArn", "KMS key used to encrypt recovery points"),
			str("CreatorRequestId", "idempotency token"),
		),
		Select:   "BackupVaultArn",
		Impact:   operation.ImpactMedium,
		Target:   []string{"BackupVaultName"},
		PassThru: "BackupVaultName",
		Binding:  operation.Bind(API.CreateBackupVault),
	},
	{
		Name:  "DescribeBackupVault",
		Usage: "show the metadata of a backup vault",
		Params: params(
			vaultName,
			str("BackupVaultAccountId", "account that owns the vault"),
		),
		Select:  "*",
		Binding: operation.Bind(API.DescribeBackupVault),
	},
	{
		Name:     "DeleteBackupVault",
		Usage:    "delete an empty backup vault",
		Params:   params(vaultName),
		Impact:   operation.ImpactHigh,
		Target:   []string{"BackupVaultName"},
		PassThru: "BackupVaultName",
		Binding:  operation.Bind(API.DeleteBackupVault),
	},
	{
		Name:  "ListBackupVaults",
		Usage: "list backup vaults",
		Params: paged(
			boolean("ByShared", "only vaults shared with this account"),
			enum(str("ByVaultType", "vault type"), "BACKUP_VAULT", "LOGICALLY_AIR_GAPPED_BACKUP_VAULT", "RESTORE_ACCESS_BACKUP_VAULT"),
		),
		Select:  "BackupVaultList",
		Attrs:   []string{"BackupVaultName:name", "NumberOfRecoveryPoints:points", "Locked:locked", "CreationDate:created:T"},
		Paging:  nextToken,
		Binding: operation.Bind(API.ListBackupVaults),
	},
	{
		Name:    "GetBackupVaultAccessPolicy",
		Usage:   "show the resource policy of a backup vault",
		Params:  params(vaultName),
		Select:  "Policy",
		Binding: operation.Bind(API.GetBackupVaultAccessPolicy),
	},
	{
		Name:  "PutBackupVaultAccessPolicy",
		Usage: "set the resource policy of a backup vault",
		Params: params(
			vaultName,
			str("Policy", "policy document as a JSON string"),
		),
		Impact:   operation.ImpactMedium,
		Target:   []string{"BackupVaultName"},
		PassThru: "BackupVaultName",
		Binding:  operation.Bind(API.PutBackupVaultAccessPolicy),
	},
	{
		Name:     "DeleteBackupVaultAccessPolicy",
		Usage:    "remove the resource policy of a backup vault",
		Params:   params(vaultName),
		Impact:   operation.ImpactHigh,
		Target:   []string{"BackupVaultName"},
		PassThru: "BackupVaultName",
		Binding:  operation.Bind(API.DeleteBackupVaultAccessPolicy),
	},
	{
		Name:    "GetBackupVaultNotifications",
		Usage:   "show the event notifications of a backup vault",
		Params:  params(vaultName),
		Select:  "*",
		Binding: operation.Bind(API.GetBackupVaultNotifications),
	},
	{
		Name:  "PutBackupVaultNotifications",
		Usage: "send backup vault events to an SNS topic",
		Params: params(
			vaultName,
			required(list("BackupVaultEvents", "events to publish")),
			required(str("SNSTopicArn", "topic receiving the events")),
		),
		Impact:   operation.ImpactMedium,
		Target:   []string{"BackupVaultName", "SNSTopicArn"},
		PassThru: "BackupVaultName",
		Binding:  operation.Bind(API.PutBackupVaultNotifications),
	},
	{
		Name:     "DeleteBackupVaultNotifications",
		Usage:    "stop event notifications of a backup vault",
		Params:   params(vaultName),
		Impact:   operation.ImpactHigh,
		Target:   []string{"BackupVaultName"},
		PassThru: "BackupVaultName",
		Binding:  operation.Bind(API.DeleteBackupVaultNotifications),
	},
	{
		Name:  "PutBackupVaultLockConfiguration",
		Usage: "apply vault lock to a backup vault",
		Params: params(
			vaultName,
			integer("ChangeableForDays", "days before the lock becomes immutable"),
			integer("MaxRetentionDays", "maximum retention of recovery points"),
			integer("MinRetentionDays", "minimum retention of recovery points"),
		),
		Impact:   operation.ImpactMedium,
		Target:   []string{"BackupVaultName"},
		PassThru: "BackupVaultName",
		Binding:  operation.Bind(API.PutBackupVaultLockConfiguration),
	},
	{
		Name:     "DeleteBackupVaultLockConfiguration",
		Usage:    "remove vault lock from a backup vault",
		Params:   params(vaultName),
		Impact:   operation.ImpactHigh,
		Target:   []string{"BackupVaultName"},
		PassThru: "BackupVaultName",
		Binding:  operation.Bind(API.DeleteBackupVaultLockConfiguration),
	},
}
