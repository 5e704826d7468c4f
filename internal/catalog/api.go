// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/backup"
)

// API is the subset of the AWS Backup client the catalog binds to. Tests
// substitute fakes that embed it and override what they exercise.
type API interface {
	CancelLegalHold(ctx context.Context, params *backup.CancelLegalHoldInput, optFns ...func(*backup.Options)) (*backup.CancelLegalHoldOutput, error)
	CreateBackupPlan(ctx context.Context, params *backup.CreateBackupPlanInput, optFns ...func(*backup.Options)) (*backup.CreateBackupPlanOutput, error)
	CreateBackupSelection(ctx context.Context, params *backup.CreateBackupSelectionInput, optFns ...func(*backup.Options)) (*backup.CreateBackupSelectionOutput, error)
	CreateBackupVault(ctx context.Context, params *backup.CreateBackupVaultInput, optFns ...func(*backup.Options)) (*backup.CreateBackupVaultOutput, error)
	CreateFramework(ctx context.Context, params *backup.CreateFrameworkInput, optFns ...func(*backup.Options)) (*backup.CreateFrameworkOutput, error)
	CreateLegalHold(ctx context.Context, params *backup.CreateLegalHoldInput, optFns ...func(*backup.Options)) (*backup.CreateLegalHoldOutput, error)
	CreateReportPlan(ctx context.Context, params *backup.CreateReportPlanInput, optFns ...func(*backup.Options)) (*backup.CreateReportPlanOutput, error)
	DeleteBackupPlan(ctx context.Context, params *backup.DeleteBackupPlanInput, optFns ...func(*backup.Options)) (*backup.DeleteBackupPlanOutput, error)
	DeleteBackupSelection(ctx context.Context, params *backup.DeleteBackupSelectionInput, optFns ...func(*backup.Options)) (*backup.DeleteBackupSelectionOutput, error)
	DeleteBackupVault(ctx context.Context, params *backup.DeleteBackupVaultInput, optFns ...func(*backup.Options)) (*backup.DeleteBackupVaultOutput, error)
	DeleteBackupVaultAccessPolicy(ctx context.Context, params *backup.DeleteBackupVaultAccessPolicyInput, optFns ...func(*backup.Options)) (*backup.DeleteBackupVaultAccessPolicyOutput, error)
	DeleteBackupVaultLockConfiguration(ctx context.Context, params *backup.DeleteBackupVaultLockConfigurationInput, optFns ...func(*backup.Options)) (*backup.DeleteBackupVaultLockConfigurationOutput, error)
	DeleteBackupVaultNotifications(ctx context.Context, params *backup.DeleteBackupVaultNotificationsInput, optFns ...func(*backup.Options)) (*backup.DeleteBackupVaultNotificationsOutput, error)
	DeleteFramework(ctx context.Context, params *backup.DeleteFrameworkInput, optFns ...func(*backup.Options)) (*backup.DeleteFrameworkOutput, error)
	DeleteRecoveryPoint(ctx context.Context, params *backup.DeleteRecoveryPointInput, optFns ...func(*backup.Options)) (*backup.DeleteRecoveryPointOutput, error)
	DeleteReportPlan(ctx context.Context, params *backup.DeleteReportPlanInput, optFns ...func(*backup.Options)) (*backup.DeleteReportPlanOutput, error)
	DescribeBackupJob(ctx context.Context, params *backup.DescribeBackupJobInput, optFns ...func(*backup.Options)) (*backup.DescribeBackupJobOutput, error)
	DescribeBackupVault(ctx context.Context, params *backup.DescribeBackupVaultInput, optFns ...func(*backup.Options)) (*backup.DescribeBackupVaultOutput, error)
	DescribeCopyJob(ctx context.Context, params *backup.DescribeCopyJobInput, optFns ...func(*backup.Options)) (*backup.DescribeCopyJobOutput, error)
	DescribeFramework(ctx context.Context, params *backup.DescribeFrameworkInput, optFns ...func(*backup.Options)) (*backup.DescribeFrameworkOutput, error)
	DescribeGlobalSettings(ctx context.Context, params *backup.DescribeGlobalSettingsInput, optFns ...func(*backup.Options)) (*backup.DescribeGlobalSettingsOutput, error)
	DescribeProtectedResource(ctx context.Context, params *backup.DescribeProtectedResourceInput, optFns ...func(*backup.Options)) (*backup.DescribeProtectedResourceOutput, error)
	DescribeRecoveryPoint(ctx context.Context, params *backup.DescribeRecoveryPointInput, optFns ...func(*backup.Options)) (*backup.DescribeRecoveryPointOutput, error)
	DescribeRegionSettings(ctx context.Context, params *backup.DescribeRegionSettingsInput, optFns ...func(*backup.Options)) (*backup.DescribeRegionSettingsOutput, error)
	DescribeReportJob(ctx context.Context, params *backup.DescribeReportJobInput, optFns ...func(*backup.Options)) (*backup.DescribeReportJobOutput, error)
	DescribeReportPlan(ctx context.Context, params *backup.DescribeReportPlanInput, optFns ...func(*backup.Options)) (*backup.DescribeReportPlanOutput, error)
	DescribeRestoreJob(ctx context.Context, params *backup.DescribeRestoreJobInput, optFns ...func(*backup.Options)) (*backup.DescribeRestoreJobOutput, error)
	DisassociateRecoveryPoint(ctx context.Context, params *backup.DisassociateRecoveryPointInput, optFns ...func(*backup.Options)) (*backup.DisassociateRecoveryPointOutput, error)
	ExportBackupPlanTemplate(ctx context.Context, params *backup.ExportBackupPlanTemplateInput, optFns ...func(*backup.Options)) (*backup.ExportBackupPlanTemplateOutput, error)
	GetBackupPlan(ctx context.Context, params *backup.GetBackupPlanInput, optFns ...func(*backup.Options)) (*backup.GetBackupPlanOutput, error)
	GetBackupPlanFromJSON(ctx context.Context, params *backup.GetBackupPlanFromJSONInput, optFns ...func(*backup.Options)) (*backup.GetBackupPlanFromJSONOutput, error)
	GetBackupPlanFromTemplate(ctx context.Context, params *backup.GetBackupPlanFromTemplateInput, optFns ...func(*backup.Options)) (*backup.GetBackupPlanFromTemplateOutput, error)
	GetBackupSelection(ctx context.Context, params *backup.GetBackupSelectionInput, optFns ...func(*backup.Options)) (*backup.GetBackupSelectionOutput, error)
	GetBackupVaultAccessPolicy(ctx context.Context, params *backup.GetBackupVaultAccessPolicyInput, optFns ...func(*backup.Options)) (*backup.GetBackupVaultAccessPolicyOutput, error)
	GetBackupVaultNotifications(ctx context.Context, params *backup.GetBackupVaultNotificationsInput, optFns ...func(*backup.Options)) (*backup.GetBackupVaultNotificationsOutput, error)
	GetLegalHold(ctx context.Context, params *backup.GetLegalHoldInput, optFns ...func(*backup.Options)) (*backup.GetLegalHoldOutput, error)
	GetRecoveryPointRestoreMetadata(ctx context.Context, params *backup.GetRecoveryPointRestoreMetadataInput, optFns ...func(*backup.Options)) (*backup.GetRecoveryPointRestoreMetadataOutput, error)
	GetRestoreJobMetadata(ctx context.Context, params *backup.GetRestoreJobMetadataInput, optFns ...func(*backup.Options)) (*backup.GetRestoreJobMetadataOutput, error)
	GetSupportedResourceTypes(ctx context.Context, params *backup.GetSupportedResourceTypesInput, optFns ...func(*backup.Options)) (*backup.GetSupportedResourceTypesOutput, error)
	ListBackupJobSummaries(ctx context.Context, params *backup.ListBackupJobSummariesInput, optFns ...func(*backup.Options)) (*backup.ListBackupJobSummariesOutput, error)
	ListBackupJobs(ctx context.Context, params *backup.ListBackupJobsInput, optFns ...func(*backup.Options)) (*backup.ListBackupJobsOutput, error)
	ListBackupPlanTemplates(ctx context.Context, params *backup.ListBackupPlanTemplatesInput, optFns ...func(*backup.Options)) (*backup.ListBackupPlanTemplatesOutput, error)
	ListBackupPlanVersions(ctx context.Context, params *backup.ListBackupPlanVersionsInput, optFns ...func(*backup.Options)) (*backup.ListBackupPlanVersionsOutput, error)
	ListBackupPlans(ctx context.Context, params *backup.ListBackupPlansInput, optFns ...func(*backup.Options)) (*backup.ListBackupPlansOutput, error)
	ListBackupSelections(ctx context.Context, params *backup.ListBackupSelectionsInput, optFns ...func(*backup.Options)) (*backup.ListBackupSelectionsOutput, error)
	ListBackupVaults(ctx context.Context, params *backup.ListBackupVaultsInput, optFns ...func(*backup.Options)) (*backup.ListBackupVaultsOutput, error)
	ListCopyJobSummaries(ctx context.Context, params *backup.ListCopyJobSummariesInput, optFns ...func(*backup.Options)) (*backup.ListCopyJobSummariesOutput, error)
	ListCopyJobs(ctx context.Context, params *backup.ListCopyJobsInput, optFns ...func(*backup.Options)) (*backup.ListCopyJobsOutput, error)
	ListFrameworks(ctx context.Context, params *backup.ListFrameworksInput, optFns ...func(*backup.Options)) (*backup.ListFrameworksOutput, error)
	ListLegalHolds(ctx context.Context, params *backup.ListLegalHoldsInput, optFns ...func(*backup.Options)) (*backup.ListLegalHoldsOutput, error)
	ListProtectedResources(ctx context.Context, params *backup.ListProtectedResourcesInput, optFns ...func(*backup.Options)) (*backup.ListProtectedResourcesOutput, error)
	ListRecoveryPointsByBackupVault(ctx context.Context, params *backup.ListRecoveryPointsByBackupVaultInput, optFns ...func(*backup.Options)) (*backup.ListRecoveryPointsByBackupVaultOutput, error)
	ListRecoveryPointsByLegalHold(ctx context.Context, params *backup.ListRecoveryPointsByLegalHoldInput, optFns ...func(*backup.Options)) (*backup.ListRecoveryPointsByLegalHoldOutput, error)
	ListRecoveryPointsByResource(ctx context.Context, params *backup.ListRecoveryPointsByResourceInput, optFns ...func(*backup.Options)) (*backup.ListRecoveryPointsByResourceOutput, error)
	ListReportJobs(ctx context.Context, params *backup.ListReportJobsInput, optFns ...func(*backup.Options)) (*backup.ListReportJobsOutput, error)
	ListReportPlans(ctx context.Context, params *backup.ListReportPlansInput, optFns ...func(*backup.Options)) (*backup.ListReportPlansOutput, error)
	ListRestoreJobSummaries(ctx context.Context, params *backup.ListRestoreJobSummariesInput, optFns ...func(*backup.Options)) (*backup.ListRestoreJobSummariesOutput, error)
	ListRestoreJobs(ctx context.Context, params *backup.ListRestoreJobsInput, optFns ...func(*backup.Options)) (*backup.ListRestoreJobsOutput, error)
	ListTags(ctx context.Context, params *backup.ListTagsInput, optFns ...func(*backup.Options)) (*backup.ListTagsOutput, error)
	PutBackupVaultAccessPolicy(ctx context.Context, params *backup.PutBackupVaultAccessPolicyInput, optFns ...func(*backup.Options)) (*backup.PutBackupVaultAccessPolicyOutput, error)
	PutBackupVaultLockConfiguration(ctx context.Context, params *backup.PutBackupVaultLockConfigurationInput, optFns ...func(*backup.Options)) (*backup.PutBackupVaultLockConfigurationOutput, error)
	PutBackupVaultNotifications(ctx context.Context, params *backup.PutBackupVaultNotificationsInput, optFns ...func(*backup.Options)) (*backup.PutBackupVaultNotificationsOutput, error)
	StartBackupJob(ctx context.Context, params *backup.StartBackupJobInput, optFns ...func(*backup.Options)) (*backup.StartBackupJobOutput, error)
	StartCopyJob(ctx context.Context, params *backup.StartCopyJobInput, optFns ...func(*backup.Options)) (*backup.StartCopyJobOutput, error)
	StartReportJob(ctx context.Context, params *backup.StartReportJobInput, optFns ...func(*backup.Options)) (*backup.StartReportJobOutput, error)
	StartRestoreJob(ctx context.Context, params *backup.StartRestoreJobInput, optFns ...func(*backup.Options)) (*backup.StartRestoreJobOutput, error)
	StopBackupJob(ctx context.Context, params *backup.StopBackupJobInput, optFns ...func(*backup.Options)) (*backup.StopBackupJobOutput, error)
	TagResource(ctx context.Context, params *backup.TagResourceInput, optFns ...func(*backup.Options)) (*backup.TagResourceOutput, error)
	UntagResource(ctx context.Context, params *backup.UntagResourceInput, optFns ...func(*backup.Options)) (*backup.UntagResourceOutput, error)
	UpdateBackupPlan(ctx context.Context, params *backup.UpdateBackupPlanInput, optFns ...func(*backup.Options)) (*backup.UpdateBackupPlanOutput, error)
	UpdateFramework(ctx context.Context, params *backup.UpdateFrameworkInput, optFns ...func(*backup.Options)) (*backup.UpdateFrameworkOutput, error)
	UpdateGlobalSettings(ctx context.Context, params *backup.UpdateGlobalSettingsInput, optFns ...func(*backup.Options)) (*backup.UpdateGlobalSettingsOutput, error)
	UpdateRecoveryPointLifecycle(ctx context.Context, params *backup.UpdateRecoveryPointLifecycleInput, optFns ...func(*backup.Options)) (*backup.UpdateRecoveryPointLifecycleOutput, error)
	UpdateRegionSettings(ctx context.Context, params *backup.UpdateRegionSettingsInput, optFns ...func(*backup.Options)) (*backup.UpdateRegionSettingsOutput, error)
	UpdateReportPlan(ctx context.Context, params *backup.UpdateReportPlanInput, optFns ...func(*backup.Options)) (*backup.UpdateReportPlanOutput, error)
}

var _ API = (*backup.Client)(nil)
