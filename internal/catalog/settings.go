// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"github.com/tfctl/bkctl/internal/operation"
)

var settings = []*operation.Descriptor{
	{
		Name:    "DescribeGlobalSettings",
		Usage:   "show the account's global settings",
		Select:  "*",
		Binding: operation.Bind(API.DescribeGlobalSettings),
	},
	{
		Name:  "UpdateGlobalSettings",
		Usage: "change the account's global settings",
		Params: params(
			required(strmap("GlobalSettings", "settings to change (isCrossAccountBackupEnabled=true,...)")),
		),
		Impact:   operation.ImpactMedium,
		Target:   []string{"GlobalSettings"},
		PassThru: "GlobalSettings",
		Binding:  operation.Bind(API.UpdateGlobalSettings),
	},
	{
		Name:    "DescribeRegionSettings",
		Usage:   "show which resource types are opted in for the region",
		Select:  "*",
		Binding: operation.Bind(API.DescribeRegionSettings),
	},
	{
		Name:  "UpdateRegionSettings",
		Usage: "opt resource types in or out for the region",
		Params: params(
			boolmap("ResourceTypeOptInPreference", "opt-in per resource type (EFS=true,...)"),
			boolmap("ResourceTypeManagementPreference", "full management per resource type (DynamoDB=true,...)"),
		),
		Impact:  operation.ImpactMedium,
		Target:  []string{"ResourceTypeOptInPreference", "ResourceTypeManagementPreference"},
		Binding: operation.Bind(API.UpdateRegionSettings),
	},
	{
		Name:    "GetSupportedResourceTypes",
		Usage:   "list the resource types AWS Backup supports",
		Select:  "ResourceTypes",
		Binding: operation.Bind(API.GetSupportedResourceTypes),
	},
}
