// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"github.com/tfctl/bkctl/internal/operation"
)

var resourceArn = positional(str("ResourceArn", "ARN of the vault, plan, recovery point or framework"))

var tags = []*operation.Descriptor{
	{
		Name:    "ListTags",
		Usage:   "list the tags of a resource",
		Params:  paged(resourceArn),
		Select:  "Tags",
		Paging:  nextToken,
		Binding: operation.Bind(API.ListTags),
	},
	{
		Name:  "TagResource",
		Usage: "add tags to a resource",
		Params: params(
			resourceArn,
			required(strmap("Tags", "tags to add (k=v,...)")),
		),
		Impact:   operation.ImpactMedium,
		Target:   []string{"ResourceArn", "Tags"},
		PassThru: "ResourceArn",
		Binding:  operation.Bind(API.TagResource),
	},
	{
		Name:  "UntagResource",
		Usage: "remove tags from a resource",
		Params: params(
			resourceArn,
			required(list("TagKeyList", "tag keys to remove")),
		),
		Impact:   operation.ImpactHigh,
		Target:   []string{"ResourceArn", "TagKeyList"},
		PassThru: "ResourceArn",
		Binding:  operation.Bind(API.UntagResource),
	},
}
