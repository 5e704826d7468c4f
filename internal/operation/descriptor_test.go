// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package operation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BackupVaultName", "backup-vault-name"},
		{"SNSTopicArn", "sns-topic-arn"},
		{"ManagedByAWSBackupOnly", "managed-by-aws-backup-only"},
		{"BackupPlanTemplateJson", "backup-plan-template-json"},
		{"IamRoleArn", "iam-role-arn"},
		{"S3BucketName", "s3-bucket-name"},
		{"GetBackupPlanFromJSON", "get-backup-plan-from-json"},
		{"ByCreatedAfter", "by-created-after"},
		{"NextToken", "next-token"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FlagName(tt.in))
		})
	}
}

func TestParseImpact(t *testing.T) {
	for in, want := range map[string]Impact{"none": ImpactNone, "Medium": ImpactMedium, "HIGH": ImpactHigh, "": ImpactMedium} {
		got, err := ParseImpact(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseImpact("severe")
	assert.Error(t, err)
}

func TestDescriptor_Lookups(t *testing.T) {
	d := listThings()

	assert.Equal(t, "list-things", d.CommandName())
	assert.True(t, d.Paginated())
	assert.False(t, d.Mutating())
	assert.True(t, deleteThing().Mutating())

	p, ok := d.Param("created-after")
	require.True(t, ok)
	assert.Equal(t, "CreatedAfter", p.Name)

	p, ok = d.Param("VaultName")
	require.True(t, ok)
	assert.Equal(t, "vault-name", p.Flag())

	_, ok = d.Param("nope")
	assert.False(t, ok)
}

func TestDescriptor_Check(t *testing.T) {
	require.NoError(t, listThings().Check())
	require.NoError(t, deleteThing().Check())

	tests := []struct {
		name   string
		mutate func(d *Descriptor)
		want   string
	}{
		{"unknown param field", func(d *Descriptor) { d.Params = append(d.Params, Param{Name: "Bogus"}) }, "has no field Bogus"},
		{"bad select", func(d *Descriptor) { d.Select = "Widgets.Name" }, "select Widgets.Name"},
		{"bad output token", func(d *Descriptor) { d.Paging = &Paging{InputToken: "NextToken", OutputToken: "Marker"} }, "has no field Marker"},
		{"bad target", func(d *Descriptor) { d.Target = []string{"Missing"} }, "target Missing"},
		{"two positionals", func(d *Descriptor) { d.Params[1].Positional = true }, "more than one positional"},
		{"unbound", func(d *Descriptor) { d.Binding = Binding{} }, "not bound"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := listThings()
			tt.mutate(d)
			assert.ErrorContains(t, d.Check(), tt.want)
		})
	}

	d := deleteThing()
	d.Target = nil
	assert.ErrorContains(t, d.Check(), "no confirmation target")
}

func TestBind(t *testing.T) {
	b := Bind(fakeAPI.DeleteThing)
	assert.Equal(t, "deleteThingInput", b.Request.Name())
	assert.Equal(t, "deleteThingOutput", b.Response.Name())

	req, ok := b.NewRequest().(*deleteThingInput)
	require.True(t, ok)

	client := &fakeClient{}
	out, err := b.Call(context.Background(), client, req)
	require.NoError(t, err)
	assert.IsType(t, &deleteThingOutput{}, out)
	assert.Len(t, client.deletes, 1)

	_, err = b.Call(context.Background(), struct{}{}, req)
	assert.ErrorContains(t, err, "does not implement")

	_, err = b.Call(context.Background(), client, &listThingsInput{})
	assert.ErrorContains(t, err, "is not a")
}
