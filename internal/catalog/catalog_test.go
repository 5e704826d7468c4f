// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/backup"
	"github.com/aws/aws-sdk-go-v2/service/backup/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/bkctl/internal/operation"
)

func TestCatalog_DescriptorsMatchSDK(t *testing.T) {
	for _, d := range All() {
		t.Run(d.Name, func(t *testing.T) {
			assert.NoError(t, d.Check())
			assert.Equal(t, d.Name+"Input", d.Request.Name())
			assert.Equal(t, d.Name+"Output", d.Response.Name())
		})
	}
}

func TestCatalog_Size(t *testing.T) {
	all := All()
	assert.Len(t, all, 75)

	seen := map[string]bool{}
	for _, d := range all {
		assert.False(t, seen[d.CommandName()], "duplicate command %s", d.CommandName())
		seen[d.CommandName()] = true
	}

	total := 0
	for _, f := range Families() {
		assert.NotEmpty(t, f.Ops, f.Name)
		total += len(f.Ops)
	}
	assert.Equal(t, len(all), total)
}

// Impact follows the verb of the operation name.
func TestCatalog_Impact(t *testing.T) {
	medium := []string{"Create", "Put", "Start", "Update", "Tag"}
	high := []string{"Delete", "Cancel", "Stop", "Disassociate", "Untag"}

	hasPrefix := func(name string, verbs []string) bool {
		for _, v := range verbs {
			if strings.HasPrefix(name, v) {
				return true
			}
		}
		return false
	}

	for _, d := range All() {
		want := operation.ImpactNone
		switch {
		case hasPrefix(d.Name, high):
			want = operation.ImpactHigh
		case hasPrefix(d.Name, medium):
			want = operation.ImpactMedium
		}
		assert.Equal(t, want, d.Impact, d.Name)
	}
}

func TestCatalog_ListsArePaged(t *testing.T) {
	for _, d := range All() {
		if strings.HasPrefix(d.Name, "List") {
			assert.True(t, d.Paginated(), d.Name)
			assert.NotEmpty(t, d.Select, d.Name)
		} else {
			assert.False(t, d.Paginated(), d.Name)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"ListBackupJobs", "ListBackupJobs", true},
		{"list-backup-jobs", "ListBackupJobs", true},
		{"listbackupjobs", "ListBackupJobs", true},
		{"get-backup-plan-from-json", "GetBackupPlanFromJSON", true},
		{"put-backup-vault-notifications", "PutBackupVaultNotifications", true},
		{"list-backup-widgets", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := Lookup(tt.name)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, d.Name)
			}
		})
	}

	d, _ := Lookup("CreateBackupVault")
	assert.Equal(t, "vaults", FamilyOf(d))
	assert.Empty(t, FamilyOf(&operation.Descriptor{}))
}

type fakeBackup struct {
	API
	got *backup.ListBackupJobsInput
}

func (f *fakeBackup) ListBackupJobs(_ context.Context, in *backup.ListBackupJobsInput, _ ...func(*backup.Options)) (*backup.ListBackupJobsOutput, error) {
	f.got = in
	return &backup.ListBackupJobsOutput{
		BackupJobs: []types.BackupJob{{BackupJobId: aws.String("job-1"), State: types.BackupJobStateFailed}},
	}, nil
}

func TestCatalog_ExecuteThroughFake(t *testing.T) {
	d, ok := Lookup("ListBackupJobs")
	require.True(t, ok)

	set := operation.NewSet()
	set.Bind("ByState", "FAILED")
	set.Bind("ByCreatedAfter", "2026-01-01")

	fake := &fakeBackup{}
	var got []operation.Result
	sink := sinkFunc(func(r operation.Result) { got = append(got, r) })

	err := operation.Execute(context.Background(), operation.NewInvocation(d, set), &operation.Remote{Client: fake}, sink)
	require.NoError(t, err)

	require.NotNil(t, fake.got)
	assert.Equal(t, types.BackupJobStateFailed, fake.got.ByState)
	assert.Equal(t, "2026-01-01T00:00:00Z", fake.got.ByCreatedAfter.UTC().Format("2006-01-02T15:04:05Z07:00"))
	assert.Nil(t, fake.got.ByBackupVaultName)

	require.Len(t, got, 1)
	assert.Equal(t, "job-1", got[0].Value.Get("0.BackupJobId").String())
	assert.Equal(t, "FAILED", got[0].Value.Get("0.State").String())
}

type sinkFunc func(r operation.Result)

func (f sinkFunc) Emit(_ context.Context, r operation.Result) error {
	f(r)
	return nil
}

func (f sinkFunc) Warn(string) {}
