// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	versions := []Version{
		{ID: "abc123"},
		{ID: "abd456"},
		{ID: "xyz789"},
	}

	file := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(file, []byte(planV1), 0o600))

	tests := []struct {
		name     string
		versions []Version
		specs    []string
		want     []string
		wantFile string
		wantErr  bool
	}{
		{name: "empty is newest", versions: versions, specs: []string{""}, want: []string{"abc123"}},
		{name: "relative", versions: versions, specs: []string{"~2", "~0"}, want: []string{"xyz789", "abc123"}},
		{name: "negative offset", versions: versions, specs: []string{"-1", "0"}, want: []string{"abd456", "abc123"}},
		{name: "positive number", versions: versions, specs: []string{"3"}, wantErr: true},
		{name: "relative out of range", versions: versions, specs: []string{"~3"}, wantErr: true},
		{name: "bad relative", versions: versions, specs: []string{"~x"}, wantErr: true},
		{name: "exact id", versions: versions, specs: []string{"abd456"}, want: []string{"abd456"}},
		{name: "unique prefix", versions: versions, specs: []string{"xy"}, want: []string{"xyz789"}},
		{name: "ambiguous prefix", versions: versions, specs: []string{"ab"}, wantErr: true},
		{name: "no match", versions: versions, specs: []string{"nope"}, wantErr: true},
		{name: "literal id without versions", specs: []string{"anything"}, want: []string{"anything"}},
		{name: "file", versions: versions, specs: []string{file}, want: []string{file}, wantFile: file},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.versions, tt.specs...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			var ids []string
			for _, v := range got {
				ids = append(ids, v.ID)
			}
			assert.Equal(t, tt.want, ids)
			if tt.wantFile != "" {
				assert.Equal(t, tt.wantFile, got[0].File)
			}
		})
	}
}

func TestNeedsVersions(t *testing.T) {
	assert.True(t, NeedsVersions("v1", "~1"))
	assert.True(t, NeedsVersions("-2"))
	assert.False(t, NeedsVersions("v1", "v2"))
	assert.False(t, NeedsVersions())
}
