// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	planV1 = `{"VersionId": "v1", "BackupPlan": {"BackupPlanName": "daily", "Rules": [{"RuleName": "nightly", "ScheduleExpression": "cron(0 5 ? * * *)"}]}}`
	planV2 = `{"VersionId": "v2", "BackupPlan": {"BackupPlanName": "daily", "Rules": [{"RuleName": "nightly", "ScheduleExpression": "cron(0 3 ? * * *)"}]}}`
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name         string
		left, right  string
		opts         Options
		wantModified bool
		wantContains []string
	}{
		{
			name:         "identical after ignore",
			left:         planV1,
			right:        `{"VersionId": "v9", "BackupPlan": {"BackupPlanName": "daily", "Rules": [{"RuleName": "nightly", "ScheduleExpression": "cron(0 5 ? * * *)"}]}}`,
			opts:         Options{Ignore: DefaultIgnore},
			wantContains: []string{"identical"},
		},
		{
			name:         "version only differs without ignore",
			left:         `{"VersionId": "v1"}`,
			right:        `{"VersionId": "v2"}`,
			wantModified: true,
			wantContains: []string{"v1", "v2"},
		},
		{
			name:         "ascii",
			left:         planV1,
			right:        planV2,
			opts:         Options{Ignore: DefaultIgnore},
			wantModified: true,
			wantContains: []string{"cron(0 5 ? * * *)", "cron(0 3 ? * * *)"},
		},
		{
			name:         "delta",
			left:         planV1,
			right:        planV2,
			opts:         Options{Ignore: DefaultIgnore, Delta: true},
			wantModified: true,
			wantContains: []string{`"ScheduleExpression"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			modified, err := Diff(&buf, []byte(tt.left), []byte(tt.right), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantModified, modified)
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestDiff_BadInput(t *testing.T) {
	_, err := Diff(&bytes.Buffer{}, []byte("nope"), []byte("{}"), Options{})
	assert.ErrorContains(t, err, "left document")
	_, err = Diff(&bytes.Buffer{}, []byte("{}"), []byte("[1]"), Options{})
	assert.ErrorContains(t, err, "right document")
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m model, keys ...string) (model, tea.Cmd) {
	var cmd tea.Cmd
	var next tea.Model = m
	for _, k := range keys {
		next, cmd = next.(model).Update(key(k))
	}
	return next.(model), cmd
}

func TestModel(t *testing.T) {
	now := time.Now()
	items := []Version{
		{ID: "v3", Created: now},
		{ID: "v2", Created: now.Add(-time.Hour)},
		{ID: "v1", Created: now.Add(-2 * time.Hour)},
	}

	m, cmd := press(model{items: items}, "enter")
	assert.Nil(t, cmd, "enter needs two selections")

	m, _ = press(model{items: items}, " ", "down", "down", " ", "up", " ", " ")
	assert.Equal(t, []string{"v3", "v1"}, ids(m.selected))
	assert.Equal(t, 1, m.cursor)

	// A third selection is refused.
	m, _ = press(m, " ")
	assert.Equal(t, []string{"v3", "v1"}, ids(m.selected))

	view := m.View()
	assert.Contains(t, view, "> [ ] v2")
	assert.Contains(t, view, "  [x] v3")

	_, cmd = press(m, "enter")
	assert.NotNil(t, cmd)

	m, cmd = press(m, "esc")
	assert.Nil(t, m.selected)
	assert.NotNil(t, cmd)

	m, _ = press(model{items: items}, "up", "k")
	assert.Equal(t, 0, m.cursor)
}

func TestSelectVersions_TooFew(t *testing.T) {
	_, err := SelectVersions(t.Context(), []Version{{ID: "v1"}})
	assert.ErrorContains(t, err, "at least two")
}

func ids(vs []Version) []string {
	var out []string
	for _, v := range vs {
		out = append(out, v.ID)
	}
	return out
}
