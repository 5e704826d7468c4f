// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package attrs

import (
	"embed"
	"fmt"
	"testing"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

type setCase struct {
	Name      string `yaml:"name"`
	Initial   []Attr `yaml:"initial"`
	Value     string `yaml:"value"`
	WantLen   int    `yaml:"wantLen"`
	WantAttrs []Attr `yaml:"wantAttrs"`
	WantErr   bool   `yaml:"wantErr"`
}

type transformCase struct {
	Name          string      `yaml:"name"`
	TransformSpec string      `yaml:"transformSpec"`
	Input         interface{} `yaml:"input"`
	Want          interface{} `yaml:"want"`
}

type globalCase struct {
	Name      string   `yaml:"name"`
	Initial   []Attr   `yaml:"initial"`
	WantSpecs []string `yaml:"wantSpecs"`
}

type stringCase struct {
	Name     string `yaml:"name"`
	AttrList []Attr `yaml:"attrList"`
	Want     string `yaml:"want"`
}

// runCases loads testdata/<file> as a list of T and runs each as a subtest
// named by name(tc).
func runCases[T any](t *testing.T, file string, name func(T) string, run func(*testing.T, T)) {
	t.Helper()

	data, err := testDataFS.ReadFile("testdata/" + file)
	require.NoError(t, err)

	var cases []T
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(name(tc), func(t *testing.T) { run(t, tc) })
	}
}

func TestAttrList_Set(t *testing.T) {
	runCases(t, "set_cases.yaml", func(c setCase) string { return c.Name }, func(t *testing.T, c setCase) {
		list := AttrList(c.Initial)
		err := list.Set(c.Value)
		if c.WantErr {
			assert.Error(t, err)
			return
		}

		require.NoError(t, err)
		require.Len(t, list, c.WantLen)
		for i, want := range c.WantAttrs {
			assert.Equal(t, want, list[i], "attr[%d]", i)
		}
	})
}

func TestAttrList_SetGlobalTransformSpec(t *testing.T) {
	runCases(t, "global_transform_cases.yaml", func(c globalCase) string { return c.Name }, func(t *testing.T, c globalCase) {
		list := AttrList(c.Initial)
		require.NoError(t, list.SetGlobalTransformSpec())

		specs := make([]string, 0, len(list))
		for _, a := range list {
			specs = append(specs, a.TransformSpec)
		}
		assert.Equal(t, c.WantSpecs, specs)
	})
}

func TestAttr_Transform(t *testing.T) {
	runCases(t, "transform_cases.yaml", func(c transformCase) string { return c.Name }, func(t *testing.T, c transformCase) {
		got := (&Attr{TransformSpec: c.TransformSpec}).Transform(c.Input)

		// Time cases depend on the local zone and clock.
		if c.Want == "DYNAMIC_LOCAL_TIME" || c.Want == "DYNAMIC_RELATIVE_TIME" {
			ts, err := time.Parse(time.RFC3339, c.Input.(string))
			require.NoError(t, err)
			local := ts.In(time.Local)
			if c.Want == "DYNAMIC_LOCAL_TIME" {
				assert.Equal(t, local.Format("2006-01-02T15:04:05MST"), got)
			} else {
				assert.Equal(t, humanize.Time(local), fmt.Sprint(got))
			}
			return
		}
		assert.Equal(t, c.Want, got)
	})
}

func TestAttrList_String(t *testing.T) {
	runCases(t, "string_cases.yaml", func(c stringCase) string { return c.Name }, func(t *testing.T, c stringCase) {
		list := AttrList(c.AttrList)
		assert.Equal(t, c.Want, list.String())
	})
}

func TestNew(t *testing.T) {
	list, err := New("BackupJobId:id,State:state", "*::u,!state")
	require.NoError(t, err)

	require.Len(t, list, 3)
	assert.Equal(t, "u,", list[0].TransformSpec)
	assert.False(t, list[1].Include)
	assert.Equal(t, AttrList{list[0]}, list.Included())

	attr, ok := list.Find("state")
	require.True(t, ok)
	assert.Equal(t, "State", attr.Key)
	attr, ok = list.Find("BackupJobId")
	require.True(t, ok)
	assert.Equal(t, "id", attr.OutputKey)
	_, ok = list.Find("nope")
	assert.False(t, ok)

	_, err = New("a:b:c:d")
	assert.Error(t, err)
}

func TestAttrList_Type(t *testing.T) {
	a := AttrList{}
	assert.Equal(t, "list", a.Type())
}

func TestAttrList_Path(t *testing.T) {
	list := AttrList{{Key: "BackupPlan.BackupPlanName", OutputKey: "name", Include: true}}
	assert.Equal(t, "BackupPlan.BackupPlanName", list.Path("name"))
	assert.Equal(t, "VersionId", list.Path("VersionId"))
	assert.Equal(t, "x", AttrList(nil).Path("x"))
}
