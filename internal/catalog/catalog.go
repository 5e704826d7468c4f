// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"sort"
	"strings"

	"github.com/tfctl/bkctl/internal/operation"
)

// Family is a group of operations on one kind of resource.
type Family struct {
	Name  string
	Usage string
	Ops   []*operation.Descriptor
}

var families = []Family{
	{Name: "vaults", Usage: "Backup vaults and their policies", Ops: vaults},
	{Name: "plans", Usage: "Backup plans and templates", Ops: plans},
	{Name: "selections", Usage: "Resource assignments of backup plans", Ops: selections},
	{Name: "jobs", Usage: "Backup, copy and restore jobs", Ops: jobs},
	{Name: "recovery", Usage: "Recovery points and protected resources", Ops: recovery},
	{Name: "settings", Usage: "Account and region settings", Ops: settings},
	{Name: "tags", Usage: "Resource tags", Ops: tags},
	{Name: "audit", Usage: "Audit frameworks and report plans", Ops: audit},
	{Name: "legal-holds", Usage: "Legal holds", Ops: legalHolds},
}

var index = func() map[string]*operation.Descriptor {
	m := map[string]*operation.Descriptor{}
	for _, f := range families {
		for _, d := range f.Ops {
			m[strings.ToLower(d.Name)] = d
			m[d.CommandName()] = d
		}
	}
	return m
}()

// Families returns the operation families in display order.
func Families() []Family {
	return families
}

// All returns every descriptor sorted by command name.
func All() []*operation.Descriptor {
	var all []*operation.Descriptor
	for _, f := range families {
		all = append(all, f.Ops...)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CommandName() < all[j].CommandName()
	})
	return all
}

// Lookup finds a descriptor by API name or command name.
func Lookup(name string) (*operation.Descriptor, bool) {
	if d, ok := index[name]; ok {
		return d, true
	}
	d, ok := index[strings.ToLower(name)]
	return d, ok
}

// FamilyOf returns the family name of a descriptor.
func FamilyOf(d *operation.Descriptor) string {
	for _, f := range families {
		for _, op := range f.Ops {
			if op == d {
				return f.Name
			}
		}
	}
	return ""
}

// Param constructors keep the tables below readable.

func str(name, usage string) operation.Param {
	return operation.Param{Name: name, Kind: operation.String, Usage: usage}
}

func integer(name, usage string) operation.Param {
	return operation.Param{Name: name, Kind: operation.Int, Usage: usage}
}

func boolean(name, usage string) operation.Param {
	return operation.Param{Name: name, Kind: operation.Bool, Usage: usage}
}

func timestamp(name, usage string) operation.Param {
	return operation.Param{Name: name, Kind: operation.Time, Usage: usage}
}

func list(name, usage string) operation.Param {
	return operation.Param{Name: name, Kind: operation.List, Usage: usage}
}

func strmap(name, usage string) operation.Param {
	return operation.Param{Name: name, Kind: operation.Map, Usage: usage}
}

func boolmap(name, usage string) operation.Param {
	return operation.Param{Name: name, Kind: operation.BoolMap, Usage: usage}
}

func document(name, usage string) operation.Param {
	return operation.Param{Name: name, Kind: operation.Document, Usage: usage}
}

func required(p operation.Param) operation.Param {
	p.Required = true
	return p
}

// positional marks the parameter as the command argument. It is required.
func positional(p operation.Param) operation.Param {
	p.Required = true
	p.Positional = true
	return p
}

func enum(p operation.Param, values ...string) operation.Param {
	p.Enum = values
	return p
}

var nextToken = &operation.Paging{InputToken: "NextToken", OutputToken: "NextToken", Limit: "MaxResults"}

// paged appends the continuation token and page size parameters.
func paged(params ...operation.Param) []operation.Param {
	return append(params,
		str("NextToken", "continuation token from a previous page"),
		integer("MaxResults", "maximum number of items per page"),
	)
}

func params(ps ...operation.Param) []operation.Param {
	return ps
}

var (
	backupJobStates   = []string{"CREATED", "PENDING", "RUNNING", "ABORTING", "ABORTED", "COMPLETED", "FAILED", "EXPIRED", "PARTIAL"}
	copyJobStates     = []string{"CREATED", "RUNNING", "COMPLETED", "FAILED", "PARTIAL"}
	restoreJobStates  = []string{"PENDING", "RUNNING", "COMPLETED", "ABORTED", "FAILED"}
	summaryPeriods    = []string{"ONE_DAY", "SEVEN_DAYS", "FOURTEEN_DAYS"}
	summaryJobStates  = []string{"CREATED", "PENDING", "RUNNING", "ABORTING", "ABORTED", "COMPLETED", "FAILED", "EXPIRED", "PARTIAL", "AGGREGATE_ALL", "ANY"}
	reportJobStatuses = []string{"CREATED", "RUNNING", "COMPLETED", "FAILED"}
)
