// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package operation

import (
	"context"
	"strconv"
	"sync"
	"time"
)

type fakeOptions struct{}

type thing struct {
	Name string
	Size int
}

type listThingsInput struct {
	VaultName    *string
	NextToken    *string
	MaxResults   *int32
	ByState      string
	CreatedAfter *time.Time
	Tags         map[string]string
	Flags        map[string]bool
	Kinds        []string
	Policy       any
	Verbose      *bool
}

type listThingsOutput struct {
	Things         []thing
	NextToken      *string
	ResultMetadata map[string]string
}

type deleteThingInput struct {
	VaultName *string
	ThingName *string
}

type deleteThingOutput struct {
	DeletedAt *time.Time
}

type fakeAPI interface {
	ListThings(ctx context.Context, in *listThingsInput, optFns ...func(*fakeOptions)) (*listThingsOutput, error)
	DeleteThing(ctx context.Context, in *deleteThingInput, optFns ...func(*fakeOptions)) (*deleteThingOutput, error)
}

// fakeClient serves ListThings pages keyed by the incoming token.
type fakeClient struct {
	mu      sync.Mutex
	pages   map[string]*listThingsOutput
	errs    map[string]error
	lists   []*listThingsInput
	deletes []*deleteThingInput
	// items, when set, are served MaxResults at a time with the offset as
	// the token. pages is ignored.
	items []thing
}

func (f *fakeClient) ListThings(_ context.Context, in *listThingsInput, _ ...func(*fakeOptions)) (*listThingsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, in)
	token := ""
	if in.NextToken != nil {
		token = *in.NextToken
	}
	if err := f.errs[token]; err != nil {
		return nil, err
	}
	if f.items != nil {
		return f.slice(token, in.MaxResults), nil
	}
	if out, ok := f.pages[token]; ok {
		return out, nil
	}
	return &listThingsOutput{}, nil
}

func (f *fakeClient) slice(token string, limit *int32) *listThingsOutput {
	start, _ := strconv.Atoi(token)
	end := len(f.items)
	if limit != nil && start+int(*limit) < end {
		end = start + int(*limit)
	}

	out := &listThingsOutput{Things: f.items[start:end]}
	if end < len(f.items) {
		out.NextToken = ptr(strconv.Itoa(end))
	}
	return out
}

func (f *fakeClient) DeleteThing(_ context.Context, in *deleteThingInput, _ ...func(*fakeOptions)) (*deleteThingOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, in)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &deleteThingOutput{DeletedAt: &at}, nil
}

func ptr[T any](v T) *T { return &v }

func listThings() *Descriptor {
	return &Descriptor{
		Name:   "ListThings",
		Select: "Things",
		Params: []Param{
			{Name: "VaultName", Kind: String, Positional: true},
			{Name: "NextToken", Kind: String},
			{Name: "MaxResults", Kind: Int},
			{Name: "ByState", Kind: String, Enum: []string{"CREATED", "FAILED"}},
			{Name: "CreatedAfter", Kind: Time},
			{Name: "Tags", Kind: Map},
			{Name: "Flags", Kind: BoolMap},
			{Name: "Kinds", Kind: List},
			{Name: "Policy", Kind: Document},
			{Name: "Verbose", Kind: Bool},
		},
		Paging:   &Paging{InputToken: "NextToken", OutputToken: "NextToken", Limit: "MaxResults"},
		PassThru: "VaultName",
		Binding:  Bind(fakeAPI.ListThings),
	}
}

func deleteThing() *Descriptor {
	return &Descriptor{
		Name: "DeleteThing",
		Params: []Param{
			{Name: "VaultName", Kind: String, Required: true},
			{Name: "ThingName", Kind: String, Required: true, Positional: true},
		},
		Impact:   ImpactHigh,
		Target:   []string{"ThingName"},
		PassThru: "ThingName",
		Binding:  Bind(fakeAPI.DeleteThing),
	}
}

type recordSink struct {
	results  []Result
	warnings []string
	err      error
}

func (s *recordSink) Emit(_ context.Context, r Result) error {
	s.results = append(s.results, r)
	return s.err
}

func (s *recordSink) Warn(msg string) {
	s.warnings = append(s.warnings, msg)
}

type countingConfirmer struct {
	answer  bool
	prompts []Prompt
}

func (c *countingConfirmer) Confirm(_ context.Context, p Prompt) (bool, error) {
	c.prompts = append(c.prompts, p)
	return c.answer, nil
}
