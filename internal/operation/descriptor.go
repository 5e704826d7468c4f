// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package operation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// Kind is the value type of a Param.
type Kind int

const (
	String Kind = iota
	Int
	Bool
	Time
	List
	Map
	BoolMap
	Document
)

var kindNames = map[Kind]string{
	String:   "string",
	Int:      "int",
	Bool:     "bool",
	Time:     "timestamp",
	List:     "list",
	Map:      "map",
	BoolMap:  "boolmap",
	Document: "document",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Param describes one request member a caller may bind. Name is the API
// member name and doubles as the request struct field name.
type Param struct {
	Name       string
	Kind       Kind
	Required   bool
	Positional bool
	Usage      string
	Enum       []string
}

// Flag returns the command-line flag name for the parameter.
func (p Param) Flag() string {
	return FlagName(p.Name)
}

// Impact classifies how destructive an operation is. The Mutation Guard
// prompts for operations at or above its threshold.
type Impact int

const (
	ImpactNone Impact = iota
	ImpactMedium
	ImpactHigh
)

func (i Impact) String() string {
	switch i {
	case ImpactNone:
		return "none"
	case ImpactMedium:
		return "medium"
	case ImpactHigh:
		return "high"
	}
	return fmt.Sprintf("impact(%d)", int(i))
}

// ParseImpact parses none, medium or high (case-insensitive).
func ParseImpact(s string) (Impact, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return ImpactNone, nil
	case "medium", "":
		return ImpactMedium, nil
	case "high":
		return ImpactHigh, nil
	}
	return ImpactMedium, fmt.Errorf("invalid impact %q: must be one of none, medium, high", s)
}

// Paging names the request and response members that carry the continuation
// token of a list operation.
type Paging struct {
	InputToken  string
	OutputToken string
	Limit       string
}

// CallFunc performs one remote call with an untyped client and request.
type CallFunc func(ctx context.Context, client any, req any) (any, error)

// Binding ties a descriptor to concrete request and response types and to the
// client method that sends the request.
type Binding struct {
	Request  reflect.Type
	Response reflect.Type
	Call     CallFunc
}

// Bind builds a Binding from a method expression such as API.ListBackupJobs.
// The client handed to Call at runtime must implement C.
func Bind[C, In, Out, Opt any](fn func(C, context.Context, *In, ...Opt) (*Out, error)) Binding {
	return Binding{
		Request:  reflect.TypeOf((*In)(nil)).Elem(),
		Response: reflect.TypeOf((*Out)(nil)).Elem(),
		Call: func(ctx context.Context, client any, req any) (any, error) {
			c, ok := client.(C)
			if !ok {
				return nil, fmt.Errorf("client %T does not implement %v", client, reflect.TypeOf((*C)(nil)).Elem())
			}
			in, ok := req.(*In)
			if !ok {
				return nil, fmt.Errorf("request %T is not a %T", req, (*In)(nil))
			}
			out, err := fn(c, ctx, in)
			if err != nil {
				return nil, err
			}
			return out, nil
		},
	}
}

// NewRequest returns a pointer to a zero request value.
func (b Binding) NewRequest() any {
	return reflect.New(b.Request).Interface()
}

// Descriptor is the immutable definition of one remote operation.
//
// Select is the default projection: "" emits nothing, "*" emits the whole
// response and anything else is a gjson path into the response. Target lists
// the parameters presented by the confirmation prompt. PassThru is the
// parameter echoed by the legacy --pass-thru flag.
type Descriptor struct {
	Name     string
	Command  string
	Usage    string
	Params   []Param
	Select   string
	Attrs    []string
	Paging   *Paging
	Impact   Impact
	Target   []string
	PassThru string
	Binding
}

// CommandName returns the CLI subcommand name.
func (d *Descriptor) CommandName() string {
	if d.Command != "" {
		return d.Command
	}
	return FlagName(d.Name)
}

// Param finds a parameter by API name or flag name.
func (d *Descriptor) Param(name string) (Param, bool) {
	for _, p := range d.Params {
		if p.Name == name || p.Flag() == name || strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Param{}, false
}

// Paginated reports whether the operation returns a continuation token.
func (d *Descriptor) Paginated() bool {
	return d.Paging != nil
}

// Mutating reports whether the operation changes server-side state.
func (d *Descriptor) Mutating() bool {
	return d.Impact > ImpactNone
}

// Check verifies the descriptor against its bound request and response types.
func (d *Descriptor) Check() error {
	var errs []error
	if d.Name == "" {
		return errors.New("descriptor has no name")
	}
	if d.Call == nil || d.Request == nil || d.Response == nil {
		return fmt.Errorf("%s: descriptor is not bound", d.Name)
	}

	seen := map[string]bool{}
	positional := 0
	for _, p := range d.Params {
		if seen[p.Name] {
			errs = append(errs, fmt.Errorf("%s: duplicate parameter %s", d.Name, p.Name))
		}
		seen[p.Name] = true
		if _, ok := d.Request.FieldByName(p.Name); !ok {
			errs = append(errs, fmt.Errorf("%s: %s has no field %s", d.Name, d.Request.Name(), p.Name))
		}
		if p.Positional {
			positional++
		}
	}
	if positional > 1 {
		errs = append(errs, fmt.Errorf("%s: more than one positional parameter", d.Name))
	}

	if d.Paging != nil {
		if !seen[d.Paging.InputToken] {
			errs = append(errs, fmt.Errorf("%s: paging token %s is not a parameter", d.Name, d.Paging.InputToken))
		}
		if _, ok := d.Response.FieldByName(d.Paging.OutputToken); !ok {
			errs = append(errs, fmt.Errorf("%s: %s has no field %s", d.Name, d.Response.Name(), d.Paging.OutputToken))
		}
		if d.Paging.Limit != "" && !seen[d.Paging.Limit] {
			errs = append(errs, fmt.Errorf("%s: paging limit %s is not a parameter", d.Name, d.Paging.Limit))
		}
	}

	if d.Select != "" && d.Select != "*" {
		head := strings.Split(d.Select, ".")[0]
		if _, ok := d.Response.FieldByName(head); !ok {
			errs = append(errs, fmt.Errorf("%s: select %s is not a field of %s", d.Name, d.Select, d.Response.Name()))
		}
	}

	for _, t := range d.Target {
		if !seen[t] {
			errs = append(errs, fmt.Errorf("%s: target %s is not a parameter", d.Name, t))
		}
	}
	if d.PassThru != "" && !seen[d.PassThru] {
		errs = append(errs, fmt.Errorf("%s: pass-thru %s is not a parameter", d.Name, d.PassThru))
	}
	if d.Mutating() && len(d.Target) == 0 && len(d.Params) > 0 {
		errs = append(errs, fmt.Errorf("%s: mutating operation has no confirmation target", d.Name))
	}

	return errors.Join(errs...)
}

// FlagName converts an API member name to a kebab-case flag name, keeping
// acronyms together: SNSTopicArn becomes sns-topic-arn.
func FlagName(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('-')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
