// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package operation

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// Projection selects what an invocation emits. Exactly one of WholeResponse,
// NamedField or EchoInput is active per invocation.
type Projection interface {
	fmt.Stringer
	isProjection()
}

// WholeResponse emits the complete response.
type WholeResponse struct{}

// NamedField emits the value at a gjson path in the response. An empty Path
// emits nothing.
type NamedField struct {
	Path string
}

// EchoInput emits the value bound to a parameter and ignores the response.
type EchoInput struct {
	Param string
}

func (WholeResponse) isProjection() {}
func (NamedField) isProjection()    {}
func (EchoInput) isProjection()     {}

func (WholeResponse) String() string { return "*" }
func (n NamedField) String() string  { return n.Path }
func (e EchoInput) String() string   { return "^" + e.Param }

// DefaultProjection returns the projection an operation uses when the caller
// selects nothing.
func DefaultProjection(d *Descriptor) Projection {
	if d.Select == "*" {
		return WholeResponse{}
	}
	return NamedField{Path: d.Select}
}

// ParseSelect turns the --select and --pass-thru flags into a Projection.
// "*" selects the whole response and "^Name" echoes a parameter.
func ParseSelect(d *Descriptor, sel string, passThru bool) (Projection, error) {
	sel = strings.TrimSpace(sel)
	switch {
	case sel != "" && passThru:
		return nil, &ValidationError{Operation: d.Name, Reason: "--select and --pass-thru cannot be used together"}
	case passThru:
		if d.PassThru == "" {
			return nil, &ValidationError{Operation: d.Name, Reason: "--pass-thru is not supported by this operation"}
		}
		return EchoInput{Param: d.PassThru}, nil
	case sel == "":
		return DefaultProjection(d), nil
	case sel == "*":
		return WholeResponse{}, nil
	case strings.HasPrefix(sel, "^"):
		p, ok := d.Param(sel[1:])
		if !ok {
			return nil, &ValidationError{Operation: d.Name, Reason: fmt.Sprintf("--select %s: no such parameter", sel)}
		}
		return EchoInput{Param: p.Name}, nil
	}
	return NamedField{Path: sel}, nil
}

// Project applies p to one encoded response. raw may be nil for EchoInput.
// The returned value does not exist when there is nothing to emit.
func Project(p Projection, raw []byte, set *Set) (gjson.Result, error) {
	switch t := p.(type) {
	case WholeResponse:
		return gjson.ParseBytes(raw), nil
	case NamedField:
		if t.Path == "" {
			return gjson.Result{}, nil
		}
		return gjson.GetBytes(raw, t.Path), nil
	case EchoInput:
		v, ok := set.Lookup(t.Param)
		if !ok {
			return gjson.Result{}, nil
		}
		b, err := json.Marshal(v)
		if err != nil {
			return gjson.Result{}, err
		}
		return gjson.ParseBytes(b), nil
	}
	return gjson.Result{}, fmt.Errorf("unknown projection %T", p)
}

// EncodeResponse serializes an SDK response to JSON without the SDK's
// transport metadata.
func EncodeResponse(resp any) ([]byte, error) {
	raw, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		// Not an object; nothing to strip.
		return raw, nil
	}
	if _, ok := fields["ResultMetadata"]; !ok {
		return raw, nil
	}
	delete(fields, "ResultMetadata")
	return json.Marshal(fields)
}
