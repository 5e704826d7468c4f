// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package operation

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/tfctl/bkctl/internal/log"
)

// State is a state of the pagination driver.
type State int

const (
	Start State = iota
	Fetching
	HasMore
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Start:
		return "start"
	case Fetching:
		return "fetching"
	case HasMore:
		return "has-more"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Pager drives a paginated operation one page at a time. Pages are fetched
// strictly in sequence because each request needs the previous token.
type Pager struct {
	inv    *Invocation
	remote *Remote
	state  State
	pages  int
	trail  []State
}

// NewPager returns a Pager in the Start state.
func NewPager(inv *Invocation, remote *Remote) *Pager {
	return &Pager{inv: inv, remote: remote, state: Start, trail: []State{Start}}
}

// State returns the current state.
func (p *Pager) State() State {
	return p.state
}

// Pages returns the number of pages fetched successfully.
func (p *Pager) Pages() int {
	return p.pages
}

// Trail returns every state visited, in order.
func (p *Pager) Trail() []State {
	return append([]State(nil), p.trail...)
}

func (p *Pager) to(s State) {
	log.Tracef("pager: %s -> %s", p.state, s)
	p.state = s
	p.trail = append(p.trail, s)
}

func (p *Pager) fail(err error) error {
	p.to(Failed)
	return err
}

// Run fetches pages until the service stops returning a token, auto
// continuation is off, or a call fails. Pages emitted before a failure stay
// emitted.
func (p *Pager) Run(ctx context.Context, sink Sink) error {
	d := p.inv.Descriptor
	paging := d.Paging
	_, echo := p.inv.Projection.(EchoInput)

	var token, lastToken string
	if v, ok := p.inv.Params.Lookup(paging.InputToken); ok && v != nil {
		token = fmt.Sprint(v)
	}

	for {
		p.to(Fetching)

		set := p.inv.Params.Clone()
		if token != "" {
			set.Bind(paging.InputToken, token)
		}
		if p.inv.Augmenter != nil {
			if err := p.inv.Augmenter(ctx, set); err != nil {
				return p.fail(err)
			}
		}
		req, warnings, err := Build(d, set)
		if err != nil {
			return p.fail(err)
		}
		if p.pages == 0 {
			for _, w := range warnings {
				sink.Warn(w)
			}
		}

		resp, err := p.remote.Invoke(ctx, d, req)
		if err != nil {
			return p.fail(err)
		}
		p.pages++

		raw, err := EncodeResponse(resp)
		if err != nil {
			return p.fail(err)
		}
		next := gjson.GetBytes(raw, paging.OutputToken).String()

		if next != "" && (next == token || next == lastToken) {
			sink.Warn(fmt.Sprintf("%s: service returned a repeated continuation token; stopping after page %d", d.Name, p.pages))
			next = ""
		}

		var reported string
		if !p.inv.Auto {
			reported = next
		}

		if !echo {
			value, err := Project(p.inv.Projection, raw, set)
			if err != nil {
				return p.fail(err)
			}
			if value.Exists() || reported != "" {
				if err := sink.Emit(ctx, Result{Operation: d.Name, Page: p.pages, Value: value, NextToken: reported}); err != nil {
					return p.fail(err)
				}
			}
		}

		if next == "" || !p.inv.Auto {
			p.to(Done)
			if echo {
				return p.emitEcho(ctx, sink, reported)
			}
			return nil
		}

		p.to(HasMore)
		lastToken, token = token, next
	}
}

func (p *Pager) emitEcho(ctx context.Context, sink Sink, next string) error {
	value, err := Project(p.inv.Projection, nil, p.inv.Params)
	if err != nil {
		return err
	}
	return sink.Emit(ctx, Result{Operation: p.inv.Descriptor.Name, Value: value, NextToken: next})
}
