// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package operation

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/tfctl/bkctl/internal/log"
)

// Remote sends requests to the service through Client. Region and Endpoint
// are only used to explain connectivity failures.
type Remote struct {
	Client   any
	Region   string
	Endpoint string
}

// Invoke sends one request. It never retries; retry policy belongs to the
// SDK client.
func (r *Remote) Invoke(ctx context.Context, d *Descriptor, req any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debugf("invoke: %s", d.Name)
	resp, err := d.Call(ctx, r.Client, req)
	if err != nil {
		return nil, r.classify(d, err)
	}
	return resp, nil
}

func (r *Remote) classify(d *Descriptor, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var (
		apiErr  smithy.APIError
		dnsErr  *net.DNSError
		opErr   *net.OpError
		sendErr *smithyhttp.RequestSendError
	)
	switch {
	case errors.As(err, &apiErr):
		return &ServiceError{Operation: d.Name, Err: err}
	case errors.As(err, &dnsErr), errors.As(err, &opErr), errors.As(err, &sendErr):
		return &ConnectivityError{Operation: d.Name, Region: r.Region, Endpoint: r.Endpoint, Err: err}
	}
	return fmt.Errorf("%s: %w", d.Name, err)
}
