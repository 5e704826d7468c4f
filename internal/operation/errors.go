// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package operation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
)

// ValidationError reports a parameter set that cannot produce a request. It
// is raised before any remote call.
type ValidationError struct {
	Operation string
	Missing   []string
	Unknown   []string
	Invalid   []string
	Reason    string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required parameter(s): "+strings.Join(flagNames(e.Missing), ", "))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, "unknown parameter(s): "+strings.Join(e.Unknown, ", "))
	}
	parts = append(parts, e.Invalid...)
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if len(parts) == 0 {
		parts = append(parts, "invalid parameters")
	}
	if e.Operation == "" {
		return strings.Join(parts, "; ")
	}
	return e.Operation + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) empty() bool {
	return len(e.Missing) == 0 && len(e.Unknown) == 0 && len(e.Invalid) == 0 && e.Reason == ""
}

func flagNames(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = "--" + FlagName(n)
	}
	return out
}

// ConnectivityError reports that the service endpoint could not be reached.
type ConnectivityError struct {
	Operation string
	Region    string
	Endpoint  string
	Err       error
}

func (e *ConnectivityError) Error() string {
	where := e.Endpoint
	if where == "" {
		where = "the AWS Backup endpoint for region " + e.Region
		if e.Region == "" {
			where = "the AWS Backup endpoint (no region configured)"
		}
	}
	return fmt.Sprintf("%s: could not reach %s: %v (check --region and --endpoint-url)", e.Operation, where, e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// ServiceError is an error response returned by the service. The original
// error stays reachable through errors.As.
type ServiceError struct {
	Operation string
	Err       error
}

func (e *ServiceError) Error() string {
	if code := e.Code(); code != "" {
		return fmt.Sprintf("%s: %s: %s", e.Operation, code, e.Message())
	}
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Code returns the service error code, such as ResourceNotFoundException.
func (e *ServiceError) Code() string {
	var apiErr smithy.APIError
	if errors.As(e.Err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// Message returns the service error message.
func (e *ServiceError) Message() string {
	var apiErr smithy.APIError
	if errors.As(e.Err, &apiErr) {
		return apiErr.ErrorMessage()
	}
	return e.Err.Error()
}
