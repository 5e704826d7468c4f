// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package catalog is the operation table for AWS Backup. Each entry is an
// operation.Descriptor bound to a method of the API interface, which the SDK
// client satisfies. Adding an operation means adding a descriptor here and
// the method to API; the command surface picks it up from All.
package catalog
