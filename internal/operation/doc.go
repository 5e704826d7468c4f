// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package operation executes remote API operations described by data rather
// than by hand-written code.
//
// A Descriptor names an operation, its parameters, its default projection,
// its paging tokens and its impact. Execute takes an Invocation (descriptor,
// bound parameters, projection, paging mode and mutation guard), builds the
// request, asks the Guard for confirmation, sends the request through a
// Remote and hands projected results to a Sink. Paginated operations are
// driven by a Pager that follows continuation tokens one page at a time.
package operation
