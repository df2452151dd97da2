// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package lineset turns text files into sets of distinct, trimmed, non-blank
// lines and applies intersect, union and diff to them. Operations mutate the
// receiving set in place so callers must capture sizes they care about
// beforehand.
package lineset
