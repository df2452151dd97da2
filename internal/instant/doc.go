// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package instant converts between epoch milliseconds and ISO-8601 instants.
// Convert detects the input representation with an ordered fallback (integer
// first, instant second) and returns a tagged Result instead of an error.
package instant
