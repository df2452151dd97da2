// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders diffset reports as plain text, JSON or YAML. The
// text form is the result lines followed by a blank line and three summary
// lines; the summary may be styled with lipgloss when writing to a terminal.
package output
