// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command builds the urfave/cli root commands for the diffset and
// millis tools and runs them to an exit code. Arguments are preprocessed
// before parsing: an @set argument is expanded from the config file and a
// negative number is shielded from flag parsing with "--".
package command
