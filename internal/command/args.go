// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"strings"

	"github.com/tfctl/toolbox/internal/config"
	"github.com/tfctl/toolbox/internal/log"
)

// PrepareArgs expands an @set argument from the config and protects negative
// numbers from flag parsing. args[0] is the program name.
func PrepareArgs(args []string, ns string) []string {
	args = expandSet(args, ns)
	return guardNegativeNumbers(args)
}

// expandSet replaces the first @name argument with the whitespace-split
// entries of the config list <ns>.<name>. A missing list expands to nothing.
func expandSet(args []string, ns string) []string {
	idx := -1
	for i := 1; i < len(args); i++ {
		if args[i] == "--" {
			break
		}
		if strings.HasPrefix(args[i], "@") && len(args[i]) > 1 {
			idx = i
			break
		}
	}
	if idx == -1 {
		return args
	}

	set := args[idx][1:]
	entries, err := config.GetStringSlice(ns + "." + set)
	if err != nil {
		log.Debugf("no config set: set=%s err=%v", set, err)
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}

	out := make([]string, 0, len(args)-1+len(expanded))
	out = append(out, args[:idx]...)
	out = append(out, expanded...)
	return append(out, args[idx+1:]...)
}

// guardNegativeNumbers inserts "--" before the first argument that is a
// negative integer so it is read as a positional argument, not a flag.
func guardNegativeNumbers(args []string) []string {
	for i := 1; i < len(args); i++ {
		if args[i] == "--" {
			return args
		}
		if isNegativeNumber(args[i]) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}

func isNegativeNumber(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
