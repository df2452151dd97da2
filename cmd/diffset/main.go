// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tfctl/toolbox/internal/command"
	"github.com/tfctl/toolbox/internal/log"
	"github.com/tfctl/toolbox/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if version.Requested(args) {
		fmt.Println(version.Version)
		return 0
	}

	return command.RunDiffset(ctx, args, os.Stdout, os.Stderr)
}
