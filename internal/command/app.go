// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"io"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/toolbox/internal/config"
	"github.com/tfctl/toolbox/internal/log"
	"github.com/tfctl/toolbox/internal/meta"
)

// tool ties a binary's name to its usage text and command builder.
type tool struct {
	name  string
	usage string
	build func(meta.Meta) *cli.Command
}

var (
	diffsetTool = tool{name: "diffset", usage: diffsetUsage, build: NewDiffsetCommand}
	millisTool  = tool{name: "millis", usage: millisUsage, build: NewMillisCommand}
)

// RunDiffset runs the diffset tool against args (args[0] is the program name)
// and returns the process exit code.
func RunDiffset(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return run(ctx, diffsetTool, args, stdout, stderr)
}

// RunMillis runs the millis tool against args (args[0] is the program name)
// and returns the process exit code.
func RunMillis(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return run(ctx, millisTool, args, stdout, stderr)
}

func run(ctx context.Context, t tool, args []string, stdout, stderr io.Writer) int {
	// The config file is optional. A broken one is logged and ignored so the
	// tools keep working.
	cfg, err := config.Load(t.name)
	if err != nil && !errors.Is(err, config.ErrNotFound) {
		log.Warnf("config ignored: %v", err)
	}

	args = PrepareArgs(args, t.name)
	log.Debugf("args after preprocessing: args=%v", args)

	app := t.build(meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
		Tool:    t.name,
	})
	app.Writer = stdout
	app.ErrWriter = stderr

	return exitCode(app.Run(ctx, args), stderr, t.usage)
}

// newRootCommand fills in the settings both tools share. Actions report
// failures by returning errors; exitCode turns them into exit codes so the
// library's own os.Exit handling is disabled.
func newRootCommand(m meta.Meta, cmd *cli.Command) *cli.Command {
	if cmd.Metadata == nil {
		cmd.Metadata = map[string]any{}
	}
	cmd.Metadata["meta"] = m
	cmd.HideHelpCommand = true
	cmd.OnUsageError = func(_ context.Context, _ *cli.Command, err error, _ bool) error {
		return &UsageError{Reason: err.Error()}
	}
	cmd.ExitErrHandler = func(context.Context, *cli.Command, error) {}

	// Make sure flags are sorted for the --help text.
	sort.Slice(cmd.Flags, func(i, j int) bool {
		return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
	})

	return cmd
}
