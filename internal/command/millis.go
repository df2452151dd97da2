// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/toolbox/internal/instant"
	"github.com/tfctl/toolbox/internal/log"
	"github.com/tfctl/toolbox/internal/meta"
)

const millisUsage = `Usage:   millis timestamp-or-date
Example: millis 1707916432177
Example: millis 2024-02-14T13:13:52.177Z`

// millisCommandAction converts its single argument between epoch millis and
// an ISO-8601 instant and prints exactly one line.
func millisCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	args := cmd.Args().Slice()
	if len(args) != 1 {
		return &UsageError{}
	}

	r := instant.Convert(args[0])
	if !r.Valid() {
		return &UsageError{Reason: "Cannot parse: " + args[0]}
	}
	log.Debugf("converted: kind=%s millis=%d", r.Kind, r.Millis)

	opts := instant.Options{Relative: cmd.Bool("relative")}
	if cmd.Bool("local") {
		opts.Location = time.Local
	}

	_, err := fmt.Fprintln(cmd.Root().Writer, r.Render(opts))
	return err
}

// NewMillisCommand builds the millis root command.
func NewMillisCommand(m meta.Meta) *cli.Command {
	return newRootCommand(m, &cli.Command{
		Name:      "millis",
		Usage:     "convert between epoch milliseconds and ISO-8601 instants",
		UsageText: "millis [options] timestamp-or-date",
		Flags:     NewMillisFlags(m.Config.Source),
		Action:    millisCommandAction,
	})
}
