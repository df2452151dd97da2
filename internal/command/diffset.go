// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/toolbox/internal/lineset"
	"github.com/tfctl/toolbox/internal/log"
	"github.com/tfctl/toolbox/internal/meta"
	"github.com/tfctl/toolbox/internal/output"
)

const diffsetUsage = `Usage:   diffset file1 op file2
where op = [intersect, union, diff]

Example: diffset a.txt intersect b.txt       # shows intersection of 2 files, a.txt and b.txt`

// diffsetCommandAction loads both files, applies the requested operation to
// the first set and writes the result followed by the summary block. Both
// files are read before the operation token is checked.
func diffsetCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	args := cmd.Args().Slice()
	if len(args) != 3 {
		return &UsageError{}
	}
	file1, token, file2 := args[0], args[1], args[2]

	s1, err := lineset.Load(file1)
	if err != nil {
		return err
	}
	s2, err := lineset.Load(file2)
	if err != nil {
		return err
	}
	n1, n2 := s1.Len(), s2.Len()

	op, err := lineset.ParseOp(token)
	if err != nil {
		return err
	}
	if err := op.Apply(s1, s2); err != nil {
		return err
	}
	log.Debugf("applied %s: set1=%d set2=%d result=%d", op, n1, n2, s1.Len())

	lines := s1.Lines()
	output.SortLines(lines, cmd.String("sort"))

	return output.Spit(cmd.Root().Writer, output.Report{
		Operation: string(op),
		Result:    lines,
		Set1:      n1,
		Set2:      n2,
		Count:     s1.Len(),
	}, output.Options{
		Format: cmd.String("output"),
		Color:  cmd.Bool("color"),
		Quiet:  cmd.Bool("quiet"),
	})
}

// NewDiffsetCommand builds the diffset root command.
func NewDiffsetCommand(m meta.Meta) *cli.Command {
	return newRootCommand(m, &cli.Command{
		Name:      "diffset",
		Usage:     "intersect, union or diff the distinct lines of two files",
		UsageText: "diffset [options] file1 intersect|union|diff file2",
		Flags:     NewDiffsetFlags(m.Config.Source),
		Action:    diffsetCommandAction,
	})
}
