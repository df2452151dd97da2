// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"
	"io"

	"github.com/tfctl/toolbox/internal/log"
)

// UsageError reports arguments of the wrong shape. The tool's usage text is
// printed after Reason, if any.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	if e.Reason == "" {
		return "invalid usage"
	}
	return e.Reason
}

// exitCode writes err, if any, to stderr and maps it to a process exit code.
func exitCode(err error, stderr io.Writer, usage string) int {
	if err == nil {
		return 0
	}

	var ue *UsageError
	if errors.As(err, &ue) {
		log.Debugf("usage err: err=%v", err)
		if ue.Reason != "" {
			fmt.Fprintln(stderr, ue.Reason)
		}
		fmt.Fprintln(stderr, usage)
		return 1
	}

	log.WithError(err).Debug("run failed")
	fmt.Fprintln(stderr, err)
	return 1
}
