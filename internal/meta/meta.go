// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/tfctl/toolbox/internal/config"
)

// Meta contains runtime metadata shared by a tool's action: the raw CLI
// arguments after preprocessing, the loaded configuration and the context the
// command was started with.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	Tool    string
}
