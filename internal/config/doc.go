// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for the tools' user
// configuration. The configuration is an optional YAML document, located by
// TOOLBOX_CFG_FILE or in the user's configuration directory:
//   - Linux: $XDG_CONFIG_HOME/toolbox.yaml or $HOME/.config/toolbox.yaml
//   - macOS: $HOME/Library/Application Support/toolbox.yaml
//   - Windows: %APPDATA%/toolbox.yaml
//
// Keys are namespaced by tool name, for example:
//
//	diffset:
//	  sort: desc
//	  sorted: ["--sort asc", "-o json"]
//	millis:
//	  local: true
//	colors:
//	  title: "#f6be00"
package config
