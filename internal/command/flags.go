// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewDiffsetFlags returns the diffset flags. cfgPath is the loaded config file,
// empty when there is none.
func NewDiffsetFlags(cfgPath string) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored summary output",
			Sources: sourceChain("diffset", "color", cfgPath, "DIFFSET_COLOR"),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format (text, json, yaml)",
			Value:   "text",
			Sources: sourceChain("diffset", "output", cfgPath, "DIFFSET_OUTPUT"),
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "omit the summary block from text output",
			Sources: sourceChain("diffset", "quiet", cfgPath),
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "result order (asc, desc, none)",
			Value:   "asc",
			Sources: sourceChain("diffset", "sort", cfgPath, "DIFFSET_SORT"),
			Validator: func(value string) error {
				return FlagValidators(value, SortValidator)
			},
		},
	}
}

// NewMillisFlags returns the millis flags. cfgPath is the loaded config file,
// empty when there is none.
func NewMillisFlags(cfgPath string) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "local",
			Aliases: []string{"l"},
			Usage:   "show instants in the local time zone",
			Sources: sourceChain("millis", "local", cfgPath, "MILLIS_LOCAL"),
		},
		&cli.BoolFlag{
			Name:    "relative",
			Aliases: []string{"r"},
			Usage:   "append how long ago or from now the instant is",
			Sources: sourceChain("millis", "relative", cfgPath, "MILLIS_RELATIVE"),
		},
	}
}

// sourceChain builds a flag's value sources: environment variables first,
// then the namespaced config key, then the global config key.
func sourceChain(ns string, name string, cfgPath string, envs ...string) cli.ValueSourceChain {
	chain := cli.NewValueSourceChain()
	for _, env := range envs {
		chain.Chain = append(chain.Chain, cli.EnvVar(env))
	}

	if cfgPath == "" {
		return chain
	}

	src := yaml.YAML(ns+"."+name, altsrc.StringSourcer(cfgPath))
	chain.Chain = append(chain.Chain, src)

	src = yaml.YAML(name, altsrc.StringSourcer(cfgPath))
	chain.Chain = append(chain.Chain, src)

	return chain
}
