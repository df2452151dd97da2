// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/tfctl/toolbox/internal/log"
)

// Formats lists the accepted values of Options.Format.
var Formats = []string{"text", "json", "yaml"}

// Report is the outcome of one diffset run.
type Report struct {
	Operation string   `json:"operation" yaml:"operation"`
	Result    []string `json:"result" yaml:"result"`
	Set1      int      `json:"set1" yaml:"set1"`
	Set2      int      `json:"set2" yaml:"set2"`
	Count     int      `json:"count" yaml:"count"`
}

// Options control how a Report is written.
type Options struct {
	// Format is one of Formats. Empty means text.
	Format string
	// Color styles the summary block. It only takes effect when the writer is
	// a terminal.
	Color bool
	// Quiet drops the blank line and summary block from text output.
	Quiet bool
}

// Spit writes r to w in the requested format. If w is nil, os.Stdout is used.
func Spit(w io.Writer, r Report, o Options) error {
	if w == nil {
		w = os.Stdout
	}

	if r.Result == nil {
		r.Result = []string{}
	}

	switch o.Format {
	case "json":
		b, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = w.Write(b)
		return err
	case "", "text":
		return writeText(w, r, o)
	default:
		return fmt.Errorf("unsupported output format %q", o.Format)
	}
}

func writeText(w io.Writer, r Report, o Options) error {
	for _, line := range r.Result {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if o.Quiet {
		return nil
	}

	render := func(s string) string { return s }
	if o.Color && isTerminal(w) {
		style := summaryStyle()
		render = func(s string) string { return style.Render(s) }
		log.Debugf("summary styled")
	}

	_, err := fmt.Fprintf(w, "\n%s\n%s\n%s\n",
		render(fmt.Sprintf("Set1 contains %d unique elements", r.Set1)),
		render(fmt.Sprintf("Set2 contains %d unique elements", r.Set2)),
		render(fmt.Sprintf("Result set contains %d unique elements", r.Count)),
	)
	return err
}
