// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// docsgen writes a markdown page per tool from the live command definitions.
//
//	go run ./tools/docsgen docs
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/toolbox/internal/command"
	"github.com/tfctl/toolbox/internal/meta"
)

type Flag struct {
	Syntax      string
	Description string
	Env         string
}

type TemplateData struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []Flag
	Date      string
	Version   string
}

const page = `# {{ .Name }}

{{ .Usage }}

` + "```" + `
{{ .UsageText }}
` + "```" + `
{{ if .Flags }}
## Options

| Option | Description | Environment |
|---|---|---|
{{- range .Flags }}
| ` + "`{{ .Syntax }}`" + ` | {{ .Description }} | {{ .Env }} |
{{- end }}
{{ end }}
_Generated {{ .Date }} for {{ .Version }}._
`

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <output-dir>")
		os.Exit(1)
	}
	docs := os.Args[1]

	tmpl := template.Must(template.New("page").Parse(page))

	if err := os.MkdirAll(docs, 0o755); err != nil {
		panic(err)
	}

	for _, cmd := range []*cli.Command{
		command.NewDiffsetCommand(meta.Meta{Tool: "diffset"}),
		command.NewMillisCommand(meta.Meta{Tool: "millis"}),
	} {
		path := filepath.Join(docs, cmd.Name+".md")
		fmt.Println("Generating", path)

		file, err := os.Create(path)
		if err != nil {
			panic(err)
		}

		if err := tmpl.Execute(file, templateData(cmd)); err != nil {
			panic(err)
		}

		file.Close()
	}
}

func templateData(cmd *cli.Command) TemplateData {
	data := TemplateData{
		Name:      cmd.Name,
		Usage:     cmd.Usage,
		UsageText: cmd.UsageText,
		Date:      time.Now().Format("January 2, 2006"),
		Version:   getVersion(),
	}

	for _, f := range cmd.Flags {
		var syntax []string
		for _, n := range f.Names() {
			if len(n) == 1 {
				syntax = append(syntax, "-"+n)
			} else {
				syntax = append(syntax, "--"+n)
			}
		}

		flag := Flag{Syntax: strings.Join(syntax, ", ")}
		if df, ok := f.(cli.DocGenerationFlag); ok {
			flag.Description = df.GetUsage()
			flag.Env = strings.Join(df.GetEnvVars(), ", ")
			if df.TakesValue() {
				flag.Syntax += " <value>"
			}
		}
		data.Flags = append(data.Flags, flag)
	}

	return data
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
