// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docsgen renders markdown, man and tldr pages for every bkctl
// subcommand from the live command tree. Examples and notes come from an
// optional <docs>/examples.yaml keyed by subcommand.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/bkctl/internal/catalog"
	"github.com/tfctl/bkctl/internal/command"
)

type Extras struct {
	Subcommands map[string]Extra `yaml:"subcommands"`
}

type Extra struct {
	Description string    `yaml:"description"`
	Examples    []Example `yaml:"examples"`
	Notes       []string  `yaml:"notes,omitempty"`
}

type Flag struct {
	ID          string
	Syntax      string
	Description string
	Default     string
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type TemplateData struct {
	ID       string
	Short    string
	Usage    string
	Category string
	Flags    []Flag
	Extra
	Date    string
	Version string
	IDUpper string
}

type Outputs struct {
	Template string
	Folder   string
	Prefix   string
	Suffix   string
}

const mdTemplate = `# bkctl {{.ID}}

{{.Short}}

## Usage

` + "```" + `
{{.Usage}}
` + "```" + `
{{if .Description}}
{{.Description}}
{{end}}
## Flags

| Flag | Description | Default |
|------|-------------|---------|
{{range .Flags}}| ` + "`{{.Syntax}}`" + ` | {{.Description}} | {{.Default}} |
{{end}}{{if .Examples}}
## Examples
{{range .Examples}}
{{.Description}}

` + "```" + `
{{.Command}}
` + "```" + `
{{end}}{{end}}{{if .Notes}}
## Notes
{{range .Notes}}
- {{.}}{{end}}
{{end}}
---
bkctl {{.Version}}, {{.Date}}
`

const manTemplate = `.TH BKCTL-{{.IDUpper}} 1 "{{.Date}}" "bkctl {{.Version}}" "bkctl manual"
.SH NAME
bkctl-{{.ID}} \- {{.Short}}
.SH SYNOPSIS
.B {{.Usage}}
{{if .Description}}.SH DESCRIPTION
{{.Description}}
{{end}}.SH OPTIONS
{{range .Flags}}.TP
.B {{.Syntax}}
{{.Description}}{{if .Default}} (default: {{.Default}}){{end}}
{{end}}{{if .Examples}}.SH EXAMPLES
{{range .Examples}}.TP
{{.Description}}
.B {{.Command}}
{{end}}{{end}}`

const indexTemplate = `# bkctl commands
{{range .}}
## {{.Name}}

{{.Usage}}.

{{range .Commands}}- [{{.}}]({{.}}.md)
{{end}}{{end}}`

// IndexFamily is one operation family on the command index page.
type IndexFamily struct {
	Name     string
	Usage    string
	Commands []string
}

const tldrTemplate = `# bkctl {{.ID}}

> {{.Short}}.

{{range .Examples}}- {{.Description}}:

` + "`{{.Command}}`" + `

{{end}}`

func main() {
	if len(os.Args) < 2 { //nolint:mnd
		fmt.Fprintln(os.Stderr, "usage: docsgen <docs-dir>")
		os.Exit(1)
	}
	docs := os.Args[1]

	var extras Extras
	if data, err := os.ReadFile(filepath.Join(docs, "examples.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &extras); err != nil {
			panic(err)
		}
	}

	app, err := command.InitApp(context.Background(), []string{"bkctl"})
	if err != nil {
		panic(err)
	}

	types := []Outputs{
		{Template: mdTemplate, Folder: filepath.Join(docs, "commands"), Suffix: ".md"},
		{Template: manTemplate, Folder: filepath.Join(docs, "man", "share", "man1"), Prefix: "bkctl-", Suffix: ".1"},
		{Template: tldrTemplate, Folder: filepath.Join(docs, "tldr"), Prefix: "bkctl-", Suffix: ".md"},
	}

	date := time.Now().Format("January 2, 2006")
	version := getVersion()

	for _, sub := range app.Commands {
		if sub.Hidden {
			continue
		}

		data := TemplateData{
			ID:       sub.Name,
			Short:    sub.Usage,
			Usage:    sub.UsageText,
			Category: sub.Category,
			Flags:    flags(sub),
			Extra:    extras.Subcommands[sub.Name],
			Date:     date,
			Version:  version,
			IDUpper:  strings.ToUpper(sub.Name),
		}

		for _, t := range types {
			if err := os.MkdirAll(t.Folder, 0o755); err != nil { //nolint:mnd
				panic(err)
			}

			path := filepath.Join(t.Folder, t.Prefix+sub.Name+t.Suffix)
			fmt.Println("Generating", path)

			tmpl, err := template.New(sub.Name).Parse(t.Template)
			if err != nil {
				panic(err)
			}

			file, err := os.Create(path)
			if err != nil {
				panic(err)
			}
			if err := tmpl.Execute(file, data); err != nil {
				panic(err)
			}
			file.Close()
		}
	}

	if err := writeIndex(filepath.Join(docs, "commands", "README.md")); err != nil {
		panic(err)
	}
}

// writeIndex lists the catalog operations by family. Composite commands are
// not part of any family and only get their own pages.
func writeIndex(path string) error {
	var index []IndexFamily
	for _, f := range catalog.Families() {
		entry := IndexFamily{Name: f.Name, Usage: f.Usage}
		for _, d := range f.Ops {
			entry.Commands = append(entry.Commands, d.CommandName())
		}
		sort.Strings(entry.Commands)
		index = append(index, entry)
	}

	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Println("Generating", path)
	return tmpl.Execute(file, index)
}

// flags describes the visible flags of a subcommand, sorted by name.
func flags(sub *cli.Command) []Flag {
	var out []Flag
	for _, f := range sub.Flags {
		if vf, ok := f.(cli.VisibleFlag); ok && !vf.IsVisible() {
			continue
		}

		var syntax []string
		for _, n := range f.Names() {
			if len(n) == 1 {
				syntax = append(syntax, "-"+n)
			} else {
				syntax = append(syntax, "--"+n)
			}
		}

		flag := Flag{ID: f.Names()[0], Syntax: strings.Join(syntax, ", ")}
		if df, ok := f.(cli.DocGenerationFlag); ok {
			flag.Description = df.GetUsage()
			if df.TakesValue() {
				flag.Default = df.GetValue()
			}
		}
		out = append(out, flag)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
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
