// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/bkctl/internal/meta"
	"github.com/tfctl/bkctl/internal/output"
)

const bashCompletionHeader = `# bash completion for bkctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_bkctl()
{
    local cur prev cmd opts
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

`

const bashCompletionFooter = `
    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "%s" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--input" ]]; then
        COMPREPLY=( $(compgen -f -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _bkctl bkctl
`

const zshCompletionFooter = `    *)
      _arguments -C '*:argument:'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _bkctl bkctl
`

// completionCommands returns the visible subcommands sorted by name.
func completionCommands(root *cli.Command) []*cli.Command {
	var cmds []*cli.Command
	for _, c := range root.Commands {
		if c.Hidden || c.Name == "help" {
			continue
		}
		cmds = append(cmds, c)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	return cmds
}

// flagWords returns every name and alias of the visible flags, dashed.
func flagWords(c *cli.Command) []string {
	var words []string
	for _, f := range c.Flags {
		if vf, ok := f.(cli.VisibleFlag); ok && !vf.IsVisible() {
			continue
		}
		for _, n := range f.Names() {
			if len(n) == 1 {
				words = append(words, "-"+n)
			} else {
				words = append(words, "--"+n)
			}
		}
	}
	return words
}

// enumFlags returns the flags whose values are fixed, keyed by flag name.
func enumFlags(c *cli.Command) map[string][]string {
	out := map[string][]string{}
	for _, f := range c.Flags {
		df, ok := f.(cli.DocGenerationFlag)
		if !ok {
			continue
		}
		usage := df.GetUsage()
		open := strings.LastIndex(usage, " (")
		if open < 0 || !strings.HasSuffix(usage, ")") {
			continue
		}
		values := strings.Split(usage[open+2:len(usage)-1], ", ")
		if len(values) < 2 || strings.ContainsAny(strings.Join(values, ""), " :") { //nolint:mnd
			continue
		}
		out[f.Names()[0]] = values
	}
	return out
}

// writeBashCompletion writes a bash completion script for the command tree.
func writeBashCompletion(w io.Writer, root *cli.Command) {
	cmds := completionCommands(root)

	var names []string
	for _, c := range cmds {
		names = append(names, c.Name)
	}

	fmt.Fprint(w, bashCompletionHeader)
	fmt.Fprintf(w, "    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(w, "        COMPREPLY=( $(compgen -W \"%s --help --version\" -- \"$cur\") )\n", strings.Join(names, " "))
	fmt.Fprintf(w, "        return 0\n    fi\n\n")
	fmt.Fprintf(w, "    cmd=${COMP_WORDS[1]}\n    case \"$cmd\" in\n")
	for _, c := range cmds {
		if c.Name == "completion" {
			fmt.Fprintf(w, "    completion)\n        COMPREPLY=( $(compgen -W \"bash zsh\" -- \"$cur\") )\n        return 0\n        ;;\n")
			continue
		}
		fmt.Fprintf(w, "    %s)\n", c.Name)
		for _, flag := range sortedKeys(enumFlags(c)) {
			fmt.Fprintf(w, "        if [[ \"$prev\" == \"--%s\" ]]; then\n", flag)
			fmt.Fprintf(w, "            COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", strings.Join(enumFlags(c)[flag], " "))
			fmt.Fprintf(w, "            return 0\n        fi\n")
		}
		fmt.Fprintf(w, "        opts=\"%s\"\n        ;;\n", strings.Join(flagWords(c), " "))
	}
	fmt.Fprintf(w, "    *)\n        opts=\"--help\"\n        ;;\n    esac\n")
	fmt.Fprintf(w, bashCompletionFooter, strings.Join(output.Formats, " "))
}

// writeZshCompletion writes a zsh completion script for the command tree.
func writeZshCompletion(w io.Writer, root *cli.Command) {
	cmds := completionCommands(root)

	fmt.Fprint(w, "#compdef bkctl\n\n_bkctl() {\n  local -a cmds\n  cmds=(\n")
	for _, c := range cmds {
		fmt.Fprintf(w, "    '%s:%s'\n", c.Name, zshEscape(c.Usage))
	}
	fmt.Fprint(w, "  )\n\n  if (( CURRENT == 2 )); then\n    _describe -t commands 'bkctl commands' cmds\n    return\n  fi\n\n")
	fmt.Fprint(w, "  local curcontext=\"$curcontext\" state line\n  case $words[2] in\n")

	for _, c := range cmds {
		fmt.Fprintf(w, "    %s)\n", c.Name)
		if c.Name == "completion" {
			fmt.Fprint(w, "      _arguments '1: :((bash zsh))'\n      ;;\n")
			continue
		}
		enums := enumFlags(c)
		fmt.Fprint(w, "      _arguments -C \\\n")
		for _, f := range c.Flags {
			if vf, ok := f.(cli.VisibleFlag); ok && !vf.IsVisible() {
				continue
			}
			name := f.Names()[0]
			usage := ""
			if df, ok := f.(cli.DocGenerationFlag); ok {
				usage = zshEscape(df.GetUsage())
			}
			action := ""
			switch {
			case name == "output":
				action = ":format:(" + strings.Join(output.Formats, " ") + ")"
			case name == "input":
				action = ":file:_files"
			case len(enums[name]) > 0:
				action = ":" + name + ":(" + strings.Join(enums[name], " ") + ")"
			}
			fmt.Fprintf(w, "        '--%s[%s]%s' \\\n", name, usage, action)
		}
		fmt.Fprint(w, "        '*:argument:'\n      ;;\n")
	}
	fmt.Fprint(w, zshCompletionFooter)
}

func zshEscape(s string) string {
	r := strings.NewReplacer("'", "'\\''", "[", "\\[", "]", "\\]", ":", "\\:")
	return r.Replace(s)
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func completionCommandAction(_ context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	w := stdout(m)

	shell := cmd.Args().First()
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		writeBashCompletion(w, cmd.Root())
	case "zsh":
		writeZshCompletion(w, cmd.Root())
	default:
		fmt.Fprintln(stderr(m), "usage: bkctl completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "bkctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
