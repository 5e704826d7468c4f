// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"os/exec"
	"strings"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/bkctl/internal/config"
	"github.com/tfctl/bkctl/internal/operation"
)

var (
	schemaFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "schema",
		Usage:       "list the attribute paths of the response and exit",
		HideDefault: true,
	}

	tldrFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "tldr",
		Usage:       "show tldr page",
		Hidden:      !pathHas("tldr"),
		HideDefault: true,
	}
)

// NewOutputFlags returns the flags that shape how results are rendered. ns is
// the command name used to look up defaults in the config file.
func NewOutputFlags(ns string) (flags []cli.Flag) {
	flags = []cli.Flag{
		NameSpacedValueChainFlagFromConfigFile(ns, config.Path(), &cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of attributes to include in results",
		}),
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results (_Key=value is sent to the service)",
		},
		&cli.BoolFlag{
			Name:    "local",
			Aliases: []string{"l"},
			Usage:   "show local timestamps",
			Value:   false,
		},
		NameSpacedValueChainFlagFromConfigFile(ns, config.Path(), &cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format (text, json, yaml, raw)",
			Value:   "text",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("BKCTL_OUTPUT"),
			),
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		}),
		&cli.IntFlag{
			Name:  "padding",
			Usage: "spaces between text columns",
			Value: 2, //nolint:mnd
			Validator: func(value int) error {
				if value < 0 {
					return fmt.Errorf("must not be negative")
				}
				return nil
			},
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of attributes to sort the results by",
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	}

	return
}

// NewSessionFlags returns the flags that select the AWS account, region and
// endpoint. Values fall back to the environment and then the config file.
func NewSessionFlags(ns string) []cli.Flag {
	path := config.Path()
	return []cli.Flag{
		NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.StringFlag{
			Name:  "endpoint-url",
			Usage: "send requests to this endpoint instead of the AWS default",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("BKCTL_ENDPOINT_URL"),
			),
		}),
		&cli.IntFlag{
			Name:  "max-attempts",
			Usage: "maximum attempts per request, including retries (0 uses the SDK default)",
			Validator: func(value int) error {
				if value < 0 {
					return fmt.Errorf("must not be negative")
				}
				return nil
			},
		},
		NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.StringFlag{
			Name:  "profile",
			Usage: "shared config profile to use",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("BKCTL_PROFILE"),
				cli.EnvVar("AWS_PROFILE"),
			),
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.StringFlag{
			Name:  "region",
			Usage: "AWS region",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("BKCTL_REGION"),
				cli.EnvVar("AWS_REGION"),
			),
		}),
	}
}

// NewInvocationFlags returns the flags that control how an operation runs.
func NewInvocationFlags(d *operation.Descriptor) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:  "input",
			Usage: "read parameters from a JSON, YAML or HCL file (- for stdin); flags override it",
		},
		&cli.StringFlag{
			Name:  "select",
			Usage: "what to emit: * for the whole response, a response path, or ^Param to echo a parameter",
		},
	}

	if d.PassThru != "" {
		flags = append(flags, &cli.BoolFlag{
			Name:        "pass-thru",
			Usage:       fmt.Sprintf("emit --%s instead of the response (deprecated, use --select ^%s)", operation.FlagName(d.PassThru), d.PassThru),
			HideDefault: true,
		})
	}

	if d.Mutating() {
		flags = append(flags, &cli.BoolFlag{
			Name:        "force",
			Usage:       "do not ask for confirmation",
			HideDefault: true,
		})
	}

	if d.Paginated() {
		flags = append(flags, &cli.BoolFlag{
			Name:        "no-auto-iteration",
			Usage:       "fetch a single page and print the next token to stderr",
			HideDefault: true,
		})
	}

	return flags
}

// NewParamFlags returns one flag per request parameter of the operation.
func NewParamFlags(ns string, d *operation.Descriptor) []cli.Flag {
	path := config.Path()
	var flags []cli.Flag
	for _, p := range d.Params {
		usage := p.Usage
		if len(p.Enum) > 0 {
			usage = fmt.Sprintf("%s (%s)", usage, strings.Join(p.Enum, ", "))
		}
		if p.Required && !p.Positional {
			usage += " (required)"
		}

		switch p.Kind {
		case operation.Int:
			flags = append(flags, &cli.IntFlag{
				Name:  p.Flag(),
				Usage: usage,
			})
		case operation.Bool:
			flags = append(flags, &cli.BoolFlag{
				Name:        p.Flag(),
				Usage:       usage,
				HideDefault: true,
			})
		case operation.List:
			flags = append(flags, &cli.StringSliceFlag{
				Name:  p.Flag(),
				Usage: usage,
			})
		default:
			f := &cli.StringFlag{
				Name:  p.Flag(),
				Usage: usage,
			}
			if len(p.Enum) > 0 {
				enum := p.Enum
				f.Validator = func(value string) error {
					return FlagValidators(value, EnumValidator(enum))
				}
			}
			// Vault names are the one parameter worth defaulting from config.
			if p.Name == "BackupVaultName" {
				f = NameSpacedValueChainFlagFromConfigFile(ns, path, f)
			}
			flags = append(flags, f)
		}
	}
	return flags
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain. An empty path leaves the flag
// untouched.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if path == "" {
		return flag
	}

	if ns != "" {
		src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
		flag.Sources.Chain = append(flag.Sources.Chain, src)
	}

	src := yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// pathHas reports whether target is an executable on PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
