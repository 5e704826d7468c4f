// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/bkctl/internal/attrs"
	"github.com/tfctl/bkctl/internal/config"
	"github.com/tfctl/bkctl/internal/driller"
	"github.com/tfctl/bkctl/internal/filters"
	"github.com/tfctl/bkctl/internal/operation"
)

// Formats accepted by --output.
var Formats = []string{"text", "json", "yaml", "raw"}

// Options are the output flags of a command.
type Options struct {
	Format  string
	Attrs   string
	Filter  string
	Sort    string
	Titles  bool
	Color   bool
	Local   bool
	Padding int
	// Defaults are the operation's default attrs. They shape text output and
	// are merged with Attrs when the user gives any.
	Defaults []string
	Out      io.Writer
	Err      io.Writer
}

// Emitter renders operation results. It implements operation.Sink. When a
// sort is requested rows are buffered until Flush.
//
// Unsorted results stream one document per page: json writes one compact
// line per page (NDJSON) and yaml separates pages with "---". A sort buffers
// every page into a single document.
type Emitter struct {
	opts      Options
	textAttrs attrs.AttrList
	dataAttrs attrs.AttrList
	buffered  []gjson.Result
	warned    map[string]bool
	yamlDocs  int
}

var _ operation.Sink = (*Emitter)(nil)

// NewEmitter validates opts and returns an Emitter.
func NewEmitter(opts Options) (*Emitter, error) {
	if opts.Format == "" {
		opts.Format = "text"
	}
	if !isFormat(opts.Format) {
		return nil, fmt.Errorf("invalid output format %q (want one of %s)", opts.Format, strings.Join(Formats, ", "))
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}

	textAttrs, err := attrs.New(append(append([]string{}, opts.Defaults...), opts.Attrs)...)
	if err != nil {
		return nil, err
	}

	var dataAttrs attrs.AttrList
	if opts.Attrs != "" {
		dataAttrs = textAttrs
	}

	// --local forces a time transform on everything. Values that are not
	// timestamps pass through unchanged. dataAttrs shares textAttrs.
	if opts.Local {
		for i := range textAttrs {
			textAttrs[i].TransformSpec += "t"
		}
	}

	log.Debugf("emitter: format=%s, attrs=%s, filter=%s, sort=%s", opts.Format, textAttrs.String(), opts.Filter, opts.Sort)

	return &Emitter{
		opts:      opts,
		textAttrs: textAttrs,
		dataAttrs: dataAttrs,
		warned:    map[string]bool{},
	}, nil
}

func isFormat(f string) bool {
	for _, ok := range Formats {
		if f == ok {
			return true
		}
	}
	return false
}

// Warn writes a warning to the error stream once per distinct message.
func (e *Emitter) Warn(msg string) {
	if e.warned[msg] {
		return
	}
	e.warned[msg] = true
	log.Warn(msg)
	fmt.Fprintf(e.opts.Err, "warning: %s\n", msg)
}

// Emit renders one result.
func (e *Emitter) Emit(_ context.Context, r operation.Result) error {
	if r.NextToken != "" {
		fmt.Fprintf(e.opts.Err, "next token: %s\n", r.NextToken)
	}

	value := r.Value
	if !value.Exists() {
		return nil
	}

	if e.opts.Format == "raw" {
		_, err := fmt.Fprintln(e.opts.Out, value.Raw)
		return err
	}

	if !value.IsArray() && !value.IsObject() {
		return e.scalar(value)
	}

	rows := filters.FilterDataset(value, e.textAttrs, e.opts.Filter, e.Warn)

	if e.opts.Sort != "" {
		e.buffered = append(e.buffered, rows...)
		return nil
	}

	if value.IsObject() {
		if len(rows) == 0 {
			return nil
		}
		return e.object(rows[0])
	}

	return e.rows(rows)
}

// Flush renders buffered rows. It is a no-op unless a sort was requested.
func (e *Emitter) Flush() error {
	if e.opts.Sort == "" || e.opts.Format == "raw" {
		return nil
	}

	rows := e.buffered
	e.buffered = nil
	SortRows(rows, e.textAttrs, e.opts.Sort)

	return e.rows(rows)
}

// scalar writes a single non-composite value.
func (e *Emitter) scalar(value gjson.Result) error {
	switch e.opts.Format {
	case "json":
		_, err := fmt.Fprintln(e.opts.Out, value.Raw)
		return err
	case "yaml":
		return e.yaml(value.Value())
	default:
		_, err := fmt.Fprintln(e.opts.Out, value.String())
		return err
	}
}

// object writes one object. Text renders it as key/value lines.
func (e *Emitter) object(row gjson.Result) error {
	switch e.opts.Format {
	case "json":
		return e.json(e.shape(row, e.dataAttrs))
	case "yaml":
		return e.yaml(e.shape(row, e.dataAttrs))
	}

	var pairs [][]string
	if len(e.dataAttrs.Included()) > 0 {
		for _, attr := range e.dataAttrs.Included() {
			v := attr.Transform(driller.Driller(row.Raw, attr.Key).Value())
			pairs = append(pairs, []string{attr.OutputKey, InterfaceToString(v, "-")})
		}
	} else {
		for _, kv := range Flatten(row) {
			v := kv[1]
			if e.opts.Local {
				v = InterfaceToString((&attrs.Attr{TransformSpec: "t"}).Transform(v))
			}
			pairs = append(pairs, []string{kv[0], v})
		}
	}

	var headers []string
	if e.opts.Titles {
		headers = []string{"KEY", "VALUE"}
	}
	e.table(headers, pairs)
	return nil
}

// rows writes a list of rows.
func (e *Emitter) rows(rows []gjson.Result) error {
	switch e.opts.Format {
	case "json":
		return e.json(e.shapeAll(rows))
	case "yaml":
		return e.yaml(e.shapeAll(rows))
	}

	if len(rows) == 0 {
		return nil
	}

	if !rows[0].IsObject() {
		for _, row := range rows {
			fmt.Fprintln(e.opts.Out, row.String())
		}
		return nil
	}

	cols := e.textAttrs.Included()
	if len(cols) == 0 {
		for _, c := range driller.Columns(rows[0]) {
			attr := attrs.Attr{Key: c, OutputKey: c, Include: true}
			if e.opts.Local {
				attr.TransformSpec = "t"
			}
			cols = append(cols, attr)
		}
	}

	var cells [][]string
	for _, row := range rows {
		line := make([]string, 0, len(cols))
		for _, attr := range cols {
			v := attr.Transform(driller.Driller(row.Raw, attr.Key).Value())
			line = append(line, InterfaceToString(v, "-"))
		}
		cells = append(cells, line)
	}

	var headers []string
	if e.opts.Titles {
		for _, attr := range cols {
			headers = append(headers, attr.OutputKey)
		}
	}
	e.table(headers, cells)
	return nil
}

// shape returns a row as plain data. Without attrs the whole row is kept.
func (e *Emitter) shape(row gjson.Result, list attrs.AttrList) interface{} {
	included := list.Included()
	if len(included) == 0 {
		return row.Value()
	}

	out := make(map[string]interface{}, len(included))
	for _, attr := range included {
		out[attr.OutputKey] = attr.Transform(driller.Driller(row.Raw, attr.Key).Value())
	}
	return out
}

func (e *Emitter) shapeAll(rows []gjson.Result) []interface{} {
	out := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		out = append(out, e.shape(row, e.dataAttrs))
	}
	return out
}

func (e *Emitter) json(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode json output: %w", err)
	}
	_, err = fmt.Fprintln(e.opts.Out, string(b))
	return err
}

func (e *Emitter) yaml(v interface{}) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode yaml output: %w", err)
	}
	if e.yamlDocs > 0 {
		if _, err := io.WriteString(e.opts.Out, "---\n"); err != nil {
			return err
		}
	}
	e.yamlDocs++
	_, err = e.opts.Out.Write(b)
	return err
}

// table renders cells with hidden borders, honoring --color, --titles and
// --padding.
func (e *Emitter) table(headers []string, cells [][]string) {
	if len(cells) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if e.opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	pad := e.opts.Padding
	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(cells...)

	if len(headers) > 0 {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}
	fmt.Fprintln(e.opts.Out, t)
}

// Flatten lists the leaves of an object as path/value pairs in document
// order. Array elements are indexed.
func Flatten(v gjson.Result) [][2]string {
	var out [][2]string
	var walk func(prefix string, v gjson.Result)
	walk = func(prefix string, v gjson.Result) {
		switch {
		case v.IsObject():
			v.ForEach(func(key, value gjson.Result) bool {
				p := key.String()
				if prefix != "" {
					p = prefix + "." + p
				}
				walk(p, value)
				return true
			})
		case v.IsArray():
			arr := v.Array()
			if len(arr) == 0 {
				out = append(out, [2]string{prefix, "[]"})
			}
			for i, e := range arr {
				walk(fmt.Sprintf("%s[%d]", prefix, i), e)
			}
		default:
			out = append(out, [2]string{prefix, InterfaceToString(v.Value(), "-")})
		}
	}
	walk("", v)
	return out
}

// InterfaceToString converts a decoded JSON value to its display form. A
// custom empty value may be provided for nil and empty values.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	switch value := value.(type) {
	case bool:
		return strconv.FormatBool(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(b)
	}
}

// getColors returns the table colors. Explicit colors come from the config
// file, otherwise defaults are picked for the terminal background.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}
