// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package paramfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/ext/tryfunc"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/bkctl/internal/log"
)

// Load reads a parameter file. The format follows the extension: .json,
// .yaml/.yml or .hcl. "-" reads JSON or YAML from stdin.
func Load(path string) (map[string]any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read parameter file: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes parameter file content. name selects the format the same way
// Load does; anything that is not .json or .hcl is read as YAML, which also
// covers JSON.
func Parse(name string, data []byte) (map[string]any, error) {
	var (
		params map[string]any
		err    error
	)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		// Numbers stay json.Number so account IDs and int64 bounds survive.
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&params)
	case ".hcl":
		params, err = parseHCL(name, data)
	default:
		err = yaml.Unmarshal(data, &params)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid parameter file %s: %w", name, err)
	}
	if params == nil {
		params = map[string]any{}
	}

	log.Debugf("parameter file: name=%s, params=%d", name, len(params))
	return params, nil
}

// parseHCL evaluates the top level attributes of an HCL file. Expressions
// may use env.NAME and a set of standard functions, e.g.
//
//	BackupVaultName = "prod-${env.STAGE}"
//	Policy          = jsonencode({ Version = "2012-10-17", Statement = [] })
func parseHCL(name string, data []byte) (map[string]any, error) {
	file, diags := hclsyntax.ParseConfig(data, name, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, diags
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envObject()},
		Functions: functions(),
	}

	params := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			return nil, diags
		}
		params[name] = ctyValueToGo(val)
	}
	return params, nil
}

// envObject exposes the process environment to HCL expressions.
func envObject() cty.Value {
	vals := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" || !hclsyntax.ValidIdentifier(k) {
			continue
		}
		vals[k] = cty.StringVal(v)
	}
	return cty.ObjectVal(vals)
}

func functions() map[string]function.Function {
	return map[string]function.Function{
		"concat":     stdlib.ConcatFunc,
		"contains":   stdlib.ContainsFunc,
		"distinct":   stdlib.DistinctFunc,
		"flatten":    stdlib.FlattenFunc,
		"format":     stdlib.FormatFunc,
		"formatdate": stdlib.FormatDateFunc,
		"join":       stdlib.JoinFunc,
		"jsondecode": stdlib.JSONDecodeFunc,
		"jsonencode": stdlib.JSONEncodeFunc,
		"keys":       stdlib.KeysFunc,
		"length":     stdlib.LengthFunc,
		"lookup":     stdlib.LookupFunc,
		"lower":      stdlib.LowerFunc,
		"merge":      stdlib.MergeFunc,
		"replace":    stdlib.ReplaceFunc,
		"split":      stdlib.SplitFunc,
		"timeadd":    stdlib.TimeAddFunc,
		"trimspace":  stdlib.TrimSpaceFunc,
		"upper":      stdlib.UpperFunc,
		"try":        tryfunc.TryFunc,
		"can":        tryfunc.CanFunc,
	}
}

// ctyValueToGo converts an evaluated value to the plain Go values the
// request builder coerces.
func ctyValueToGo(val cty.Value) any {
	if val.IsNull() || !val.IsKnown() {
		return nil
	}

	ty := val.Type()
	switch {
	case ty == cty.Bool:
		return val.True()
	case ty == cty.Number:
		bf := val.AsBigFloat()
		if bf.IsInt() {
			i, _ := bf.Int64()
			return i
		}
		f, _ := bf.Float64()
		return f
	case ty == cty.String:
		return val.AsString()
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		result := []any{}
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			result = append(result, ctyValueToGo(elem))
		}
		return result
	case ty.IsObjectType() || ty.IsMapType():
		result := map[string]any{}
		for it := val.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			result[key.AsString()] = ctyValueToGo(elem)
		}
		return result
	default:
		return fmt.Sprintf("%#v", val)
	}
}
