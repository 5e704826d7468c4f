// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/apex/log"
)

// maxSchemaDepth limits how far nested response types are walked.
const maxSchemaDepth = 6

var timeType = reflect.TypeOf(time.Time{})

// DumpSchema writes the attr paths of a response type, relative to root, to
// w. If w is nil, os.Stdout is used. root is the operation's selected field;
// "" and "*" mean the whole response.
func DumpSchema(typ reflect.Type, root string, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	paths, err := Schema(typ, root)
	if err != nil {
		return err
	}

	fmt.Fprintln(w,
		`Attributes available to the --attrs, --filter and --sort flags. Paths are
relative to each emitted row; [] marks a list whose elements can be indexed
with [N].`)
	fmt.Fprintln(w, "")

	for _, p := range paths {
		fmt.Fprintln(w, p)
	}
	return nil
}

// Schema returns the sorted attr paths of typ below root.
func Schema(typ reflect.Type, root string) ([]string, error) {
	t := deref(typ)

	if root != "" && root != "*" {
		for _, seg := range strings.Split(root, ".") {
			if t.Kind() != reflect.Struct {
				return nil, fmt.Errorf("no field %q in %s", seg, typ)
			}
			field, ok := t.FieldByName(seg)
			if !ok {
				return nil, fmt.Errorf("no field %q in %s", seg, typ)
			}
			t = deref(field.Type)
			if t.Kind() == reflect.Slice {
				t = deref(t.Elem())
			}
		}
	}

	var paths []string
	if t.Kind() == reflect.Struct && t != timeType {
		paths = schemaWalker("", t, 0)
	}
	sort.Strings(paths)
	log.Debugf("schema: type=%s, root=%s, paths=%d", typ, root, len(paths))
	return paths, nil
}

// schemaWalker lists the exported leaves of a struct type. SDK bookkeeping
// fields are skipped.
func schemaWalker(holder string, typ reflect.Type, depth int) []string {
	var paths []string

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() || field.Name == "ResultMetadata" {
			continue
		}

		name := field.Name
		if holder != "" {
			name = holder + "." + name
		}

		ft := deref(field.Type)
		switch {
		case ft.Kind() == reflect.Struct && ft != timeType && depth < maxSchemaDepth:
			paths = append(paths, schemaWalker(name, ft, depth+1)...)
		case ft.Kind() == reflect.Slice && depth < maxSchemaDepth:
			elem := deref(ft.Elem())
			if elem.Kind() == reflect.Struct && elem != timeType {
				paths = append(paths, schemaWalker(name+"[]", elem, depth+1)...)
			} else {
				paths = append(paths, name)
			}
		default:
			paths = append(paths, name)
		}
	}

	return paths
}

func deref(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
