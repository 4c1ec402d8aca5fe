// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//nolint:revive // We use _ in field names to disambiguate them from methods, while still exporting them.
package main

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"github.com/bufbuild/enumx/internal/ext/slicesx"
)

// Enum is a single enum type to generate, as it appears in a config file.
type Enum struct {
	Name    string   `yaml:"name"`  // The name of the new type.
	Type    string   `yaml:"type"`  // The underlying type.
	Docs    string   `yaml:"docs"`  // Documentation for the type.
	Total   string   `yaml:"total"` // The name of the "total values" constant.
	Methods []Method `yaml:"methods"`
	Values_ []Value  `yaml:"values"`
}

// Values returns this enum's values, with their back-references filled in.
func (e *Enum) Values() []Value {
	var next int
	for i := range e.Values_ {
		v := &e.Values_[i]
		v.Parent = e
		v.Idx = i
		if v.Alias == "" {
			v.Number = next
			next++
		}
	}
	return e.Values_
}

// Count returns the number of distinct (non-alias) values.
func (e *Enum) Count() int {
	var n int
	for _, v := range e.Values_ {
		if v.Alias == "" {
			n++
		}
	}
	return n
}

// TotalName returns the name of the constant holding [Enum.Count].
func (e *Enum) TotalName() string {
	if e.Total != "" {
		return e.Total
	}
	return "total" + e.Name
}

type Value struct {
	Name  string `yaml:"name"`  // The name of the value.
	Alias string `yaml:"alias"` // Another value this value aliases, if any.
	Docs  string `yaml:"docs"`  // Documentation for the value.

	Parent *Enum `yaml:"-"`
	Idx    int   `yaml:"-"`
	Number int   `yaml:"-"` // Meaningless for aliases.
}

// HasSuffixDocs returns whether this value's docs fit on the same line as
// the value.
func (v Value) HasSuffixDocs() bool {
	next, ok := slicesx.Get(v.Parent.Values_, v.Idx+1)
	return v.Docs != "" && !strings.Contains(v.Docs, "\n") && (!ok || next.Docs != "")
}

type Method struct {
	Kind  MethodKind `yaml:"kind"` // The kind of method to generate.
	Name_ string     `yaml:"name"` // The method's name; optional for some methods.
	Docs_ string     `yaml:"docs"` // Documentation for the method.
}

func (m Method) Name() (string, error) {
	if m.Name_ != "" {
		return m.Name_, nil
	}

	switch m.Kind {
	case MethodAll:
		return "", fmt.Errorf("missing name for kind: %#v", MethodAll)
	case MethodValid:
		return "IsValid", nil
	default:
		return "", fmt.Errorf("unexpected kind: %#v", m.Kind)
	}
}

func (m Method) Docs() string {
	if m.Docs_ != "" {
		return m.Docs_
	}

	name, _ := m.Name()
	switch m.Kind {
	case MethodValid:
		return name + " returns whether this is one of the declared values."
	case MethodAll:
		return name + " returns an iterator over all declared values, in order."
	default:
		return ""
	}
}

type MethodKind string

const (
	MethodValid MethodKind = "valid"
	MethodAll   MethodKind = "all"
)

// bitWidths maps each integer type an enum may be declared with to its
// width, with signed types negated. int, uint and uintptr are taken to be 32
// bits wide, so that generated code compiles for every GOARCH.
var bitWidths = map[string]int{
	"int": -32, "int8": -8, "int16": -16, "int32": -32, "int64": -64,
	"uint": 32, "uint8": 8, "uint16": 16, "uint32": 32, "uint64": 64,
	"byte": 8, "uintptr": 32,
}

// maxCount returns the largest number of values an enum with the given
// underlying type may have. The end position, which is equal to the count,
// must be representable.
func maxCount(typ string) (uint64, bool) {
	width, ok := bitWidths[typ]
	if !ok {
		return 0, false
	}
	if width < 0 {
		width = -width - 1
	}
	return uint64(1)<<width - 1, true
}

// Declared returns every package-level identifier the generated code for e
// declares.
func (e *Enum) Declared() []string {
	names := []string{e.Name, e.TotalName()}
	for _, v := range e.Values_ {
		names = append(names, v.Name)
	}
	for _, m := range e.Methods {
		if name, err := m.Name(); err == nil && m.Kind == MethodAll {
			names = append(names, name)
		}
	}
	return names
}

// Validate checks that e describes a well-formed contiguous enum.
func (e *Enum) Validate() error {
	if !token.IsIdentifier(e.Name) {
		return fmt.Errorf("invalid enum name %q", e.Name)
	}
	limit, ok := maxCount(e.Type)
	if !ok {
		return fmt.Errorf("%s: underlying type %q is not an integer type", e.Name, e.Type)
	}
	if !token.IsIdentifier(e.TotalName()) {
		return fmt.Errorf("%s: invalid total constant name %q", e.Name, e.TotalName())
	}

	n := e.Count()
	if n == 0 {
		return fmt.Errorf("%s: enum has no values", e.Name)
	}
	if uint64(n) > limit {
		return fmt.Errorf("%s: %d values do not fit in %s", e.Name, n, e.Type)
	}

	seen := map[string]*Value{e.Name: nil, e.TotalName(): nil}
	var errs []error
	for i := range e.Values() {
		v := &e.Values_[i]
		if !token.IsIdentifier(v.Name) {
			errs = append(errs, fmt.Errorf("%s: invalid value name %q", e.Name, v.Name))
			continue
		}
		if _, dup := seen[v.Name]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate name %q", e.Name, v.Name))
			continue
		}
		if v.Alias != "" {
			target, ok := seen[v.Alias]
			switch {
			case !ok || target == nil:
				errs = append(errs, fmt.Errorf("%s: %s aliases unknown or later value %q", e.Name, v.Name, v.Alias))
			case target.Alias != "":
				errs = append(errs, fmt.Errorf("%s: %s aliases %s, which is itself an alias", e.Name, v.Name, v.Alias))
			}
		}
		seen[v.Name] = v
	}

	methods := map[string]struct{}{"EnumCount": {}}
	for _, m := range e.Methods {
		name, err := m.Name()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.Name, err))
			continue
		}
		if !token.IsIdentifier(name) {
			errs = append(errs, fmt.Errorf("%s: invalid method name %q", e.Name, name))
			continue
		}
		switch m.Kind {
		case MethodValid:
			if _, dup := methods[name]; dup {
				errs = append(errs, fmt.Errorf("%s: duplicate method %q", e.Name, name))
			}
			methods[name] = struct{}{}
		case MethodAll:
			if _, dup := seen[name]; dup {
				errs = append(errs, fmt.Errorf("%s: duplicate name %q", e.Name, name))
			}
			seen[name] = nil
		}
	}

	return errors.Join(errs...)
}
