// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package style compiles the style sheet used by the view transformer.
//
// A Sheet maps a fixed set of targets (one per markdown construct) to an
// opaque Fragment. The transformer only ever stacks fragments in order; it
// never looks inside them, so a fragment can carry whatever the host
// toolkit understands.
package style // import "github.com/ZermattTourismus/easymarkdown/style"

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// Target names a styled construct.
type Target string

const (
	Block           Target = "block"
	Image           Target = "image"
	H1              Target = "h1"
	H2              Target = "h2"
	H3              Target = "h3"
	H4              Target = "h4"
	H5              Target = "h5"
	H6              Target = "h6"
	Text            Target = "text"
	Strong          Target = "strong"
	Em              Target = "em"
	Del             Target = "del"
	LinkWrapper     Target = "linkWrapper"
	Link            Target = "link"
	List            Target = "list"
	ListItem        Target = "listItem"
	ListItemContent Target = "listItemContent"
	ListItemBullet  Target = "listItemBullet"
	ListItemNumber  Target = "listItemNumber"
)

var targets = [...]Target{
	Block, Image, H1, H2, H3, H4, H5, H6, Text, Strong, Em, Del,
	LinkWrapper, Link, List, ListItem, ListItemContent, ListItemBullet, ListItemNumber,
}

// Targets returns every target in declaration order.
func Targets() []Target {
	out := make([]Target, len(targets))
	copy(out, targets[:])
	return out
}

// Valid reports whether t is one of the known targets.
func (t Target) Valid() bool {
	for _, k := range targets {
		if k == t {
			return true
		}
	}
	return false
}

// HeadingTarget returns the target for a heading level in [1, 6].
func HeadingTarget(level int) (Target, bool) {
	if level < 1 || level > 6 {
		return "", false
	}
	return Target("h" + strconv.Itoa(level)), true
}

// Fragment is a single style value. Its contents belong to the host.
type Fragment map[string]interface{}

// Sheet is a compiled style sheet. Targets missing from a sheet are left
// to the host's own defaults.
type Sheet map[Target]Fragment

// Lookup returns the fragment for t, or nil when the sheet has none.
func (s Sheet) Lookup(t Target) Fragment {
	return s[t]
}

// Build merges overrides onto base. Each override replaces the whole base
// fragment for its target. When useDefaults is false base is ignored and
// the result holds only the overrides. Neither argument is modified.
func Build(base, overrides Sheet, useDefaults bool) Sheet {
	out := make(Sheet, len(base)+len(overrides))
	if useDefaults {
		for t, f := range base {
			out[t] = f
		}
	}
	for t, f := range overrides {
		out[t] = f
	}
	return out
}

// Defaults returns a new copy of the built-in style table.
func Defaults() Sheet {
	heading := func(size, top, bottom int) Fragment {
		return Fragment{"fontSize": size, "marginTop": top, "marginBottom": bottom}
	}
	return Sheet{
		Block:  {"marginBottom": 10},
		Image:  {"width": 200, "height": 200},
		H1:     heading(30, 20, 8),
		H2:     heading(20, 16, 8),
		H3:     heading(20, 16, 8),
		H4:     heading(20, 16, 8),
		H5:     heading(20, 12, 6),
		H6:     heading(20, 12, 6),
		Text:   {},
		Strong: {"fontWeight": "bold"},
		Em:     {"fontStyle": "italic"},
		Del:    {"textDecorationLine": "line-through"},
		LinkWrapper: {
			"justifyContent": "flex-start",
			"flexDirection":  "row",
		},
		Link: {"textDecorationLine": "underline"},
		List: {"marginBottom": 20},
		ListItem: {
			"flexDirection":  "row",
			"justifyContent": "flex-start",
			"alignItems":     "center",
			"marginVertical": 5,
		},
		ListItemContent: {
			"flexDirection":  "row",
			"justifyContent": "flex-start",
			"alignItems":     "flex-start",
			"flexWrap":       "wrap",
		},
		ListItemBullet: {
			"width":           4,
			"height":          4,
			"backgroundColor": "#000000",
			"borderRadius":    2,
			"marginRight":     10,
		},
		ListItemNumber: {"marginRight": 10},
	}
}

// Load decodes a JSON object of target name to fragment.
func Load(r io.Reader) (Sheet, error) {
	var raw map[string]Fragment
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "could not parse styles")
	}
	var unknown []string
	s := make(Sheet, len(raw))
	for name, f := range raw {
		t := Target(name)
		if !t.Valid() {
			unknown = append(unknown, name)
			continue
		}
		s[t] = f
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown style targets: %q", unknown)
	}
	return s, nil
}

// LoadFile is like Load but reads the named file.
func LoadFile(name string) (Sheet, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "could not open styles")
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", name)
	}
	return s, nil
}
