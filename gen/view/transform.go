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

package view

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ZermattTourismus/easymarkdown/ast"
	"github.com/ZermattTourismus/easymarkdown/style"
	"github.com/sanity-io/litter"
)

var textStyles = map[ast.Kind]style.Target{
	ast.H1:            style.H1,
	ast.H2:            style.H2,
	ast.H3:            style.H3,
	ast.H4:            style.H4,
	ast.H5:            style.H5,
	ast.H6:            style.H6,
	ast.Strong:        style.Strong,
	ast.Emphasis:      style.Em,
	ast.Strikethrough: style.Del,
}

var propsDump = litter.Options{
	Compact:           true,
	StripPackageNames: true,
	HidePrivateFields: true,
}

// Transformer turns syntax nodes into descriptors. It holds no state
// between calls and may be reused.
type Transformer struct {
	sheet style.Sheet
	opts  Options
	log   *log.Logger
}

// New returns a Transformer drawing styles from sheet.
func New(sheet style.Sheet, opts Options) *Transformer {
	l := opts.Log
	if l == nil {
		l = log.New(os.Stderr, "", 0)
	}
	return &Transformer{sheet: sheet, opts: opts, log: l}
}

// TransformNodes transforms a sibling sequence. Each node is keyed with
// ChildKey(key, i); dropped nodes leave no entry but keep their index.
func (t *Transformer) TransformNodes(nodes []ast.Node, key string, extras Extras, lc *ListContext) []*Descriptor {
	var out []*Descriptor
	for i, n := range nodes {
		if d := t.Transform(n, ChildKey(key, i), i, extras, lc); d != nil {
			out = append(out, d)
		}
	}
	return out
}

// Transform converts n, found at position index among its siblings, into a
// descriptor with the given key. It returns nil when n has no rendering.
func (t *Transformer) Transform(n ast.Node, key string, index int, extras Extras, lc *ListContext) *Descriptor {
	if t.opts.Debug && supported(n) {
		t.trace(n, key)
	}
	switch n := n.(type) {
	case ast.Text:
		return &Descriptor{
			Kind:  Text,
			Key:   key,
			Style: t.textStyle(extras),
			Attrs: Attrs{Text: string(n)},
		}
	case *ast.Element:
		if n == nil {
			return nil
		}
		switch n.Kind {
		case ast.H1, ast.H2, ast.H3, ast.H4, ast.H5, ast.H6,
			ast.Strong, ast.Emphasis, ast.Strikethrough:
			inner := concatStyles(extras, t.sheet.Lookup(textStyles[n.Kind]))
			return &Descriptor{
				Kind:     Text,
				Key:      key,
				Style:    t.textStyle(inner),
				Children: t.TransformNodes(n.Children, key, inner, nil),
			}
		case ast.Block:
			return &Descriptor{
				Kind:     Container,
				Key:      key,
				Style:    t.styles(style.Block),
				Children: t.TransformNodes(n.Children, key, extras, nil),
			}
		case ast.UnorderedList, ast.OrderedList:
			return &Descriptor{
				Kind:     Container,
				Key:      key,
				Style:    t.styles(style.List),
				Children: t.TransformNodes(n.Children, key, extras, &ListContext{Ordered: n.Kind == ast.OrderedList}),
			}
		case ast.ListItem:
			return t.listItem(n, key, index, extras, lc)
		case ast.Link:
			return &Descriptor{
				Kind:     Pressable,
				Key:      key,
				Style:    t.styles(style.LinkWrapper),
				Children: t.TransformNodes(n.Children, key, concatStyles(nil, t.sheet.Lookup(style.Link)), nil),
				Attrs:    Attrs{Href: n.Href, OnPress: t.press(n.Href)},
			}
		case ast.Image:
			return &Descriptor{
				Kind:  Image,
				Key:   key,
				Style: t.styles(style.Image),
				Attrs: Attrs{URI: n.Src},
			}
		}
		if t.opts.Debug {
			t.log.Printf("Node type %s is not supported", n.Kind)
		}
	}
	return nil
}

// supported reports whether n yields a descriptor.
func supported(n ast.Node) bool {
	switch n := n.(type) {
	case ast.Text:
		return true
	case *ast.Element:
		if n == nil {
			return false
		}
		if _, ok := textStyles[n.Kind]; ok {
			return true
		}
		switch n.Kind {
		case ast.Block, ast.UnorderedList, ast.OrderedList, ast.ListItem, ast.Link, ast.Image:
			return true
		}
	}
	return false
}

func (t *Transformer) listItem(n *ast.Element, key string, index int, extras Extras, lc *ListContext) *Descriptor {
	var marker *Descriptor
	if lc != nil && lc.Ordered {
		ord := strconv.Itoa(index+1) + "."
		marker = &Descriptor{
			Kind:  Text,
			Key:   MarkerKey(key),
			Style: t.styles(style.ListItemNumber),
			Attrs: Attrs{Text: ord, Ordinal: ord},
		}
	} else {
		marker = &Descriptor{
			Kind:  Container,
			Key:   MarkerKey(key),
			Style: t.styles(style.ListItemBullet),
		}
	}
	content := &Descriptor{
		Kind:     Text,
		Key:      ContentKey(key),
		Style:    t.styles(style.ListItemContent),
		Children: t.TransformNodes(n.Children, key, extras, nil),
	}
	return &Descriptor{
		Kind:     Container,
		Key:      key,
		Style:    t.styles(style.ListItem),
		Children: []*Descriptor{marker, content},
	}
}

// press binds href to the opener. The opener runs on its own goroutine;
// its errors and panics are dropped, so a link that cannot be opened does
// nothing.
func (t *Transformer) press(href string) func() {
	o := t.opts.Opener
	return func() {
		if o == nil {
			return
		}
		go func() {
			defer func() { recover() }()
			_ = o.Open(href)
		}()
	}
}

func (t *Transformer) styles(target style.Target) []style.Fragment {
	return []style.Fragment{t.sheet.Lookup(target)}
}

func (t *Transformer) textStyle(extras Extras) []style.Fragment {
	out := make([]style.Fragment, 0, 1+len(extras))
	out = append(out, t.sheet.Lookup(style.Text))
	return append(out, extras...)
}

// concatStyles returns a new Extras holding extras followed by f. extras
// is left untouched; the result has no spare capacity, so appending to it
// later cannot write into a slice shared with a sibling.
func concatStyles(extras Extras, f style.Fragment) Extras {
	out := make(Extras, len(extras), len(extras)+1)
	copy(out, extras)
	return append(out, f)
}

func (t *Transformer) trace(n ast.Node, key string) {
	indent := "=> "
	if key != "" {
		indent = strings.Repeat("=", len(key)-1) + "> "
	}
	kind, props := "plaintext", ""
	switch n := n.(type) {
	case ast.Text:
		props = strconv.Quote(string(n))
	case *ast.Element:
		if n != nil {
			kind = string(n.Kind)
		}
		props = propsDump.Sdump(n)
	}
	t.log.Printf("%skey %s type %s props %s", indent, key, kind, props)
}
