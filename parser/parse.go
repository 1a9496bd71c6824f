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

// Package parser turns markdown source into the syntax tree consumed by the
// view transformer. Parsing is delegated to goldmark with the strikethrough
// and table extensions enabled; the goldmark tree is then folded into the
// small tag set of package ast.
//
// goldmark nodes correspond to the following element kinds:
// 	Heading (level 1-6)         h1, h2, h3, h4, h5, h6
// 	Paragraph                   div
// 	List (bulleted)             ul
// 	List (ordered)              ol
// 	ListItem                    li
// 	Link, AutoLink              a (Href)
// 	Image                       img (Src)
// 	Emphasis (level 1)          em
// 	Emphasis (level 2)          strong
// 	Strikethrough               del
// 	Text, String                literal text
// 	CodeSpan                    code
// 	CodeBlock, FencedCodeBlock  pre
// 	Blockquote                  blockquote
// 	ThematicBreak               hr
// 	hard line break             br
// 	HTMLBlock, RawHTML          html
// 	Table                       table
//
// A tight list item's TextBlock is flattened into the item. Backslash
// escapes and entity references in literal text are resolved. Adjacent
// literal text is merged and empty text is removed.
//
// In inline mode only paragraphs are recognized as blocks, and paragraphs
// are unwrapped so the result is a flat run of inline nodes.
package parser // import "github.com/ZermattTourismus/easymarkdown/parser"

import (
	"io"
	"strings"

	"github.com/ZermattTourismus/easymarkdown/ast"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	gparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Options controls a single parse.
type Options struct {
	// Inline parses the source as a run of inline content.
	Inline bool
}

var (
	blockMarkdown = goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough, extension.Table),
	)
	inlineMarkdown = goldmark.New(
		goldmark.WithParser(gparser.NewParser(
			gparser.WithBlockParsers(util.Prioritized(gparser.NewParagraphParser(), 1000)),
			gparser.WithInlineParsers(gparser.DefaultInlineParsers()...),
			gparser.WithParagraphTransformers(gparser.DefaultParagraphTransformers()...),
		)),
		goldmark.WithExtensions(extension.Strikethrough),
	)
)

// MustParse is like Parse but panics if the source cannot be parsed.
func MustParse(src io.Reader, opts Options) []ast.Node {
	nodes, err := Parse(src, opts)
	if err != nil {
		panic("Parse error: " + err.Error())
	}
	return nodes
}

// Parse reads all of src and returns its root node sequence.
func Parse(src io.Reader, opts Options) ([]ast.Node, error) {
	if src == nil {
		return nil, errors.New("parser: nil source")
	}
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.Wrap(err, "parser: read source")
	}
	return parseBytes(b, opts), nil
}

// Markdown parses content strings. It is the parser the document compiler
// uses unless told otherwise.
type Markdown struct{}

// Parse parses content with the given options.
func (Markdown) Parse(content string, opts Options) ([]ast.Node, error) {
	return Parse(strings.NewReader(content), opts)
}

func parseBytes(src []byte, opts Options) []ast.Node {
	md := blockMarkdown
	if opts.Inline {
		md = inlineMarkdown
	}
	doc := md.Parser().Parse(text.NewReader(src))
	c := &converter{src: src}
	nodes := c.children(doc)
	if opts.Inline {
		nodes = unwrap(nodes)
	}
	root := &ast.Element{Children: nodes}
	ast.Walk(root, mergeText)
	return root.Children
}

type converter struct {
	src []byte
}

func (c *converter) children(n gast.Node) []ast.Node {
	var out []ast.Node
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		out = append(out, c.convert(ch)...)
	}
	return out
}

func (c *converter) element(k ast.Kind, n gast.Node) []ast.Node {
	return []ast.Node{&ast.Element{Kind: k, Children: c.children(n)}}
}

func (c *converter) convert(n gast.Node) []ast.Node {
	switch t := n.(type) {
	case *gast.Heading:
		k, ok := ast.HeadingKind(t.Level)
		if !ok {
			k = ast.Block
		}
		return c.element(k, n)
	case *gast.Paragraph:
		return c.element(ast.Block, n)
	case *gast.TextBlock:
		return c.children(n)
	case *gast.List:
		if t.IsOrdered() {
			return c.element(ast.OrderedList, n)
		}
		return c.element(ast.UnorderedList, n)
	case *gast.ListItem:
		return c.element(ast.ListItem, n)
	case *gast.Link:
		return []ast.Node{&ast.Element{
			Kind:     ast.Link,
			Href:     string(t.Destination),
			Children: c.children(n),
		}}
	case *gast.AutoLink:
		return []ast.Node{&ast.Element{
			Kind:     ast.Link,
			Href:     string(t.URL(c.src)),
			Children: []ast.Node{ast.Text(t.Label(c.src))},
		}}
	case *gast.Image:
		return []ast.Node{&ast.Element{Kind: ast.Image, Src: string(t.Destination)}}
	case *gast.Emphasis:
		if t.Level >= 2 {
			return c.element(ast.Strong, n)
		}
		return c.element(ast.Emphasis, n)
	case *east.Strikethrough:
		return c.element(ast.Strikethrough, n)
	case *gast.Text:
		v := t.Segment.Value(c.src)
		if !t.IsRaw() {
			v = util.UnescapePunctuations(util.ResolveNumericReferences(util.ResolveEntityNames(v)))
		}
		s := string(v)
		switch {
		case t.HardLineBreak():
			return []ast.Node{ast.Text(s), &ast.Element{Kind: ast.Break}}
		case t.SoftLineBreak():
			return []ast.Node{ast.Text(s + "\n")}
		}
		return []ast.Node{ast.Text(s)}
	case *gast.String:
		return []ast.Node{ast.Text(t.Value)}
	case *gast.CodeSpan:
		return c.element(ast.Code, n)
	case *gast.CodeBlock, *gast.FencedCodeBlock:
		return []ast.Node{&ast.Element{
			Kind:     ast.CodeBlock,
			Children: []ast.Node{ast.Text(c.lines(n))},
		}}
	case *gast.Blockquote:
		return c.element(ast.Blockquote, n)
	case *gast.ThematicBreak:
		return []ast.Node{&ast.Element{Kind: ast.Rule}}
	case *gast.HTMLBlock, *gast.RawHTML:
		return []ast.Node{&ast.Element{Kind: ast.HTML}}
	case *east.Table:
		return []ast.Node{&ast.Element{Kind: ast.Table}}
	}
	return c.element(ast.Kind(strings.ToLower(n.Kind().String())), n)
}

func (c *converter) lines(n gast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(c.src))
	}
	return b.String()
}

// unwrap splices the children of top level paragraphs into the root.
func unwrap(nodes []ast.Node) []ast.Node {
	out := make([]ast.Node, 0, len(nodes))
	for i, n := range nodes {
		el, ok := n.(*ast.Element)
		if !ok || el.Kind != ast.Block {
			out = append(out, n)
			continue
		}
		if i > 0 {
			out = append(out, ast.Text("\n\n"))
		}
		out = append(out, el.Children...)
	}
	return out
}

func mergeText(n ast.Node) (ast.Node, error) {
	switch t := n.(type) {
	case ast.Text:
		if t == "" {
			return nil, nil
		}
	case *ast.Element:
		var merged []ast.Node
		for _, c := range t.Children {
			if s, ok := c.(ast.Text); ok && len(merged) > 0 {
				if prev, ok := merged[len(merged)-1].(ast.Text); ok {
					merged[len(merged)-1] = prev + s
					continue
				}
			}
			merged = append(merged, c)
		}
		t.Children = merged
	}
	return n, nil
}
