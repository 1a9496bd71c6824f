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

// Package document keeps a markdown document and its descriptor tree in
// step. Content changes re-parse and re-transform; style changes only
// re-transform the syntax tree already held.
package document // import "github.com/ZermattTourismus/easymarkdown/document"

import (
	"log"

	"github.com/ZermattTourismus/easymarkdown/ast"
	"github.com/ZermattTourismus/easymarkdown/gen/view"
	"github.com/ZermattTourismus/easymarkdown/parser"
	"github.com/ZermattTourismus/easymarkdown/style"
	"github.com/pkg/errors"
)

// blockSuffix terminates the last block so trailing content is never left
// in an open paragraph.
const blockSuffix = "\n\n"

// Parser produces the root node sequence of content.
type Parser interface {
	Parse(content string, opts parser.Options) ([]ast.Node, error)
}

// ParserFunc adapts a function to Parser.
type ParserFunc func(content string, opts parser.Options) ([]ast.Node, error)

func (f ParserFunc) Parse(content string, opts parser.Options) ([]ast.Node, error) {
	return f(content, opts)
}

// Config is the initial state of a Document.
type Config struct {
	Content          string
	Inline           bool
	UseDefaultStyles bool
	// Styles override the defaults target by target.
	Styles style.Sheet
	Debug  bool
	Log    *log.Logger
	Opener view.Opener
}

// DefaultConfig returns a Config using the built-in styles.
func DefaultConfig() Config {
	return Config{UseDefaultStyles: true}
}

// Document is not safe for concurrent use.
type Document struct {
	parser Parser
	cfg    Config
	sheet  style.Sheet

	parsed  bool
	content string
	inline  bool
	nodes   []ast.Node
	tree    []*view.Descriptor
}

// New compiles cfg.Content with p. A nil p uses parser.Markdown.
func New(p Parser, cfg Config) (*Document, error) {
	if p == nil {
		p = parser.Markdown{}
	}
	d := &Document{
		parser: p,
		cfg:    cfg,
		sheet:  style.Build(style.Defaults(), cfg.Styles, cfg.UseDefaultStyles),
	}
	if _, err := d.Recompute(cfg.Content, cfg.Inline); err != nil {
		return nil, err
	}
	return d, nil
}

// Recompute returns the descriptor tree for content. When content and
// inline match the previous call the held tree is returned untouched.
// On a parse error the document keeps its previous state.
func (d *Document) Recompute(content string, inline bool) ([]*view.Descriptor, error) {
	if d.parsed && content == d.content && inline == d.inline {
		return d.tree, nil
	}
	nodes, err := d.parser.Parse(content+blockSuffix, parser.Options{Inline: inline})
	if err != nil {
		return nil, errors.Wrap(err, "could not parse content")
	}
	d.parsed = true
	d.content = content
	d.inline = inline
	d.nodes = nodes
	d.transform()
	return d.tree, nil
}

// SetStyles rebuilds the style sheet and re-transforms the held syntax
// tree. Content is not parsed again.
func (d *Document) SetStyles(useDefaults bool, overrides style.Sheet) []*view.Descriptor {
	d.cfg.UseDefaultStyles = useDefaults
	d.cfg.Styles = overrides
	d.sheet = style.Build(style.Defaults(), overrides, useDefaults)
	d.transform()
	return d.tree
}

func (d *Document) transform() {
	t := view.New(d.sheet, view.Options{
		Debug:  d.cfg.Debug,
		Log:    d.cfg.Log,
		Opener: d.cfg.Opener,
	})
	d.tree = t.TransformNodes(d.nodes, "", nil, nil)
}

// Descriptors returns the current descriptor tree.
func (d *Document) Descriptors() []*view.Descriptor { return d.tree }

// Sheet returns the compiled style sheet.
func (d *Document) Sheet() style.Sheet { return d.sheet }

// Content returns the content the current tree was built from.
func (d *Document) Content() string { return d.content }
