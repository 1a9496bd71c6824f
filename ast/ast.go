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

// Package ast defines the syntax tree handed from the markdown parser to
// the view transformer.
package ast // import "github.com/ZermattTourismus/easymarkdown/ast"

// Node is a syntax tree node: an *Element or a Text leaf.
//
//go:generate sumgen Node = *Element | Text
type Node interface {
	node()
}

// Kind names the tag of an element. The closed set below is what the
// view transformer understands; any other value is carried through the
// tree and dropped at transform time.
type Kind string

const (
	H1            Kind = "h1"
	H2            Kind = "h2"
	H3            Kind = "h3"
	H4            Kind = "h4"
	H5            Kind = "h5"
	H6            Kind = "h6"
	Block         Kind = "div"
	UnorderedList Kind = "ul"
	OrderedList   Kind = "ol"
	ListItem      Kind = "li"
	Link          Kind = "a"
	Image         Kind = "img"
	Strong        Kind = "strong"
	Emphasis      Kind = "em"
	Strikethrough Kind = "del"
)

// Kinds produced by the parser that have no rendering.
const (
	Table      Kind = "table"
	CodeBlock  Kind = "pre"
	Code       Kind = "code"
	Blockquote Kind = "blockquote"
	Rule       Kind = "hr"
	Break      Kind = "br"
	HTML       Kind = "html"
)

// HeadingKind returns the kind for a heading level in [1, 6].
func HeadingKind(level int) (Kind, bool) {
	if level < 1 || level > 6 {
		return "", false
	}
	return Kind("h" + string(rune('0'+level))), true
}

// Element is a tagged node with ordered children. Src is set on images,
// Href on links.
type Element struct {
	Kind     Kind
	Children []Node
	Src      string
	Href     string
}

// Text is a literal text leaf.
type Text string

func (*Element) node() {}
func (Text) node()     {}

// Walk calls f on n and then, depth first, on every descendant of the
// node f returned. A nil result for a child removes it from its parent.
// A nil result for n itself stops the walk and is returned as is.
func Walk(n Node, f Walker) (Node, error) {
	if n == nil {
		return nil, nil
	}
	nn, e := f(n)
	if e != nil {
		return n, e
	}
	el, ok := nn.(*Element)
	if !ok || el == nil {
		return nn, nil
	}
	kept := el.Children[:0:0]
	for _, c := range el.Children {
		s, e := Walk(c, f)
		if e != nil {
			return nn, e
		}
		if s != nil {
			kept = append(kept, s)
		}
	}
	el.Children = kept
	return nn, nil
}

// Walker is called by Walk on each node and returns its replacement.
type Walker func(Node) (Node, error)
