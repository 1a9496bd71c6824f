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

// Tests for parse.go
package parser_test

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/ZermattTourismus/easymarkdown/ast"
	"github.com/ZermattTourismus/easymarkdown/parser"
	"github.com/google/go-cmp/cmp"
	"github.com/sanity-io/litter"
)

type smallcase struct {
	in   string
	want []ast.Node
}

func el(k ast.Kind, children ...ast.Node) *ast.Element {
	return &ast.Element{Kind: k, Children: children}
}

func txt(s string) ast.Text { return ast.Text(s) }

var litCfg = litter.Options{
	Compact:           true,
	StripPackageNames: false,
	HidePrivateFields: false,
	Separator:         " ",
}

func check(t *testing.T, cases []smallcase, opts parser.Options) {
	t.Helper()
	for i, test := range cases {
		got, err := parser.Parse(strings.NewReader(test.in), opts)
		if err != nil {
			t.Errorf("case %d, in %q, unexpected error %v", i, test.in, err)
			continue
		}
		if !cmp.Equal(test.want, got) {
			t.Errorf("case %d, in %q,\nwant %s,\ngot %s,\ndiff %s", i, test.in, litCfg.Sdump(test.want), litCfg.Sdump(got), cmp.Diff(test.want, got))
		}
	}
}

var blockSmall = []smallcase{
	{"# Title\n\n", []ast.Node{el(ast.H1, txt("Title"))}},
	{"###### Six\n\n", []ast.Node{el(ast.H6, txt("Six"))}},
	{"Hello **bold** and *it* ~~gone~~\n\n", []ast.Node{
		el(ast.Block,
			txt("Hello "),
			el(ast.Strong, txt("bold")),
			txt(" and "),
			el(ast.Emphasis, txt("it")),
			txt(" "),
			el(ast.Strikethrough, txt("gone")),
		),
	}},
	{"one\ntwo\n\n", []ast.Node{el(ast.Block, txt("one\ntwo"))}},
	{"- a\n- b\n\n", []ast.Node{
		el(ast.UnorderedList, el(ast.ListItem, txt("a")), el(ast.ListItem, txt("b"))),
	}},
	{"1. one\n2. two\n\n", []ast.Node{
		el(ast.OrderedList, el(ast.ListItem, txt("one")), el(ast.ListItem, txt("two"))),
	}},
	{"[go](https://go.dev)\n\n", []ast.Node{
		el(ast.Block, &ast.Element{Kind: ast.Link, Href: "https://go.dev", Children: []ast.Node{txt("go")}}),
	}},
	{"<https://example.com>\n\n", []ast.Node{
		el(ast.Block, &ast.Element{Kind: ast.Link, Href: "https://example.com", Children: []ast.Node{txt("https://example.com")}}),
	}},
	{"![alt](pic.png)\n\n", []ast.Node{
		el(ast.Block, &ast.Element{Kind: ast.Image, Src: "pic.png"}),
	}},
	{"a \\*b\\* c\n\n", []ast.Node{el(ast.Block, txt("a *b* c"))}},
	{"AT&amp;T &copy;\n\n", []ast.Node{el(ast.Block, txt("AT&T ©"))}},
	{"&#42;star&#x2A;\n\n", []ast.Node{el(ast.Block, txt("*star*"))}},
	{"keep `\\*raw\\*`\n\n", []ast.Node{el(ast.Block, txt("keep "), el(ast.Code, txt("\\*raw\\*")))}},
}

var unsupportedSmall = []smallcase{
	{"```\ncode\n```\n\n", []ast.Node{el(ast.CodeBlock, txt("code\n"))}},
	{"---\n\n", []ast.Node{el(ast.Rule)}},
	{"> quoted\n\n", []ast.Node{el(ast.Blockquote, el(ast.Block, txt("quoted")))}},
	{"| a | b |\n| --- | --- |\n| 1 | 2 |\n\n", []ast.Node{el(ast.Table)}},
	{"use `x`\n\n", []ast.Node{el(ast.Block, txt("use "), el(ast.Code, txt("x")))}},
}

var inlineSmall = []smallcase{
	{"# not a heading\n\n", []ast.Node{txt("# not a heading")}},
	{"a *b*\n\nc\n\n", []ast.Node{txt("a "), el(ast.Emphasis, txt("b")), txt("\n\nc")}},
	{"- not a list\n\n", []ast.Node{txt("- not a list")}},
}

func TestBlock(t *testing.T) {
	check(t, blockSmall, parser.Options{})
}

func TestUnsupportedKinds(t *testing.T) {
	check(t, unsupportedSmall, parser.Options{})
}

func TestInline(t *testing.T) {
	check(t, inlineSmall, parser.Options{Inline: true})
}

func TestEmpty(t *testing.T) {
	got, err := parser.Parse(strings.NewReader("\n\n"), parser.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("want no nodes, got %s", litCfg.Sdump(got))
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := parser.Parse(nil, parser.Options{}); err == nil {
		t.Error("want error for nil source")
	}
	_, err := parser.Parse(iotest.ErrReader(iotest.ErrTimeout), parser.Options{})
	if err == nil || !strings.Contains(err.Error(), iotest.ErrTimeout.Error()) {
		t.Errorf("want wrapped read error, got %v", err)
	}
}

func TestMarkdownMatchesParse(t *testing.T) {
	src := "# H\n\n- a\n- *b*\n\n"
	want := parser.MustParse(strings.NewReader(src), parser.Options{})
	got, err := parser.Markdown{}.Parse(src, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(want, got) {
		t.Errorf("diff %s", cmp.Diff(want, got))
	}
}
