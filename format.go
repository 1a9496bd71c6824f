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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/ZermattTourismus/easymarkdown/gen/text"
	"github.com/ZermattTourismus/easymarkdown/gen/view"
	"github.com/k0kubun/pp"
	"github.com/sanity-io/litter"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

type format string

const (
	formatTree   format = "tree"
	formatJSON   format = "json"
	formatDump   format = "dump"
	formatPretty format = "pretty"
	formatText   format = "text"
)

var formats = []format{formatTree, formatJSON, formatDump, formatPretty, formatText}

var _ pflag.Value = (*format)(nil)

func (f *format) String() string { return string(*f) }
func (f *format) Type() string   { return "format" }

func (f *format) Set(s string) error {
	for _, k := range formats {
		if string(k) == s {
			*f = k
			return nil
		}
	}
	return fmt.Errorf("unknown format %q, want one of %s", s, formatNames())
}

func formatNames() string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, "|")
}

var dumpCfg = litter.Options{
	StripPackageNames: true,
	HidePrivateFields: true,
	FieldExclusions:   regexp.MustCompile(`^OnPress$`),
}

func write(ctx context.Context, w io.Writer, f format, tree []*view.Descriptor, width int) error {
	switch f {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tree)
	case formatDump:
		_, err := io.WriteString(w, dumpCfg.Sdump(tree)+"\n")
		return err
	case formatPretty:
		pp.ColoringEnabled = isTerminal(w)
		_, err := pp.Fprintln(w, tree)
		return err
	case formatText:
		g := text.GenContext(ctx, tree)
		g.Stdout = w
		g.Width = width
		return g.Run()
	}
	return writeTree(w, tree, 0)
}

// writeTree prints one line per descriptor: kind, key and set attributes.
func writeTree(w io.Writer, tree []*view.Descriptor, depth int) error {
	for _, d := range tree {
		var b strings.Builder
		b.WriteString(strings.Repeat("  ", depth))
		fmt.Fprintf(&b, "%s %s", d.Kind, d.Key)
		if d.Attrs.Text != "" {
			fmt.Fprintf(&b, " text=%q", d.Attrs.Text)
		}
		if d.Attrs.URI != "" {
			fmt.Fprintf(&b, " uri=%q", d.Attrs.URI)
		}
		if d.Attrs.Ordinal != "" {
			fmt.Fprintf(&b, " ordinal=%q", d.Attrs.Ordinal)
		}
		if d.Attrs.Href != "" {
			fmt.Fprintf(&b, " href=%q", d.Attrs.Href)
		}
		b.WriteString("\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := writeTree(w, d.Children, depth+1); err != nil {
			return err
		}
	}
	return nil
}

const defaultWidth = 80

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return defaultWidth
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newLogger(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}
