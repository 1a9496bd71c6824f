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

// Package text paints a descriptor tree as plain text, for previews in a
// terminal. It only looks at descriptor kinds and structure; style
// fragments are ignored.
//
// Descriptors are painted as follows:
// 	Text, Container of inline children   one wrapped paragraph
// 	Container of containers              each child in turn
// 	list item                            marker ("•" or ordinal) and hanging indent
// 	Pressable                            children, then " <href>" unless the text is the href
// 	Image                                [image: uri]
//
// Top level descriptors are separated by a blank line.
package text // import "github.com/ZermattTourismus/easymarkdown/gen/text"

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/ZermattTourismus/easymarkdown/gen/view"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// DefaultWidth is used when Generator.Width is not positive.
const DefaultWidth = 80

const bullet = "•"

// stickyErrWriter remembers the first write error and fails every write
// after it.
type stickyErrWriter struct {
	err error
	w   io.Writer
}

func (c *stickyErrWriter) Write(p []byte) (n int, err error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err = c.w.Write(p)
	c.err = err
	return
}

// Generator represents a non-reusable text output generator for a
// descriptor tree.
type Generator struct {
	// Stdout receives the painted text.
	Stdout io.Writer
	// Width is the column at which paragraphs are wrapped.
	Width int

	ctx      context.Context
	tree     []*view.Descriptor
	waitdone chan error

	m     sync.Mutex
	pipes []io.Closer
}

// Gen returns the Generator to paint tree.
func Gen(tree []*view.Descriptor) *Generator {
	return &Generator{ctx: context.TODO(), tree: tree}
}

// GenContext is like Gen but includes a context. The context halts
// painting between top level descriptors.
func GenContext(ctx context.Context, tree []*view.Descriptor) *Generator {
	if ctx == nil {
		panic("nil context")
	}
	return &Generator{ctx: ctx, tree: tree}
}

// Start starts the generator but does not wait for it to complete.
func (g *Generator) Start() error {
	if g.waitdone != nil {
		return fmt.Errorf("already started")
	}
	if g.Stdout == nil {
		g.Stdout = io.Discard
	}
	g.waitdone = make(chan error)
	go func() {
		err := g.gen()
		g.m.Lock()
		for _, p := range g.pipes {
			p.Close()
		}
		g.pipes = nil
		g.m.Unlock()
		g.waitdone <- err
	}()
	return nil
}

// Wait waits for the generator to complete. It is an error to call Wait
// before Start has been called.
func (g *Generator) Wait() error {
	if g.waitdone == nil {
		return fmt.Errorf("not started")
	}
	err := <-g.waitdone
	close(g.waitdone)
	return err
}

// Run starts the generator and waits for it to complete, returning
// any errors enountered.
func (g *Generator) Run() error {
	if err := g.Start(); err != nil {
		return err
	}
	return g.Wait()
}

// StdoutPipe returns a pipe that is connected to the generator's
// standard output. The pipe must be read until EOF before calling Wait.
func (g *Generator) StdoutPipe() (io.Reader, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	pr, pw := io.Pipe()
	g.Stdout = pw
	g.pipes = append(g.pipes, pw)
	return pr, nil
}

// Output runs the generator and returns its standard output.
func (g *Generator) Output() ([]byte, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	var stdout bytes.Buffer
	g.Stdout = &stdout
	err := g.Run()
	return stdout.Bytes(), err
}

func (g *Generator) gen() error {
	cw := &stickyErrWriter{w: g.Stdout}
	for i, d := range g.tree {
		select {
		case <-g.ctx.Done():
			return g.ctx.Err()
		default:
			if i > 0 {
				io.WriteString(cw, "\n")
			}
			g.block(cw, d, 0)
		}
	}
	return cw.err
}

func isListItem(d *view.Descriptor) bool {
	return d.Kind == view.Container && len(d.Children) == 2 &&
		d.Children[0].Key == view.MarkerKey(d.Key) &&
		d.Children[1].Key == view.ContentKey(d.Key)
}

func hasBlocks(d *view.Descriptor) bool {
	for _, c := range d.Children {
		if c.Kind == view.Container {
			return true
		}
	}
	return false
}

func (g *Generator) block(w io.Writer, d *view.Descriptor, depth int) {
	switch {
	case isListItem(d):
		marker := bullet
		if ord := d.Children[0].Attrs.Ordinal; ord != "" {
			marker = ord
		}
		var run strings.Builder
		var nested []*view.Descriptor
		for _, c := range d.Children[1].Children {
			if c.Kind == view.Container && hasBlocks(c) {
				nested = append(nested, c)
				continue
			}
			if c.Kind == view.Container && run.Len() > 0 {
				run.WriteString(" ")
			}
			run.WriteString(inline(c))
		}
		g.para(w, marker+" ", run.String(), depth)
		for _, n := range nested {
			g.block(w, n, depth+1)
		}
	case d.Kind == view.Container && hasBlocks(d):
		for _, c := range d.Children {
			g.block(w, c, depth)
		}
	default:
		g.para(w, "", inline(d), depth)
	}
}

// para writes s wrapped to the generator width with a hanging indent
// after marker.
func (g *Generator) para(w io.Writer, marker, s string, depth int) {
	width := g.Width
	if width <= 0 {
		width = DefaultWidth
	}
	pad := strings.Repeat("  ", depth)
	hang := utf8.RuneCountInString(pad + marker)
	if width-hang < 10 {
		width = hang + 10
	}
	body := indent.String(wordwrap.String(strings.TrimSpace(s), width-hang), uint(hang))
	if len(body) < hang {
		body = ""
	} else {
		body = body[hang:]
	}
	io.WriteString(w, pad+marker+body+"\n")
}

func inline(d *view.Descriptor) string {
	switch d.Kind {
	case view.Image:
		return "[image: " + d.Attrs.URI + "]"
	case view.Pressable:
		s := children(d)
		if d.Attrs.Href != "" && s != d.Attrs.Href {
			s += " <" + d.Attrs.Href + ">"
		}
		return s
	}
	if len(d.Children) == 0 {
		return d.Attrs.Text
	}
	return children(d)
}

func children(d *view.Descriptor) string {
	var b strings.Builder
	for _, c := range d.Children {
		b.WriteString(inline(c))
	}
	return b.String()
}
