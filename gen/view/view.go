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

// Package view converts a markdown syntax tree into a tree of render
// descriptors: typed, styled and keyed nodes for a host UI toolkit to
// paint. Styles are taken from a compiled style.Sheet and stacked outer to
// inner as the transformer descends.
//
// Element kinds correspond to the following descriptors:
// 	h1 .. h6                    Text [text, ...inherited, hN]
// 	div                         Container [block]
// 	ul, ol                      Container [list]
// 	li (ordered list)           Container [listItem] { Text [listItemNumber] "N.", Text [listItemContent] }
// 	li (otherwise)              Container [listItem] { Container [listItemBullet], Text [listItemContent] }
// 	a                           Pressable [linkWrapper], children styled [text, link]
// 	img                         Image [image]
// 	strong, em, del             Text [text, ...inherited, strong|em|del]
// 	literal text                Text [text, ...inherited]
//
// Any other kind is dropped from the output.
package view // import "github.com/ZermattTourismus/easymarkdown/gen/view"

import (
	"fmt"
	"log"

	"github.com/ZermattTourismus/easymarkdown/style"
)

// Kind is the type of a descriptor.
type Kind int

const (
	Container Kind = iota
	Text
	Image
	Pressable
)

var kindNames = [...]string{
	Container: "container",
	Text:      "text",
	Image:     "image",
	Pressable: "pressable",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Attrs holds the kind specific attributes of a descriptor.
type Attrs struct {
	// Text is the literal content of a text leaf or list ordinal.
	Text string `json:"text,omitempty"`
	// URI is the source of an image.
	URI string `json:"uri,omitempty"`
	// Ordinal is the marker of an ordered list item, e.g. "3.".
	Ordinal string `json:"ordinal,omitempty"`
	// Href is the target of a pressable.
	Href string `json:"href,omitempty"`
	// OnPress is the action bound to a pressable. It returns at once and
	// never fails.
	OnPress func() `json:"-"`
}

// Descriptor describes one visual element.
type Descriptor struct {
	Kind     Kind             `json:"kind"`
	Key      string           `json:"key"`
	Style    []style.Fragment `json:"style,omitempty"`
	Children []*Descriptor    `json:"children,omitempty"`
	Attrs    Attrs            `json:"attrs"`
}

// Count returns the number of descriptors in the trees rooted at ds.
func Count(ds []*Descriptor) int {
	n := 0
	for _, d := range ds {
		n += 1 + Count(d.Children)
	}
	return n
}

// Extras is the list of style fragments inherited from ancestors, outer
// to inner. An Extras value is never written to once built.
type Extras []style.Fragment

// ListContext is passed to the direct children of a list.
type ListContext struct {
	Ordered bool
}

// Opener opens a link target outside the host. Pressables call Open on a
// goroutine of their own and ignore its error and any panic, so Open may
// block.
type Opener interface {
	Open(url string) error
}

// Options configures a Transformer.
type Options struct {
	// Debug logs one line per visited node and one line per dropped node.
	Debug bool
	// Log receives debug output. Defaults to standard error.
	Log *log.Logger
	// Opener is invoked by pressable descriptors. A nil Opener makes
	// pressing a no-op.
	Opener Opener
}
