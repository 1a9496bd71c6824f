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

// Examples for document.go
package document_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/ZermattTourismus/easymarkdown/document"
	"github.com/ZermattTourismus/easymarkdown/gen/view"
)

func ExampleDocument_Recompute() {
	cfg := document.DefaultConfig()
	cfg.Content = "# Heading 1\n- first\n- *second*"
	d, err := document.New(nil, cfg)
	if err != nil {
		log.Fatal(err)
	}
	var walk func(ds []*view.Descriptor, depth int)
	walk = func(ds []*view.Descriptor, depth int) {
		for _, x := range ds {
			fmt.Printf("%s%s %s %q\n", strings.Repeat("  ", depth), x.Key, x.Kind, x.Attrs.Text)
			walk(x.Children, depth+1)
		}
	}
	walk(d.Descriptors(), 0)
	// Output:
	// 0 text ""
	//   0_0 text "Heading 1"
	// 1 container ""
	//   1_0 container ""
	//     1_0-marker container ""
	//     1_0-content text ""
	//       1_0_0 text "first"
	//   1_1 container ""
	//     1_1-marker container ""
	//     1_1-content text ""
	//       1_1_0 text ""
	//         1_1_0_0 text "second"
}
