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

import "strconv"

const keySep = "_"

// ChildKey returns the key of the child at index under parent. Children of
// the root sequence (empty parent) are keyed by their index alone.
//
// Keys are positional: inserting or removing a sibling shifts the keys of
// every sibling after it.
func ChildKey(parent string, index int) string {
	if parent == "" {
		return strconv.Itoa(index)
	}
	return parent + keySep + strconv.Itoa(index)
}

// MarkerKey and ContentKey key the two parts of a list item. ChildKey only
// ever appends digits after a separator, so these cannot collide with it.
func MarkerKey(item string) string  { return item + "-marker" }
func ContentKey(item string) string { return item + "-content" }
