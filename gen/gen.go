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

// Package gen holds the pieces shared by output generators. Command is the
// link opener bound to pressable descriptors.
package gen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"

	sq "github.com/kballard/go-shellquote"
)

// Command opens URLs by running an external program.
type Command struct {
	// Line is the program and its leading arguments, split according to
	// the Bourne shell's word-splitting rules. The URL is passed as the
	// final argument. An empty Line uses DefaultLine.
	Line   string
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultLine returns the platform's usual URL opener.
func DefaultLine() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "rundll32 url.dll,FileProtocolHandler"
	}
	return "xdg-open"
}

func (c *Command) command(url string) (*exec.Cmd, error) {
	if url == "" {
		return nil, errors.New("empty url")
	}
	line := c.Line
	if line == "" {
		line = DefaultLine()
	}
	words, err := sq.Split(line)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("No valid commands: '%q'", line)
	}
	args := append(words[1:len(words):len(words)], url)
	var cmd *exec.Cmd
	if c.Ctx == nil {
		cmd = exec.Command(words[0], args...)
	} else {
		cmd = exec.CommandContext(c.Ctx, words[0], args...)
	}
	if c.Stdout != nil {
		cmd.Stdout = c.Stdout
	}
	if c.Stderr != nil {
		cmd.Stderr = c.Stderr
	}
	return cmd, nil
}

// Open starts the opener for url and returns without waiting for it to
// exit. The process is reaped on its own goroutine and its exit status is
// ignored; only failures to start are reported.
func (c *Command) Open(url string) error {
	cmd, err := c.command(url)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait()
	return nil
}

// Run runs the opener for url and waits for it to complete.
func (c *Command) Run(url string) error {
	cmd, err := c.command(url)
	if err != nil {
		return err
	}
	return cmd.Run()
}
