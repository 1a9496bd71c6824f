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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestViewTree(t *testing.T) {
	out, _, err := run(t, "# Hi\n\n- a\n\n| t |\n| - |\n| 1 |\n", "view")
	if err != nil {
		t.Fatal(err)
	}
	want := `text 0
  text 0_0 text="Hi"
container 1
  container 1_0
    container 1_0-marker
    text 1_0-content
      text 1_0_0 text="a"
`
	if out != want {
		t.Errorf("want\n%s\ngot\n%s", want, out)
	}
}

func TestViewJSON(t *testing.T) {
	out, _, err := run(t, "[go](https://go.dev)", "view", "-f", "json")
	if err != nil {
		t.Fatal(err)
	}
	var got []struct {
		Kind     string
		Key      string
		Children []struct {
			Kind  string
			Attrs struct{ Href string }
		}
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(got) != 1 || got[0].Kind != "container" || len(got[0].Children) != 1 {
		t.Fatalf("unexpected tree %s", out)
	}
	if c := got[0].Children[0]; c.Kind != "pressable" || c.Attrs.Href != "https://go.dev" {
		t.Errorf("unexpected link %+v", c)
	}
}

func TestViewTextAndStats(t *testing.T) {
	out, errOut, err := run(t, "1. alpha beta gamma\n", "view", "--format=text", "--width", "12", "--stats")
	if err != nil {
		t.Fatal(err)
	}
	if want := "1. alpha beta\n   gamma\n"; out != want {
		t.Errorf("want %q, got %q", want, out)
	}
	if !strings.Contains(errOut, "5 descriptors from 20 B of markdown") {
		t.Errorf("unexpected stats %q", errOut)
	}
}

func TestViewStylesFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(good, []byte(`{"h1": {"color": "red"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte(`{"h9": {}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := run(t, "# Hi", "view", "-f", "json", "--no-default-styles", "-s", good)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"color": "red"`) || strings.Contains(out, "fontSize") {
		t.Errorf("styles not applied:\n%s", out)
	}

	_, _, err = run(t, "# Hi", "view", "-s", bad)
	if err == nil || !strings.HasPrefix(err.Error(), "(view) ") || !strings.Contains(err.Error(), "h9") {
		t.Errorf("want prefixed unknown target error, got %v", err)
	}
}

func TestViewDebug(t *testing.T) {
	_, errOut, err := run(t, "```\ncode\n```\n", "view", "--debug")
	if err != nil {
		t.Fatal(err)
	}
	if want := "Node type pre is not supported\n"; errOut != want {
		t.Errorf("want %q, got %q", want, errOut)
	}
}

func TestViewBadFormat(t *testing.T) {
	_, _, err := run(t, "x", "view", "-f", "yaml")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("want unknown format error, got %v", err)
	}
}

func TestDumpHidesAction(t *testing.T) {
	out, _, err := run(t, "[go](https://go.dev)", "view", "-f", "dump")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "OnPress") || !strings.Contains(out, "https://go.dev") {
		t.Errorf("unexpected dump:\n%s", out)
	}
}

func TestTargets(t *testing.T) {
	out, _, err := run(t, "", "targets")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 19 || lines[0] != "block" || lines[18] != "listItemNumber" {
		t.Errorf("unexpected targets %q", lines)
	}

	out, _, err = run(t, "", "targets", "--defaults")
	if err != nil {
		t.Fatal(err)
	}
	var sheet map[string]map[string]interface{}
	if err := json.Unmarshal([]byte(out), &sheet); err != nil {
		t.Fatal(err)
	}
	if sheet["h1"]["fontSize"] != float64(30) {
		t.Errorf("unexpected h1 default %v", sheet["h1"])
	}
}

func TestOpen(t *testing.T) {
	out, _, err := run(t, "", "open", "--command", "echo opening", "https://example.com")
	if err != nil {
		t.Fatal(err)
	}
	if out != "opening https://example.com\n" {
		t.Errorf("unexpected output %q", out)
	}

	_, _, err = run(t, "", "open", "--command", "definitely-not-a-real-opener-binary", "https://example.com")
	if err == nil || !strings.HasPrefix(err.Error(), "(open) ") {
		t.Errorf("want prefixed error, got %v", err)
	}
}
