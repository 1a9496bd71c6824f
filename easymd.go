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

// This CLI utility renders markdown into the descriptor tree a host UI
// toolkit paints, and prints it in one of several formats.
//
// Usage:
//   easymd [command]
//
// Available Commands:
//   help        Help about any command
//   open        Open a link the way pressable descriptors do
//   targets     List style targets
//   version     Print the version
//   view        Render a markdown file as a descriptor tree
//
// Flags:
//   -h, --help   help for easymd
//
// Use "easymd [command] --help" for more information about a command.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ZermattTourismus/easymarkdown/document"
	"github.com/ZermattTourismus/easymarkdown/gen"
	"github.com/ZermattTourismus/easymarkdown/gen/view"
	"github.com/ZermattTourismus/easymarkdown/style"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("github.com/ZermattTourismus/easymarkdown")
}

func prefix(msg string, err error) error {
	return errors.New(msg + err.Error())
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "easymd",
		Short: "render markdown into styled descriptor trees",
		Long: `This CLI utility renders markdown into the descriptor tree a host UI
toolkit paints, and prints it in one of several formats.`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newViewCmd(), newOpenCmd(), newTargetsCmd(), newVersionCmd())
	return rootCmd
}

func newViewCmd() *cobra.Command {
	var (
		outputfile string
		stylesfile string
		openCmd    string
		inline     bool
		noDefaults bool
		debug      bool
		stats      bool
		width      int
		timeout    time.Duration
	)
	outFormat := formatTree
	prefixView := "(view) "
	viewCmd := &cobra.Command{
		Use:   "view [input] [-o output]",
		Short: "Render a markdown file as a descriptor tree",
		Long: `This command parses markdown and converts it to the descriptor tree
a host UI toolkit paints. Unsupported constructs such as tables and code
blocks are dropped. Styles can be replaced target by target from a JSON
file mapping target names to style objects.

If no input file is specified, input is read from
standard input. Similarly, if no output argument is
specified, output is written to standard output.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := cmd.InOrStdin()
			if len(args) != 0 {
				f, err := os.Open(args[0])
				if err != nil {
					return prefix(prefixView, err)
				}
				defer f.Close()
				src = f
			}
			out := cmd.OutOrStdout()
			if len(outputfile) != 0 {
				f, err := os.Create(outputfile)
				if err != nil {
					return prefix(prefixView, err)
				}
				defer f.Close()
				out = f
			}
			content, err := io.ReadAll(src)
			if err != nil {
				return prefix(prefixView, err)
			}
			cfg := document.DefaultConfig()
			cfg.Content = string(content)
			cfg.Inline = inline
			cfg.UseDefaultStyles = !noDefaults
			cfg.Debug = debug
			cfg.Log = newLogger(cmd.ErrOrStderr())
			cfg.Opener = &gen.Command{Line: openCmd, Stderr: cmd.ErrOrStderr()}
			if stylesfile != "" {
				if cfg.Styles, err = style.LoadFile(stylesfile); err != nil {
					return prefix(prefixView, err)
				}
			}
			d, err := document.New(nil, cfg)
			if err != nil {
				return prefix(prefixView, err)
			}
			ctx := context.Background()
			if timeout > -1 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			if err := write(ctx, out, outFormat, d.Descriptors(), resolveWidth(width, out)); err != nil {
				return prefix(prefixView, err)
			}
			if stats {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s descriptors from %s of markdown\n",
					humanize.Comma(int64(view.Count(d.Descriptors()))), humanize.Bytes(uint64(len(content))))
			}
			return nil
		},
	}
	viewCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if err != nil {
			return prefix(prefixView, err)
		}
		return nil
	})
	// pflag includes the argument type when it unquotes its usage.
	// To prevent this behavior we prefix the usage with backquotes ``.
	flags := viewCmd.Flags()
	flags.StringVarP(&outputfile, "output", "o", "", "``name of the output file")
	flags.StringVarP(&stylesfile, "styles", "s", "", "``JSON file of style overrides")
	flags.StringVar(&openCmd, "open-command", "", "``command used to open links (default depends on the platform)")
	flags.BoolVar(&inline, "inline", false, "parse the input as inline content")
	flags.BoolVar(&noDefaults, "no-default-styles", false, "start from an empty style sheet")
	flags.BoolVar(&debug, "debug", false, "log every node visited to standard error")
	flags.BoolVar(&stats, "stats", false, "print descriptor and input size to standard error")
	flags.IntVarP(&width, "width", "w", 0, "``wrap width for the text format (0 uses the terminal width)")
	flags.VarP(&outFormat, "format", "f", "``output format: "+formatNames())
	flags.DurationVarP(&timeout, "timeout", "t", -1, "``timeout used to halt the text format")
	// Set string version of default value to be zero-value to prevent it from being printed by FlagUsages.
	flags.Lookup("timeout").DefValue = "0"
	return viewCmd
}

func newOpenCmd() *cobra.Command {
	var (
		line    string
		timeout time.Duration
	)
	prefixOpen := "(open) "
	openCmd := &cobra.Command{
		Use:   "open url [--command line]",
		Short: "Open a link the way pressable descriptors do",
		Long: `This command runs the link opener bound to pressable descriptors
and waits for it to exit. The command line is split according to the
Bourne shell's word-splitting rules and the URL is appended to it.`,
		Args:                  cobra.ExactArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if timeout > -1 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			c := &gen.Command{
				Line:   line,
				Ctx:    ctx,
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			}
			if err := c.Run(args[0]); err != nil {
				return prefix(prefixOpen, err)
			}
			return nil
		},
	}
	openCmd.Flags().StringVarP(&line, "command", "c", "", "``opener command line (default depends on the platform)")
	openCmd.Flags().DurationVarP(&timeout, "timeout", "t", -1, "``timeout used to kill the opener")
	openCmd.Flags().Lookup("timeout").DefValue = "0"
	return openCmd
}

func newTargetsCmd() *cobra.Command {
	var defaults bool
	targetsCmd := &cobra.Command{
		Use:   "targets [--defaults]",
		Short: "List style targets",
		Long: `This command lists the style targets a styles file may override.
With --defaults it prints the built-in styles as a styles file.`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if defaults {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(style.Defaults())
			}
			for _, t := range style.Targets() {
				fmt.Fprintln(out, t)
			}
			return nil
		},
	}
	targetsCmd.Flags().BoolVar(&defaults, "defaults", false, "print the built-in styles as JSON")
	return targetsCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Module(), version.Current())
		},
	}
}
