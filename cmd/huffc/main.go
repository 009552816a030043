// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command huffc lexes and parses Huff source files and prints what it
// found. It is a debugging aid for the front end; it does not generate
// bytecode.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"gopkg.in/urfave/cli.v1"
)

var (
	parallelismFlag = cli.IntFlag{
		Name:  "parallelism, j",
		Usage: "Maximum number of files to process at once (0 for one per CPU)",
	}
	noColorFlag = cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured diagnostics",
	}
	traceFlag = cli.BoolFlag{
		Name:  "trace",
		Usage: "Print where each diagnostic was raised (needs HUFFCOMPILE_DEBUG)",
	}
	newlinesFlag = cli.BoolFlag{
		Name:  "newlines",
		Usage: "Include newline tokens",
	}
	summaryFlag = cli.BoolFlag{
		Name:  "summary",
		Usage: "Print a table of definitions instead of the full tree",
	}

	lexCommand = cli.Command{
		Action:      lex,
		Name:        "lex",
		Usage:       "Print the tokens of each file",
		ArgsUsage:   "<file or glob>...",
		Flags:       []cli.Flag{newlinesFlag},
		Description: `The lex command prints a table of the tokens of each file.`,
	}
	parseCommand = cli.Command{
		Action:    parse,
		Name:      "parse",
		Usage:     "Print the syntax tree of each file",
		ArgsUsage: "<file or glob>...",
		Flags:     []cli.Flag{summaryFlag},
		Description: `The parse command dumps the statements of each file. With --summary,
it prints one row per definition instead.`,
	}
	includesCommand = cli.Command{
		Action:      includes,
		Name:        "includes",
		Usage:       "List the files each file includes",
		ArgsUsage:   "<file or glob>...",
		Description: `The includes command prints one "file: include" line per #include, without parsing.`,
	}
	checkCommand = cli.Command{
		Action:      check,
		Name:        "check",
		Usage:       "Report diagnostics only",
		ArgsUsage:   "<file or glob>...",
		Description: `The check command prints diagnostics and fails if any file has errors.`,
	}
)

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "huffc"
	app.Usage = "the Huff front end"
	app.HideVersion = true
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{parallelismFlag, noColorFlag, traceFlag}
	app.Commands = []cli.Command{lexCommand, parseCommand, includesCommand, checkCommand}
	return app
}

func main() {
	app := newApp(colorable.NewColorableStdout(), colorable.NewColorableStderr())
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
