/*
File    : expert-system/cmd/expertsystem/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the propositional-logic expert system.
It loads a rule file, runs its queries, and optionally drops into an
interactive loop afterward (spec §6).
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/expert-system/engine"
	"github.com/akashmaji946/expert-system/loader"
	"github.com/akashmaji946/expert-system/repl"
	"github.com/akashmaji946/expert-system/trace"
)

// VERSION is the current version of the expert system.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the program's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license.
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in interactive mode.
var PROMPT = "expert-system >>> "

// BANNER is the ASCII art logo displayed when entering interactive mode.
var BANNER = `
  ▄████ ▀▄    ▄▀ █▀▀█ █▀▀ █▀▀█ ▀▀█▀▀
  █▀▀▀▀   █  █   █▄▄█ █▀▀ █▄▄▀   █
  ▀▀▀▀▀    ▀▀    ▀  ▀ ▀▀▀ ▀  ▀▄  ▀
         expert system
`

// LINE is a separator line used for visual formatting.
var LINE = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	interactive := flag.Bool("i", false, "enter interactive mode after initial queries")
	flag.BoolVar(interactive, "interactive", false, "enter interactive mode after initial queries")
	verbose := flag.Bool("V", false, "print every premise evaluation, not just rule firings and diagnostics")
	flag.BoolVar(verbose, "verbose", false, "print every premise evaluation, not just rule firings and diagnostics")
	version := flag.Bool("v", false, "print version and exit")
	flag.BoolVar(version, "version", false, "print version and exit")
	flag.Usage = showHelp
	flag.Parse()

	if *version {
		showVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) != 1 {
		showHelp()
		os.Exit(1)
	}

	base, queries, err := loader.Load(args[0])
	if err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	results := engine.RunQueries(base, queries)
	trace.PrintResults(os.Stdout, results, *verbose)

	if *interactive {
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT, base, queries, *verbose)
		repler.Start(os.Stdin, os.Stdout)
	}
}

func showHelp() {
	cyanColor.Println("expert-system - a backward-chaining propositional reasoner")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  expertsystem <path-to-file>          Load rules and run the file's queries")
	fmt.Println("  expertsystem -i <path-to-file>        ...then enter an interactive loop")
	fmt.Println("  expertsystem -V <path-to-file>        Print every premise evaluation")
	fmt.Println("  expertsystem --help                   Display this help message")
	fmt.Println("  expertsystem --version                Display version information")
	cyanColor.Println("")
	cyanColor.Println("INTERACTIVE COMMANDS:")
	fmt.Println("  +X       set X initially true")
	fmt.Println("  -X       unset X")
	fmt.Println("  ?X...    re-run queries for X, Y, Z, ...")
	fmt.Println("  /q       quit")
}

func showVersion() {
	cyanColor.Println("expert-system - a backward-chaining propositional reasoner")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}
