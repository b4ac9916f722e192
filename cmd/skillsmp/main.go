// Package main is the entry point for the skillsmp tool, a command-line
// client for the SkillsMP skills-marketplace search API. One invocation
// parses its arguments, resolves an API key, performs a single search
// request, and renders the response as human text, JSON, or plain lines.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/skillsmp/skillsmp-go/internal/api"
	"github.com/skillsmp/skillsmp-go/internal/cli"
	"github.com/skillsmp/skillsmp-go/internal/config"
	"github.com/skillsmp/skillsmp-go/internal/format"
)

// Exit codes: 0 success or help/version, 1 API or network failure, 2 usage
// or configuration error.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	interactive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

	args, err := cli.Parse(argv)
	if err != nil {
		if errors.Is(err, cli.ErrNoQuery) {
			fmt.Fprint(os.Stderr, cli.ShortUsage(interactive))
			return exitUsage
		}
		fmt.Fprintf(os.Stderr, "skillsmp: %v\n", err)
		fmt.Fprintln(os.Stderr, `Try "skillsmp --help" for usage.`)
		return exitUsage
	}
	if args.ShowHelp {
		fmt.Print(cli.Help(interactive))
		return exitOK
	}
	if args.ShowVersion {
		fmt.Println(cli.VersionLine())
		return exitOK
	}

	key, err := config.ResolveAPIKey()
	if err != nil {
		fmt.Fprintf(os.Stderr, "skillsmp: %v\n", err)
		return exitUsage
	}

	out := format.Human
	switch {
	case args.JSON:
		out = format.JSON
	case args.Plain:
		out = format.Plain
	}

	renderer := format.NewRenderer(os.Stdout, os.Stderr, interactive)
	client := api.New(key)

	if args.Mode == cli.ModeAI {
		erase := func() {}
		if out == format.Human {
			erase = renderer.Progress("Searching (AI)...")
		}
		data, err := client.AISearch(args.Query)
		erase()
		if err != nil {
			renderer.RequestError(err, args.JSON)
			return exitFailure
		}
		if err := renderer.AI(args.Query, data, out); err != nil {
			fmt.Fprintf(os.Stderr, "skillsmp: %v\n", err)
			return exitFailure
		}
		return exitOK
	}

	data, err := client.Search(args.Query, args.Limit, args.Page, args.Sort)
	if err != nil {
		renderer.RequestError(err, args.JSON)
		return exitFailure
	}
	if err := renderer.Keyword(args.Query, data, out); err != nil {
		fmt.Fprintf(os.Stderr, "skillsmp: %v\n", err)
		return exitFailure
	}
	return exitOK
}
