package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/skillsmp/skillsmp-go/internal/version"
)

// Help returns the full help text. The program name is bolded when styled.
func Help(styled bool) string {
	return fmt.Sprintf(`%s - search the SkillsMP skills marketplace

Usage:
  skillsmp [flags] <query ...>
  skillsmp --ai [flags] <query ...>

Flags:
  -h, --help       Show this help and exit
      --version    Print the version and exit
  -a, --ai         AI semantic search (relevance ranked, no pagination)
  -j, --json       Emit one JSON document on stdout
      --plain      Tab-separated lines for text tools
  -n, --limit N    Results per page, 1-100 (keyword only; default 10)
  -p, --page N     Page number (keyword only; default 1)
  -s, --sort KEY   Sort order: stars or recent (keyword only; default stars)
      --           Treat every remaining argument as query text

Exit codes:
  0  success
  1  API or network failure
  2  usage or configuration error

Environment:
  %s   API key (falls back to ~/.env)
`, bold(styled).Sprint("skillsmp"), "SKILLSMP_API_KEY")
}

// ShortUsage is the contextual hint printed when no query was given.
func ShortUsage(styled bool) string {
	return fmt.Sprintf("Usage: %s [flags] <query ...>\nRun \"skillsmp --help\" for all options.\n",
		bold(styled).Sprint("skillsmp"))
}

// VersionLine is the --version output.
func VersionLine() string {
	return "skillsmp " + version.Version
}

func bold(styled bool) *color.Color {
	c := color.New(color.Bold)
	if styled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
