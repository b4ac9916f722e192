package cli

import (
	"errors"
	"strings"
	"testing"
)

func defaults() Arguments {
	return Arguments{Mode: ModeKeyword, Limit: 10, Page: 1, Sort: "stars"}
}

func TestParseFlagsAndModes(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want func(a Arguments) Arguments
	}{
		{
			name: "single word query",
			argv: []string{"terraform"},
			want: func(a Arguments) Arguments { a.Query = "terraform"; return a },
		},
		{
			name: "multi word query",
			argv: []string{"react", "testing", "library"},
			want: func(a Arguments) Arguments { a.Query = "react testing library"; return a },
		},
		{
			name: "long ai flag",
			argv: []string{"--ai", "optimize queries"},
			want: func(a Arguments) Arguments { a.Mode = ModeAI; a.Query = "optimize queries"; return a },
		},
		{
			name: "short ai flag",
			argv: []string{"-a", "optimize queries"},
			want: func(a Arguments) Arguments { a.Mode = ModeAI; a.Query = "optimize queries"; return a },
		},
		{
			name: "json flag",
			argv: []string{"--json", "q"},
			want: func(a Arguments) Arguments { a.JSON = true; a.Query = "q"; return a },
		},
		{
			name: "short json flag",
			argv: []string{"-j", "q"},
			want: func(a Arguments) Arguments { a.JSON = true; a.Query = "q"; return a },
		},
		{
			name: "plain flag",
			argv: []string{"--plain", "q"},
			want: func(a Arguments) Arguments { a.Plain = true; a.Query = "q"; return a },
		},
		{
			name: "limit",
			argv: []string{"--limit", "25", "q"},
			want: func(a Arguments) Arguments { a.Limit = 25; a.Query = "q"; return a },
		},
		{
			name: "short limit",
			argv: []string{"-n", "5", "q"},
			want: func(a Arguments) Arguments { a.Limit = 5; a.Query = "q"; return a },
		},
		{
			name: "page",
			argv: []string{"--page", "3", "q"},
			want: func(a Arguments) Arguments { a.Page = 3; a.Query = "q"; return a },
		},
		{
			name: "short page",
			argv: []string{"-p", "3", "q"},
			want: func(a Arguments) Arguments { a.Page = 3; a.Query = "q"; return a },
		},
		{
			name: "sort recent",
			argv: []string{"--sort", "recent", "q"},
			want: func(a Arguments) Arguments { a.Sort = "recent"; a.Query = "q"; return a },
		},
		{
			name: "short sort",
			argv: []string{"-s", "stars", "q"},
			want: func(a Arguments) Arguments { a.Query = "q"; return a },
		},
		{
			name: "first positional stops flag parsing",
			argv: []string{"hello", "--ai", "--json"},
			want: func(a Arguments) Arguments { a.Query = "hello --ai --json"; return a },
		},
		{
			name: "double dash takes the rest verbatim",
			argv: []string{"--", "--ai", "-j"},
			want: func(a Arguments) Arguments { a.Query = "--ai -j"; return a },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.argv)
			if err != nil {
				t.Fatalf("Parse(%v) error: %v", tt.argv, err)
			}
			if want := tt.want(defaults()); *got != want {
				t.Errorf("Parse(%v) = %+v, want %+v", tt.argv, *got, want)
			}
		})
	}
}

func TestParseUsageErrors(t *testing.T) {
	tests := []struct {
		name   string
		argv   []string
		needle string
	}{
		{"unknown flag", []string{"--bogus", "q"}, "unknown flag: --bogus"},
		{"json and plain conflict", []string{"--json", "--plain", "q"}, "mutually exclusive"},
		{"conflict regardless of order", []string{"--plain", "-j", "q"}, "mutually exclusive"},
		{"limit not a number", []string{"--limit", "abc", "q"}, "must be a number"},
		{"limit zero", []string{"--limit", "0", "q"}, "1-100"},
		{"limit too large", []string{"--limit", "101", "q"}, "1-100"},
		{"limit absurd", []string{"--limit", "999999", "q"}, "1-100"},
		{"page not a number", []string{"--page", "abc", "q"}, "must be a number"},
		{"sort enum", []string{"--sort", "name", "q"}, "'stars' or 'recent'"},
		{"limit missing value", []string{"--limit"}, "requires a value"},
		{"page missing value", []string{"--page"}, "requires a value"},
		{"sort missing value", []string{"--sort"}, "requires a value"},
		{"ai with limit", []string{"--ai", "--limit", "5", "q"}, "do not apply"},
		{"ai with page", []string{"--ai", "--page", "2", "q"}, "do not apply"},
		{"ai with sort", []string{"--ai", "--sort", "recent", "q"}, "do not apply"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.argv)
			var usageErr *UsageError
			if !errors.As(err, &usageErr) {
				t.Fatalf("Parse(%v) error = %v, want *UsageError", tt.argv, err)
			}
			if !strings.Contains(usageErr.Message, tt.needle) {
				t.Errorf("message = %q, want it to contain %q", usageErr.Message, tt.needle)
			}
		})
	}
}

func TestParseMissingQuery(t *testing.T) {
	for _, argv := range [][]string{nil, {}, {"--limit", "5"}, {"--ai"}} {
		if _, err := Parse(argv); !errors.Is(err, ErrNoQuery) {
			t.Errorf("Parse(%v) error = %v, want ErrNoQuery", argv, err)
		}
	}
}

func TestParseLimitBoundaries(t *testing.T) {
	for _, limit := range []string{"1", "100"} {
		got, err := Parse([]string{"--limit", limit, "q"})
		if err != nil {
			t.Fatalf("Parse(--limit %s) error: %v", limit, err)
		}
		want := defaults()
		want.Query = "q"
		if limit == "1" {
			want.Limit = 1
		} else {
			want.Limit = 100
		}
		if *got != want {
			t.Errorf("Parse(--limit %s) = %+v", limit, *got)
		}
	}
}

func TestParseHelpAndVersion(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		help bool
	}{
		{"long help", []string{"--help"}, true},
		{"short help", []string{"-h"}, true},
		{"help wins over later tokens", []string{"--help", "--bogus"}, true},
		{"version", []string{"--version"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.argv)
			if err != nil {
				t.Fatalf("Parse(%v) error: %v", tt.argv, err)
			}
			if got.ShowHelp != tt.help || got.ShowVersion == tt.help {
				t.Errorf("Parse(%v) = %+v", tt.argv, *got)
			}
		})
	}
}

func TestHelpText(t *testing.T) {
	styled := Help(true)
	if !strings.Contains(styled, "\x1b[1mskillsmp\x1b[0m") {
		t.Error("styled help should bold the program name")
	}
	for _, section := range []string{"Usage:", "Flags:", "--sort", "SKILLSMP_API_KEY"} {
		if !strings.Contains(styled, section) {
			t.Errorf("help is missing %q", section)
		}
	}

	unstyled := Help(false)
	if strings.Contains(unstyled, "\x1b[1m") {
		t.Error("unstyled help should not carry escape sequences")
	}
}

func TestShortUsage(t *testing.T) {
	styled := ShortUsage(true)
	if !strings.Contains(styled, "\x1b[1mskillsmp\x1b[0m") {
		t.Error("styled short usage should bold the program name")
	}
	if !strings.Contains(styled, `Run "skillsmp --help" for all options.`) {
		t.Errorf("short usage = %q", styled)
	}
	if strings.Contains(ShortUsage(false), "\x1b[1m") {
		t.Error("unstyled short usage should not carry escape sequences")
	}
}

func TestVersionLine(t *testing.T) {
	if !strings.HasPrefix(VersionLine(), "skillsmp ") {
		t.Errorf("VersionLine() = %q", VersionLine())
	}
}
