// Package cli turns the raw argument list into a validated invocation.
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Mode selects which search endpoint a query targets.
type Mode string

const (
	// ModeKeyword is the paginated, sortable text search.
	ModeKeyword Mode = "search"
	// ModeAI is the relevance-ranked semantic search.
	ModeAI Mode = "ai"
)

const (
	defaultLimit = 10
	defaultPage  = 1
	defaultSort  = "stars"
)

// Arguments is the validated configuration for one invocation, built once
// from argv and immutable afterwards.
type Arguments struct {
	Mode  Mode
	Query string
	Limit int
	Page  int
	Sort  string
	JSON  bool
	Plain bool

	// ShowHelp and ShowVersion short-circuit everything else; the caller
	// renders the corresponding text and exits 0.
	ShowHelp    bool
	ShowVersion bool
}

// UsageError reports malformed or invalid command-line input.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// ErrNoQuery marks an invocation that collected no query text at all. Callers
// render the concise usage for it instead of a flag-specific message.
var ErrNoQuery = errors.New("missing search query")

func usageErrorf(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// Parse scans argv left to right. The first token that is not a flag ends
// flag parsing: it and everything after it, flag-looking or not, become the
// query. A literal "--" ends flag parsing with the remaining tokens taken
// verbatim.
func Parse(argv []string) (*Arguments, error) {
	args := &Arguments{
		Mode:  ModeKeyword,
		Limit: defaultLimit,
		Page:  defaultPage,
		Sort:  defaultSort,
	}

	var (
		rawLimit   *string
		rawPage    *string
		rawSort    *string
		queryParts []string
	)

	takeValue := func(i *int, flag string) (*string, error) {
		*i++
		if *i >= len(argv) {
			return nil, usageErrorf("flag %s requires a value", flag)
		}
		return &argv[*i], nil
	}

scan:
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch arg {
		case "-h", "--help":
			args.ShowHelp = true
			return args, nil
		case "--version":
			args.ShowVersion = true
			return args, nil
		case "-a", "--ai":
			args.Mode = ModeAI
		case "-j", "--json":
			args.JSON = true
		case "--plain":
			args.Plain = true
		case "-n", "--limit":
			val, err := takeValue(&i, arg)
			if err != nil {
				return nil, err
			}
			rawLimit = val
		case "-p", "--page":
			val, err := takeValue(&i, arg)
			if err != nil {
				return nil, err
			}
			rawPage = val
		case "-s", "--sort":
			val, err := takeValue(&i, arg)
			if err != nil {
				return nil, err
			}
			rawSort = val
		case "--":
			queryParts = append(queryParts, argv[i+1:]...)
			break scan
		default:
			if strings.HasPrefix(arg, "-") {
				return nil, usageErrorf("unknown flag: %s", arg)
			}
			queryParts = append(queryParts, argv[i:]...)
			break scan
		}
	}

	if args.JSON && args.Plain {
		return nil, usageErrorf("--json and --plain are mutually exclusive")
	}

	if rawLimit != nil {
		n, err := strconv.Atoi(*rawLimit)
		if err != nil {
			return nil, usageErrorf("--limit must be a number (got: %s)", *rawLimit)
		}
		if n < 1 || n > 100 {
			return nil, usageErrorf("--limit must be 1-100 (got: %d)", n)
		}
		args.Limit = n
	}

	if rawPage != nil {
		n, err := strconv.Atoi(*rawPage)
		if err != nil {
			return nil, usageErrorf("--page must be a number (got: %s)", *rawPage)
		}
		args.Page = n
	}

	if rawSort != nil {
		if *rawSort != "stars" && *rawSort != "recent" {
			return nil, usageErrorf("--sort must be 'stars' or 'recent' (got: %s)", *rawSort)
		}
		args.Sort = *rawSort
	}

	if args.Mode == ModeAI && (rawLimit != nil || rawPage != nil || rawSort != nil) {
		return nil, usageErrorf("--limit, --page, --sort do not apply to --ai search")
	}

	if len(queryParts) == 0 {
		return nil, ErrNoQuery
	}
	args.Query = strings.Join(queryParts, " ")

	return args, nil
}
