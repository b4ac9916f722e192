// Package format renders marketplace search responses as human text, a single
// JSON document, or tab-separated plain lines.
package format

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/skillsmp/skillsmp-go/internal/api"
)

// Output selects one of the three rendering contracts.
type Output int

const (
	// Human is block-formatted text for reading in a terminal.
	Human Output = iota
	// JSON emits exactly one JSON document on stdout.
	JSON
	// Plain emits one tab-separated line per result for text tools.
	Plain
)

const (
	descHumanLimit = 200
	descPlainLimit = 100
)

// Renderer writes search results to its output streams. The interactive flag
// reflects whether stderr is attached to a terminal; it gates styling, the
// no-results hint, and the transient progress line.
type Renderer struct {
	stdout      io.Writer
	stderr      io.Writer
	interactive bool
	bold        *color.Color
}

// NewRenderer builds a renderer for the given streams.
func NewRenderer(stdout, stderr io.Writer, interactive bool) *Renderer {
	bold := color.New(color.Bold)
	if interactive {
		bold.EnableColor()
	} else {
		bold.DisableColor()
	}
	return &Renderer{stdout: stdout, stderr: stderr, interactive: interactive, bold: bold}
}

// Bold wraps s in terminal bold escapes when stderr is interactive.
func (r *Renderer) Bold(s string) string {
	return r.bold.Sprint(s)
}

// record is the normalized result shape emitted in json mode.
type record struct {
	Name           string   `json:"name"`
	Author         string   `json:"author"`
	Description    string   `json:"description"`
	Stars          int      `json:"stars"`
	UpdatedAt      *int64   `json:"updatedAt"`
	GithubURL      string   `json:"githubUrl"`
	SkillURL       string   `json:"skillUrl"`
	RelevanceScore *float64 `json:"relevanceScore,omitempty"`
}

type keywordDoc struct {
	Query      string   `json:"query"`
	Mode       string   `json:"mode"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	TotalPages int      `json:"totalPages"`
	Skills     []record `json:"skills"`
}

type aiDoc struct {
	Query        string   `json:"query"`
	Mode         string   `json:"mode"`
	Total        int      `json:"total"`
	WithMetadata int      `json:"withMetadata"`
	Skills       []record `json:"skills"`
}

// Keyword renders a keyword-search response in the selected output format.
func (r *Renderer) Keyword(query string, data *api.KeywordData, out Output) error {
	p := data.Pagination

	switch out {
	case JSON:
		return r.writeJSON(keywordDoc{
			Query:      query,
			Mode:       "keyword",
			Total:      p.Total,
			Page:       p.Page,
			TotalPages: p.TotalPages,
			Skills:     normalizeAll(data.Skills),
		})
	case Plain:
		for i := range data.Skills {
			fmt.Fprintln(r.stdout, strings.Join(plainFields(&data.Skills[i]), "\t"))
		}
		return nil
	default:
		fmt.Fprintf(r.stdout, "%s \"%s\" — %d results (page %d/%d)\n\n",
			r.Bold("Keyword search:"), query, p.Total, p.Page, p.TotalPages)
		if len(data.Skills) == 0 {
			r.noResults()
			return nil
		}
		for i := range data.Skills {
			r.humanBlock(&data.Skills[i], nil)
		}
		return nil
	}
}

// AI renders a semantic-search response. Entries lacking linked skill
// metadata are never rendered per item: json and plain exclude them, human
// mode reports them as a single trailing count.
func (r *Renderer) AI(query string, data *api.AIData, out Output) error {
	var with []api.AIEntry
	for _, e := range data.Entries {
		if e.Skill != nil {
			with = append(with, e)
		}
	}

	switch out {
	case JSON:
		skills := make([]record, 0, len(with))
		for _, e := range with {
			skills = append(skills, normalize(e.Skill, e.Score))
		}
		return r.writeJSON(aiDoc{
			Query:        query,
			Mode:         "semantic",
			Total:        len(data.Entries),
			WithMetadata: len(with),
			Skills:       skills,
		})
	case Plain:
		for _, e := range with {
			fields := append(plainFields(e.Skill), scoreField(e.Score))
			fmt.Fprintln(r.stdout, strings.Join(fields, "\t"))
		}
		return nil
	default:
		fmt.Fprintf(r.stdout, "%s \"%s\" — %d results (%d with metadata)\n\n",
			r.Bold("AI search:"), query, len(data.Entries), len(with))
		if len(data.Entries) == 0 {
			r.noResults()
			return nil
		}
		for _, e := range with {
			r.humanBlock(e.Skill, e.Score)
		}
		if skipped := len(data.Entries) - len(with); skipped > 0 {
			fmt.Fprintf(r.stdout, "  (%d additional results without full metadata, skipped)\n", skipped)
		}
		return nil
	}
}

// Progress writes a transient status line to stderr and returns a function
// that erases it. Outside an interactive terminal both are no-ops.
func (r *Renderer) Progress(msg string) func() {
	if !r.interactive {
		return func() {}
	}
	fmt.Fprint(r.stderr, msg)
	return func() { fmt.Fprint(r.stderr, "\r\x1b[K") }
}

// RequestError renders an API or network failure exactly once. In json mode a
// single error document goes to stdout; otherwise one line goes to stderr.
func (r *Renderer) RequestError(err error, jsonOut bool) {
	if !jsonOut {
		fmt.Fprintf(r.stderr, "skillsmp: %v\n", err)
		return
	}

	doc := struct {
		Error string `json:"error"`
		Code  int    `json:"code,omitempty"`
	}{Error: err.Error()}

	var apiErr *api.APIError
	var netErr *api.NetworkError
	switch {
	case errors.As(err, &apiErr):
		doc.Error = apiErr.Message
		doc.Code = apiErr.Code
	case errors.As(err, &netErr):
		doc.Error = netErr.Err.Error()
	}
	_ = json.NewEncoder(r.stdout).Encode(doc)
}

func (r *Renderer) humanBlock(s *api.Skill, score *float64) {
	header := fmt.Sprintf("  %s/%s", displayName(s.Author), displayName(s.Name))
	if score != nil {
		header += fmt.Sprintf("  (relevance: %.2f)", *score)
	}
	header += fmt.Sprintf("  [%s stars, updated %s]", Stars(s.Stars), UpdatedDate(s.UpdatedAt))
	fmt.Fprintln(r.stdout, header)

	if s.Description != "" {
		fmt.Fprintf(r.stdout, "    %s\n", truncate(s.Description, descHumanLimit))
	}
	if s.GithubURL != "" {
		fmt.Fprintf(r.stdout, "    github: %s\n", s.GithubURL)
	}
	if s.SkillURL != "" {
		fmt.Fprintf(r.stdout, "    skillsmp: %s\n", s.SkillURL)
	}
	fmt.Fprintln(r.stdout)
}

func (r *Renderer) noResults() {
	fmt.Fprintln(r.stdout, "  No results found.")
	if r.interactive {
		fmt.Fprintln(r.stderr, "Tip: broaden the query, or try AI search with --ai.")
	}
}

func (r *Renderer) writeJSON(doc any) error {
	enc := json.NewEncoder(r.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func plainFields(s *api.Skill) []string {
	return []string{
		displayName(s.Author) + "/" + displayName(s.Name),
		strconv.Itoa(s.Stars),
		truncate(s.Description, descPlainLimit),
		s.GithubURL,
	}
}

func scoreField(score *float64) string {
	if score == nil {
		return "0"
	}
	return strconv.FormatFloat(round4(*score), 'f', -1, 64)
}

func normalize(s *api.Skill, score *float64) record {
	rec := record{
		Name:        displayName(s.Name),
		Author:      displayName(s.Author),
		Description: s.Description,
		Stars:       s.Stars,
		UpdatedAt:   s.UpdatedAt,
		GithubURL:   s.GithubURL,
		SkillURL:    s.SkillURL,
	}
	if score != nil {
		rounded := round4(*score)
		rec.RelevanceScore = &rounded
	}
	return rec
}

func normalizeAll(skills []api.Skill) []record {
	recs := make([]record, 0, len(skills))
	for i := range skills {
		recs = append(recs, normalize(&skills[i], nil))
	}
	return recs
}

// Stars abbreviates a star count with one decimal and a "k" suffix above 1000.
func Stars(n int) string {
	if n >= 1000 {
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	}
	return strconv.Itoa(n)
}

// UpdatedDate formats an epoch-seconds timestamp as a UTC calendar date.
// Absent or zero timestamps read "unknown".
func UpdatedDate(ts *int64) string {
	if ts == nil || *ts == 0 {
		return "unknown"
	}
	return time.Unix(*ts, 0).UTC().Format("2006-01-02")
}

func displayName(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

// truncate caps s at limit characters, never splitting a multibyte rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
