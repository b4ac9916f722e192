// Package api is the HTTP client for the SkillsMP marketplace search API.
// It is the only part of the tool that performs network I/O: one authenticated
// GET per invocation against the keyword or semantic search endpoint.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/skillsmp/skillsmp-go/internal/version"
)

// DefaultBaseURL is the fixed root of the SkillsMP skills API.
const DefaultBaseURL = "https://skillsmp.com/api/v1/skills"

const requestTimeout = 30 * time.Second

// APIError is a non-2xx response from the marketplace.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.Code, e.Message)
}

// NetworkError is a transport-level failure: DNS, refused connection, timeout.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network error: %v", e.Err) }

func (e *NetworkError) Unwrap() error { return e.Err }

// Client issues authenticated requests against the search endpoints.
type Client struct {
	// BaseURL may be pointed at a test server.
	BaseURL string

	apiKey string
	client *http.Client
}

// New creates a client for the given API key.
func New(apiKey string) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Search performs a paginated keyword search.
func (c *Client) Search(query string, limit, page int, sort string) (*KeywordData, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("page", strconv.Itoa(page))
	params.Set("sortBy", sort)

	var resp struct {
		Data KeywordData `json:"data"`
	}
	if err := c.get("search", params, &resp); err != nil {
		return nil, err
	}

	// The marketplace omits pagination for some empty result sets.
	if resp.Data.Pagination.Page == 0 {
		resp.Data.Pagination.Page = 1
	}
	if resp.Data.Pagination.TotalPages == 0 {
		resp.Data.Pagination.TotalPages = 1
	}
	return &resp.Data, nil
}

// AISearch performs a relevance-ranked semantic search. Only the query is
// sent; the endpoint does not paginate.
func (c *Client) AISearch(query string) (*AIData, error) {
	params := url.Values{}
	params.Set("q", query)

	var resp struct {
		Data AIData `json:"data"`
	}
	if err := c.get("ai-search", params, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) get(endpoint string, params url.Values, v any) error {
	reqURL := fmt.Sprintf("%s/%s?%s", c.BaseURL, endpoint, params.Encode())

	req, err := http.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", "skillsmp-cli/"+version.Version)

	resp, err := c.client.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiErrorFrom(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiErrorFrom extracts the message the API puts in an error body, falling
// back to the protocol status phrase when the body is not JSON.
func apiErrorFrom(resp *http.Response) error {
	msg := http.StatusText(resp.StatusCode)

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error.Message != "" {
		msg = body.Error.Message
	}
	return &APIError{Code: resp.StatusCode, Message: msg}
}
