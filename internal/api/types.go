package api

// Skill is a marketplace entry as returned by the API. It is a read-only view
// over the response JSON; missing name/author fields are substituted at render
// time, and a nil UpdatedAt means the marketplace never reported a timestamp.
type Skill struct {
	Name        string `json:"name"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Stars       int    `json:"stars"`
	UpdatedAt   *int64 `json:"updatedAt"`
	GithubURL   string `json:"githubUrl"`
	SkillURL    string `json:"skillUrl"`
}

// Pagination describes the keyword-search result window.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
}

// KeywordData is the payload of a /search response.
type KeywordData struct {
	Skills     []Skill    `json:"skills"`
	Pagination Pagination `json:"pagination"`
}

// AIEntry pairs an optional skill with an optional relevance score. Entries
// may arrive with a score but no linked skill metadata.
type AIEntry struct {
	Skill *Skill   `json:"skill"`
	Score *float64 `json:"score"`
}

// AIData is the payload of an /ai-search response.
type AIData struct {
	Entries []AIEntry `json:"data"`
}
