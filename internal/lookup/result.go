package lookup

// Result is the externally observable outcome of a lookup. It is either a
// fully populated hit (Found true) or a miss carrying a human-readable
// Reason; partial results are never produced. Immutable once constructed.
type Result struct {
	Found        bool     `json:"found"`
	Reason       string   `json:"error,omitempty"`
	Title        string   `json:"title,omitempty"`
	MatchedTitle string   `json:"matched_title,omitempty"`
	Slug         string   `json:"slug,omitempty"`
	Platform     string   `json:"platform,omitempty"`
	Platforms    []string `json:"platforms,omitempty"`
	Score        *float64 `json:"score,omitempty"`
	ScoreMax     *float64 `json:"score_max,omitempty"`
	Sentiment    string   `json:"sentiment,omitempty"`
	ReleaseDate  string   `json:"release_date,omitempty"`
	Description  string   `json:"description,omitempty"`
	URL          string   `json:"metacritic_url,omitempty"`
}

// Miss reasons. These strings are part of the host-facing contract.
const (
	reasonMissingTitle = "Missing title"
	reasonNoEntry      = "No Metacritic entry found"
	reasonMissingSlug  = "Result missing slug"
	reasonNoDetails    = "Unable to load score details"
	reasonLookupFailed = "Lookup failed"
)

func miss(reason string) Result {
	return Result{Reason: reason}
}
