package metacritic

// CriticScoreSummary aggregates review-score data for a title or one of its
// platform entries.
type CriticScoreSummary struct {
	Score     *float64 `json:"score"`
	Max       *float64 `json:"max"`
	Sentiment string   `json:"sentiment"`
	URL       string   `json:"url"`
}

// HasScore reports whether the summary is present and carries a non-zero
// score value.
func (s *CriticScoreSummary) HasScore() bool {
	return s != nil && s.Score != nil && *s.Score != 0
}

// PlatformRef names a platform attached to a search result.
type PlatformRef struct {
	Name string `json:"name"`
}

// SearchItem is one entry of the search response. Only items whose Type is
// TypeGameTitle describe games; the finder endpoint also returns people and
// publications.
type SearchItem struct {
	Type               string              `json:"type"`
	Title              string              `json:"title"`
	Slug               string              `json:"slug"`
	Platforms          []PlatformRef       `json:"platforms"`
	CriticScoreSummary *CriticScoreSummary `json:"criticScoreSummary"`
}

// TypeGameTitle marks search items that represent game titles.
const TypeGameTitle = "game-title"

// PlatformNames returns the non-empty platform names of the item.
func (i SearchItem) PlatformNames() []string {
	names := make([]string, 0, len(i.Platforms))
	for _, p := range i.Platforms {
		if p.Name != "" {
			names = append(names, p.Name)
		}
	}
	return names
}

// SearchResponse wraps the search payload; items live at data.items.
type SearchResponse struct {
	Data struct {
		Items []SearchItem `json:"items"`
	} `json:"data"`
}

// PlatformEntry is the per-platform sub-record of a detail item, carrying the
// platform-specific score and release date.
type PlatformEntry struct {
	Name               string              `json:"name"`
	ReleaseDate        string              `json:"releaseDate"`
	CriticScoreSummary *CriticScoreSummary `json:"criticScoreSummary"`
}

// DetailItem is the score detail record for a single slug. The top-level
// fields act as fallbacks when no platform entry applies.
type DetailItem struct {
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	ReleaseDate        string              `json:"releaseDate"`
	Platform           string              `json:"platform"`
	CriticScoreSummary *CriticScoreSummary `json:"criticScoreSummary"`
	Platforms          []PlatformEntry     `json:"platforms"`
}

// ScoresResponse wraps the detail payload; the record lives at data.item.
type ScoresResponse struct {
	Data struct {
		Item *DetailItem `json:"item"`
	} `json:"data"`
}
