package lookup

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"criticdeck/internal/logging"
	"criticdeck/internal/match"
	"criticdeck/internal/metacritic"
	"criticdeck/internal/textutil"
	"criticdeck/internal/ttlcache"
)

// Backend defines the two backend operations the engine depends on.
type Backend interface {
	Search(ctx context.Context, query string) (*metacritic.SearchResponse, error)
	Scores(ctx context.Context, slug string) (*metacritic.ScoresResponse, error)
}

var _ Backend = (*metacritic.Client)(nil)

const (
	// DefaultTTL is how long a found result stays served from cache.
	DefaultTTL = 6 * time.Hour
	// DefaultPlatform is assumed when the caller passes no platform hint.
	DefaultPlatform = "PC"
	// DefaultSiteOrigin prefixes relative Metacritic URLs.
	DefaultSiteOrigin = "https://www.metacritic.com"
)

// Engine orchestrates search, candidate selection, detail fetch, platform
// resolution, and the result cache.
type Engine struct {
	backend Backend
	logger  *slog.Logger
	origin  string
	ttl     time.Duration
	now     func() time.Time
	cache   *ttlcache.Cache[string, Result]
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger installs a logger. The engine defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithTTL overrides the cache validity window.
func WithTTL(ttl time.Duration) Option {
	return func(e *Engine) {
		if ttl > 0 {
			e.ttl = ttl
		}
	}
}

// WithSiteOrigin overrides the origin prepended to relative result URLs.
func WithSiteOrigin(origin string) Option {
	return func(e *Engine) {
		if origin = strings.TrimSpace(origin); origin != "" {
			e.origin = strings.TrimRight(origin, "/")
		}
	}
}

// WithClock overrides the time source. Tests use this to age cache entries.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates an engine over the given backend.
func NewEngine(backend Backend, opts ...Option) (*Engine, error) {
	if backend == nil {
		return nil, errors.New("lookup backend is nil")
	}
	e := &Engine{
		backend: backend,
		logger:  logging.NewNop(),
		origin:  DefaultSiteOrigin,
		ttl:     DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logging.NewComponentLogger(e.logger, "lookup")
	e.cache = ttlcache.New[string, Result](e.ttl)
	return e, nil
}

// Lookup resolves the critic score for title on platform. An empty platform
// means DefaultPlatform. This is the host-facing entry point: transport and
// decode failures never escape; they are logged and reported as a generic
// miss so callers always receive a usable Result.
func (e *Engine) Lookup(ctx context.Context, title, platform string) Result {
	res, err := e.lookup(ctx, title, platform)
	if err != nil {
		e.logger.Warn("metacritic lookup failed",
			logging.String("title", title),
			logging.String("platform", platform),
			logging.Error(err))
		return miss(reasonLookupFailed)
	}
	return res
}

func (e *Engine) lookup(ctx context.Context, title, platform string) (Result, error) {
	if strings.TrimSpace(platform) == "" {
		platform = DefaultPlatform
	}
	if title == "" {
		return miss(reasonMissingTitle), nil
	}

	key := cacheKey(title, platform)
	if cached, ok := e.cache.Get(key, e.now()); ok {
		e.logger.Debug("lookup served from cache", logging.String("cache_key", key))
		return cached, nil
	}

	res, err := e.fetchScore(ctx, title, platform)
	if err != nil {
		return Result{}, err
	}
	if res.Found {
		e.cache.Put(key, res, e.now())
	}
	return res, nil
}

func (e *Engine) fetchScore(ctx context.Context, title, platform string) (Result, error) {
	search, err := e.backend.Search(ctx, title)
	if err != nil {
		return Result{}, err
	}

	picked := e.pickBestMatch(search.Data.Items, title, platform)
	if picked == nil {
		return miss(reasonNoEntry), nil
	}
	if picked.Slug == "" {
		return miss(reasonMissingSlug), nil
	}

	detail, err := e.backend.Scores(ctx, picked.Slug)
	if err != nil {
		return Result{}, err
	}
	item := detail.Data.Item
	if item == nil {
		return miss(reasonNoDetails), nil
	}

	entry := resolvePlatformEntry(item.Platforms, platform)

	summary := item.CriticScoreSummary
	releaseDate := item.ReleaseDate
	platformName := item.Platform
	if platformName == "" {
		platformName = platform
	}
	if entry != nil {
		summary = entry.CriticScoreSummary
		releaseDate = entry.ReleaseDate
		platformName = entry.Name
	}

	res := Result{
		Found:        true,
		Title:        item.Title,
		MatchedTitle: picked.Title,
		Slug:         picked.Slug,
		Platform:     platformName,
		Platforms:    platformNames(item.Platforms),
		ReleaseDate:  releaseDate,
		Description:  item.Description,
	}
	if summary != nil {
		res.Score = summary.Score
		res.ScoreMax = summary.Max
		res.Sentiment = summary.Sentiment
		res.URL = e.normalizeURL(summary.URL)
	}

	e.logger.Info("metacritic lookup resolved",
		logging.String("title", title),
		logging.String("matched_title", res.MatchedTitle),
		logging.String("slug", res.Slug),
		logging.String("platform", res.Platform))
	return res, nil
}

// pickBestMatch scores every eligible game-title candidate and keeps the one
// with the strictly highest score. Ties keep the earlier candidate; nothing
// is selected when no candidate scores above zero.
func (e *Engine) pickBestMatch(items []metacritic.SearchItem, title, platform string) *metacritic.SearchItem {
	var best *metacritic.SearchItem
	bestScore := 0.0
	for i := range items {
		item := &items[i]
		if item.Type != metacritic.TypeGameTitle {
			continue
		}
		if textutil.Normalize(item.Title) == "" {
			continue
		}
		score := match.Score(match.Candidate{
			Title:     item.Title,
			Platforms: item.PlatformNames(),
			HasScore:  item.CriticScoreSummary.HasScore(),
		}, title, platform)
		e.logger.Debug("scored search candidate",
			logging.Int("result_index", i),
			logging.String("candidate_title", item.Title),
			logging.Float64("score", score))
		if score > bestScore {
			best = item
			bestScore = score
		}
	}
	return best
}

// resolvePlatformEntry finds the entry whose normalized name equals the
// requested platform, falling back to the first entry when none matches.
// An empty list or empty platform resolves to no entry, which routes all
// score fields to the detail item's top-level fallbacks.
func resolvePlatformEntry(entries []metacritic.PlatformEntry, platform string) *metacritic.PlatformEntry {
	if len(entries) == 0 {
		return nil
	}
	target := textutil.Normalize(platform)
	if target == "" {
		return nil
	}
	for i := range entries {
		if entries[i].Name != "" && textutil.Normalize(entries[i].Name) == target {
			return &entries[i]
		}
	}
	return &entries[0]
}

func platformNames(entries []metacritic.PlatformEntry) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Name != "" {
			names = append(names, entry.Name)
		}
	}
	return names
}

// normalizeURL prepends the site origin to relative backend URLs.
func (e *Engine) normalizeURL(raw string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http") {
		return raw
	}
	return e.origin + raw
}

// cacheKey addresses the result cache. Distinct from text normalization: the
// raw title and platform are only case-folded and joined.
func cacheKey(title, platform string) string {
	return strings.ToLower(title + "|" + platform)
}
