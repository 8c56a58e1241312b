package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"criticdeck/internal/api"
	"criticdeck/internal/lookup"
	"criticdeck/internal/metacritic"
	"criticdeck/internal/settings"
)

type stubBackend struct{}

func (stubBackend) Search(_ context.Context, query string) (*metacritic.SearchResponse, error) {
	resp := &metacritic.SearchResponse{}
	if query == "Hades" {
		resp.Data.Items = []metacritic.SearchItem{{
			Type:      metacritic.TypeGameTitle,
			Title:     "Hades",
			Slug:      "hades",
			Platforms: []metacritic.PlatformRef{{Name: "PC"}},
		}}
	}
	return resp, nil
}

func (stubBackend) Scores(_ context.Context, slug string) (*metacritic.ScoresResponse, error) {
	score := 93.0
	max := 100.0
	resp := &metacritic.ScoresResponse{}
	resp.Data.Item = &metacritic.DetailItem{
		Title: "Hades",
		Platforms: []metacritic.PlatformEntry{{
			Name:               "PC",
			CriticScoreSummary: &metacritic.CriticScoreSummary{Score: &score, Max: &max},
		}},
	}
	return resp, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	engine, err := lookup.NewEngine(stubBackend{})
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}
	store, err := settings.Open(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("Open settings returned error: %v", err)
	}
	server, err := api.NewServer("127.0.0.1:0", engine, store, nil)
	if err != nil {
		t.Fatalf("NewServer returned error: %v", err)
	}
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestScoreEndpointFound(t *testing.T) {
	ts := newTestServer(t)

	var result lookup.Result
	resp := getJSON(t, ts.URL+"/api/score?title=Hades&platform=PC", &result)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
	if !result.Found || result.Score == nil || *result.Score != 93 {
		t.Fatalf("unexpected result %#v", result)
	}
}

func TestScoreEndpointMissingTitle(t *testing.T) {
	ts := newTestServer(t)

	var result lookup.Result
	resp := getJSON(t, ts.URL+"/api/score", &result)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if result.Found || result.Reason != "Missing title" {
		t.Fatalf("unexpected result %#v", result)
	}
}

func TestScoreEndpointRejectsPost(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/score", "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.StatusCode)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/settings/preferred_platform", strings.NewReader(`{"value":"PS5"}`))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PUT: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("PUT status = %d, want 200", resp.StatusCode)
	}

	var payload struct {
		Key   string `json:"key"`
		Value any    `json:"value"`
	}
	getJSON(t, ts.URL+"/api/settings/preferred_platform", &payload)
	if payload.Key != "preferred_platform" || payload.Value != "PS5" {
		t.Fatalf("unexpected payload %#v", payload)
	}
}

func TestSettingsUnknownKeyReturnsNull(t *testing.T) {
	ts := newTestServer(t)

	var payload struct {
		Key   string `json:"key"`
		Value any    `json:"value"`
	}
	resp := getJSON(t, ts.URL+"/api/settings/absent", &payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if payload.Value != nil {
		t.Fatalf("value = %v, want null", payload.Value)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	var payload map[string]string
	resp := getJSON(t, ts.URL+"/healthz", &payload)
	if resp.StatusCode != http.StatusOK || payload["status"] != "ok" {
		t.Fatalf("unexpected health response %d %v", resp.StatusCode, payload)
	}
}
