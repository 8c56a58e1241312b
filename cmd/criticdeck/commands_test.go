package main

import (
	"strings"
	"testing"

	"criticdeck/internal/lookup"
)

func TestParseSettingValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want any
	}{
		{name: "number", raw: "42", want: float64(42)},
		{name: "bool", raw: "true", want: true},
		{name: "quoted string", raw: `"Switch"`, want: "Switch"},
		{name: "bare string", raw: "Switch", want: "Switch"},
		{name: "null", raw: "null", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseSettingValue(tt.raw)
			if got != tt.want {
				t.Fatalf("parseSettingValue(%q) = %v (%T), want %v (%T)", tt.raw, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestFormatScore(t *testing.T) {
	score := 93.0
	max := 100.0

	if got := formatScore(lookup.Result{}); got != "unscored" {
		t.Fatalf("formatScore without score = %q, want unscored", got)
	}
	if got := formatScore(lookup.Result{Score: &score}); got != "93" {
		t.Fatalf("formatScore without max = %q, want 93", got)
	}
	if got := formatScore(lookup.Result{Score: &score, ScoreMax: &max}); got != "93 / 100" {
		t.Fatalf("formatScore = %q, want 93 / 100", got)
	}
}

func TestRenderResultIncludesFields(t *testing.T) {
	score := 93.0
	max := 100.0
	result := lookup.Result{
		Found:        true,
		Title:        "Hades",
		MatchedTitle: "Hades",
		Platform:     "PC",
		Score:        &score,
		ScoreMax:     &max,
		Sentiment:    "Universal acclaim",
		Platforms:    []string{"PC", "Switch"},
		URL:          "https://www.metacritic.com/game/hades/",
	}

	rendered := renderResult(result)
	for _, want := range []string{"Hades", "93 / 100", "Universal acclaim", "PC, Switch", "https://www.metacritic.com/game/hades/"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("rendered table missing %q:\n%s", want, rendered)
		}
	}
}
