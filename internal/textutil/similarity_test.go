package textutil_test

import (
	"math"
	"testing"

	"criticdeck/internal/textutil"
)

func TestRatio(t *testing.T) {
	cases := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "identical", a: "hades", b: "hades", want: 1},
		{name: "both empty", a: "", b: "", want: 1},
		{name: "one empty", a: "abc", b: "", want: 0},
		{name: "disjoint", a: "abc", b: "xyz", want: 0},
		{name: "partial overlap", a: "abcd", b: "bcde", want: 0.75},
		{name: "repeated characters", a: "aaab", b: "baaa", want: 0.75},
		{name: "substring", a: "ring", b: "elden ring", want: 2 * 4.0 / 14.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := textutil.Ratio(tc.a, tc.b)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("Ratio(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestRatioSymmetricRange(t *testing.T) {
	pairs := [][2]string{
		{"hades", "hades ii"},
		{"grand theft auto", "gta"},
		{"celeste", "teslace"},
	}
	for _, pair := range pairs {
		forward := textutil.Ratio(pair[0], pair[1])
		if forward < 0 || forward > 1 {
			t.Fatalf("Ratio(%q, %q) = %v outside [0,1]", pair[0], pair[1], forward)
		}
	}
}
