package match

import (
	"strings"

	"criticdeck/internal/textutil"
)

const (
	// substringBonus rewards candidates whose title contains the full
	// requested title.
	substringBonus = 0.25
	// prefixBonus rewards candidates sharing the leading characters of the
	// requested title.
	prefixBonus  = 0.10
	prefixLength = 6
	// platformBonus rewards candidates released on the requested platform.
	platformBonus = 0.20
	// scoredBonus nudges candidates that already carry a critic score.
	scoredBonus = 0.05
)

// Candidate carries the fields of a search result relevant to scoring.
type Candidate struct {
	Title     string
	Platforms []string
	HasScore  bool
}

// Score computes the similarity between a candidate and the requested title
// and platform. The base is the normalized sequence-match ratio in [0,1];
// bonuses are additive, so the final value may exceed 1.
func Score(c Candidate, targetTitle, targetPlatform string) float64 {
	title := textutil.Normalize(c.Title)
	target := textutil.Normalize(targetTitle)
	score := textutil.Ratio(target, title)

	if target != "" && title != "" {
		if strings.Contains(title, target) {
			score += substringBonus
		}
		prefix := target
		if len(prefix) > prefixLength {
			prefix = prefix[:prefixLength]
		}
		if strings.HasPrefix(title, prefix) {
			score += prefixBonus
		}
	}

	if platform := textutil.Normalize(targetPlatform); platform != "" {
		for _, name := range c.Platforms {
			if textutil.Normalize(name) == platform {
				score += platformBonus
				break
			}
		}
	}

	if c.HasScore {
		score += scoredBonus
	}
	return score
}
