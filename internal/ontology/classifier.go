package ontology

import (
	"strings"

	"github.com/Sovrenmirror/sovrenai-workbench/internal/epistemic"
	"github.com/Sovrenmirror/sovrenai-workbench/internal/model"
)

// tierOverride forces a final tier when the epistemic level demands it: HOW
// a claim is known can outrank WHAT lexical category it matches. Rules are
// checked in order, first match wins.
type tierOverride struct {
	level model.EpistemicLevel
	tier  model.TruthTier
}

var tierOverrides = []tierOverride{
	{model.LevelIntrospective, model.TierCognitive},
	{model.LevelTestimonial, model.TierTestimonial},
	{model.LevelSpeculative, model.TierSpeculative},
}

// Classify maps a claim onto the token table and emits an immutable
// Classification. Unclassifiable input is never an error: claims with no
// keyword hits resolve to the default token.
func Classify(text string) model.Classification {
	subject := epistemic.Detect(text)
	lower := strings.ToLower(text)

	// Strict-max keyword scoring; first-inserted token wins ties.
	best, bestScore := Token{}, 0
	for _, tok := range tokens {
		score := 0
		for _, kw := range tok.Keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = tok, score
		}
	}
	if bestScore == 0 {
		best, _ = Lookup(defaultSymbol)
	}

	tier := best.Tier
	for _, rule := range tierOverrides {
		if subject.Level == rule.level {
			tier = rule.tier
			break
		}
	}

	return model.Classification{
		Symbol:        best.Symbol,
		Name:          best.Name,
		Tier:          tier,
		TierName:      tier.Name(),
		Resistance:    tier.Resistance(),
		SubjectType:   subject.SubjectType,
		Level:         subject.Level,
		Verifiability: subject.Verifiability,
		Confidence:    subject.Confidence,
	}
}
