// Package epistemic detects WHO is making a claim and HOW they know it.
package epistemic

import (
	"regexp"
	"strings"

	"github.com/Sovrenmirror/sovrenai-workbench/internal/model"
)

// Pattern groups are evaluated in this fixed priority order; the first group
// with any match wins. Introspective self-report outranks reported/external
// framing: direct self-knowledge is the most certain epistemic category.
var introspectivePatterns = compileAll(
	`\bi\s+(feel|think|believe|want|like|hate|love|prefer|know|remember)\b`,
	`\bmy\s+(opinion|view|feeling|experience|belief)\b`,
	`\bto me\b`,
	`\bfor me\b`,
	`\bi'm\s+(sure|certain|convinced)\b`,
)

var testimonialPatterns = compileAll(
	`\b(said|told|claimed|stated|believes|thinks)\b`,
	`\baccording to\b`,
	`\b\w+\s+says\b`,
	`\breportedly\b`,
	`\ballegedly\b`,
)

var authorityPatterns = compileAll(
	`\bscientists?\s+(say|believe|found|discovered)\b`,
	`\bresearch\s+(shows?|indicates?|suggests?)\b`,
	`\bexperts?\s+(say|believe|agree)\b`,
	`\bthe\s+study\s+(found|shows|indicates)\b`,
)

var aprioriPatterns = compileAll(
	`\b\d+\s*[\+\-\*\/]\s*\d+\s*=\s*\d+\b`, // full equations like 2+2=4
	`\b\d+\s*[\+\-\*\/]\s*\d+\b`,           // partial math like 2+2
	`\bby definition\b`,
	`\bnecessarily\b`,
	`\blogically\b`,
	`\ball\s+\w+\s+are\b`,
	`\bno\s+\w+\s+is\b`,
)

var normativePatterns = compileAll(
	`\bshould\b`,
	`\bought\b`,
	`\bmust\b`,
	`\bneed to\b`,
	`\bis\s+(right|wrong|good|bad|moral|immoral)\b`,
)

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

func anyMatch(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// Detect classifies the epistemic subject of a claim. It is a pure function
// over static pattern tables and safe for concurrent use.
func Detect(text string) model.EpistemicSubject {
	lower := strings.ToLower(text)

	switch {
	case anyMatch(introspectivePatterns, lower):
		return model.EpistemicSubject{
			SubjectType:   model.SubjectSelf,
			Level:         model.LevelIntrospective,
			Confidence:    1.0,
			AccessType:    model.AccessDirect,
			Verifiability: model.Unfalsifiable,
		}
	case anyMatch(testimonialPatterns, lower):
		return model.EpistemicSubject{
			SubjectType:   model.SubjectOther,
			Level:         model.LevelTestimonial,
			Confidence:    0.7,
			AccessType:    model.AccessReported,
			Verifiability: model.PartiallyVerifiable,
		}
	case anyMatch(authorityPatterns, lower):
		return model.EpistemicSubject{
			SubjectType:   model.SubjectAuthority,
			Level:         model.LevelAPosteriori,
			Confidence:    0.85,
			AccessType:    model.AccessReported,
			Verifiability: model.Verifiable,
		}
	case anyMatch(aprioriPatterns, lower):
		return model.EpistemicSubject{
			SubjectType:   model.SubjectUniversal,
			Level:         model.LevelAPriori,
			Confidence:    1.0,
			AccessType:    model.AccessDirect,
			Verifiability: model.Verifiable,
		}
	case anyMatch(normativePatterns, lower):
		return model.EpistemicSubject{
			SubjectType:   model.SubjectAnonymous,
			Level:         model.LevelNormative,
			Confidence:    0.6,
			AccessType:    model.AccessInferred,
			Verifiability: model.PartiallyVerifiable,
		}
	default:
		return model.EpistemicSubject{
			SubjectType:   model.SubjectAnonymous,
			Level:         model.LevelAPosteriori,
			Confidence:    0.8,
			AccessType:    model.AccessDirect,
			Verifiability: model.Verifiable,
		}
	}
}
