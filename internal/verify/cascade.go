// Package verify implements the tier-banded verification cascade.
// Verification here means applying a fixed local decision rule based on
// pattern matches; no external lookup is ever performed. Verification depth
// scales with tier resistance: low tiers are checked against the Truth
// Floor and lexical patterns, middle tiers are acknowledged with capped
// confidence, and integrity-tier claims never pass.
package verify

import (
	"regexp"
	"strings"

	"github.com/Sovrenmirror/sovrenai-workbench/internal/axiom"
	"github.com/Sovrenmirror/sovrenai-workbench/internal/model"
)

// Verification method labels, one per band rule.
const (
	MethodTruthFloorAxiom    = "truth_floor_axiom"
	MethodTautology          = "tautology"
	MethodTruthFloorConstant = "truth_floor_constant"
	MethodMathPattern        = "mathematical_pattern"
	MethodLogicalPattern     = "logical_pattern"
	MethodPatternVerified    = "pattern_verified"
	MethodContextAck         = "context_acknowledged"
	MethodEpistemicAck       = "epistemic_acknowledgment"
	MethodSpeculativeFlag    = "speculative_flagged"
	MethodIntegrityViolation = "integrity_violation_detected"
	MethodDefaultPass        = "default_pass"
)

var arithmeticPattern = regexp.MustCompile(`\d+\s*[\+\-\*\/\=]\s*\d+`)

var tautologyCues = []string{"exists", "a = a", "identical"}
var logicalCues = []string{"therefore", "thus", "implies", "if then"}
var scientificCues = []string{"law", "constant", "measured", "documented", "recorded"}

// Cascade verifies classified claims against the axiom registry and static
// pattern tables. It is stateless aside from registry reads and safe for
// concurrent use.
type Cascade struct {
	registry *axiom.Registry
}

// NewCascade creates a cascade backed by the given registry.
func NewCascade(registry *axiom.Registry) *Cascade {
	return &Cascade{registry: registry}
}

// Verify runs the band for the classification's tier and returns the first
// applicable rule's result. Results are immutable and never cached; the
// resistance is copied from the classification, not recomputed.
func (c *Cascade) Verify(claim string, cls model.Classification) model.VerificationResult {
	tier := cls.Tier
	resistance := cls.Resistance
	lower := strings.ToLower(claim)

	result := func(verified bool, confidence float64, method string, details map[string]string) model.VerificationResult {
		return model.VerificationResult{
			Verified:   verified,
			Confidence: confidence,
			Method:     method,
			Tier:       tier,
			Resistance: resistance,
			Details:    details,
		}
	}

	switch {
	case tier == model.TierAxiomatic:
		if ax, ok := c.registry.Match(claim); ok {
			return result(true, 1.0, MethodTruthFloorAxiom, map[string]string{"matched_axiom": ax})
		}
		if containsAny(lower, tautologyCues) {
			return result(true, 1.0, MethodTautology, nil)
		}

	case tier == model.TierMathematical || tier == model.TierLogical:
		if ax, ok := c.registry.Match(claim); ok {
			return result(true, 0.99, MethodTruthFloorConstant, map[string]string{"matched_axiom": ax})
		}
		if arithmeticPattern.MatchString(claim) {
			return result(true, 0.95, MethodMathPattern, nil)
		}
		if containsAny(lower, logicalCues) {
			return result(true, 0.90, MethodLogicalPattern, nil)
		}

	case tier >= model.TierEmpiricalStable && tier <= model.TierDocumentary:
		if containsAny(lower, scientificCues) {
			return result(true, 0.85, MethodPatternVerified, nil)
		}

	case tier >= model.TierContextual && tier <= model.TierTestimonial:
		// Contextual, temporal and testimonial claims are accepted with
		// capped confidence, never independently confirmed.
		return result(true, 0.70, MethodContextAck, map[string]string{
			"note": "Context-dependent claim - confidence limited",
		})

	case tier >= model.TierSocial && tier <= model.TierSpeculative:
		if cls.Verifiability == model.Unfalsifiable {
			return result(true, 0.50, MethodEpistemicAck, map[string]string{
				"note": "Subjective/speculative - cannot independently verify",
			})
		}
		return result(true, 0.40, MethodSpeculativeFlag, map[string]string{
			"note": "Flagged as speculative",
		})

	case tier == model.TierIntegrity:
		// Integrity violations never pass, regardless of lexical content.
		// They require external fact-checking this system does not perform.
		return result(false, 0.0, MethodIntegrityViolation, map[string]string{
			"note": "Potential misinformation - requires full verification",
		})
	}

	return result(true, 0.60, MethodDefaultPass, nil)
}

func containsAny(text string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(text, cue) {
			return true
		}
	}
	return false
}
