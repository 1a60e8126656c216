package model

import "fmt"

// TruthTier is one of the 13 ordered certainty levels, T0 (axiomatic)
// through T12 (integrity violation). Resistance is the nominal cost of
// verifying a claim at that tier and is monotonically non-decreasing.
type TruthTier int

const (
	TierAxiomatic        TruthTier = 0  // Self-evident axioms and tautologies
	TierMathematical     TruthTier = 1  // Proofs and physical constants
	TierLogical          TruthTier = 2  // Deductions and syllogisms
	TierEmpiricalStable  TruthTier = 3  // Established scientific laws
	TierEmpiricalMeasure TruthTier = 4  // Measurements and statistics
	TierDocumentary      TruthTier = 5  // Documents and historical records
	TierContextual       TruthTier = 6  // Context-dependent truths
	TierTemporal         TruthTier = 7  // Time-dependent facts and predictions
	TierTestimonial      TruthTier = 8  // Reported claims
	TierSocial           TruthTier = 9  // Consensus and cultural norms
	TierCognitive        TruthTier = 10 // Beliefs and subjective experience
	TierSpeculative      TruthTier = 11 // Speculation and hypotheticals
	TierIntegrity        TruthTier = 12 // False or misleading claims
)

// TierCount is the number of defined tiers.
const TierCount = 13

var tierNames = [TierCount]string{
	"Axiomatic",
	"Mathematical",
	"Logical",
	"Empirical-Stable",
	"Empirical-Measured",
	"Documentary",
	"Contextual",
	"Temporal",
	"Testimonial",
	"Social/Consensus",
	"Cognitive/Subjective",
	"Speculative",
	"Integrity Violation",
}

var tierResistances = [TierCount]float64{
	0.000, 0.001, 0.005, 0.010, 0.030, 0.050, 0.080, 0.120, 0.180, 0.250, 0.350, 0.500, 1.000,
}

var tierDescriptions = [TierCount]string{
	"Self-evident axioms and tautologies",
	"Mathematical proofs and physical constants",
	"Logical deductions and syllogisms",
	"Established scientific laws and universal facts",
	"Empirical measurements and statistical findings",
	"Documentary evidence and historical records",
	"Context-dependent and domain-specific truths",
	"Time-dependent facts and predictions",
	"Testimonial evidence and reported claims",
	"Social consensus and cultural norms",
	"Personal beliefs and subjective experiences",
	"Speculation and hypothetical scenarios",
	"False or misleading claims (integrity violations)",
}

// Valid reports whether t is a defined tier.
func (t TruthTier) Valid() bool {
	return t >= TierAxiomatic && t <= TierIntegrity
}

// Name returns the display name for the tier (e.g. "Empirical-Stable").
func (t TruthTier) Name() string {
	if !t.Valid() {
		return "Unknown"
	}
	return tierNames[t]
}

// Resistance returns the nominal verification cost in [0.0, 1.0].
func (t TruthTier) Resistance() float64 {
	if !t.Valid() {
		return 1.0
	}
	return tierResistances[t]
}

// Description returns the human-readable tier description.
func (t TruthTier) Description() string {
	if !t.Valid() {
		return "Unknown tier"
	}
	return tierDescriptions[t]
}

func (t TruthTier) String() string {
	return fmt.Sprintf("T%d (%s)", int(t), t.Name())
}

// Tiers returns all 13 tiers in ascending rank order.
func Tiers() []TruthTier {
	tiers := make([]TruthTier, TierCount)
	for i := range tiers {
		tiers[i] = TruthTier(i)
	}
	return tiers
}
