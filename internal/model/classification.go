package model

// EpistemicLevel describes HOW the subject knows what they claim.
type EpistemicLevel string

const (
	LevelAPriori       EpistemicLevel = "a_priori"      // Known without experience (2+2=4)
	LevelAPosteriori   EpistemicLevel = "a_posteriori"  // Known through experience
	LevelIntrospective EpistemicLevel = "introspective" // Self-knowledge ("I like olives")
	LevelTestimonial   EpistemicLevel = "testimonial"   // Someone else's claim
	LevelNormative     EpistemicLevel = "normative"     // Ought/should claims
	LevelSpeculative   EpistemicLevel = "speculative"   // Guesses, hypotheticals
)

// SubjectType identifies WHO is making the claim.
type SubjectType string

const (
	SubjectSelf      SubjectType = "self"
	SubjectOther     SubjectType = "other"
	SubjectAuthority SubjectType = "authority"
	SubjectUniversal SubjectType = "universal"
	SubjectAnonymous SubjectType = "anonymous"
)

// AccessType tags how the subject accesses the claimed knowledge.
type AccessType string

const (
	AccessDirect   AccessType = "direct"
	AccessInferred AccessType = "inferred"
	AccessReported AccessType = "reported"
)

// Verifiability tags whether the claim can in principle be checked.
type Verifiability string

const (
	Verifiable          Verifiability = "verifiable"
	Unfalsifiable       Verifiability = "unfalsifiable"
	PartiallyVerifiable Verifiability = "partial"
)

// EpistemicSubject records who is speaking and how they know it. One is
// created fresh per detection call and never persisted.
type EpistemicSubject struct {
	SubjectType   SubjectType    `json:"subject_type"`
	Level         EpistemicLevel `json:"epistemic_level"`
	Confidence    float64        `json:"confidence"`
	AccessType    AccessType     `json:"access_type"`
	Verifiability Verifiability  `json:"verifiability"`
}

// Classification is the immutable output of classifying a single claim:
// the winning ontology token plus the final tier after any epistemic
// override, and the detected epistemic subject fields.
type Classification struct {
	Symbol        string         `json:"symbol"`    // Winning token symbol (e.g. "MathematicalTT")
	Name          string         `json:"name"`      // Token display name
	Tier          TruthTier      `json:"tier"`      // Final tier after epistemic override
	TierName      string         `json:"tier_name"`
	Resistance    float64        `json:"resistance"`
	SubjectType   SubjectType    `json:"epistemic_subject"`
	Level         EpistemicLevel `json:"epistemic_level"`
	Verifiability Verifiability  `json:"verifiability"`
	Confidence    float64        `json:"confidence"`
}

// VerificationResult is the immutable outcome of running the verification
// cascade on a classified claim. Resistance is copied from the
// classification's tier, never recomputed.
type VerificationResult struct {
	Verified   bool              `json:"verified"`
	Confidence float64           `json:"confidence"`
	Method     string            `json:"method"`
	Tier       TruthTier         `json:"tier"`
	Resistance float64           `json:"resistance"`
	Details    map[string]string `json:"details,omitempty"`
}
