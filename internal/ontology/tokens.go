// Package ontology implements the Truth Token Ontology: a static catalog of
// named claim categories, each bound to one truth tier and a keyword set,
// and the classifier that maps free-text claims onto it.
package ontology

import "github.com/Sovrenmirror/sovrenai-workbench/internal/model"

// Token is a named category of claim bound to exactly one tier. Many tokens
// may share a tier. Keywords are matched as substrings of the lowercased
// claim text.
type Token struct {
	Symbol     string
	Tier       model.TruthTier
	Name       string
	Definition string
	Keywords   []string
}

// defaultSymbol is the fallback token for claims with no keyword hits.
const defaultSymbol = "AtomicFactTT"

// tokens is the static table. Insertion order is significant: it is the
// deterministic tie-break for equal keyword-hit counts.
var tokens = []Token{
	// T0 - Axiomatic
	{"TautologyTT", model.TierAxiomatic, "Tautology", "Self-evidently true", []string{"tautology", "by definition", "necessarily"}},
	{"ExistenceTT", model.TierAxiomatic, "Existence", "Existence claim", []string{"exists", "there is", "being"}},
	{"IdentityTT", model.TierAxiomatic, "Identity", "A = A", []string{"identical", "same as", "equals itself"}},

	// T1 - Mathematical
	{"MathematicalTT", model.TierMathematical, "Mathematical", "Provable calculation", []string{"equals", "sum", "calculate", "compute", "math", "+", "-", "*", "/", "="}},
	{"PhysicalConstantTT", model.TierMathematical, "Physical Constant", "Defined constant", []string{"speed of light", "planck", "constant", "c =", "π", "299792458"}},
	{"DefinitionalTT", model.TierMathematical, "Definitional", "True by definition", []string{"defined as", "by definition", "means"}},

	// T2 - Logical
	{"DeductiveTT", model.TierLogical, "Deductive", "Valid deduction", []string{"therefore", "thus", "hence", "it follows"}},
	{"SyllogisticTT", model.TierLogical, "Syllogistic", "Syllogism", []string{"all", "some", "no", "if then"}},
	{"BinaryLogicalTT", model.TierLogical, "Binary Logic", "Boolean logic", []string{"and", "or", "not", "xor", "implies"}},

	// T3 - Empirical Stable
	{"ScientificLawTT", model.TierEmpiricalStable, "Scientific Law", "Established law", []string{"law of", "always", "never", "universal"}},
	{"UniversalTT", model.TierEmpiricalStable, "Universal Fact", "Universal truth", []string{"everywhere", "all", "every", "always"}},
	{"AtomicFactTT", model.TierEmpiricalStable, "Atomic Fact", "Simple verifiable fact", []string{"is", "has", "contains"}},

	// T4 - Empirical Measured
	{"EmpiricalTT", model.TierEmpiricalMeasure, "Empirical", "From observation", []string{"observed", "measured", "experiment"}},
	{"StatisticalTT", model.TierEmpiricalMeasure, "Statistical", "Statistical finding", []string{"average", "mean", "percent", "correlation"}},
	{"MeasurementTT", model.TierEmpiricalMeasure, "Measurement", "Quantified value", []string{"measured", "reading", "value"}},

	// T5 - Documentary
	{"DocumentaryTT", model.TierDocumentary, "Documentary", "Documented evidence", []string{"document", "record", "certificate"}},
	{"CitationTT", model.TierDocumentary, "Citation", "Cited source", []string{"according to", "cited", "reference"}},
	{"HistoricalTT", model.TierDocumentary, "Historical", "Historical fact", []string{"in history", "historically", "year", "century"}},

	// T6 - Contextual
	{"ContextualTT", model.TierContextual, "Contextual", "Context-dependent", []string{"in context", "depending on", "within"}},
	{"DomainSpecificTT", model.TierContextual, "Domain-Specific", "Field-specific", []string{"in medicine", "in law", "technically"}},
	{"ConditionalTT", model.TierContextual, "Conditional", "If-then truth", []string{"if", "when", "provided that"}},

	// T7 - Temporal
	{"CurrentTT", model.TierTemporal, "Current", "Present state", []string{"currently", "now", "at present", "today"}},
	{"PredictiveTT", model.TierTemporal, "Predictive", "Future prediction", []string{"will", "forecast", "expect", "predict"}},
	{"TrendTT", model.TierTemporal, "Trend", "Trend observation", []string{"trend", "rising", "falling", "increasing"}},

	// T8 - Testimonial
	{"TestimonialTT", model.TierTestimonial, "Testimonial", "Someone's claim", []string{"said", "claims", "testified", "reported"}},
	{"ExpertOpinionTT", model.TierTestimonial, "Expert Opinion", "Expert says", []string{"expert", "scientist says", "doctor says"}},
	{"HearsayTT", model.TierTestimonial, "Hearsay", "Second-hand report", []string{"heard that", "supposedly", "allegedly"}},

	// T9 - Social
	{"ConsensusTT", model.TierSocial, "Consensus", "Group agreement", []string{"consensus", "most agree", "widely accepted"}},
	{"CulturalTT", model.TierSocial, "Cultural", "Cultural norm", []string{"culture", "tradition", "custom"}},
	{"NormativeTT", model.TierSocial, "Normative", "Should/ought claim", []string{"should", "ought", "must", "need to"}},

	// T10 - Cognitive
	{"OpinionTT", model.TierCognitive, "Opinion", "Personal view", []string{"i think", "in my opinion", "i believe"}},
	{"BeliefTT", model.TierCognitive, "Belief", "Belief statement", []string{"believe", "faith", "conviction"}},
	{"PreferenceTT", model.TierCognitive, "Preference", "Personal preference", []string{"prefer", "like", "favorite"}},
	{"IntrospectiveTT", model.TierCognitive, "Introspective", "Self-knowledge", []string{"i feel", "i am", "i want"}},

	// T11 - Speculative
	{"SpeculativeTT", model.TierSpeculative, "Speculative", "Speculation", []string{"maybe", "perhaps", "might", "possibly", "could be", "aliens"}},
	{"HypotheticalTT", model.TierSpeculative, "Hypothetical", "What-if scenario", []string{"what if", "hypothetically", "imagine", "suppose"}},
	{"UncertainTT", model.TierSpeculative, "Uncertain", "Unknown status", []string{"uncertain", "unclear", "unknown", "not sure"}},

	// T12 - Integrity
	{"FalseTT", model.TierIntegrity, "False", "Demonstrably false", []string{"false", "wrong", "incorrect", "untrue"}},
	{"MisleadingTT", model.TierIntegrity, "Misleading", "Technically true but misleading", []string{"misleading", "deceptive", "spin"}},
	{"PropagandaTT", model.TierIntegrity, "Propaganda", "Manipulative content", []string{"propaganda", "manipulate", "brainwash"}},
	{"ContradictoryTT", model.TierIntegrity, "Contradictory", "Self-contradicting", []string{"contradict", "inconsistent", "paradox"}},
}

// Tokens returns the static table in canonical order.
func Tokens() []Token {
	out := make([]Token, len(tokens))
	copy(out, tokens)
	return out
}

// Lookup returns the token with the given symbol.
func Lookup(symbol string) (Token, bool) {
	for _, tok := range tokens {
		if tok.Symbol == symbol {
			return tok, true
		}
	}
	return Token{}, false
}
