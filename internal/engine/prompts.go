package engine

import (
	"fmt"
	"strings"

	"github.com/Sovrenmirror/sovrenai-workbench/internal/model"
)

// Dimension is one analytical perspective applied during the think stage.
type Dimension struct {
	Name   string
	Prompt string
}

// Dimensions is the canonical ordered list of analytical dimensions. Think
// results are always reported in this order, regardless of call completion
// order.
var Dimensions = []Dimension{
	{"logical", "Analyze from logical/factual perspective. What are the facts and evidence?"},
	{"emotional", "Analyze emotional dimensions. What feelings and impacts are involved?"},
	{"ethical", "Analyze ethical/moral implications. What's right or wrong here?"},
	{"temporal", "Analyze temporal aspects. Short-term vs long-term consequences?"},
	{"stakeholder", "Analyze stakeholder perspectives. Who is affected and how?"},
	{"risk", "Analyze risks. What could go wrong? What's the upside?"},
	{"creative", "Analyze creatively. What alternative solutions exist?"},
}

const systemPrompt = "You are a truth-native reasoning engine. Ground every statement in the verified analysis you are given."

// buildDimensionPrompt builds the short free-text completion prompt for one
// analytical dimension.
func buildDimensionPrompt(dim Dimension, input string, recognition model.Recognition) string {
	elements := fmt.Sprintf("Problem: %s\nClassification: %s (Tier %d)\nEpistemic Level: %s",
		input, recognition.Name, int(recognition.Tier), recognition.Level)
	return fmt.Sprintf("%s\n\nContext: %s\n\nProvide concise analysis (2-3 sentences).", dim.Prompt, elements)
}

// buildResponsePrompt builds the act-stage prompt embedding the
// classification, verification outcome and (if present) the
// multidimensional analysis, with hedging proportional to confidence.
func buildResponsePrompt(s *reasoningState) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a Sovereign Truth Engine. Generate a response based on this verified analysis.\n\n")
	fmt.Fprintf(&b, "INPUT: %s\n\n", s.input)

	fmt.Fprintf(&b, "CLASSIFICATION:\n")
	fmt.Fprintf(&b, "- Type: %s (Tier %d - %s)\n", s.recognition.Name, int(s.recognition.Tier), s.recognition.TierName)
	fmt.Fprintf(&b, "- Epistemic Level: %s\n", s.recognition.Level)
	fmt.Fprintf(&b, "- Verifiability: %s\n\n", s.recognition.Verifiability)

	fmt.Fprintf(&b, "VERIFICATION:\n")
	fmt.Fprintf(&b, "- Verified: %t\n", s.solution.Verified)
	fmt.Fprintf(&b, "- Confidence: %.0f%%\n", s.solution.Confidence*100)
	fmt.Fprintf(&b, "- Method: %s\n", s.solution.Method)
	fmt.Fprintf(&b, "- Resistance Cost: %.3f\n", s.solution.Resistance)

	if !s.analysis.Skipped && len(s.analysis.Dimensions) > 0 {
		fmt.Fprintf(&b, "\nMULTIDIMENSIONAL ANALYSIS:\n")
		for _, dim := range s.analysis.Dimensions {
			fmt.Fprintf(&b, "- %s: %s\n", dim.Name, dim.Text)
		}
	}

	b.WriteString(`
INSTRUCTIONS:
1. If verified with high confidence (>85%), respond authoritatively
2. If moderate confidence (50-85%), respond with appropriate hedging
3. If low confidence or unverified, acknowledge uncertainty
4. Never fabricate - if unknown, say so
5. Match response depth to tier complexity

Generate the response:`)

	return b.String()
}

// thesisProof formats the cost-thesis string exposed in result metadata.
func thesisProof(tier model.TruthTier, resistance float64) string {
	return fmt.Sprintf("T%d verification cost: %.3f", int(tier), resistance)
}
