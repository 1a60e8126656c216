package model

import "time"

// Awareness is the output of the aware stage: raw perception of the input.
type Awareness struct {
	RawInput      string         `json:"raw_input"`
	WordCount     int            `json:"word_count"`
	IsQuestion    bool           `json:"is_question"`
	SubjectType   SubjectType    `json:"epistemic_subject"`
	Level         EpistemicLevel `json:"epistemic_level"`
	ContainsClaim bool           `json:"contains_claim"`
}

// Allocation is the output of the energize stage: the complexity class and
// whether deep multidimensional analysis is warranted.
type Allocation struct {
	Complexity           string `json:"complexity"` // "low", "medium", "high"
	RequiresDeepAnalysis bool   `json:"requires_deep_analysis"`
	RequiresVerification bool   `json:"requires_verification"`
	AllocatedDimensions  int    `json:"allocated_dimensions"`
}

// Recognition is the output of the recognize stage: the classification plus
// an independent axiom registry match attached as auxiliary metadata.
type Recognition struct {
	Classification
	TruthFloorMatch string `json:"truth_floor_match,omitempty"`
}

// DimensionAnalysis is one analytical dimension's free-text result. A failed
// dimension call carries an inline failure marker instead of analysis text.
type DimensionAnalysis struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Analysis is the output of the think stage. Dimensions are ordered by the
// canonical dimension list regardless of call completion order.
type Analysis struct {
	Skipped    bool                `json:"skipped,omitempty"`
	Reason     string              `json:"reason,omitempty"`
	Dimensions []DimensionAnalysis `json:"dimensions,omitempty"`
}

// Action is the output of the act stage.
type Action struct {
	ResponseGenerated bool `json:"response_generated"`
}

// Attainment is the output of the attain stage: whether the goal was
// achieved and how much hedging the response needs.
type Attainment struct {
	GoalAchieved       bool   `json:"goal_achieved"`
	ConfidenceLevel    string `json:"confidence_level"` // "low", "medium", "high"
	VerificationMethod string `json:"verification_method"`
	CaveatsNeeded      bool   `json:"caveats_needed"`
}

// Consolidation is the output of the rest stage.
type Consolidation struct {
	TotalTimeMS   float64 `json:"total_time_ms"`
	LLMCalls      int     `json:"llm_calls"`
	CycleComplete bool    `json:"cycle_complete"`
}

// Stages holds every stage's output, keyed by the eight stage names.
type Stages struct {
	Aware     Awareness          `json:"aware"`
	Energize  Allocation         `json:"energize"`
	Recognize Recognition        `json:"recognize"`
	Think     Analysis           `json:"think"`
	Solve     VerificationResult `json:"solve"`
	Act       Action             `json:"act"`
	Attain    Attainment         `json:"attain"`
	Rest      Consolidation      `json:"rest"`
}

// Metadata summarizes a reasoning cycle for transport layers.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	TotalTimeMS float64   `json:"total_time_ms"`
	LLMCalls    int       `json:"llm_calls"`
	Tier        TruthTier `json:"tier"`
	Resistance  float64   `json:"resistance"`
	ThesisProof string    `json:"thesis_proof"` // "T<tier> verification cost: <resistance>"
}

// Result is the structured output of a full eight-stage reasoning cycle.
type Result struct {
	Input    string   `json:"input"`
	Response string   `json:"response"`
	Stages   Stages   `json:"stages"`
	Metadata Metadata `json:"metadata"`
}
