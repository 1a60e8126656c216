package engine

import (
	"time"

	"github.com/Sovrenmirror/sovrenai-workbench/internal/model"
)

// Stage names in execution order.
const (
	StageAware     = "aware"
	StageEnergize  = "energize"
	StageRecognize = "recognize"
	StageThink     = "think"
	StageSolve     = "solve"
	StageAct       = "act"
	StageAttain    = "attain"
	StageRest      = "rest"
)

// reasoningState is the per-call aggregate threaded through the eight
// stages. It is owned by a single Reason invocation and discarded after the
// final result is compiled; no state crosses concurrent invocations.
type reasoningState struct {
	input     string
	stage     string
	startedAt time.Time

	awareness   model.Awareness
	allocation  model.Allocation
	recognition model.Recognition
	analysis    model.Analysis
	solution    model.VerificationResult
	action      string
	attainment  model.Attainment

	totalTimeMS float64
	llmCalls    int
}

func newState(input string) *reasoningState {
	return &reasoningState{
		input:     input,
		stage:     StageAware,
		startedAt: time.Now(),
	}
}

// compile assembles the final structured result from all stage outputs.
func (s *reasoningState) compile() *model.Result {
	return &model.Result{
		Input:    s.input,
		Response: s.action,
		Stages: model.Stages{
			Aware:     s.awareness,
			Energize:  s.allocation,
			Recognize: s.recognition,
			Think:     s.analysis,
			Solve:     s.solution,
			Act:       model.Action{ResponseGenerated: s.action != ""},
			Attain:    s.attainment,
			Rest: model.Consolidation{
				TotalTimeMS:   s.totalTimeMS,
				LLMCalls:      s.llmCalls,
				CycleComplete: true,
			},
		},
		Metadata: model.Metadata{
			Timestamp:   s.startedAt,
			TotalTimeMS: s.totalTimeMS,
			LLMCalls:    s.llmCalls,
			Tier:        s.recognition.Tier,
			Resistance:  s.recognition.Resistance,
			ThesisProof: thesisProof(s.recognition.Tier, s.solution.Resistance),
		},
	}
}
