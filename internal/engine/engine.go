// Package engine sequences the eight reasoning stages: aware, energize,
// recognize, think, solve, act, attain, rest. The classification and
// verification stages are pure and local; only think and act reach out to
// the external LLM, and both degrade to inline failure markers so a cycle
// always completes with a result.
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Sovrenmirror/sovrenai-workbench/internal/axiom"
	"github.com/Sovrenmirror/sovrenai-workbench/internal/epistemic"
	"github.com/Sovrenmirror/sovrenai-workbench/internal/llm"
	"github.com/Sovrenmirror/sovrenai-workbench/internal/model"
	"github.com/Sovrenmirror/sovrenai-workbench/internal/ontology"
	"github.com/Sovrenmirror/sovrenai-workbench/internal/verify"
	"github.com/Sovrenmirror/sovrenai-workbench/internal/worker"
)

// Engine runs the reasoning cycle. It is safe for concurrent use: every
// call builds its own state and the static tables are read-only.
type Engine struct {
	client   llm.Client // nil when no provider is configured
	registry *axiom.Registry
	cascade  *verify.Cascade
	limiter  *worker.Limiter
	config   *model.Config
}

// New creates an engine from configuration. Construction fails fatally on
// an unknown LLM provider or a Truth Floor integrity violation.
func New(cfg *model.Config) (*Engine, error) {
	client, err := llm.NewClient(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, fmt.Errorf("init LLM client: %w", err)
	}
	return NewWithClient(cfg, client)
}

// NewWithClient creates an engine with an explicit client (nil disables
// external calls). Used directly by tests.
func NewWithClient(cfg *model.Config, client llm.Client) (*Engine, error) {
	registry := axiom.New()
	if err := registry.VerifyIntegrity(); err != nil {
		return nil, err
	}

	return &Engine{
		client:   client,
		registry: registry,
		cascade:  verify.NewCascade(registry),
		limiter:  worker.NewLimiter(cfg.Concurrency.LLMRateRPS, cfg.Concurrency.LLMRateBurst),
		config:   cfg,
	}, nil
}

// Registry exposes the axiom registry for transport-layer endpoints.
func (e *Engine) Registry() *axiom.Registry {
	return e.registry
}

// Reason executes the full eight-stage cycle on one input claim. It always
// returns a complete result: external-call failures are recorded inline in
// the affected stage, never propagated.
func (e *Engine) Reason(ctx context.Context, input string) (*model.Result, error) {
	state := newState(input)

	state.stage = StageAware
	state.awareness = e.aware(input)

	state.stage = StageEnergize
	state.allocation = e.energize(state.awareness)

	state.stage = StageRecognize
	state.recognition = e.recognize(input)

	state.stage = StageThink
	if state.allocation.RequiresDeepAnalysis {
		state.analysis = e.think(ctx, state)
	} else {
		state.analysis = model.Analysis{Skipped: true, Reason: "Low complexity - direct verification"}
	}

	state.stage = StageSolve
	state.solution = e.cascade.Verify(input, state.recognition.Classification)

	state.stage = StageAct
	state.action = e.act(ctx, state)

	state.stage = StageAttain
	state.attainment = e.attain(state)

	state.stage = StageRest
	state.totalTimeMS = float64(time.Since(state.startedAt)) / float64(time.Millisecond)

	return state.compile(), nil
}

// aware perceives the input: size, shape and epistemic framing.
func (e *Engine) aware(input string) model.Awareness {
	subject := epistemic.Detect(input)

	return model.Awareness{
		RawInput:      input,
		WordCount:     len(strings.Fields(input)),
		IsQuestion:    strings.Contains(input, "?"),
		SubjectType:   subject.SubjectType,
		Level:         subject.Level,
		ContainsClaim: !strings.HasSuffix(input, "?"),
	}
}

// energize allocates cognitive resources from simple complexity heuristics.
func (e *Engine) energize(awareness model.Awareness) model.Allocation {
	complexity := "low"
	requiresDeepAnalysis := false

	if awareness.WordCount > 50 || awareness.Level == model.LevelTestimonial || awareness.Level == model.LevelNormative {
		complexity = "high"
		requiresDeepAnalysis = true
	} else if awareness.WordCount > 20 {
		complexity = "medium"
	}

	// Logical truths self-verify, though the cascade still runs for them.
	requiresVerification := awareness.Level != model.LevelAPriori

	allocated := 0
	if requiresDeepAnalysis {
		allocated = len(Dimensions)
	}

	return model.Allocation{
		Complexity:           complexity,
		RequiresDeepAnalysis: requiresDeepAnalysis,
		RequiresVerification: requiresVerification,
		AllocatedDimensions:  allocated,
	}
}

// recognize classifies the input and attaches an independent Truth Floor
// match as auxiliary metadata.
func (e *Engine) recognize(input string) model.Recognition {
	recognition := model.Recognition{
		Classification: ontology.Classify(input),
	}
	if ax, ok := e.registry.Match(input); ok {
		recognition.TruthFloorMatch = ax
	}
	return recognition
}

// think runs the analytical dimensions concurrently. A failed dimension
// call is recorded as an inline marker for that dimension only; the
// remaining dimensions and the pipeline proceed regardless.
func (e *Engine) think(ctx context.Context, state *reasoningState) model.Analysis {
	results := make([]model.DimensionAnalysis, len(Dimensions))

	var g errgroup.Group
	for i, dim := range Dimensions {
		i, dim := i, dim
		g.Go(func() error {
			text, err := e.complete(ctx, llm.CompletionRequest{
				Prompt:      buildDimensionPrompt(dim, state.input, state.recognition),
				MaxTokens:   200,
				Temperature: 0.7,
			})
			if err != nil {
				text = fmt.Sprintf("[Analysis failed: %v]", err)
			}
			results[i] = model.DimensionAnalysis{Name: dim.Name, Text: text}
			return nil
		})
	}
	_ = g.Wait()

	state.llmCalls += len(Dimensions)

	return model.Analysis{Dimensions: results}
}

// act generates the final response. Failure degrades to an inline error
// string rather than aborting the cycle.
func (e *Engine) act(ctx context.Context, state *reasoningState) string {
	text, err := e.complete(ctx, llm.CompletionRequest{
		Prompt:      buildResponsePrompt(state),
		System:      systemPrompt,
		MaxTokens:   500,
		Temperature: 0.7,
	})
	state.llmCalls++
	if err != nil {
		return fmt.Sprintf("[Response generation failed: %v]", err)
	}
	return text
}

// attain confirms whether the cycle achieved its goal and how much hedging
// the response needs.
func (e *Engine) attain(state *reasoningState) model.Attainment {
	confidence := state.solution.Confidence

	level := "low"
	if confidence >= 0.85 {
		level = "high"
	} else if confidence >= 0.5 {
		level = "medium"
	}

	return model.Attainment{
		GoalAchieved:       state.solution.Verified && confidence >= 0.5,
		ConfidenceLevel:    level,
		VerificationMethod: state.solution.Method,
		CaveatsNeeded:      confidence < 0.85,
	}
}

// complete dispatches one rate-limited call to the configured provider.
func (e *Engine) complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	if e.client == nil {
		return "", fmt.Errorf("no LLM provider configured")
	}
	if err := e.limiter.Wait(ctx, e.client.Name()); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}
	return e.client.Complete(ctx, req)
}
