package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Sovrenmirror/sovrenai-workbench/internal/model"
)

// Reasoner defines the interface for running the reasoning cycle on a claim
type Reasoner interface {
	Reason(ctx context.Context, input string) (*model.Result, error)
}

// ReasonJob represents a single-claim reasoning job
type ReasonJob struct {
	Input    string
	Reasoner Reasoner
}

// Execute executes the reasoning job
func (j *ReasonJob) Execute(ctx context.Context) Result {
	result, err := j.Reasoner.Reason(ctx, j.Input)
	return &ReasonResult{
		Input:  j.Input,
		Result: result,
		Error:  err,
	}
}

// ReasonResult represents the result of a reasoning job
type ReasonResult struct {
	Input  string
	Result *model.Result
	Error  error
}

// GetError returns the error from the reasoning result
func (r *ReasonResult) GetError() error {
	return r.Error
}

// BatchProcessor runs the reasoning cycle over multiple claims concurrently
type BatchProcessor struct {
	reasoner    Reasoner
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(reasoner Reasoner, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		reasoner:    reasoner,
		concurrency: concurrency,
	}
}

// ProcessInputs processes multiple claims concurrently
func (b *BatchProcessor) ProcessInputs(ctx context.Context, inputs []string) []*ReasonResult {
	if len(inputs) == 0 {
		return []*ReasonResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, input := range inputs {
		pool.Submit(&ReasonJob{
			Input:    input,
			Reasoner: b.reasoner,
		})
	}

	results := pool.Wait()

	reasonResults := make([]*ReasonResult, len(results))
	for i, result := range results {
		reasonResults[i] = result.(*ReasonResult)
	}

	return reasonResults
}

// ProcessFile reads claims from a file and processes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*ReasonResult, error) {
	inputs, err := ReadInputsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read inputs: %w", err)
	}

	return b.ProcessInputs(ctx, inputs), nil
}

// ReadInputsFromFile reads claims from a file (one per line)
func ReadInputsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var inputs []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Deduplicate claims
		if !seen[line] {
			seen[line] = true
			inputs = append(inputs, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return inputs, nil
}
