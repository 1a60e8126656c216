package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/Sovrenmirror/sovrenai-workbench/internal/model"
)

// stubReasoner implements Reasoner
type stubReasoner struct {
	calls   int32
	failFor string
}

func (s *stubReasoner) Reason(ctx context.Context, input string) (*model.Result, error) {
	atomic.AddInt32(&s.calls, 1)
	if input == s.failFor {
		return nil, errors.New("reasoning blew up")
	}
	return &model.Result{Input: input}, nil
}

func TestBatchProcessor_ProcessInputs(t *testing.T) {
	reasoner := &stubReasoner{}
	processor := NewBatchProcessor(reasoner, 4)

	inputs := []string{"claim one", "claim two", "claim three"}
	results := processor.ProcessInputs(context.Background(), inputs)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if atomic.LoadInt32(&reasoner.calls) != 3 {
		t.Errorf("expected 3 reasoner calls, got %d", reasoner.calls)
	}

	seen := make(map[string]bool)
	for _, r := range results {
		if r.Error != nil {
			t.Errorf("%s: unexpected error %v", r.Input, r.Error)
		}
		if r.Result == nil || r.Result.Input != r.Input {
			t.Errorf("result input mismatch for %s", r.Input)
		}
		seen[r.Input] = true
	}
	for _, input := range inputs {
		if !seen[input] {
			t.Errorf("missing result for %s", input)
		}
	}
}

func TestBatchProcessor_LargeClaimFile(t *testing.T) {
	reasoner := &stubReasoner{}
	processor := NewBatchProcessor(reasoner, 4)

	inputs := make([]string, 200)
	for i := range inputs {
		inputs[i] = fmt.Sprintf("claim number %d", i)
	}

	results := processor.ProcessInputs(context.Background(), inputs)

	if len(results) != len(inputs) {
		t.Fatalf("expected %d results, got %d", len(inputs), len(results))
	}
	if atomic.LoadInt32(&reasoner.calls) != int32(len(inputs)) {
		t.Errorf("expected %d reasoner calls, got %d", len(inputs), reasoner.calls)
	}
}

func TestBatchProcessor_ProcessInputsEmpty(t *testing.T) {
	processor := NewBatchProcessor(&stubReasoner{}, 2)
	results := processor.ProcessInputs(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected no results for empty input, got %d", len(results))
	}
}

func TestBatchProcessor_PartialFailure(t *testing.T) {
	reasoner := &stubReasoner{failFor: "bad claim"}
	processor := NewBatchProcessor(reasoner, 2)

	results := processor.ProcessInputs(context.Background(), []string{"good claim", "bad claim"})

	var failed, succeeded int
	for _, r := range results {
		if r.GetError() != nil {
			failed++
			if r.Input != "bad claim" {
				t.Errorf("wrong claim failed: %s", r.Input)
			}
		} else {
			succeeded++
		}
	}
	if failed != 1 || succeeded != 1 {
		t.Errorf("expected 1 failure and 1 success, got %d/%d", failed, succeeded)
	}
}

func TestReadInputsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claims.txt")
	content := `# header comment
2 + 2 = 4

My friend said Bitcoin will hit $200k this year.
2 + 2 = 4
  ENERGY IS CONSERVED
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	inputs, err := ReadInputsFromFile(path)
	if err != nil {
		t.Fatalf("read inputs: %v", err)
	}

	want := []string{
		"2 + 2 = 4",
		"My friend said Bitcoin will hit $200k this year.",
		"ENERGY IS CONSERVED",
	}
	if len(inputs) != len(want) {
		t.Fatalf("expected %d inputs (blank, comment, duplicate skipped), got %d: %v", len(want), len(inputs), inputs)
	}
	for i := range want {
		if inputs[i] != want[i] {
			t.Errorf("input %d: expected %q, got %q", i, want[i], inputs[i])
		}
	}
}

func TestReadInputsFromFileMissing(t *testing.T) {
	if _, err := ReadInputsFromFile("/nonexistent/claims.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBatchProcessor_ProcessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claims.txt")
	if err := os.WriteFile(path, []byte("claim a\nclaim b\n"), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	processor := NewBatchProcessor(&stubReasoner{}, 2)
	results, err := processor.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("process file: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
}
