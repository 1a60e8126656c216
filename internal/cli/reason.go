package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sovrenmirror/sovrenai-workbench/internal/engine"
	"github.com/Sovrenmirror/sovrenai-workbench/internal/model"
)

var (
	reasonTimeout time.Duration
	outJSON       bool
	llmProvider   string
	llmModel      string
)

// reasonCmd represents the reason command
var reasonCmd = &cobra.Command{
	Use:   "reason <claim>",
	Short: "Run the full 8-stage reasoning cycle on a claim",
	Long: `Reason executes the complete cycle on a single claim:
- Perceive the input and detect its epistemic subject
- Allocate cognitive resources from complexity heuristics
- Classify into the Truth Token Ontology (T0-T12)
- Analyze across 7 dimensions when complexity warrants it
- Verify through the tier-banded cascade
- Generate a confidence-calibrated response

Example:
  sovereign reason "2 + 2 = 4"
  sovereign reason "My friend said Bitcoin will hit \$200k this year." --json
  sovereign reason "Water boils at 100C at sea level" --llm-provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runReason,
}

func init() {
	rootCmd.AddCommand(reasonCmd)

	reasonCmd.Flags().DurationVar(&reasonTimeout, "timeout", 2*time.Minute, "overall reasoning timeout")
	reasonCmd.Flags().BoolVar(&outJSON, "json", false, "emit the full result as JSON")
	reasonCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider (openai, xai, anthropic, ollama; empty disables LLM)")
	reasonCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runReason(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), reasonTimeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	if err := configureLLM(cfg); err != nil {
		return err
	}

	eng, err := engine.New(cfg)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Reasoning: %s\n", input)
		if cfg.LLM.Provider != "" {
			fmt.Fprintf(os.Stderr, "LLM: %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	result, err := eng.Reason(ctx, input)
	if err != nil {
		return fmt.Errorf("reasoning failed: %w", err)
	}

	if outJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printResult(result)
	return nil
}

// printResult renders the human-readable summary of a reasoning result.
func printResult(result *model.Result) {
	rec := result.Stages.Recognize
	sol := result.Stages.Solve
	att := result.Stages.Attain

	fmt.Printf("Input:          %s\n", result.Input)
	fmt.Printf("Classification: %s (%s, tier %d)\n", rec.Name, rec.Symbol, int(rec.Tier))
	fmt.Printf("Epistemic:      %s / %s\n", rec.Level, rec.SubjectType)
	fmt.Printf("Verified:       %t (%.0f%% via %s)\n", sol.Verified, sol.Confidence*100, sol.Method)
	fmt.Printf("Resistance:     %.3f\n", sol.Resistance)
	fmt.Printf("Confidence:     %s", att.ConfidenceLevel)
	if att.CaveatsNeeded {
		fmt.Printf(" (caveats needed)")
	}
	fmt.Println()
	if rec.TruthFloorMatch != "" {
		fmt.Printf("Truth Floor:    %s\n", rec.TruthFloorMatch)
	}
	if result.Response != "" {
		fmt.Printf("\n%s\n", result.Response)
	}
	fmt.Printf("\n%s\n", result.Metadata.ThesisProof)
}

// configureLLM fills in provider credentials from the environment. An empty
// provider leaves the engine in local-only mode.
func configureLLM(cfg *model.Config) error {
	if llmProvider == "" {
		cfg.LLM.Provider = ""
		return nil
	}

	cfg.LLM.Provider = llmProvider
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}

	// Get API key from environment
	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "xai", "grok":
		cfg.LLM.APIKey = os.Getenv("XAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("XAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		baseURL := os.Getenv("OLLAMA_BASE_URL")
		if baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return nil
}
