package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sovrenmirror/sovrenai-workbench/internal/ontology"
)

var classifyJSON bool

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <text>",
	Short: "Classify text into the Truth Token Ontology",
	Long: `Classify maps text to one of 41 truth tokens across the 13 tiers,
without running the full reasoning cycle or touching any LLM.

Example:
  sovereign classify "2 + 2 = 4"
  sovereign classify "I think chocolate is the best flavor" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "emit the classification as JSON")
}

func runClassify(cmd *cobra.Command, args []string) error {
	c := ontology.Classify(args[0])

	if classifyJSON {
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal classification: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Token:         %s (%s)\n", c.Name, c.Symbol)
	fmt.Printf("Tier:          T%d - %s\n", int(c.Tier), c.TierName)
	fmt.Printf("Resistance:    %.3f\n", c.Resistance)
	fmt.Printf("Epistemic:     %s / %s\n", c.Level, c.SubjectType)
	fmt.Printf("Verifiability: %s\n", c.Verifiability)
	fmt.Printf("Confidence:    %.2f\n", c.Confidence)

	return nil
}
