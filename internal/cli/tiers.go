package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sovrenmirror/sovrenai-workbench/internal/axiom"
	"github.com/Sovrenmirror/sovrenai-workbench/internal/model"
)

// tiersCmd represents the tiers command
var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Print the 13 truth tiers and their verification costs",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Tier  Resistance  Name")
		fmt.Println("----  ----------  ----")
		for _, t := range model.Tiers() {
			fmt.Printf("T%-3d  %10.3f  %s\n", int(t), t.Resistance(), t.Name())
			if verbose {
				fmt.Printf("                  %s\n", t.Description())
			}
		}
		fmt.Println()
		fmt.Println("Truth is computationally cheap. Lies are expensive.")
		return nil
	},
}

// truthFloorCmd represents the truth-floor command
var truthFloorCmd = &cobra.Command{
	Use:   "truth-floor",
	Short: "Print the Truth Floor axioms and verify their integrity",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := axiom.New()
		if err := registry.VerifyIntegrity(); err != nil {
			return fmt.Errorf("truth floor integrity: %w", err)
		}

		for i, ax := range registry.Axioms() {
			fmt.Printf("%2d. %s\n", i+1, ax)
		}
		fmt.Println()
		fmt.Printf("Axioms: %d, integrity verified (digest %s)\n", registry.Count(), registry.Digest()[:12])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(truthFloorCmd)
}
