package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	askQuery string
	askJSON  bool
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Answer a single question",
	Long: `Answer one customer question and print the response with its
confidence and sources.

Examples:
  supportbot ask -q "how do I reset my password"
  supportbot ask -q "what is your refund policy" --json`,
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringVarP(&askQuery, "query", "q", "", "question to answer (required)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output as JSON")
	askCmd.MarkFlagRequired("query")
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	uc, _, cleanup, err := buildPipeline(ctx, nil)
	if err != nil {
		return err
	}
	defer cleanup()

	resp := uc.Answer(ctx, askQuery)

	if askJSON {
		output, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Println(resp.Answer)
	fmt.Printf("\nConfidence: %.2f\n", resp.Confidence)
	if len(resp.Sources) > 0 {
		fmt.Println("Sources:")
		for i, s := range resp.Sources {
			fmt.Printf("  [%d] %s (%s, score: %.2f)\n", i+1, s.Title, s.Category, s.Score)
		}
	}
	return nil
}
