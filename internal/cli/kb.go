package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	kbSearchQuery string
	kbJSON        bool
)

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Inspect the knowledge base",
}

var kbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		docs := store.AllDocuments()

		if kbJSON {
			output, _ := json.MarshalIndent(docs, "", "  ")
			fmt.Println(string(output))
			return nil
		}

		for i, doc := range docs {
			fmt.Printf("[%d] %s (%s)\n", i+1, doc.Title, doc.Category)
		}
		fmt.Printf("%d documents\n", len(docs))
		return nil
	},
}

var kbCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the distinct categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		for _, c := range store.Categories() {
			fmt.Printf("%s (%d)\n", c, len(store.DocumentsByCategory(c)))
		}
		return nil
	},
}

var kbSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search documents by keyword",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		docs := store.SearchDocuments(kbSearchQuery)

		if kbJSON {
			output, _ := json.MarshalIndent(docs, "", "  ")
			fmt.Println(string(output))
			return nil
		}

		if len(docs) == 0 {
			fmt.Println("No matching documents.")
			return nil
		}
		for i, doc := range docs {
			fmt.Printf("[%d] %s (%s)\n", i+1, doc.Title, doc.Category)
		}
		return nil
	},
}

var kbCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the document count",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(openStore().Count())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(kbCmd)
	kbCmd.AddCommand(kbListCmd, kbCategoriesCmd, kbSearchCmd, kbCountCmd)

	kbCmd.PersistentFlags().BoolVar(&kbJSON, "json", false, "output as JSON")
	kbSearchCmd.Flags().StringVarP(&kbSearchQuery, "query", "q", "", "keyword to search for (required)")
	kbSearchCmd.MarkFlagRequired("query")
}
