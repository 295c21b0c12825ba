package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addTitle    string
	addContent  string
	addCategory string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a document to the knowledge base",
	Long: `Append one document to the knowledge base file. The document is
retrievable on the next query.

Example:
  supportbot add --title "Refund Policy" --content "Refunds are issued within 14 days" --category Billing`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addTitle, "title", "", "document title (required)")
	addCmd.Flags().StringVar(&addContent, "content", "", "document content (required)")
	addCmd.Flags().StringVar(&addCategory, "category", "", "document category (default General)")
	addCmd.MarkFlagRequired("title")
	addCmd.MarkFlagRequired("content")
}

func runAdd(cmd *cobra.Command, args []string) error {
	store := openStore()

	doc, err := store.AddDocument(addTitle, addContent, addCategory)
	if err != nil {
		return fmt.Errorf("failed to add document: %w", err)
	}

	fmt.Printf("Added %q (%s). Knowledge base now has %d documents.\n",
		doc.Title, doc.Category, store.Count())
	return nil
}
