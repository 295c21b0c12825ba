package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	importIncludes []string
	importExcludes []string
	importCategory string
)

var importCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Bulk-load documents from text files",
	Long: `Walk a directory and add every matching file to the knowledge base
as one document. The file name (without extension) becomes the title and the
file body becomes the content.

Examples:
  supportbot import ./docs
  supportbot import ./faq --include "**/*.md" --category FAQ`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringSliceVar(&importIncludes, "include", []string{"**/*.md", "**/*.txt"}, "glob patterns of files to import")
	importCmd.Flags().StringSliceVar(&importExcludes, "exclude", []string{"**/node_modules/**", "**/.git/**"}, "glob patterns of files to skip")
	importCmd.Flags().StringVar(&importCategory, "category", "", "category for imported documents (default General)")
}

func runImport(cmd *cobra.Command, args []string) error {
	dir := rootDir
	if len(args) > 0 {
		dir = args[0]
	}

	files, err := collectFiles(dir, importIncludes, importExcludes)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	if len(files) == 0 {
		fmt.Println("No matching files found.")
		return nil
	}

	store := openStore()

	bar := progressbar.Default(int64(len(files)), "importing")
	imported := 0
	for _, path := range files {
		bar.Add(1)

		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn("skipping unreadable file", zap.String("path", path), zap.Error(err))
			continue
		}

		title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if _, err := store.AddDocument(title, string(data), importCategory); err != nil {
			return fmt.Errorf("failed to add %s: %w", path, err)
		}
		imported++
	}

	fmt.Printf("\nImported %d documents. Knowledge base now has %d documents.\n",
		imported, store.Count())
	return nil
}

// collectFiles walks dir and returns files matching any include pattern and
// no exclude pattern, in walk order.
func collectFiles(dir string, includes, excludes []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		for _, pattern := range excludes {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				return nil
			}
		}
		for _, pattern := range includes {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				files = append(files, path)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
