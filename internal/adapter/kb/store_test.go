package kb

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"supportbot/internal/domain"
)

func writeKB(t *testing.T, docs []domain.Document) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "knowledge_base.json")
	data, err := json.Marshal(map[string]any{"documents": docs})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestOpen_MissingFile(t *testing.T) {
	store := Open(filepath.Join(t.TempDir(), "nope.json"), zap.NewNop())

	assert.Equal(t, 0, store.Count())
	assert.Empty(t, store.AllDocuments())
}

func TestOpen_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := Open(path, zap.NewNop())
	assert.Equal(t, 0, store.Count())
}

func TestOpen_DefaultsCategory(t *testing.T) {
	path := writeKB(t, []domain.Document{
		{Title: "Reset Password", Content: "Click forgot password"},
	})

	store := Open(path, zap.NewNop())
	docs := store.AllDocuments()
	require.Len(t, docs, 1)
	assert.Equal(t, domain.DefaultCategory, docs[0].Category)
}

func TestAddDocument_PersistsAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.json")
	store := Open(path, zap.NewNop())

	doc, err := store.AddDocument("Billing Cycle", "Bills are generated monthly", "Billing")
	require.NoError(t, err)
	assert.Equal(t, "Billing", doc.Category)
	assert.Equal(t, 1, store.Count())

	reloaded := Open(path, zap.NewNop())
	docs := reloaded.AllDocuments()
	require.Len(t, docs, 1)
	assert.Equal(t, "Billing Cycle", docs[0].Title)
}

func TestAddDocument_EmptyCategoryDefaults(t *testing.T) {
	store := Open(filepath.Join(t.TempDir(), "kb.json"), zap.NewNop())

	doc, err := store.AddDocument("X", "Y", "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCategory, doc.Category)
}

func TestAllDocuments_ReturnsCopy(t *testing.T) {
	path := writeKB(t, []domain.Document{
		{Title: "A", Content: "a", Category: "General"},
	})
	store := Open(path, zap.NewNop())

	docs := store.AllDocuments()
	docs[0].Title = "mutated"

	assert.Equal(t, "A", store.AllDocuments()[0].Title)
}

func TestSearchDocuments(t *testing.T) {
	path := writeKB(t, []domain.Document{
		{Title: "Reset Password", Content: "Click forgot password on login page", Category: "Account"},
		{Title: "Billing Cycle", Content: "Bills are generated monthly", Category: "Billing"},
	})
	store := Open(path, zap.NewNop())

	tests := []struct {
		keyword string
		want    int
	}{
		{"password", 1},
		{"PASSWORD", 1},
		{"monthly", 1},
		{"bill", 1},
		{"refund", 0},
	}
	for _, tt := range tests {
		assert.Len(t, store.SearchDocuments(tt.keyword), tt.want, "keyword %q", tt.keyword)
	}
}

func TestCategories_SortedAndDistinct(t *testing.T) {
	path := writeKB(t, []domain.Document{
		{Title: "A", Content: "a", Category: "Billing"},
		{Title: "B", Content: "b", Category: "Account"},
		{Title: "C", Content: "c", Category: "Billing"},
	})
	store := Open(path, zap.NewNop())

	assert.Equal(t, []string{"Account", "Billing"}, store.Categories())
	assert.Len(t, store.DocumentsByCategory("Billing"), 2)
}
