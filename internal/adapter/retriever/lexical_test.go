package retriever

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supportbot/internal/domain"
)

func supportDocs() []domain.Document {
	return []domain.Document{
		{Title: "Reset Password", Content: "Click forgot password on login page", Category: "Account"},
		{Title: "Billing Cycle", Content: "Bills are generated monthly", Category: "Billing"},
	}
}

func TestLexicalRetriever_RanksTitleMatchesFirst(t *testing.T) {
	r := NewLexicalRetriever(newMemStore(supportDocs()...))

	results, err := r.Retrieve(context.Background(), "how do I reset my password", 3)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Reset Password", results[0].Document.Title)
	assert.Equal(t, "Billing Cycle", results[1].Document.Title)
	assert.Greater(t, results[0].Score, results[1].Score)

	// 2 title words overlap (x3) + 1 content word (x1) + substring bonuses
	// ("i" and "password" in content, "reset" and "password" in title),
	// normalized by the 6 query words.
	assert.InDelta(t, 13.0/6.0, results[0].Score, 1e-9)
}

func TestLexicalRetriever_EmptyQuery(t *testing.T) {
	r := NewLexicalRetriever(newMemStore(supportDocs()...))

	for _, query := range []string{"", "   ", "!!! ???"} {
		results, err := r.Retrieve(context.Background(), query, 3)
		require.NoError(t, err)
		assert.Empty(t, results, "query %q", query)
	}
}

func TestLexicalRetriever_EmptyStore(t *testing.T) {
	r := NewLexicalRetriever(newMemStore())

	results, err := r.Retrieve(context.Background(), "anything at all", 3)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestLexicalRetriever_DropsZeroScores(t *testing.T) {
	r := NewLexicalRetriever(newMemStore(supportDocs()...))

	results, err := r.Retrieve(context.Background(), "quantum entanglement", 3)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestLexicalRetriever_CapsAtTopK(t *testing.T) {
	store := newMemStore(
		domain.Document{Title: "password help one", Content: "password", Category: "General"},
		domain.Document{Title: "password help two", Content: "password", Category: "General"},
		domain.Document{Title: "password help three", Content: "password", Category: "General"},
		domain.Document{Title: "password help four", Content: "password", Category: "General"},
	)
	r := NewLexicalRetriever(store)

	results, err := r.Retrieve(context.Background(), "password", 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestLexicalRetriever_TiesPreserveStoreOrder(t *testing.T) {
	store := newMemStore(
		domain.Document{Title: "refund policy a", Content: "same text", Category: "General"},
		domain.Document{Title: "refund policy b", Content: "same text", Category: "General"},
	)
	r := NewLexicalRetriever(store)

	results, err := r.Retrieve(context.Background(), "refund policy", 3)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, results[0].Score, results[1].Score)
	assert.Equal(t, "refund policy a", results[0].Document.Title)
	assert.Equal(t, "refund policy b", results[1].Document.Title)
}

func TestLexicalRetriever_Idempotent(t *testing.T) {
	r := NewLexicalRetriever(newMemStore(supportDocs()...))

	first, err := r.Retrieve(context.Background(), "how do I reset my password", 3)
	require.NoError(t, err)
	second, err := r.Retrieve(context.Background(), "how do I reset my password", 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLexicalRetriever_SubstringBonusMatchesPartialWords(t *testing.T) {
	store := newMemStore(
		domain.Document{Title: "Passwords", Content: "Use strong passwords", Category: "Security"},
	)
	r := NewLexicalRetriever(store)

	// "password" is not a whole word of the document, but it is a substring
	// of "passwords" in both title and content.
	results, err := r.Retrieve(context.Background(), "password", 3)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.InDelta(t, 3.0, results[0].Score, 1e-9)
}

func TestLexicalRetriever_SeesAppendedDocuments(t *testing.T) {
	store := newMemStore()
	r := NewLexicalRetriever(store)

	_, err := store.AddDocument("X", "Y", "")
	require.NoError(t, err)
	require.NoError(t, r.AddDocument(context.Background(), domain.Document{Title: "X", Content: "Y", Category: "General"}))

	results, err := r.Retrieve(context.Background(), "Y", 3)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "X", results[0].Document.Title)
}
