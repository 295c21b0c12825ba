package usecase

import (
	"fmt"
	"strings"

	"supportbot/internal/domain"
)

const systemPrompt = `You are a helpful customer support AI assistant. Use the provided context to answer customer questions accurately and professionally.

Guidelines:
- Provide clear, concise, and helpful answers
- Use information from the context when available
- If the context doesn't contain relevant information, politely indicate that you need to escalate to a human agent
- Be empathetic and understanding
- Maintain a professional but friendly tone
- If asked about technical issues, provide step-by-step solutions when possible`

const userPromptFormat = `Context Information:
%s

Customer Question: %s

Please provide a helpful response based on the context above. If the context doesn't contain sufficient information to answer the question, let the customer know that you'll need to connect them with a human agent for further assistance.`

// ComposePrompt builds the chat prompt for a query and its retrieved
// context. Composing with zero documents still yields a valid prompt with an
// empty context block; the model is instructed to recommend escalation when
// the context cannot support an answer.
func ComposePrompt(query string, docs []domain.ScoredDocument) domain.Prompt {
	entries := make([]string, len(docs))
	for i, sd := range docs {
		entries[i] = fmt.Sprintf("Source: %s\nCategory: %s\nContent: %s",
			sd.Document.Title, sd.Document.Category, sd.Document.Content)
	}

	return domain.Prompt{
		System: systemPrompt,
		User:   fmt.Sprintf(userPromptFormat, strings.Join(entries, "\n\n"), query),
	}
}
