package llm

import (
	"context"
	"sync"
)

// MockLLM is an in-process fake for tests. It replays a fixed reply or
// error and records the prompts it was called with.
type MockLLM struct {
	Reply string
	Err   error

	mu    sync.Mutex
	calls []MockCall
}

// MockCall captures one GenerateWithSystem invocation.
type MockCall struct {
	System string
	User   string
}

func (m *MockLLM) GenerateWithSystem(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, MockCall{System: systemPrompt, User: userPrompt})
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}

func (m *MockLLM) ModelName() string {
	return "mock"
}

// Calls returns a copy of the recorded invocations.
func (m *MockLLM) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]MockCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}
