package llm

import "context"

// MockClient permite tests sin llamar a un LLM real. Guarda el último prompt recibido.
type MockClient struct {
	Response   string
	Err        error
	LastPrompt string
	Calls      int
}

func (m *MockClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	return m.Response, m.Err
}
