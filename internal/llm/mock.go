package llm

import "context"

// MockClient returns a canned completion. Used in tests and for offline
// development without generation credentials.
type MockClient struct {
	Response string
	Err      error

	// LastRequest records the most recent Complete call for assertions.
	LastRequest Request
}

func NewMockClient(response string) *MockClient {
	return &MockClient{Response: response}
}

func (m *MockClient) Complete(ctx context.Context, req Request) (string, error) {
	m.LastRequest = req
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

func (m *MockClient) ModelID() string { return "mock" }
