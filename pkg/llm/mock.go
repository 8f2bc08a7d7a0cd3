package llm

import "context"

// MockClient is a configurable mock for testing. Set CompleteFunc to
// control behavior; calls are counted for verification.
type MockClient struct {
	// CompleteFunc is called when Complete is invoked.
	// If nil, Complete returns "" with no error.
	CompleteFunc func(ctx context.Context, req CompletionRequest) (string, error)

	// ModelName is returned by Model. Defaults to "mock-model".
	ModelName string

	// CompleteCalls counts Complete invocations.
	CompleteCalls int

	// LastRequest records the most recent request for assertions.
	LastRequest CompletionRequest
}

// NewMockClient creates a mock with defaults.
func NewMockClient() *MockClient {
	return &MockClient{ModelName: "mock-model"}
}

// Complete implements Client.
func (m *MockClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	m.CompleteCalls++
	m.LastRequest = req
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, req)
	}
	return "", nil
}

// Model implements Client.
func (m *MockClient) Model() string {
	if m.ModelName == "" {
		return "mock-model"
	}
	return m.ModelName
}
