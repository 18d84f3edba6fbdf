package domain

// Message is one entry of a chat-completion conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// CompletionOptions selects the model and sampling temperature of a call.
type CompletionOptions struct {
	Model       string
	Temperature float64
}

// CompletionRequest is the payload sent to the chat-completion endpoint.
// It is built fresh for every call and not modified afterwards.
type CompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

// NewCompletionRequest builds the [system, user] request for a single call.
// No history is carried between calls.
func NewCompletionRequest(systemPrompt, userContent string, opts CompletionOptions) CompletionRequest {
	return CompletionRequest{
		Model: opts.Model,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: userContent},
		},
		Temperature: opts.Temperature,
	}
}
