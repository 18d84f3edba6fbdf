package chatcompletion

// apiResponse is the subset of an OpenAI-compatible chat-completion response
// body the client relies on. A successful body carries choices; a failed one
// carries error.message instead.
type apiResponse struct {
	Choices []apiChoice `json:"choices"`
	Error   *apiError   `json:"error"`
}

// apiChoice is one completion candidate.
type apiChoice struct {
	Message apiMessage `json:"message"`
}

// apiMessage is the assistant message of a choice.
type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// apiError is the upstream error envelope.
type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}
