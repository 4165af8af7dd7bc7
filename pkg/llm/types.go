package llm

// CompletionRequest describes a single completion invocation: one system
// instruction plus one user prompt.
type CompletionRequest struct {
	System string `json:"system"`
	Prompt string `json:"prompt"`
}

// Completion is the usable outcome of a completion call. Text is trimmed of
// surrounding whitespace but otherwise verbatim provider output.
type Completion struct {
	Text    string `json:"text"`
	Model   string `json:"model"`
	Created int64  `json:"created"`
	Usage   Usage  `json:"usage"`
}

// Usage summarises token accounting for a completion.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
