package anthropic

// messagesRequest is the JSON body for a Messages API call.
type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	System      string    `json:"system,omitempty"`
	Messages    []message `json:"messages"`
}

// message is a single conversation turn in a Messages API request.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesResponse mirrors the fields of a Messages API response that the
// client consumes. Usage is a pointer so an omitted usage object stays nil.
type messagesResponse struct {
	Content []contentBlock `json:"content"`
	Usage   *usage         `json:"usage"`
	Error   *apiError      `json:"error"`
}

// contentBlock is one entry of the response content array.
type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// usage carries the token counters reported by the API.
type usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// apiError is the error envelope the API returns alongside non-2xx statuses.
type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
