package generation

// Segments of the composed user message. The provider enforces its own token
// ceiling; no length limits are applied locally.
const (
	userMessagePrefix = "Please create a prompt based on this request: "
	contextPrefix     = "\n\nAdditional context: "
)

// ComposeUserMessage builds the outbound user-role message from the user's
// input and optional context.
func ComposeUserMessage(userInput, context string) string {
	message := userMessagePrefix + userInput
	if context != "" {
		message += contextPrefix + context
	}
	return message
}
