package chatbot

// Message is one chat-completion turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Request struct {
	Message             string    `json:"message"`
	ConversationHistory []Message `json:"conversationHistory"`
}
