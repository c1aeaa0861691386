package chatbot

import (
	"context"
	"errors"
	"strings"
)

// historyWindow caps how many prior turns are forwarded upstream.
const historyWindow = 10

type Service struct {
	client Client
}

func NewService(client Client) *Service {
	return &Service{client: client}
}

// Ask sends one user message with its trimmed history and returns the
// reply plus the updated history.
func (s *Service) Ask(
	ctx context.Context,
	message string,
	history []Message,
) (string, []Message, error) {

	if strings.TrimSpace(message) == "" {
		return "", nil, errors.New("message is required")
	}

	recent := windowHistory(history)

	messages := make([]Message, 0, len(recent)+2)
	messages = append(messages, Message{Role: "system", Content: SystemPrompt})
	messages = append(messages, recent...)
	messages = append(messages, Message{Role: "user", Content: message})

	reply, err := s.client.Chat(ctx, messages)
	if err != nil {
		return "", nil, err
	}

	updated := append(recent,
		Message{Role: "user", Content: message},
		Message{Role: "assistant", Content: reply},
	)

	return reply, updated, nil
}

func windowHistory(history []Message) []Message {
	if len(history) <= historyWindow {
		return history
	}
	return history[len(history)-historyWindow:]
}
