package chatbot

import (
	"context"
	"errors"
)

var (
	ErrMissingAPIKey = errors.New("missing DEEPSEEK_API_KEY")
	ErrInvalidAPIKey = errors.New("invalid api key")
	ErrRateLimited   = errors.New("rate limited")
	ErrTimeout       = errors.New("chat request timed out")
)

type Client interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}
