package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"
)

const defaultBaseURL = "https://api.deepseek.com/v1/chat/completions"

type DeepSeekClient struct {
	BaseURL string
	apiKey  string
	client  *http.Client
}

func NewDeepSeekClient() *DeepSeekClient {
	return &DeepSeekClient{
		BaseURL: defaultBaseURL,
		apiKey:  os.Getenv("DEEPSEEK_API_KEY"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Chat forwards the message window to the DeepSeek chat-completions API
// and returns the assistant's reply.
func (d *DeepSeekClient) Chat(
	ctx context.Context,
	messages []Message,
) (string, error) {

	if d.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	payload := map[string]any{
		"model":       "deepseek-chat",
		"messages":    messages,
		"temperature": 0.7,
		"max_tokens":  500,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.BaseURL,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+d.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", ErrTimeout
		}
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return "", ErrInvalidAPIKey
	case http.StatusTooManyRequests:
		return "", ErrRateLimited
	default:
		return "", fmt.Errorf("deepseek api error: %s", string(raw))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Choices) == 0 {
		return "", errors.New("empty deepseek response")
	}

	return result.Choices[0].Message.Content, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
