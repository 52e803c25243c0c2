package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const TelegramBaseURL = "https://api.telegram.org"

type TelegramClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewTelegramClient(baseURL, token string, timeout time.Duration) (*TelegramClient, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token is required")
	}
	if baseURL == "" {
		baseURL = TelegramBaseURL
	}
	return &TelegramClient{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Deliver sends text to a chat. Only success or failure is reported back.
func (c *TelegramClient) Deliver(ctx context.Context, chatID, text, parseMode string) error {
	payload, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text, ParseMode: parseMode})
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// the request URL embeds the bot token
		return fmt.Errorf("telegram API error: %w", redact(err, c.token))
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to close response body")
		}
	}(resp.Body)

	var out sendMessageResponse
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(body, &out)

	if resp.StatusCode != http.StatusOK || !out.OK {
		if out.Description != "" {
			return fmt.Errorf("telegram API %d: %s", resp.StatusCode, out.Description)
		}
		return fmt.Errorf("telegram API %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

func redact(err error, secret string) error {
	return &redactedError{msg: string(bytes.ReplaceAll([]byte(err.Error()), []byte(secret), []byte("***"))), err: err}
}

// Writer prints messages instead of sending them.
type Writer struct {
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) Deliver(_ context.Context, chatID, text, _ string) error {
	_, err := fmt.Fprintf(w.out, "--- chat %s ---\n%s\n", chatID, text)
	return err
}
