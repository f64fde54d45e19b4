package notification

import (
	"context"
	"errors"
	"net/http"
)

const TelegramURL = "https://api.telegram.org"

type telegramChannel struct {
	client   *http.Client
	baseURL  string
	botToken string
	chatID   string
}

func NewTelegramChannel(client *http.Client, baseURL, botToken, chatID string) (Channel, error) {
	if client == nil {
		return nil, errors.New("[telegram] invalid http client")
	}
	if baseURL == "" {
		baseURL = TelegramURL
	}

	return &telegramChannel{client: client, baseURL: baseURL, botToken: botToken, chatID: chatID}, nil
}

func (c *telegramChannel) Name() string { return "telegram" }

func (c *telegramChannel) Enabled() bool { return c.botToken != "" && c.chatID != "" }

func (c *telegramChannel) Deliver(ctx context.Context, message string) error {
	payload := map[string]string{
		"chat_id": c.chatID,
		"text":    message,
	}

	return postJSON(ctx, c.client, c.Name(), joinURL(c.baseURL, "/bot"+c.botToken+"/sendMessage"), payload, nil)
}
