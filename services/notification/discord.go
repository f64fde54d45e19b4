package notification

import (
	"context"
	"errors"
	"net/http"
)

type discordChannel struct {
	client  *http.Client
	webhook string
}

func NewDiscordChannel(client *http.Client, webhook string) (Channel, error) {
	if client == nil {
		return nil, errors.New("[discord] invalid http client")
	}

	return &discordChannel{client: client, webhook: webhook}, nil
}

func (c *discordChannel) Name() string { return "discord" }

func (c *discordChannel) Enabled() bool { return c.webhook != "" }

func (c *discordChannel) Deliver(ctx context.Context, message string) error {
	return postJSON(ctx, c.client, c.Name(), c.webhook, map[string]string{"content": message}, nil)
}
