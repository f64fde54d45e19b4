package notification

import (
	"context"
	"errors"
	"net/http"
)

const PushbulletURL = "https://api.pushbullet.com"

type pushbulletChannel struct {
	client  *http.Client
	baseURL string
	token   string
}

func NewPushbulletChannel(client *http.Client, baseURL, token string) (Channel, error) {
	if client == nil {
		return nil, errors.New("[pushbullet] invalid http client")
	}
	if baseURL == "" {
		baseURL = PushbulletURL
	}

	return &pushbulletChannel{client: client, baseURL: baseURL, token: token}, nil
}

func (c *pushbulletChannel) Name() string { return "pushbullet" }

func (c *pushbulletChannel) Enabled() bool { return c.token != "" }

func (c *pushbulletChannel) Deliver(ctx context.Context, message string) error {
	payload := map[string]string{
		"type":  "note",
		"title": AlertTitle,
		"body":  message,
	}

	return postJSON(ctx, c.client, c.Name(), joinURL(c.baseURL, "/v2/pushes"), payload, map[string]string{
		"Access-Token": c.token,
	})
}
