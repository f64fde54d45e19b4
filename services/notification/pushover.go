package notification

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

const PushoverURL = "https://api.pushover.net"

type pushoverChannel struct {
	client   *http.Client
	baseURL  string
	userKey  string
	apiToken string
}

func NewPushoverChannel(client *http.Client, baseURL, userKey, apiToken string) (Channel, error) {
	if client == nil {
		return nil, errors.New("[pushover] invalid http client")
	}
	if baseURL == "" {
		baseURL = PushoverURL
	}

	return &pushoverChannel{client: client, baseURL: baseURL, userKey: userKey, apiToken: apiToken}, nil
}

func (c *pushoverChannel) Name() string { return "pushover" }

func (c *pushoverChannel) Enabled() bool { return c.userKey != "" && c.apiToken != "" }

func (c *pushoverChannel) Deliver(ctx context.Context, message string) error {
	form := url.Values{}
	form.Set("user", c.userKey)
	form.Set("token", c.apiToken)
	form.Set("message", message)

	return postForm(ctx, c.client, c.Name(), joinURL(c.baseURL, "/1/messages.json"), form)
}
