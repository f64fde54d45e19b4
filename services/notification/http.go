package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxErrorBody = 512

// NewHTTPClient returns the client shared by every HTTP channel.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func postJSON(ctx context.Context, client *http.Client, channel, endpoint string, payload interface{}, headers map[string]string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &DeliveryError{Channel: channel, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return &DeliveryError{Channel: channel, Err: withoutURL(err)}
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return doRequest(client, channel, req)
}

func postForm(ctx context.Context, client *http.Client, channel, endpoint string, form url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return &DeliveryError{Channel: channel, Err: withoutURL(err)}
	}

	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	return doRequest(client, channel, req)
}

func doRequest(client *http.Client, channel string, req *http.Request) error {
	resp, err := client.Do(req)
	if err != nil {
		return &DeliveryError{Channel: channel, Err: withoutURL(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(respBody))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &DeliveryError{Channel: channel, StatusCode: resp.StatusCode, Err: errors.New(msg)}
	}

	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

// withoutURL drops the request URL from transport errors. Webhook and bot
// endpoints carry their credentials in the URL.
func withoutURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s request: %w", urlErr.Op, urlErr.Err)
	}
	return err
}

func joinURL(base, path string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(base, "/"), strings.TrimLeft(path, "/"))
}
