package notification

import (
	"context"
	"time"
)

type historyChannel struct {
	repository Repository
}

// NewHistoryChannel records every alert. A nil repository leaves the channel
// disabled.
func NewHistoryChannel(repository Repository) Channel {
	return &historyChannel{repository: repository}
}

func (c *historyChannel) Name() string { return "history" }

func (c *historyChannel) Enabled() bool { return c.repository != nil }

func (c *historyChannel) Deliver(ctx context.Context, message string) error {
	err := c.repository.CreateAlert(ctx, &Alert{
		Channel:   c.Name(),
		Message:   message,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return &DeliveryError{Channel: c.Name(), Err: err}
	}
	return nil
}
