package notification

import (
	"context"

	cloudmessaging "wallet-monitor/pkg/firebase/cloud-messaging"
)

type firebaseChannel struct {
	messaging cloudmessaging.Service
	pushToken string
}

// NewFirebaseChannel pushes alerts to one device. A nil messaging service
// leaves the channel disabled.
func NewFirebaseChannel(messaging cloudmessaging.Service, pushToken string) Channel {
	return &firebaseChannel{messaging: messaging, pushToken: pushToken}
}

func (c *firebaseChannel) Name() string { return "firebase" }

func (c *firebaseChannel) Enabled() bool { return c.messaging != nil && c.pushToken != "" }

func (c *firebaseChannel) Deliver(ctx context.Context, message string) error {
	data := map[string]interface{}{"type": "balance-alert"}

	if _, err := c.messaging.SendMessage(ctx, AlertTitle, message, c.pushToken, data); err != nil {
		return &DeliveryError{Channel: c.Name(), Err: err}
	}
	return nil
}
