package notification

import (
	"context"
	"fmt"
)

const AlertTitle = "Balance Alert"

// Channel is one outbound transport. Enabled is fixed at construction from
// the presence of the channel's credentials.
type Channel interface {
	Name() string
	Enabled() bool
	Deliver(ctx context.Context, message string) error
}

type DeliveryError struct {
	Channel    string
	StatusCode int
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s delivery failed with status %d: %v", e.Channel, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s delivery failed: %v", e.Channel, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
