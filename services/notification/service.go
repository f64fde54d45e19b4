package notification

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Result lists channel names by outcome, in channel order.
type Result struct {
	Delivered []string
	Failed    []string
}

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go
type Service interface {
	Dispatch(ctx context.Context, message string) Result
	Channels() []string
}

type service struct {
	channels []Channel
	logger   *zap.SugaredLogger
}

func NewService(channels []Channel, logger *zap.SugaredLogger) (Service, error) {
	if logger == nil {
		return nil, errors.New("[notification_service] invalid logger")
	}

	enabled := make([]Channel, 0, len(channels))
	for _, ch := range channels {
		if ch == nil {
			return nil, errors.New("[notification_service] invalid channel")
		}
		if ch.Enabled() {
			enabled = append(enabled, ch)
		}
	}

	return &service{channels: enabled, logger: logger}, nil
}

// Channels returns the names of the enabled channels.
func (s *service) Channels() []string {
	names := make([]string, 0, len(s.channels))
	for _, ch := range s.channels {
		names = append(names, ch.Name())
	}
	return names
}

// Dispatch delivers the message on every enabled channel concurrently and
// waits for all of them. A failing or panicking channel never affects the
// others and never surfaces to the caller.
func (s *service) Dispatch(ctx context.Context, message string) Result {
	errs := make([]error, len(s.channels))

	var wg sync.WaitGroup
	for i, ch := range s.channels {
		wg.Add(1)
		go func(i int, ch Channel) {
			defer wg.Done()
			errs[i] = s.deliver(ctx, ch, message)
		}(i, ch)
	}
	wg.Wait()

	var res Result
	for i, ch := range s.channels {
		if errs[i] != nil {
			s.logger.Errorf("failed to send %s notification: %v", ch.Name(), errs[i])
			res.Failed = append(res.Failed, ch.Name())
			continue
		}
		s.logger.Infof("%s notification successfully sent", ch.Name())
		res.Delivered = append(res.Delivered, ch.Name())
	}

	return res
}

func (s *service) deliver(ctx context.Context, ch Channel, message string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &DeliveryError{Channel: ch.Name(), Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	return ch.Deliver(ctx, message)
}
