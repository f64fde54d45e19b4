package cloudmessaging

import (
	"context"
	"errors"
	"strconv"

	"firebase.google.com/go/messaging"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go
type Service interface {
	SendMessage(ctx context.Context, title, body, pushToken string, data map[string]interface{}) (*string, error)
}

type service struct {
	fcmClient      *messaging.Client
	androidChannel string
}

func NewCloudMessagingService(fcmClient *messaging.Client, androidChannel string) (Service, error) {
	if fcmClient == nil {
		return nil, errors.New("[cloud_messaging] invalid firebase messaging client")
	}
	if androidChannel == "" {
		return nil, errors.New("[cloud_messaging] invalid firebase android channel")
	}

	return &service{fcmClient: fcmClient, androidChannel: androidChannel}, nil
}

func (s *service) SendMessage(ctx context.Context, title, body, pushToken string, data map[string]interface{}) (*string, error) {
	if pushToken == "" {
		return nil, errors.New("[cloud_messaging] invalid push token")
	}

	response, err := s.fcmClient.Send(ctx, BuildMessage(title, body, pushToken, s.androidChannel, data))
	if err != nil {
		return nil, err
	}

	return &response, nil
}

// BuildMessage carries the alert in both the APNS and the Android payloads.
// Android data values must be strings, so other scalar types are formatted
// and anything else is dropped.
func BuildMessage(title, body, pushToken, androidChannel string, data map[string]interface{}) *messaging.Message {
	androidData := make(map[string]string, len(data))
	for key, value := range data {
		switch v := value.(type) {
		case string:
			androidData[key] = v
		case int:
			androidData[key] = strconv.Itoa(v)
		case float64:
			androidData[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			androidData[key] = strconv.FormatBool(v)
		}
	}

	return &messaging.Message{
		// iOS
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{
						Title: title,
						Body:  body,
					},
					Sound:      "default",
					CustomData: data,
				},
			},
		},

		// Android
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Title:     title,
				Body:      body,
				ChannelID: androidChannel,
				Sound:     "default",
			},
			Data: androidData,
		},
		Token: pushToken,
	}
}
