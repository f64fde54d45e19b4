package notification_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"wallet-monitor/services/notification"
	mock_notification "wallet-monitor/services/notification/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewHandler(t *testing.T) {
	h, err := notification.NewHandler(nil)
	assert.Nil(t, h)
	assert.EqualError(t, err, "[notification_handler] invalid repository")
}

func TestNewRepository(t *testing.T) {
	r, err := notification.NewRepository(nil, "test", zap.NewNop().Sugar())
	assert.Nil(t, r)
	assert.EqualError(t, err, "[notification_repository] invalid user database")
}

func TestAlertsRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	repository := mock_notification.NewMockRepository(ctrl)

	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repository.EXPECT().GetAlertList(gomock.Any(), int64(50)).Return([]*notification.Alert{
		{Channel: "history", Message: "Change: +5.2500 AI3", CreatedAt: createdAt},
	}, nil)
	repository.EXPECT().GetAlertList(gomock.Any(), int64(2)).Return([]*notification.Alert{}, nil)
	repository.EXPECT().GetAlertList(gomock.Any(), int64(5)).Return(nil, errors.New("db down"))

	h, err := notification.NewHandler(repository)
	require.NoError(t, err)

	app := fiber.New()
	app.Route("/api/v1", func(router fiber.Router) {
		h.SetupRoutes(router)
	})

	tests := []struct {
		description  string
		route        string
		expectedCode int
		expectedBody string
	}{
		{
			description:  "default limit",
			route:        "/alerts",
			expectedCode: 200,
			expectedBody: `[{"id":"000000000000000000000000","channel":"history","message":"Change: +5.2500 AI3","created_at":"2024-03-01T12:00:00Z"}]`,
		},
		{
			description:  "custom limit",
			route:        "/alerts?limit=2",
			expectedCode: 200,
			expectedBody: `[]`,
		},
		{
			description:  "invalid limit",
			route:        "/alerts?limit=-1",
			expectedCode: 400,
			expectedBody: `{"error":"invalid limit"}`,
		},
		{
			description:  "repository failure",
			route:        "/alerts?limit=5",
			expectedCode: 500,
			expectedBody: `{"error":"db down"}`,
		},
	}

	for _, test := range tests {
		req := httptest.NewRequest("GET", "/api/v1"+test.route, nil)

		resp, err := app.Test(req, -1)
		require.NoError(t, err, test.description)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err, test.description)

		assert.Equalf(t, test.expectedCode, resp.StatusCode, test.description)
		assert.Equalf(t, test.expectedBody, string(body), test.description)
	}
}
