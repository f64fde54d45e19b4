// Package firebase builds the FCM client used for push alerts.
package firebase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

const serviceAccountType = "service_account"

type serviceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
}

// NewMessagingClient reads the service account file once and builds an FCM
// client bound to its project. The file is checked before the SDK sees it.
func NewMessagingClient(ctx context.Context, credentialsPath string) (*messaging.Client, error) {
	if credentialsPath == "" {
		return nil, errors.New("[firebase] invalid credentials path")
	}

	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("[firebase] read credentials: %w", err)
	}

	var account serviceAccount
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, fmt.Errorf("[firebase] parse credentials: %w", err)
	}
	if account.Type != serviceAccountType {
		return nil, fmt.Errorf("[firebase] credentials type %q, want %q", account.Type, serviceAccountType)
	}
	if account.ProjectID == "" {
		return nil, errors.New("[firebase] credentials have no project_id")
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: account.ProjectID}, option.WithCredentialsJSON(data))
	if err != nil {
		return nil, fmt.Errorf("[firebase] init app for %s: %w", account.ClientEmail, err)
	}

	return app.Messaging(ctx)
}
