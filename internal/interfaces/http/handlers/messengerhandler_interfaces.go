package handlers

import (
	"context"

	"github.com/teamboard/teamboard/internal/infrastructure/messenger"
)

type messengerStatusChecker interface {
	CheckStatus(ctx context.Context) (*messenger.Status, error)
}

type messengerCredentialStore interface {
	SaveMessengerCredential(ctx context.Context, apiKey, numberKey string) error
}
