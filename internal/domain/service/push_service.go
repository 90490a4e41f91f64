package service

import (
	"context"
)

// PushService defines the interface for push notification delivery.
type PushService interface {
	// SendToOne sends a push notification to a single device token and
	// returns the provider's message ID.
	SendToOne(ctx context.Context, token, title, body string, data map[string]string) (string, error)

	// SendToMany sends a push notification to multiple device tokens.
	// Returns success count, failure count, and the tokens the provider
	// reported as invalid or unregistered.
	SendToMany(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
