// Package repository declares the ports the use cases depend on.
// Implementations live under internal/infra and talk to the upstream services over HTTP.
package repository

import (
	"context"

	"github.com/Tubbz-alt/email-alert-frontend/internal/domain/entity"
)

// NotificationService is the subset of the email alert API used by this frontend.
//
// Every method may fail with an error matching entity.ErrNotFound (HTTP 404),
// entity.ErrUnprocessable (HTTP 422), or any other error for transport failures
// and outages. Implementations must not retry.
type NotificationService interface {
	FindOrCreateSubscriberList(ctx context.Context, params entity.SubscriberListParams) (entity.SubscriberListRef, error)
	GetSubscriptions(ctx context.Context, subscriberID string) (entity.SubscriberSubscriptions, error)
	ChangeSubscription(ctx context.Context, subscriptionID string, frequency entity.Frequency) error
	ChangeSubscriber(ctx context.Context, subscriberID, newAddress string) error
	UnsubscribeSubscriber(ctx context.Context, subscriberID string) error
}
