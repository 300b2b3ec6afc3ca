package manage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Tubbz-alt/email-alert-frontend/internal/domain/entity"
	"github.com/Tubbz-alt/email-alert-frontend/internal/i18n"
	"github.com/Tubbz-alt/email-alert-frontend/internal/observability/metrics"
	"github.com/Tubbz-alt/email-alert-frontend/internal/repository"
)

// DefaultBackURL is the subscription management index every outcome links back to.
const DefaultBackURL = "/email/manage"

// Outcome labels recorded with metrics.RecordManagementOutcome.
const (
	outcomeSuccess            = "success"
	outcomeNotFound           = "not_found"
	outcomeInvalidFrequency   = "invalid_frequency"
	outcomeMissingAddress     = "missing_address"
	outcomeInvalidAddress     = "invalid_address"
	outcomeAlreadyUnsubscribe = "already_unsubscribed"
	outcomeUnavailable        = "unavailable"
)

// Overview is the subscriber's address and subscriptions for the management index.
type Overview struct {
	Heading       string
	Address       string
	Subscriptions []entity.Subscription
	// EmptyMessage is set when the subscriber has no subscriptions.
	EmptyMessage string
	BackURL      string
}

// FrequencyOption is one choice on the frequency form.
type FrequencyOption struct {
	Value entity.Frequency
	Label string
}

// FrequencyForm is what the frequency change form presents.
type FrequencyForm struct {
	SubscriptionID   string
	Title            string
	CurrentFrequency entity.Frequency
	Options          []FrequencyOption
	BackURL          string
}

// AddressForm is what the address change form presents.
type AddressForm struct {
	Address string
	BackURL string
}

// UnsubscribeAllPrompt is what the unsubscribe-all confirmation step presents.
type UnsubscribeAllPrompt struct {
	Description string
	BackURL     string
}

// Confirmation is the success message shown after a change.
type Confirmation struct {
	Message string
	// Description is optional supporting text, such as a propagation advisory.
	Description string
	BackURL     string
}

// Service provides subscription management use cases.
// Every operation works against a Session obtained from Load for the same request.
type Service struct {
	API     repository.NotificationService
	Catalog *i18n.Catalog

	// BackURL overrides DefaultBackURL when set.
	BackURL string
}

// Load fetches the subscriber's subscriptions once for the current request.
// An unknown subscriber yields an empty session, not an error.
// Transport failures match entity.ErrServiceUnavailable.
func (s *Service) Load(ctx context.Context, subscriberID string) (*Session, error) {
	if strings.TrimSpace(subscriberID) == "" {
		return nil, &entity.ValidationError{Field: "subscriber_id", Message: "is required"}
	}

	details, err := s.API.GetSubscriptions(ctx, subscriberID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			slog.InfoContext(ctx, "subscriber not found, treating as no subscriptions",
				slog.String("subscriber_id", subscriberID))
			return newSession(entity.Subscriber{ID: subscriberID}, nil), nil
		}
		metrics.RecordManagementOutcome(metrics.OperationListSubscriptions, outcomeUnavailable)
		return nil, unavailable("get subscriptions", err)
	}

	subscriber := details.Subscriber
	if subscriber.ID == "" {
		subscriber.ID = subscriberID
	}
	return newSession(subscriber, details.Subscriptions), nil
}

// ListSubscriptions returns the subscriber's address and subscriptions. It never mutates.
func (s *Service) ListSubscriptions(sess *Session) *Overview {
	address := sess.Subscriber().Address
	heading, err := s.Catalog.T("subscriptions_management.index.heading", map[string]string{"address": address})
	if err != nil {
		heading = address
	}

	overview := &Overview{
		Heading:       heading,
		Address:       address,
		Subscriptions: sess.Subscriptions(),
		BackURL:       s.backURL(),
	}
	if len(overview.Subscriptions) == 0 {
		overview.EmptyMessage = s.Catalog.Text("subscriptions_management.index.no_subscriptions")
	}
	metrics.RecordManagementOutcome(metrics.OperationListSubscriptions, outcomeSuccess)
	return overview
}

// BeginFrequencyChange returns the frequency form for one of the subscriber's own
// subscriptions. Returns ErrNotFound when subscriptionID is not in the session.
func (s *Service) BeginFrequencyChange(sess *Session, subscriptionID string) (*FrequencyForm, error) {
	sub, ok := sess.Subscription(subscriptionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, subscriptionID)
	}

	options := make([]FrequencyOption, 0, 3)
	for _, f := range entity.Frequencies() {
		options = append(options, FrequencyOption{
			Value: f,
			Label: s.Catalog.Text("frequencies." + string(f)),
		})
	}

	return &FrequencyForm{
		SubscriptionID:   sub.ID,
		Title:            sub.SubscriberList.Title,
		CurrentFrequency: sub.Frequency,
		Options:          options,
		BackURL:          s.backURL(),
	}, nil
}

// ApplyFrequencyChange changes the frequency of one of the subscriber's own subscriptions.
//
// Ownership is checked before anything else, so an id outside the session fails with
// ErrNotFound for every frequency. A frequency the email alert API rejects fails with
// ErrInvalidFrequency. The call is attempted once and outages are never masked.
func (s *Service) ApplyFrequencyChange(ctx context.Context, sess *Session, subscriptionID string, frequency entity.Frequency) (*Confirmation, error) {
	const op = metrics.OperationChangeFrequency

	sub, ok := sess.Subscription(subscriptionID)
	if !ok {
		metrics.RecordManagementOutcome(op, outcomeNotFound)
		return nil, fmt.Errorf("%w: %s", ErrNotFound, subscriptionID)
	}

	if strings.TrimSpace(string(frequency)) == "" {
		metrics.RecordManagementOutcome(op, outcomeInvalidFrequency)
		return nil, fmt.Errorf("%w: frequency is required", ErrInvalidFrequency)
	}

	if err := s.API.ChangeSubscription(ctx, sub.ID, frequency); err != nil {
		switch {
		case errors.Is(err, entity.ErrUnprocessable):
			metrics.RecordManagementOutcome(op, outcomeInvalidFrequency)
			return nil, fmt.Errorf("%w: %q", ErrInvalidFrequency, frequency)
		case errors.Is(err, entity.ErrNotFound):
			metrics.RecordManagementOutcome(op, outcomeNotFound)
			return nil, fmt.Errorf("%w: %s", ErrNotFound, subscriptionID)
		default:
			metrics.RecordManagementOutcome(op, outcomeUnavailable)
			return nil, unavailable("change subscription", err)
		}
	}

	label := s.FrequencyLabel(frequency)
	message, err := s.Catalog.T("subscriptions_management.change_frequency.success", map[string]string{
		"subscription_title": sub.SubscriberList.Title,
		"frequency":          label,
	})
	if err != nil {
		slog.WarnContext(ctx, "render frequency confirmation", slog.Any("error", err))
		message = sub.SubscriberList.Title + ": " + label
	}

	metrics.RecordManagementOutcome(op, outcomeSuccess)
	return &Confirmation{Message: message, BackURL: s.backURL()}, nil
}

// FrequencyLabel is how a frequency reads inside a sentence. The immediate frequency
// uses the localized phrase in lower case; other values are used as they are.
func (s *Service) FrequencyLabel(frequency entity.Frequency) string {
	if frequency == entity.FrequencyImmediately {
		return strings.ToLower(s.Catalog.Text("frequencies.immediately"))
	}
	return string(frequency)
}

// BeginAddressChange returns the address form with the address on record.
func (s *Service) BeginAddressChange(sess *Session) *AddressForm {
	return &AddressForm{Address: sess.Subscriber().Address, BackURL: s.backURL()}
}

// ApplyAddressChange changes the subscriber's address.
//
// A blank address fails with an *AddressError wrapping ErrMissingAddress and no remote
// call. An address the email alert API rejects fails with an *AddressError wrapping
// ErrInvalidAddress that echoes the attempted value.
func (s *Service) ApplyAddressChange(ctx context.Context, sess *Session, newAddress string) (*Confirmation, error) {
	const op = metrics.OperationChangeAddress
	current := sess.Subscriber().Address

	if strings.TrimSpace(newAddress) == "" {
		metrics.RecordManagementOutcome(op, outcomeMissingAddress)
		return nil, &AddressError{
			Err:       ErrMissingAddress,
			Attempted: newAddress,
			Current:   current,
			Message:   s.Catalog.Text("subscriptions_management.update_address.missing_email"),
		}
	}

	if err := s.API.ChangeSubscriber(ctx, sess.Subscriber().ID, newAddress); err != nil {
		switch {
		case errors.Is(err, entity.ErrUnprocessable):
			metrics.RecordManagementOutcome(op, outcomeInvalidAddress)
			return nil, &AddressError{
				Err:       ErrInvalidAddress,
				Attempted: newAddress,
				Current:   current,
				Message:   s.Catalog.Text("subscriptions_management.update_address.invalid_email"),
			}
		case errors.Is(err, entity.ErrNotFound):
			metrics.RecordManagementOutcome(op, outcomeNotFound)
			return nil, fmt.Errorf("change subscriber: %w", ErrNotFound)
		default:
			metrics.RecordManagementOutcome(op, outcomeUnavailable)
			return nil, unavailable("change subscriber", err)
		}
	}

	message, err := s.Catalog.T("subscriptions_management.update_address.success", map[string]string{
		"address": newAddress,
	})
	if err != nil {
		slog.WarnContext(ctx, "render address confirmation", slog.Any("error", err))
		message = newAddress
	}

	metrics.RecordManagementOutcome(op, outcomeSuccess)
	return &Confirmation{Message: message, BackURL: s.backURL()}, nil
}

// ConfirmUnsubscribeAll returns the confirmation step. It never mutates.
func (s *Service) ConfirmUnsubscribeAll(*Session) *UnsubscribeAllPrompt {
	return &UnsubscribeAllPrompt{
		Description: s.Catalog.Text("subscriptions_management.confirm_unsubscribe_all.description"),
		BackURL:     s.backURL(),
	}
}

// ApplyUnsubscribeAll unsubscribes the subscriber from every list.
// A subscriber the email alert API no longer knows is already unsubscribed, so that
// case succeeds too. Repeating the call never surfaces an error.
func (s *Service) ApplyUnsubscribeAll(ctx context.Context, sess *Session) (*Confirmation, error) {
	const op = metrics.OperationUnsubscribeAll

	err := s.API.UnsubscribeSubscriber(ctx, sess.Subscriber().ID)
	switch {
	case err == nil:
		metrics.RecordManagementOutcome(op, outcomeSuccess)
	case errors.Is(err, entity.ErrNotFound):
		slog.InfoContext(ctx, "subscriber already unsubscribed",
			slog.String("subscriber_id", sess.Subscriber().ID))
		metrics.RecordManagementOutcome(op, outcomeAlreadyUnsubscribe)
	default:
		metrics.RecordManagementOutcome(op, outcomeUnavailable)
		return nil, unavailable("unsubscribe subscriber", err)
	}

	return &Confirmation{
		Message:     s.Catalog.Text("subscriptions_management.confirmed_unsubscribe_all.success_message"),
		Description: s.Catalog.Text("subscriptions_management.confirmed_unsubscribe_all.success_description"),
		BackURL:     s.backURL(),
	}, nil
}

func (s *Service) backURL() string {
	if s.BackURL != "" {
		return s.BackURL
	}
	return DefaultBackURL
}

func unavailable(op string, err error) error {
	if errors.Is(err, entity.ErrServiceUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, entity.ErrServiceUnavailable, err)
}
