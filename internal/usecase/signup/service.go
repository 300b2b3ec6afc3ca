package signup

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/Tubbz-alt/email-alert-frontend/internal/domain/entity"
	"github.com/Tubbz-alt/email-alert-frontend/internal/observability/metrics"
	"github.com/Tubbz-alt/email-alert-frontend/internal/repository"
)

// DefaultSubscriptionsPath is where a subscriber chooses how to subscribe to a list.
const DefaultSubscriptionsPath = "/email/subscriptions/new"

// Signup is the resolved outcome of looking up a content item to subscribe to.
type Signup struct {
	ContentItem *entity.ContentItem
	Params      entity.SubscriberListParams
	// ChildTaxons lists narrower topics the visitor may prefer; only set for taxons.
	ChildTaxons []entity.LinkedItem
}

// Service provides content item signup use cases.
// It looks content items up in the content store and delegates list creation to the
// email alert API.
type Service struct {
	Content repository.ContentStore
	Lists   repository.NotificationService

	// SubscriptionsPath overrides DefaultSubscriptionsPath when set.
	SubscriptionsPath string
}

// Lookup resolves the content item at path to its subscriber list params.
//
// Returns ErrInvalidPath for non-relative paths, ErrContentItemNotFound for unknown
// paths and destination-less redirects, a *RedirectError for redirect items,
// ErrUnsupportedContentItem for document types without a list, and an error matching
// entity.ErrServiceUnavailable when the content store cannot be reached.
func (s *Service) Lookup(ctx context.Context, path string) (*Signup, error) {
	if err := entity.ValidateContentPath(path); err != nil {
		metrics.RecordSignupLookup("", metrics.ResultInvalid)
		return nil, fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}

	item, err := s.Content.ContentItem(ctx, path)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			metrics.RecordSignupLookup("", metrics.ResultNotFound)
			return nil, fmt.Errorf("%w: %s", ErrContentItemNotFound, path)
		}
		metrics.RecordSignupLookup("", metrics.ResultUnavailable)
		return nil, unavailable("lookup content item", err)
	}

	if err := CheckRedirect(item); err != nil {
		var redirect *RedirectError
		if errors.As(err, &redirect) {
			metrics.RecordSignupLookup(documentTypeLabel(item.DocumentType), metrics.ResultRedirect)
		} else {
			metrics.RecordSignupLookup(documentTypeLabel(item.DocumentType), metrics.ResultNotFound)
		}
		return nil, err
	}

	params, err := Resolve(item)
	if err != nil {
		metrics.RecordSignupLookup(documentTypeLabel(item.DocumentType), metrics.ResultUnsupported)
		return nil, err
	}

	signup := &Signup{ContentItem: item, Params: params}
	if item.HasChildTaxons() {
		signup.ChildTaxons = item.Links.ChildTaxons
	}
	metrics.RecordSignupLookup(documentTypeLabel(item.DocumentType), metrics.ResultSuccess)
	return signup, nil
}

// Subscribe resolves the content item at path, finds or creates its subscriber list,
// and returns the navigation target where the visitor completes the subscription.
// Lookup errors are returned unchanged.
func (s *Service) Subscribe(ctx context.Context, path string) (string, error) {
	signup, err := s.Lookup(ctx, path)
	if err != nil {
		return "", err
	}

	ref, err := s.Lists.FindOrCreateSubscriberList(ctx, signup.Params)
	if err != nil {
		metrics.RecordSubscriberList(false)
		return "", unavailable("find or create subscriber list", err)
	}
	if ref.Slug == "" {
		metrics.RecordSubscriberList(false)
		return "", unavailable("find or create subscriber list", errors.New("empty subscriber list slug"))
	}
	metrics.RecordSubscriberList(true)

	base := s.SubscriptionsPath
	if base == "" {
		base = DefaultSubscriptionsPath
	}
	return SubscriptionTarget(base, ref.Slug), nil
}

// documentTypeLabel bounds the metric label to the types this service knows about.
func documentTypeLabel(documentType string) string {
	if documentType == entity.DocumentTypeRedirect {
		return documentType
	}
	if _, ok := relationFor(documentType); ok {
		return documentType
	}
	return "other"
}

// SubscriptionTarget builds the navigation target for a subscriber list slug.
// The slug is query-escaped exactly once.
func SubscriptionTarget(base, slug string) string {
	return base + "?" + url.Values{"topic_id": {slug}}.Encode()
}

func unavailable(op string, err error) error {
	if errors.Is(err, entity.ErrServiceUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, entity.ErrServiceUnavailable, err)
}
