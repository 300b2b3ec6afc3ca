package signup

import (
	"fmt"

	"github.com/Tubbz-alt/email-alert-frontend/internal/domain/entity"
)

// Link relations used as the single key of SubscriberListParams.Links.
const (
	RelationTaxonTree           = "taxon_tree"
	RelationOrganisations       = "organisations"
	RelationPeople              = "people"
	RelationRoles               = "roles"
	RelationTopicalEvents       = "topical_events"
	RelationTopics              = "topics"
	RelationServiceManualTopics = "service_manual_topics"
	RelationParent              = "parent"
)

// relationFor returns the link relation a subscriber list for documentType is keyed on.
func relationFor(documentType string) (string, bool) {
	switch documentType {
	case "taxon":
		return RelationTaxonTree, true
	case "organisation":
		return RelationOrganisations, true
	case "person":
		return RelationPeople, true
	case "ministerial_role":
		return RelationRoles, true
	case "topical_event":
		return RelationTopicalEvents, true
	case "topic":
		return RelationTopics, true
	case "service_manual_topic":
		return RelationServiceManualTopics, true
	case "service_manual_service_standard":
		return RelationParent, true
	default:
		return "", false
	}
}

// Resolve builds the subscriber list params for item.
// Returns ErrUnsupportedContentItem when item's document type has no subscriber list.
// Redirect items are unsupported here; callers follow them with CheckRedirect first.
func Resolve(item *entity.ContentItem) (entity.SubscriberListParams, error) {
	relation, ok := relationFor(item.DocumentType)
	if !ok {
		return entity.SubscriberListParams{}, fmt.Errorf("%w: document type %q", ErrUnsupportedContentItem, item.DocumentType)
	}

	return entity.SubscriberListParams{
		Title: item.Title,
		Links: map[string][]string{
			relation: {item.ContentID},
		},
	}, nil
}

// CheckRedirect returns a *RedirectError when item is a redirect with a destination,
// ErrContentItemNotFound when it is a redirect without one, and nil otherwise.
func CheckRedirect(item *entity.ContentItem) error {
	if !item.IsRedirect() {
		return nil
	}
	destination, ok := item.RedirectDestination()
	if !ok {
		return fmt.Errorf("%w: redirect without destination", ErrContentItemNotFound)
	}
	return &RedirectError{Destination: destination}
}
