// Package signup provides the HTTP handlers that let a visitor subscribe to email
// updates about any supported content item.
package signup

import (
	"github.com/Tubbz-alt/email-alert-frontend/internal/domain/entity"
	signupUC "github.com/Tubbz-alt/email-alert-frontend/internal/usecase/signup"
)

// Views the presentation chooses between.
const (
	ViewConfirm = "confirm"
	ViewTaxon   = "taxon"
)

// LinkedItemDTO is a narrower topic offered instead of a broad taxon.
type LinkedItemDTO struct {
	ContentID string `json:"content_id" example:"c3a1"`
	Title     string `json:"title" example:"Primary curriculum"`
	BasePath  string `json:"base_path" example:"/education/primary-curriculum"`
}

// SubscriberListDTO is the list a visitor would be subscribed to.
type SubscriberListDTO struct {
	Title string              `json:"title" example:"Education"`
	Links map[string][]string `json:"links"`
}

// SignupDTO is the resolved signup for a content item.
type SignupDTO struct {
	View           string            `json:"view" example:"confirm"`
	Title          string            `json:"title" example:"Education"`
	DocumentType   string            `json:"document_type" example:"taxon"`
	BasePath       string            `json:"base_path" example:"/education"`
	SubscriberList SubscriberListDTO `json:"subscriber_list"`
	ChildTaxons    []LinkedItemDTO   `json:"child_taxons,omitempty"`
}

// LocationDTO accompanies a 303 See Other.
type LocationDTO struct {
	Location string `json:"location" example:"/email/subscriptions/new?topic_id=education"`
}

func toSignupDTO(s *signupUC.Signup) SignupDTO {
	out := SignupDTO{
		View:         ViewConfirm,
		Title:        s.ContentItem.Title,
		DocumentType: s.ContentItem.DocumentType,
		BasePath:     s.ContentItem.BasePath,
		SubscriberList: SubscriberListDTO{
			Title: s.Params.Title,
			Links: s.Params.Links,
		},
	}
	if len(s.ChildTaxons) > 0 {
		out.View = ViewTaxon
		out.ChildTaxons = toLinkedItems(s.ChildTaxons)
	}
	return out
}

func toLinkedItems(items []entity.LinkedItem) []LinkedItemDTO {
	out := make([]LinkedItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, LinkedItemDTO{ContentID: it.ContentID, Title: it.Title, BasePath: it.BasePath})
	}
	return out
}
