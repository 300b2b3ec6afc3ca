// Package manage provides the HTTP handlers for an authenticated subscriber's
// subscription management pages under /email/manage.
package manage

import (
	"time"

	manageUC "github.com/Tubbz-alt/email-alert-frontend/internal/usecase/manage"
)

// SubscriptionDTO is one subscription on the management index.
type SubscriptionDTO struct {
	ID        string    `json:"id" example:"8a1c0f"`
	Title     string    `json:"title" example:"Education"`
	URL       string    `json:"url,omitempty" example:"/education"`
	Frequency string    `json:"frequency" example:"daily"`
	CreatedAt time.Time `json:"created_at" example:"2024-03-01T09:30:00Z"`
}

// OverviewDTO is the management index.
type OverviewDTO struct {
	Heading       string            `json:"heading" example:"Subscriptions for someone@example.com"`
	Address       string            `json:"address" example:"someone@example.com"`
	Subscriptions []SubscriptionDTO `json:"subscriptions"`
	EmptyMessage  string            `json:"empty_message,omitempty"`
	BackURL       string            `json:"back_url" example:"/email/manage"`
}

// FrequencyOptionDTO is one choice on the frequency form.
type FrequencyOptionDTO struct {
	Value    string `json:"value" example:"weekly"`
	Label    string `json:"label" example:"Weekly"`
	Selected bool   `json:"selected"`
}

// FrequencyFormDTO is the frequency change form.
type FrequencyFormDTO struct {
	SubscriptionID   string               `json:"subscription_id" example:"8a1c0f"`
	Title            string               `json:"title" example:"Education"`
	CurrentFrequency string               `json:"current_frequency" example:"daily"`
	Options          []FrequencyOptionDTO `json:"options"`
	BackURL          string               `json:"back_url" example:"/email/manage"`
}

// AddressFormDTO is the address change form.
type AddressFormDTO struct {
	Address string `json:"address" example:"someone@example.com"`
	BackURL string `json:"back_url" example:"/email/manage"`
}

// AddressErrorDetails lets the address form be presented again after a failure.
type AddressErrorDetails struct {
	Attempted string `json:"attempted" example:"not-an-address"`
	Current   string `json:"current" example:"someone@example.com"`
}

// UnsubscribeAllDTO is the unsubscribe-all confirmation step.
type UnsubscribeAllDTO struct {
	Description string `json:"description"`
	BackURL     string `json:"back_url" example:"/email/manage"`
}

// ConfirmationDTO is returned after a successful change.
type ConfirmationDTO struct {
	Message     string `json:"message" example:"You’ll now get updates about ‘Education’ once a day."`
	Description string `json:"description,omitempty"`
	BackURL     string `json:"back_url" example:"/email/manage"`
}

// FrequencyRequest is the body of a frequency change.
type FrequencyRequest struct {
	NewFrequency string `json:"new_frequency" example:"weekly"`
}

// AddressRequest is the body of an address change.
type AddressRequest struct {
	NewAddress string `json:"new_address" example:"someone.else@example.com"`
}

func toOverviewDTO(o *manageUC.Overview) OverviewDTO {
	subs := make([]SubscriptionDTO, 0, len(o.Subscriptions))
	for _, s := range o.Subscriptions {
		subs = append(subs, SubscriptionDTO{
			ID:        s.ID,
			Title:     s.SubscriberList.Title,
			URL:       s.SubscriberList.URL,
			Frequency: string(s.Frequency),
			CreatedAt: s.CreatedAt,
		})
	}
	return OverviewDTO{
		Heading:       o.Heading,
		Address:       o.Address,
		Subscriptions: subs,
		EmptyMessage:  o.EmptyMessage,
		BackURL:       o.BackURL,
	}
}

func toFrequencyFormDTO(f *manageUC.FrequencyForm) FrequencyFormDTO {
	options := make([]FrequencyOptionDTO, 0, len(f.Options))
	for _, o := range f.Options {
		options = append(options, FrequencyOptionDTO{
			Value:    string(o.Value),
			Label:    o.Label,
			Selected: o.Value == f.CurrentFrequency,
		})
	}
	return FrequencyFormDTO{
		SubscriptionID:   f.SubscriptionID,
		Title:            f.Title,
		CurrentFrequency: string(f.CurrentFrequency),
		Options:          options,
		BackURL:          f.BackURL,
	}
}

func toConfirmationDTO(c *manageUC.Confirmation) ConfirmationDTO {
	return ConfirmationDTO{Message: c.Message, Description: c.Description, BackURL: c.BackURL}
}
