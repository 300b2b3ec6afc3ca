package emailalertapi

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/Tubbz-alt/email-alert-frontend/internal/domain/entity"
)

// subscriberListRequest is the body of POST /subscriber-lists.
type subscriberListRequest struct {
	Title string              `json:"title"`
	Links map[string][]string `json:"links"`
}

type subscriberListResponse struct {
	SubscriberList struct {
		Slug string `json:"slug"`
	} `json:"subscriber_list"`
}

type changeSubscriptionRequest struct {
	Frequency string `json:"frequency"`
}

type changeSubscriberRequest struct {
	NewAddress string `json:"new_address"`
}

type subscriptionsResponse struct {
	Subscriber    subscriberJSON     `json:"subscriber"`
	Subscriptions []subscriptionJSON `json:"subscriptions"`
}

type subscriberJSON struct {
	ID      flexibleID `json:"id"`
	Address string     `json:"address"`
}

type subscriptionJSON struct {
	ID             flexibleID `json:"id"`
	Frequency      string     `json:"frequency"`
	CreatedAt      string     `json:"created_at"`
	SubscriberList struct {
		Title string `json:"title"`
		URL   string `json:"url"`
	} `json:"subscriber_list"`
}

// flexibleID accepts identifiers encoded as JSON strings or numbers.
type flexibleID string

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = flexibleID(n.String())
	return nil
}

// createdAtLayouts are the timestamp formats seen in subscription payloads.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05 -07:00",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
}

// parseCreatedAt returns the zero time when value matches no known layout.
func parseCreatedAt(value string) time.Time {
	value = strings.TrimSpace(value)
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

func toListRequest(params entity.SubscriberListParams) subscriberListRequest {
	links := params.Links
	if links == nil {
		links = map[string][]string{}
	}
	return subscriberListRequest{Title: params.Title, Links: links}
}

func (r subscriptionsResponse) toEntity() entity.SubscriberSubscriptions {
	out := entity.SubscriberSubscriptions{
		Subscriber: entity.Subscriber{
			ID:      string(r.Subscriber.ID),
			Address: r.Subscriber.Address,
		},
		Subscriptions: make([]entity.Subscription, 0, len(r.Subscriptions)),
	}
	for _, s := range r.Subscriptions {
		out.Subscriptions = append(out.Subscriptions, entity.Subscription{
			ID:        string(s.ID),
			Frequency: entity.Frequency(s.Frequency),
			SubscriberList: entity.SubscriptionListRef{
				Title: s.SubscriberList.Title,
				URL:   s.SubscriberList.URL,
			},
			CreatedAt: parseCreatedAt(s.CreatedAt),
		})
	}
	return out
}
