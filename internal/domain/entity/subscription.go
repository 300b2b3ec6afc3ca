package entity

import "time"

// Frequency is how often a subscriber receives batched notifications.
type Frequency string

// Frequencies accepted by the email alert API.
const (
	FrequencyImmediately Frequency = "immediately"
	FrequencyDaily       Frequency = "daily"
	FrequencyWeekly      Frequency = "weekly"
)

// Frequencies lists the accepted frequencies in presentation order.
func Frequencies() []Frequency {
	return []Frequency{FrequencyImmediately, FrequencyDaily, FrequencyWeekly}
}

// Subscriber is the authoritative subscriber record held by the email alert API.
type Subscriber struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}

// Subscription links a subscriber to a subscriber list at a given frequency.
type Subscription struct {
	ID             string              `json:"id"`
	Frequency      Frequency           `json:"frequency"`
	SubscriberList SubscriptionListRef `json:"subscriber_list"`
	CreatedAt      time.Time           `json:"created_at"`
}

// SubscriptionListRef is the subscriber list summary embedded in a subscription.
type SubscriptionListRef struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// SubscriberSubscriptions is the result of fetching a subscriber's subscriptions.
type SubscriberSubscriptions struct {
	Subscriber    Subscriber     `json:"subscriber"`
	Subscriptions []Subscription `json:"subscriptions"`
}
