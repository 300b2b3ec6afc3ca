package entity

// SubscriberListParams identifies a subscriber list on the email alert API.
// The API finds the list matching these params, or creates it.
// Exactly one Links key is populated.
type SubscriberListParams struct {
	Title string              `json:"title"`
	Links map[string][]string `json:"links"`
}

// SubscriberListRef is the part of a subscriber list the frontend keeps.
type SubscriberListRef struct {
	Slug string `json:"slug"`
}
