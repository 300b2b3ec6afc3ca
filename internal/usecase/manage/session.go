package manage

import "github.com/Tubbz-alt/email-alert-frontend/internal/domain/entity"

// Session is the subscriber state loaded once at the start of a request.
// It is owned by a single request and never shared.
type Session struct {
	subscriber    entity.Subscriber
	byID          map[string]entity.Subscription
	subscriptions []entity.Subscription
}

func newSession(subscriber entity.Subscriber, subscriptions []entity.Subscription) *Session {
	s := &Session{
		subscriber:    subscriber,
		byID:          make(map[string]entity.Subscription, len(subscriptions)),
		subscriptions: make([]entity.Subscription, 0, len(subscriptions)),
	}
	for _, sub := range subscriptions {
		if _, dup := s.byID[sub.ID]; dup {
			continue
		}
		s.byID[sub.ID] = sub
		s.subscriptions = append(s.subscriptions, sub)
	}
	return s
}

// Subscriber returns the subscriber the session was loaded for.
func (s *Session) Subscriber() entity.Subscriber {
	return s.subscriber
}

// Subscription returns the subscriber's own subscription with the given id.
func (s *Session) Subscription(id string) (entity.Subscription, bool) {
	sub, ok := s.byID[id]
	return sub, ok
}

// Subscriptions returns the subscriptions in the order the email alert API listed them.
func (s *Session) Subscriptions() []entity.Subscription {
	out := make([]entity.Subscription, len(s.subscriptions))
	copy(out, s.subscriptions)
	return out
}
