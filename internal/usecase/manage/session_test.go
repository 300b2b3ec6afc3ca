package manage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tubbz-alt/email-alert-frontend/internal/domain/entity"
)

func TestNewSession_keepsFirstOfDuplicateIDs(t *testing.T) {
	sess := newSession(entity.Subscriber{ID: "1"}, []entity.Subscription{
		{ID: "a", Frequency: entity.FrequencyDaily},
		{ID: "b"},
		{ID: "a", Frequency: entity.FrequencyWeekly},
	})

	assert.Len(t, sess.Subscriptions(), 2)
	got, ok := sess.Subscription("a")
	assert.True(t, ok)
	assert.Equal(t, entity.FrequencyDaily, got.Frequency)
}

func TestSession_SubscriptionsIsACopy(t *testing.T) {
	sess := newSession(entity.Subscriber{ID: "1"}, []entity.Subscription{{ID: "a"}})

	subs := sess.Subscriptions()
	subs[0].ID = "mutated"

	_, ok := sess.Subscription("a")
	assert.True(t, ok)
	assert.Equal(t, "a", sess.Subscriptions()[0].ID)
}
