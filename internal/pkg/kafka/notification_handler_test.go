package kafka

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/notify"
	"context"
	"testing"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	admins []*model.User
}

func (s *stubUserRepo) GetByID(context.Context, uint64) (*model.User, error) { return nil, nil }
func (s *stubUserRepo) GetByExternalID(context.Context, string) (*model.User, error) {
	return nil, nil
}
func (s *stubUserRepo) GetByBillingCustomerID(context.Context, string) (*model.User, error) {
	return nil, nil
}
func (s *stubUserRepo) Create(context.Context, *model.User) error { return nil }
func (s *stubUserRepo) GetAdmins(context.Context) ([]*model.User, error) {
	return s.admins, nil
}

type stubSubRepo struct {
	subs   map[uint64][]*model.PushSubscription
	pruned []string
}

func (s *stubSubRepo) Upsert(context.Context, *model.PushSubscription) error { return nil }
func (s *stubSubRepo) GetByUser(_ context.Context, userID uint64) ([]*model.PushSubscription, error) {
	return s.subs[userID], nil
}
func (s *stubSubRepo) DeleteByEndpoint(_ context.Context, endpoint string) error {
	s.pruned = append(s.pruned, endpoint)
	return nil
}

type stubGateway struct {
	emails []string
	sms    []string
}

func (s *stubGateway) SendEmail(_ context.Context, to, _, _ string) error {
	s.emails = append(s.emails, to)
	return nil
}

func (s *stubGateway) SendSMS(_ context.Context, phone, _ string) error {
	s.sms = append(s.sms, phone)
	return nil
}

type stubPushSender struct {
	sent []string
	gone map[string]bool
}

func (s *stubPushSender) Send(sub *model.PushSubscription, _ []byte) error {
	s.sent = append(s.sent, sub.Endpoint)
	if s.gone[sub.Endpoint] {
		return notify.ErrSubscriptionGone
	}
	return nil
}

func engagementMessage(t *testing.T, event *EngagementEvent) *sarama.ConsumerMessage {
	t.Helper()
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return &sarama.ConsumerMessage{Topic: "engagement", Value: payload}
}

func TestNotifyAdminsFansOutEmailSMSAndPush(t *testing.T) {
	users := &stubUserRepo{admins: []*model.User{
		{ID: 1, Email: "ops@example.com", Phone: "+15550001"},
		{ID: 2, Email: "editor@example.com"},
	}}
	subs := &stubSubRepo{subs: map[uint64][]*model.PushSubscription{
		1: {{Endpoint: "https://push/one"}},
	}}
	gateway := &stubGateway{}
	push := &stubPushSender{}
	handler := NewNotificationsHandler(users, subs, gateway, push)

	msg := engagementMessage(t, &EngagementEvent{
		Type:      EventCommentCreated,
		PostID:    7,
		PostTitle: "Engines",
		ActorID:   99,
		ActorName: "Ada",
		Comment:   "great piece",
	})
	require.NoError(t, handler.logic(context.Background(), msg))

	assert.Equal(t, []string{"ops@example.com", "editor@example.com"}, gateway.emails)
	// Only the admin with a phone number gets the SMS.
	assert.Equal(t, []string{"+15550001"}, gateway.sms)
	assert.Equal(t, []string{"https://push/one"}, push.sent)
	assert.Empty(t, subs.pruned)
}

func TestNotifyAdminsSkipsTheActor(t *testing.T) {
	users := &stubUserRepo{admins: []*model.User{
		{ID: 1, Email: "actor@example.com"},
		{ID: 2, Email: "other@example.com"},
	}}
	gateway := &stubGateway{}
	handler := NewNotificationsHandler(users, &stubSubRepo{}, gateway, &stubPushSender{})

	msg := engagementMessage(t, &EngagementEvent{
		Type:      EventSubscriptionActivated,
		ActorID:   1,
		ActorName: "Ada",
	})
	require.NoError(t, handler.logic(context.Background(), msg))

	assert.Equal(t, []string{"other@example.com"}, gateway.emails)
}

func TestNotifyAdminsPrunesGoneSubscriptions(t *testing.T) {
	users := &stubUserRepo{admins: []*model.User{{ID: 1, Email: "ops@example.com"}}}
	subs := &stubSubRepo{subs: map[uint64][]*model.PushSubscription{
		1: {{Endpoint: "https://push/stale"}, {Endpoint: "https://push/live"}},
	}}
	push := &stubPushSender{gone: map[string]bool{"https://push/stale": true}}
	handler := NewNotificationsHandler(users, subs, &stubGateway{}, push)

	msg := engagementMessage(t, &EngagementEvent{Type: EventCommentCreated, ActorName: "Ada"})
	require.NoError(t, handler.logic(context.Background(), msg))

	assert.Equal(t, []string{"https://push/stale"}, subs.pruned)
}

func TestLogicIgnoresMalformedAndUnknownEvents(t *testing.T) {
	users := &stubUserRepo{admins: []*model.User{{ID: 1, Email: "ops@example.com"}}}
	gateway := &stubGateway{}
	handler := NewNotificationsHandler(users, &stubSubRepo{}, gateway, &stubPushSender{})
	ctx := context.Background()

	// Poison messages must not block the partition.
	require.NoError(t, handler.logic(ctx, &sarama.ConsumerMessage{Value: []byte("{not json")}))

	msg := engagementMessage(t, &EngagementEvent{Type: "something.else"})
	require.NoError(t, handler.logic(ctx, msg))

	assert.Empty(t, gateway.emails)
}
